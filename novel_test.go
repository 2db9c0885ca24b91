package pixiv

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

const webviewNovelHTML = `<!DOCTYPE html><html><head></head><body>
<script>
	novel: {"id":"12345","title":"雨の日","seriesId":null,"seriesTitle":null,"userId":"660788","coverUrl":"https://i.pximg.net/cover.jpg","tags":["オリジナル"],"caption":"","cdate":"2025-04-28","rating":{"like":10,"bookmark":5,"view":100},"text":"本文です。","illusts":[],"images":{},"seriesNavigation":null,"glossaryItems":[],"aiType":1,"isOriginal":true},
	isOwnWork: false,
</script>
</body></html>`

func TestWebviewNovelExtraction(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/webview/v2/novel" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("id"); got != "12345" {
			t.Errorf("id = %q", got)
		}
		fmt.Fprint(w, webviewNovelHTML)
	})

	novel, err := c.WebviewNovel(context.Background(), 12345)
	if err != nil {
		t.Fatal(err)
	}
	if novel.ID != "12345" {
		t.Fatalf("id = %q", novel.ID)
	}
	if novel.Title != "雨の日" {
		t.Fatalf("title = %q", novel.Title)
	}
	if novel.Text != "本文です。" {
		t.Fatalf("text = %q", novel.Text)
	}
	if novel.Rating.View != 100 {
		t.Fatalf("views = %d", novel.Rating.View)
	}
	if !novel.IsOriginal {
		t.Fatal("expected isOriginal")
	}
}

func TestWebviewNovelMissingPayload(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body>nothing embedded here</body></html>`)
	})

	_, err := c.WebviewNovel(context.Background(), 1)
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
}

func TestWebviewNovelRaw(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, webviewNovelHTML)
	})

	text, err := c.WebviewNovelRaw(context.Background(), 12345)
	if err != nil {
		t.Fatal(err)
	}
	if text != webviewNovelHTML {
		t.Fatal("raw HTML must be returned unmodified")
	}
}

func TestNovelDetailDecode(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("novel_id"); got != "777" {
			t.Errorf("novel_id = %q", got)
		}
		fmt.Fprint(w, `{"id":777,"title":"novel","image_urls":{},"user":{"profile_image_urls":{}},"tags":[{"name":"tag","translated_name":null,"added_by_uploaded_user":true}],"text_length":4321,"is_original":true}`)
	})

	novel, err := c.NovelDetail(context.Background(), 777)
	if err != nil {
		t.Fatal(err)
	}
	if novel.ID != 777 || novel.TextLength != 4321 {
		t.Fatalf("unexpected novel %+v", novel)
	}
	if len(novel.Tags) != 1 || !novel.Tags[0].AddedByUploadedUser {
		t.Fatalf("tags = %+v", novel.Tags)
	}
}
