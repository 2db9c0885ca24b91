package pixiv

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
)

// pagedIllustServer serves pages of 2 illusts each, chaining them with
// absolute next_url locators until the given total is reached.
func pagedIllustServer(t *testing.T, total int, requests *atomic.Int64) *httptest.Server {
	t.Helper()
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

		body := `{"user":{"id":1,"profile_image_urls":{}},"illusts":[`
		n := 0
		for i := offset; i < total && n < 2; i++ {
			if n > 0 {
				body += ","
			}
			body += fmt.Sprintf(`{"id":%d,"image_urls":{},"user":{"profile_image_urls":{}},"meta_single_page":{}}`, i+1)
			n++
		}
		body += `]`
		if offset+n < total {
			body += fmt.Sprintf(`,"next_url":"%s/v1/user/illusts?user_id=1&offset=%d"`, srv.URL, offset+n)
		}
		body += `}`
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFollowConcatenatesPages(t *testing.T) {
	var requests atomic.Int64
	srv := pagedIllustServer(t, 5, &requests)
	c := NewClient(ClientConfig{AccessToken: "tok", BaseURL: srv.URL})

	var ids []uint64
	for illust, err := range c.UserIllustsAll(context.Background(), 1, nil) {
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, illust.ID)
	}

	if len(ids) != 5 {
		t.Fatalf("expected 5 illusts, got %d", len(ids))
	}
	for i, id := range ids {
		if id != uint64(i+1) {
			t.Fatalf("ids out of order: %v", ids)
		}
	}
	// 5 items in pages of 2 means 3 fetches.
	if requests.Load() != 3 {
		t.Fatalf("expected 3 requests, got %d", requests.Load())
	}
}

func TestFollowStopsOnEarlyBreak(t *testing.T) {
	var requests atomic.Int64
	srv := pagedIllustServer(t, 10, &requests)
	c := NewClient(ClientConfig{AccessToken: "tok", BaseURL: srv.URL})

	for _, err := range c.UserIllustsAll(context.Background(), 1, nil) {
		if err != nil {
			t.Fatal(err)
		}
		break
	}

	if requests.Load() != 1 {
		t.Fatalf("expected 1 request after early break, got %d", requests.Load())
	}
}

func TestFollowYieldsFetchError(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("offset") != "" {
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, `{"error":{"message":"boom"}}`)
			return
		}
		fmt.Fprintf(w, `{"user":{"id":1,"profile_image_urls":{}},"illusts":[{"id":1,"image_urls":{},"user":{"profile_image_urls":{}},"meta_single_page":{}}],"next_url":"%s/v1/user/illusts?offset=1"}`, srv.URL)
	}))
	t.Cleanup(srv.Close)
	c := NewClient(ClientConfig{AccessToken: "tok", BaseURL: srv.URL})

	var items, errs int
	for _, err := range c.UserIllustsAll(context.Background(), 1, nil) {
		if err != nil {
			errs++
			continue
		}
		items++
	}

	if items != 1 {
		t.Fatalf("expected 1 item before the failure, got %d", items)
	}
	if errs != 1 {
		t.Fatalf("expected exactly 1 error, got %d", errs)
	}
}

func TestNextPageExhaustion(t *testing.T) {
	page := &UserIllusts{Illusts: []Illust{{ID: 1}}}
	if _, ok := page.NextPage(); ok {
		t.Fatal("empty next_url must report exhaustion")
	}
	page.NextURL = "https://app-api.pixiv.net/v1/user/illusts?offset=30"
	if next, ok := page.NextPage(); !ok || next == "" {
		t.Fatal("expected next page locator")
	}
}
