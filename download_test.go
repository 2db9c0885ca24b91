package pixiv

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Referer"); got != defaultReferer {
			t.Errorf("Referer = %q", got)
		}
		fmt.Fprint(w, "image-bytes")
	}))
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	c := NewNoAuth()

	written, err := c.Download(context.Background(), srv.URL+"/img/001_p0.jpg", dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !written {
		t.Fatal("expected file to be written")
	}

	data, err := os.ReadFile(filepath.Join(dir, "001_p0.jpg"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "image-bytes" {
		t.Fatalf("content = %q", data)
	}

	// Second run leaves the existing file alone.
	written, err = c.Download(context.Background(), srv.URL+"/img/001_p0.jpg", dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	if written {
		t.Fatal("expected existing file to be skipped")
	}

	// Replace forces the overwrite.
	written, err = c.Download(context.Background(), srv.URL+"/img/001_p0.jpg", dir, &DownloadOptions{Replace: true})
	if err != nil {
		t.Fatal(err)
	}
	if !written {
		t.Fatal("expected overwrite with Replace")
	}
}

func TestDownloadCustomNameAndReferer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Referer"); got != "https://example.com/" {
			t.Errorf("Referer = %q", got)
		}
		fmt.Fprint(w, "x")
	}))
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	c := NewNoAuth()
	written, err := c.Download(context.Background(), srv.URL+"/img/a.jpg", dir, &DownloadOptions{
		Name:    "renamed.jpg",
		Referer: "https://example.com/",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !written {
		t.Fatal("expected file to be written")
	}
	if _, err := os.Stat(filepath.Join(dir, "renamed.jpg")); err != nil {
		t.Fatal(err)
	}
}

func TestDownloadHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)

	c := NewNoAuth()
	written, err := c.Download(context.Background(), srv.URL+"/img/a.jpg", t.TempDir(), nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if written {
		t.Fatal("no file should be written on error")
	}
}
