package noembed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/embed" {
			t.Errorf("path: got %q, want /embed", r.URL.Path)
		}
		if got := r.URL.Query().Get("url"); got != "https://youtu.be/dQw4w9WgXcQ" {
			t.Errorf("url param: got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"title":"Never Gonna Give You Up","thumbnail_url":"https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	meta, err := c.Fetch(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if meta.Title != "Never Gonna Give You Up" {
		t.Errorf("title: got %q", meta.Title)
	}
	if meta.Thumbnail != "https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg" {
		t.Errorf("thumbnail: got %q", meta.Thumbnail)
	}
}

// noembed 对未知链接返回 200, 错误放在响应体的 error 字段里
func TestFetchErrorInBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error":"no matching providers found"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	_, err := c.Fetch(context.Background(), "https://example.com/unknown")
	if err == nil {
		t.Fatal("expected error for error field in 200 body")
	}
}

func TestFetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	_, err := c.Fetch(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	if err == nil {
		t.Fatal("expected error for non-200 status")
	}
}
