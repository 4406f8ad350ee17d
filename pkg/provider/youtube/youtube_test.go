package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sillo/learning-vault-service/pkg/provider"
)

func TestConfigured(t *testing.T) {
	if New("", "", time.Second).Configured() {
		t.Error("client without api key must not report configured")
	}
	if !New("", "key", time.Second).Configured() {
		t.Error("client with api key must report configured")
	}
}

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("path: got %q, want /search", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("q") != "go concurrency" {
			t.Errorf("q param: got %q", q.Get("q"))
		}
		if q.Get("type") != "video" {
			t.Errorf("type param: got %q", q.Get("type"))
		}
		if q.Get("key") != "test-key" {
			t.Errorf("key param: got %q", q.Get("key"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"items": [
				{
					"id": {"videoId": "f6kdp27TYZs"},
					"snippet": {
						"title": "Go Concurrency Patterns",
						"channelTitle": "Google Developers",
						"description": "Rob Pike on concurrency",
						"publishedAt": "2012-07-01T00:00:00Z",
						"thumbnails": {
							"high": {"url": "https://i.ytimg.com/vi/f6kdp27TYZs/hqdefault.jpg"},
							"default": {"url": "https://i.ytimg.com/vi/f6kdp27TYZs/default.jpg"}
						}
					}
				},
				{
					"id": {"playlistId": "PL123"},
					"snippet": {
						"title": "Go Course",
						"channelTitle": "Go Class",
						"thumbnails": {
							"default": {"url": "https://i.ytimg.com/pl/default.jpg"}
						}
					}
				}
			]
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "test-key", 5*time.Second)
	items, err := c.Search(context.Background(), "go concurrency", provider.KindVideo)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	if items[0].ID != "f6kdp27TYZs" || items[0].Kind != provider.KindVideo {
		t.Errorf("first item: %+v", items[0])
	}
	// 优先使用 high 分辨率缩略图
	if items[0].Thumbnail != "https://i.ytimg.com/vi/f6kdp27TYZs/hqdefault.jpg" {
		t.Errorf("thumbnail: got %q", items[0].Thumbnail)
	}

	// playlistId 条目识别为播放列表, 缺 high 时回退 default 缩略图
	if items[1].ID != "PL123" || items[1].Kind != provider.KindPlaylist {
		t.Errorf("second item: %+v", items[1])
	}
	if items[1].Thumbnail != "https://i.ytimg.com/pl/default.jpg" {
		t.Errorf("thumbnail: got %q", items[1].Thumbnail)
	}
}

func TestSearchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"message":"quotaExceeded"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "test-key", 5*time.Second)
	_, err := c.Search(context.Background(), "golang", provider.KindVideo)
	if err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

func TestPlaylistItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/playlistItems" {
			t.Errorf("path: got %q, want /playlistItems", r.URL.Path)
		}
		if got := r.URL.Query().Get("playlistId"); got != "PL123" {
			t.Errorf("playlistId param: got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"items": [
				{
					"snippet": {
						"title": "Lesson 1",
						"channelTitle": "Go Class",
						"resourceId": {"videoId": "abc123def45"},
						"thumbnails": {"high": {"url": "https://i.ytimg.com/vi/abc123def45/hqdefault.jpg"}}
					}
				}
			]
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "test-key", 5*time.Second)
	items, err := c.PlaylistItems(context.Background(), "PL123")
	if err != nil {
		t.Fatalf("PlaylistItems failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	// 播放列表条目的视频ID取自 resourceId
	if items[0].ID != "abc123def45" {
		t.Errorf("id: got %q", items[0].ID)
	}
	if items[0].Kind != provider.KindVideo {
		t.Errorf("kind: got %q", items[0].Kind)
	}
}
