// Package youtube 实现 YouTube Data API v3 搜索与播放列表客户端
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sillo/learning-vault-service/pkg/provider"
)

const defaultEndpoint = "https://www.googleapis.com/youtube/v3"

const (
	searchMaxResults   = "12"
	playlistMaxResults = "50"
)

// Client calls the YouTube Data API v3.
// Client 调用 YouTube Data API v3。
type Client struct {
	client *resty.Client
	apiKey string
}

// New 创建 Client。apiKey 为空时 Configured 返回 false。
func New(endpoint, apiKey string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	c := resty.New().
		SetBaseURL(endpoint).
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)

	return &Client{client: c, apiKey: apiKey}
}

// Configured reports whether an API key is present
// Configured 报告是否配置了 API Key
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// API 响应结构
type searchID struct {
	VideoID    string `json:"videoId"`
	PlaylistID string `json:"playlistId"`
}

type thumbnail struct {
	URL string `json:"url"`
}

type snippet struct {
	Title        string `json:"title"`
	ChannelTitle string `json:"channelTitle"`
	Description  string `json:"description"`
	PublishedAt  string `json:"publishedAt"`
	Thumbnails   struct {
		High    thumbnail `json:"high"`
		Default thumbnail `json:"default"`
	} `json:"thumbnails"`
	ResourceID struct {
		VideoID string `json:"videoId"`
	} `json:"resourceId"`
}

type searchItem struct {
	ID      searchID `json:"id"`
	Snippet snippet  `json:"snippet"`
}

type listResponse struct {
	Items []searchItem `json:"items"`
}

func (s snippet) thumbnailURL() string {
	if s.Thumbnails.High.URL != "" {
		return s.Thumbnails.High.URL
	}
	return s.Thumbnails.Default.URL
}

// Search performs a free-text search restricted to one kind.
// Search 执行限定类型的自由文本搜索。
func (c *Client) Search(ctx context.Context, query string, kind string) ([]*provider.Item, error) {
	typeFilter := provider.KindVideo
	if kind == provider.KindPlaylist {
		typeFilter = provider.KindPlaylist
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"part":       "snippet",
			"q":          query,
			"type":       typeFilter,
			"key":        c.apiKey,
			"maxResults": searchMaxResults,
		}).
		Get("/search")
	if err != nil {
		return nil, fmt.Errorf("youtube search request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("youtube search status %d: %s", resp.StatusCode(), resp.String())
	}

	var lr listResponse
	if err := json.Unmarshal(resp.Body(), &lr); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	items := make([]*provider.Item, 0, len(lr.Items))
	for _, it := range lr.Items {
		kind := provider.KindVideo
		id := it.ID.VideoID
		if it.ID.PlaylistID != "" {
			kind = provider.KindPlaylist
			id = it.ID.PlaylistID
		}
		items = append(items, &provider.Item{
			ID:           id,
			Kind:         kind,
			Title:        it.Snippet.Title,
			Thumbnail:    it.Snippet.thumbnailURL(),
			ChannelTitle: it.Snippet.ChannelTitle,
			Description:  it.Snippet.Description,
			PublishedAt:  it.Snippet.PublishedAt,
		})
	}
	return items, nil
}

// PlaylistItems lists the videos of a playlist.
// PlaylistItems 列出播放列表中的视频。
func (c *Client) PlaylistItems(ctx context.Context, playlistID string) ([]*provider.Item, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"part":       "snippet",
			"playlistId": playlistID,
			"key":        c.apiKey,
			"maxResults": playlistMaxResults,
		}).
		Get("/playlistItems")
	if err != nil {
		return nil, fmt.Errorf("youtube playlist request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("youtube playlist status %d: %s", resp.StatusCode(), resp.String())
	}

	var lr listResponse
	if err := json.Unmarshal(resp.Body(), &lr); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	items := make([]*provider.Item, 0, len(lr.Items))
	for _, it := range lr.Items {
		items = append(items, &provider.Item{
			ID:           it.Snippet.ResourceID.VideoID,
			Kind:         provider.KindVideo,
			Title:        it.Snippet.Title,
			Thumbnail:    it.Snippet.thumbnailURL(),
			ChannelTitle: it.Snippet.ChannelTitle,
			Description:  it.Snippet.Description,
			PublishedAt:  it.Snippet.PublishedAt,
		})
	}
	return items, nil
}

var _ provider.MediaSearcher = (*Client)(nil)
