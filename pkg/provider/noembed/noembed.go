// Package noembed 实现基于 noembed.com 的 oEmbed 元数据客户端
package noembed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sillo/learning-vault-service/pkg/provider"
)

const defaultEndpoint = "https://noembed.com"

// Client calls the noembed oEmbed gateway.
// Client 调用 noembed oEmbed 网关。
type Client struct {
	client *resty.Client
}

// New creates a Client. endpoint falls back to the public noembed gateway
// when empty.
// New 创建 Client。endpoint 为空时使用公共 noembed 网关。
func New(endpoint string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	c := resty.New().
		SetBaseURL(endpoint).
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)

	return &Client{client: c}
}

// embedResponse oEmbed 响应字段
type embedResponse struct {
	Title        string `json:"title"`
	ThumbnailURL string `json:"thumbnail_url"`
	Error        string `json:"error"`
}

// Fetch resolves the title/thumbnail pair for a media URL. The provider
// reports unknown URLs inside a 200 body via the error field.
// Fetch 解析媒体 URL 的标题/缩略图。未知 URL 由 200 响应体内的
// error 字段报告。
func (c *Client) Fetch(ctx context.Context, url string) (*provider.Metadata, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("url", url).
		Get("/embed")
	if err != nil {
		return nil, fmt.Errorf("noembed request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("noembed status %d: %s", resp.StatusCode(), resp.String())
	}

	var er embedResponse
	if err := json.Unmarshal(resp.Body(), &er); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if er.Error != "" {
		return nil, fmt.Errorf("noembed: %s", er.Error)
	}

	return &provider.Metadata{
		Title:     er.Title,
		Thumbnail: er.ThumbnailURL,
	}, nil
}

var _ provider.MetadataFetcher = (*Client)(nil)
