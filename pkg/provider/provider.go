// Package provider defines the outbound collaborator contracts: metadata
// enrichment, media search and the AI assistant.
// Package provider 定义出站协作方契约：元数据补全、媒体搜索与 AI 助手。
package provider

import "context"

// 条目类型
const (
	KindVideo    = "video"
	KindPlaylist = "playlist"
)

// Metadata 由 oEmbed 服务返回的标题/缩略图对
type Metadata struct {
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
}

// Item 搜索或播放列表条目
type Item struct {
	ID           string `json:"id"`
	Kind         string `json:"type"` // "video" or "playlist" // 视频或播放列表
	Title        string `json:"title"`
	Thumbnail    string `json:"thumbnail"`
	ChannelTitle string `json:"channelTitle"`
	Description  string `json:"description"`
	PublishedAt  string `json:"publishedAt"`
}

// Summary AI 生成的结构化总结
type Summary struct {
	KeyTakeaways      []string `json:"keyTakeaways"`
	RecommendedAction string   `json:"recommendedAction"`
	Timestamp         string   `json:"timestamp"`
}

// MetadataFetcher fetches a best-effort title/thumbnail pair for a URL.
// Callers absorb failures; implementations just report them.
// MetadataFetcher 按 URL 获取尽力而为的标题/缩略图。失败由调用方吸收。
type MetadataFetcher interface {
	Fetch(ctx context.Context, url string) (*Metadata, error)
}

// MediaSearcher 媒体搜索协作方
type MediaSearcher interface {
	// Configured reports whether the provider has a usable credential
	// Configured 报告凭据是否可用
	Configured() bool

	// Search 自由文本搜索
	Search(ctx context.Context, query string, kind string) ([]*Item, error)

	// PlaylistItems 列出播放列表条目
	PlaylistItems(ctx context.Context, playlistID string) ([]*Item, error)
}

// Assistant 生成式 AI 协作方
type Assistant interface {
	// GenerateSummary 生成结构化总结
	GenerateSummary(ctx context.Context, title string, context string) (*Summary, error)

	// GenerateReply 生成自由格式回复
	GenerateReply(ctx context.Context, message string, context string) (string, error)
}
