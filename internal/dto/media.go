package dto

// MetadataRequest 链接元数据查询的请求参数
type MetadataRequest struct {
	URL string `json:"url" form:"url" binding:"required"` // 待解析的链接
}

// MetadataDTO 链接元数据响应
type MetadataDTO struct {
	Title     string `json:"title"`     // 标题, 失败时为默认值
	Thumbnail string `json:"thumbnail"` // 缩略图, 失败时为占位图
}

// SearchRequest 媒体搜索的请求参数
type SearchRequest struct {
	Query string `form:"q" binding:"required"` // 搜索关键词
	Type  string `form:"type"`                 // video 或 playlist, 默认 video
}

// MediaItemDTO 搜索结果或播放列表条目
type MediaItemDTO struct {
	ID           string `json:"id"`
	Kind         string `json:"type"` // video 或 playlist
	Title        string `json:"title"`
	Thumbnail    string `json:"thumbnail"`
	ChannelTitle string `json:"channelTitle,omitempty"`
	Description  string `json:"description,omitempty"`
	PublishedAt  string `json:"publishedAt,omitempty"`
}
