// Package util provides common utility functions
// Package util 提供通用工具函数
package util

import "regexp"

// Media kinds recognized by the link parser // 链接解析器识别的媒体类型
const (
	MediaKindVideo    = "video"
	MediaKindPlaylist = "playlist"
)

// MediaLink represents a video or playlist identifier extracted from a URL
// MediaLink 表示从 URL 中提取的视频或播放列表标识
type MediaLink struct {
	Kind string // MediaKindVideo or MediaKindPlaylist // 视频或播放列表
	ID   string // The extracted identifier // 提取出的标识
}

// playlistRegex matches the list= query parameter of playlist URLs
// Group 1: playlist id // 播放列表 ID
// playlistRegex 匹配播放列表 URL 中的 list= 查询参数
var playlistRegex = regexp.MustCompile(`[?&]list=([^#&?]+)`)

// videoRegex matches the common video URL shapes: watch?v=, youtu.be/,
// /embed/, /v/, /u/<x>/ and &v=
// Group 2: candidate video id // 候选视频 ID
// videoRegex 匹配常见的视频 URL 形态
var videoRegex = regexp.MustCompile(`^.*(youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*).*`)

// ParseMediaLink extracts a video or playlist identifier from a URL.
// A playlist marker wins over a video id present in the same URL; video
// ids must be exactly 11 characters. A URL with no recognizable pattern
// returns (nil, false) rather than an error.
// ParseMediaLink 从 URL 中提取视频或播放列表标识。
// 同时包含两种标识时播放列表优先；视频 ID 必须恰好 11 个字符。
// 无法识别时返回 (nil, false)，不作为错误处理。
func ParseMediaLink(url string) (*MediaLink, bool) {
	if url == "" {
		return nil, false
	}

	// Playlist marker first // 优先匹配播放列表标记
	if m := playlistRegex.FindStringSubmatch(url); m != nil {
		return &MediaLink{Kind: MediaKindPlaylist, ID: m[1]}, true
	}

	m := videoRegex.FindStringSubmatch(url)
	if m == nil || len(m[2]) != 11 {
		return nil, false
	}
	return &MediaLink{Kind: MediaKindVideo, ID: m[2]}, true
}

// Thumbnail returns the max-resolution thumbnail URL convention of the
// video host for the given video id.
// Thumbnail 返回视频宿主站的最大分辨率缩略图 URL
func Thumbnail(videoID string) string {
	return "https://img.youtube.com/vi/" + videoID + "/maxresdefault.jpg"
}

// IsValidMediaURL reports whether the URL carries a recognizable identifier
// IsValidMediaURL 判断 URL 是否包含可识别的媒体标识
func IsValidMediaURL(url string) bool {
	_, ok := ParseMediaLink(url)
	return ok
}
