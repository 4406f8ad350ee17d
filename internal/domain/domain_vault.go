package domain

import "github.com/sillo/learning-vault-service/pkg/timex"

// Vault 保险库领域模型, 一条已保存的视频或播放列表
type Vault struct {
	ID           string
	OwnerID      string
	Kind         string
	Title        string
	SourceURL    string
	ThumbnailURL string
	Progress     float64
	ExtraData    string
	AddedAt      timex.Time
	LastActiveAt timex.Time
}

// IsPlaylist 判断是否为播放列表
func (v *Vault) IsPlaylist() bool {
	return v.Kind == "playlist"
}

// HasActivity 判断是否有学习活动记录
func (v *Vault) HasActivity() bool {
	return !v.LastActiveAt.IsZero()
}
