package model

import (
	"github.com/sillo/learning-vault-service/pkg/timex"
)

// Vault 学习保险库表, 每行保存一个已收藏的视频或播放列表
type Vault struct {
	ID           string     `gorm:"column:id;primaryKey;size:36"`
	OwnerID      string     `gorm:"column:owner_id;size:36;index"`
	Kind         string     `gorm:"column:kind;size:16;default:video"`
	Title        string     `gorm:"column:title;size:512"`
	SourceURL    string     `gorm:"column:source_url;size:1024"`
	ThumbnailURL string     `gorm:"column:thumbnail_url;size:1024"`
	Progress     float64    `gorm:"column:progress;default:0"`
	ExtraData    string     `gorm:"column:extra_data;type:text"`
	AddedAt      timex.Time `gorm:"column:added_at"`
	LastActiveAt timex.Time `gorm:"column:last_active_at"`
}
