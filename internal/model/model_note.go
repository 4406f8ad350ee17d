package model

import (
	"github.com/sillo/learning-vault-service/pkg/timex"
)

// Note 时间戳笔记表
// Timestamp 为视频内秒数, 以数字字符串存储
type Note struct {
	ID        string     `gorm:"column:id;primaryKey;size:36"`
	VaultID   string     `gorm:"column:vault_id;size:36;index"`
	Timestamp string     `gorm:"column:timestamp;size:32"`
	Text      string     `gorm:"column:text;type:text"`
	CreatedAt timex.Time `gorm:"column:created_at"`
}
