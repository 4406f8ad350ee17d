package domain

import "github.com/sillo/learning-vault-service/pkg/timex"

// Note 时间戳笔记领域模型
type Note struct {
	ID        string
	VaultID   string
	Timestamp float64
	Text      string
	CreatedAt timex.Time
}
