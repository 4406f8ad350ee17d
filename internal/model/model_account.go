package model

import (
	"github.com/sillo/learning-vault-service/pkg/timex"
)

// Account 账号表
type Account struct {
	ID        string     `gorm:"column:id;primaryKey;size:36"`
	Username  string     `gorm:"column:username;size:64;uniqueIndex"`
	Password  string     `gorm:"column:password;size:128"`
	CreatedAt timex.Time `gorm:"column:created_at"`
}
