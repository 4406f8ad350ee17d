package domain

import "github.com/sillo/learning-vault-service/pkg/timex"

// Account 账号领域模型
type Account struct {
	ID        string
	Username  string
	Password  string
	CreatedAt timex.Time
}
