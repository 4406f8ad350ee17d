package dto

import (
	"github.com/sillo/learning-vault-service/internal/domain"
)

// AccountRegisterRequest 注册账号的请求参数
type AccountRegisterRequest struct {
	Username string `json:"username" form:"username" binding:"required,min=2,max=64"`
	Password string `json:"password" form:"password" binding:"required,min=6,max=64"`
}

// AccountDTO 账号数据传输对象, 不包含密码
type AccountDTO struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	CreatedAt string `json:"createdAt"`
}

// AccountToDTO 领域模型转换为 DTO
func AccountToDTO(a *domain.Account) *AccountDTO {
	if a == nil {
		return nil
	}
	return &AccountDTO{
		ID:        a.ID,
		Username:  a.Username,
		CreatedAt: a.CreatedAt.String(),
	}
}
