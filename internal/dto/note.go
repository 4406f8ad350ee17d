package dto

import (
	"github.com/sillo/learning-vault-service/internal/domain"
)

// NoteCreateRequest 创建笔记的请求参数
type NoteCreateRequest struct {
	Text      string  `json:"text" form:"text" binding:"required"` // 笔记正文
	Timestamp float64 `json:"timestamp" form:"timestamp"`          // 视频内秒数, 不做范围校验
}

// NoteUpdateRequest 更新笔记正文的请求参数
type NoteUpdateRequest struct {
	Text string `json:"text" form:"text" binding:"required"`
}

// NoteDTO Note 数据传输对象
type NoteDTO struct {
	ID        string  `json:"id"`        // 笔记 ID
	VaultID   string  `json:"vaultId"`   // 所属保险库
	Timestamp float64 `json:"timestamp"` // 视频内秒数
	Text      string  `json:"text"`      // 笔记正文
	CreatedAt string  `json:"createdAt"` // 创建时间
}

// NoteToDTO 领域模型转换为 DTO
func NoteToDTO(n *domain.Note) *NoteDTO {
	if n == nil {
		return nil
	}
	return &NoteDTO{
		ID:        n.ID,
		VaultID:   n.VaultID,
		Timestamp: n.Timestamp,
		Text:      n.Text,
		CreatedAt: n.CreatedAt.String(),
	}
}

// NotesToDTO 批量转换
func NotesToDTO(notes []*domain.Note) []*NoteDTO {
	list := make([]*NoteDTO, 0, len(notes))
	for _, n := range notes {
		list = append(list, NoteToDTO(n))
	}
	return list
}
