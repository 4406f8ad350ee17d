// Package dto 定义数据传输对象（请求参数和响应结构体）
package dto

import (
	"github.com/sillo/learning-vault-service/internal/domain"
)

// VaultCreateRequest 创建保险库的请求参数
type VaultCreateRequest struct {
	SourceURL    string `json:"sourceUrl" form:"sourceUrl" binding:"required"` // 粘贴的视频或播放列表链接
	Title        string `json:"title" form:"title"`                            // 可选, 客户端预先取得的标题
	Kind         string `json:"kind" form:"kind"`                              // 可选, video 或 playlist
	ThumbnailURL string `json:"thumbnailUrl" form:"thumbnailUrl"`              // 可选, 客户端预先取得的缩略图
}

// VaultActivityRequest 记录学习活动的请求参数
type VaultActivityRequest struct {
	Progress *float64 `json:"progress" form:"progress" binding:"omitempty,gte=0,lte=1"` // 可选, 学习进度 0~1
}

// VaultDTO Vault 数据传输对象
type VaultDTO struct {
	ID           string  `json:"id"`           // 保险库 ID
	OwnerID      string  `json:"ownerId"`      // 所属账号
	Kind         string  `json:"kind"`         // video 或 playlist
	Title        string  `json:"title"`        // 标题
	SourceURL    string  `json:"sourceUrl"`    // 原始链接
	ThumbnailURL string  `json:"thumbnailUrl"` // 缩略图
	Progress     float64 `json:"progress"`     // 学习进度 0~1
	ExtraData    string  `json:"extraData,omitempty"`
	AddedAt      string  `json:"addedAt"`      // 添加时间
	LastActiveAt string  `json:"lastActiveAt"` // 最近活动时间, 可能为空
}

// VaultToDTO 领域模型转换为 DTO
func VaultToDTO(v *domain.Vault) *VaultDTO {
	if v == nil {
		return nil
	}
	lastActive := ""
	if !v.LastActiveAt.IsZero() {
		lastActive = v.LastActiveAt.String()
	}
	return &VaultDTO{
		ID:           v.ID,
		OwnerID:      v.OwnerID,
		Kind:         v.Kind,
		Title:        v.Title,
		SourceURL:    v.SourceURL,
		ThumbnailURL: v.ThumbnailURL,
		Progress:     v.Progress,
		ExtraData:    v.ExtraData,
		AddedAt:      v.AddedAt.String(),
		LastActiveAt: lastActive,
	}
}

// VaultsToDTO 批量转换
func VaultsToDTO(vaults []*domain.Vault) []*VaultDTO {
	list := make([]*VaultDTO, 0, len(vaults))
	for _, v := range vaults {
		list = append(list, VaultToDTO(v))
	}
	return list
}
