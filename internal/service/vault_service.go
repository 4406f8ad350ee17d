// Package service 实现业务逻辑层
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sillo/learning-vault-service/global"
	"github.com/sillo/learning-vault-service/internal/domain"
	"github.com/sillo/learning-vault-service/internal/dto"
	"github.com/sillo/learning-vault-service/pkg/code"
	"github.com/sillo/learning-vault-service/pkg/logger"
	"github.com/sillo/learning-vault-service/pkg/provider"
	"github.com/sillo/learning-vault-service/pkg/util"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// DefaultVaultTitle 元数据补全失败时使用的标题
const DefaultVaultTitle = "New Learning Vault"

// PlaceholderThumbnail 无法确定视频ID时使用的占位缩略图
const PlaceholderThumbnail = "https://placehold.co/480x360?text=Learning+Vault"

// VaultService 定义保险库业务服务接口
// 提供保险库的创建、查询和删除逻辑
type VaultService interface {
	// Create 创建保险库, 元数据补全失败不阻塞创建
	// 使用 Singleflight 合并同一账号同一链接的并发请求
	Create(ctx context.Context, ownerID string, req *dto.VaultCreateRequest) (*dto.VaultDTO, error)

	// List 获取账号的全部保险库
	List(ctx context.Context, ownerID string) ([]*dto.VaultDTO, error)

	// Get 根据ID获取保险库
	Get(ctx context.Context, id string) (*dto.VaultDTO, error)

	// Delete 删除保险库及其全部笔记, 删除不存在的ID不报错
	Delete(ctx context.Context, id string) error

	// Touch 记录保险库的学习活动, progress 非空时一并更新学习进度
	Touch(ctx context.Context, id string, progress *float64) error

	// Metadata 获取链接的标题和缩略图, 失败时返回默认值
	Metadata(ctx context.Context, url string) *dto.MetadataDTO
}

// vaultService 实现 VaultService 接口
type vaultService struct {
	repo     domain.VaultRepository
	metadata provider.MetadataFetcher
	sf       *singleflight.Group
}

// NewVaultService 创建 VaultService 实例
func NewVaultService(repo domain.VaultRepository, metadata provider.MetadataFetcher) VaultService {
	return &vaultService{
		repo:     repo,
		metadata: metadata,
		sf:       &singleflight.Group{},
	}
}

// enrich 调用元数据提供方补全标题和缩略图
// 提供方失败时回退到默认标题和占位图, 不向上传递错误
func (s *vaultService) enrich(ctx context.Context, url string) *dto.MetadataDTO {
	result := &dto.MetadataDTO{
		Title:     DefaultVaultTitle,
		Thumbnail: PlaceholderThumbnail,
	}
	if link, ok := util.ParseMediaLink(url); ok && link.Kind == util.MediaKindVideo {
		result.Thumbnail = util.Thumbnail(link.ID)
	}

	meta, err := s.metadata.Fetch(ctx, url)
	if err != nil {
		global.Log().Warn("metadata fetch failed, using fallback",
			zap.String(logger.FieldProvider, "noembed"),
			zap.String(logger.FieldURL, url),
			zap.Error(err))
		return result
	}
	if meta.Title != "" {
		result.Title = meta.Title
	}
	if meta.Thumbnail != "" {
		result.Thumbnail = meta.Thumbnail
	}
	return result
}

// Metadata 获取链接的标题和缩略图
func (s *vaultService) Metadata(ctx context.Context, url string) *dto.MetadataDTO {
	return s.enrich(ctx, url)
}

// Create 创建保险库
func (s *vaultService) Create(ctx context.Context, ownerID string, req *dto.VaultCreateRequest) (*dto.VaultDTO, error) {
	key := fmt.Sprintf("vault_create_%s_%s", ownerID, req.SourceURL)

	result, err, _ := s.sf.Do(key, func() (interface{}, error) {
		kind := req.Kind
		if kind == "" {
			kind = util.MediaKindVideo
			if link, ok := util.ParseMediaLink(req.SourceURL); ok {
				kind = link.Kind
			}
		}

		title := req.Title
		thumbnail := req.ThumbnailURL
		if title == "" || thumbnail == "" {
			meta := s.enrich(ctx, req.SourceURL)
			if title == "" {
				title = meta.Title
			}
			if thumbnail == "" {
				thumbnail = meta.Thumbnail
			}
		}

		vault := &domain.Vault{
			OwnerID:      ownerID,
			Kind:         kind,
			Title:        title,
			SourceURL:    req.SourceURL,
			ThumbnailURL: thumbnail,
		}
		created, err := s.repo.Create(ctx, vault)
		if err != nil {
			return nil, code.ErrorVaultCreateFail.WithDetails(err.Error())
		}
		return created, nil
	})
	if err != nil {
		return nil, err
	}
	return dto.VaultToDTO(result.(*domain.Vault)), nil
}

// List 获取账号的全部保险库
func (s *vaultService) List(ctx context.Context, ownerID string) ([]*dto.VaultDTO, error) {
	vaults, err := s.repo.List(ctx, ownerID)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return dto.VaultsToDTO(vaults), nil
}

// Get 根据ID获取保险库
func (s *vaultService) Get(ctx context.Context, id string) (*dto.VaultDTO, error) {
	vault, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorVaultNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return dto.VaultToDTO(vault), nil
}

// Delete 删除保险库及其全部笔记
// 删除在一个事务中完成, 保险库不存在时静默成功
func (s *vaultService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteWithNotes(ctx, id); err != nil {
		return code.ErrorDBQuery.WithDetails(err.Error())
	}
	return nil
}

// Touch 记录保险库的学习活动
func (s *vaultService) Touch(ctx context.Context, id string, progress *float64) error {
	err := s.repo.Touch(ctx, id, progress)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return code.ErrorVaultNotFound
		}
		return code.ErrorDBQuery.WithDetails(err.Error())
	}
	return nil
}
