package dao

import (
	"context"

	"github.com/sillo/learning-vault-service/internal/domain"
	"github.com/sillo/learning-vault-service/internal/model"
	"github.com/sillo/learning-vault-service/pkg/timex"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// vaultRepository 实现 domain.VaultRepository 接口
type vaultRepository struct {
	dao *Dao
}

// NewVaultRepository 创建 VaultRepository 实例
func NewVaultRepository(dao *Dao) domain.VaultRepository {
	return &vaultRepository{dao: dao}
}

// toDomain 将数据库模型转换为领域模型
func (r *vaultRepository) toDomain(m *model.Vault) *domain.Vault {
	if m == nil {
		return nil
	}
	return &domain.Vault{
		ID:           m.ID,
		OwnerID:      m.OwnerID,
		Kind:         m.Kind,
		Title:        m.Title,
		SourceURL:    m.SourceURL,
		ThumbnailURL: m.ThumbnailURL,
		Progress:     m.Progress,
		ExtraData:    m.ExtraData,
		AddedAt:      m.AddedAt,
		LastActiveAt: m.LastActiveAt,
	}
}

// toModel 将领域模型转换为数据库模型
func (r *vaultRepository) toModel(vault *domain.Vault) *model.Vault {
	if vault == nil {
		return nil
	}
	return &model.Vault{
		ID:           vault.ID,
		OwnerID:      vault.OwnerID,
		Kind:         vault.Kind,
		Title:        vault.Title,
		SourceURL:    vault.SourceURL,
		ThumbnailURL: vault.ThumbnailURL,
		Progress:     vault.Progress,
		ExtraData:    vault.ExtraData,
		AddedAt:      vault.AddedAt,
		LastActiveAt: vault.LastActiveAt,
	}
}

// List 获取某账号的全部保险库, 按添加时间倒序
func (r *vaultRepository) List(ctx context.Context, ownerID string) ([]*domain.Vault, error) {
	var ms []*model.Vault
	err := r.dao.Db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("added_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	vaults := make([]*domain.Vault, 0, len(ms))
	for _, m := range ms {
		vaults = append(vaults, r.toDomain(m))
	}
	return vaults, nil
}

// GetByID 根据ID获取保险库
func (r *vaultRepository) GetByID(ctx context.Context, id string) (*domain.Vault, error) {
	var m model.Vault
	err := r.dao.Db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// Create 创建保险库
func (r *vaultRepository) Create(ctx context.Context, vault *domain.Vault) (*domain.Vault, error) {
	m := r.toModel(vault)
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.AddedAt.IsZero() {
		m.AddedAt = timex.Now()
	}
	// 新建即视为一次活动
	if m.LastActiveAt.IsZero() {
		m.LastActiveAt = timex.Now()
	}
	if err := r.dao.Db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(m), nil
}

// Touch 更新保险库的最近活动时间, progress 非空时一并更新学习进度
func (r *vaultRepository) Touch(ctx context.Context, id string, progress *float64) error {
	updates := map[string]interface{}{"last_active_at": timex.Now()}
	if progress != nil {
		updates["progress"] = *progress
	}
	result := r.dao.Db.WithContext(ctx).Model(&model.Vault{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteWithNotes 事务内删除保险库及其全部笔记
func (r *vaultRepository) DeleteWithNotes(ctx context.Context, id string) error {
	return r.dao.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("vault_id = ?", id).Delete(&model.Note{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Vault{}).Error
	})
}

// CountByOwner 获取某账号的保险库数量
func (r *vaultRepository) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	var count int64
	err := r.dao.Db.WithContext(ctx).Model(&model.Vault{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
