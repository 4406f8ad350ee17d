package dao

import (
	"context"
	"strconv"

	"github.com/sillo/learning-vault-service/internal/domain"
	"github.com/sillo/learning-vault-service/internal/model"
	"github.com/sillo/learning-vault-service/pkg/convert"
	"github.com/sillo/learning-vault-service/pkg/timex"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// noteRepository 实现 domain.NoteRepository 接口
type noteRepository struct {
	dao *Dao
}

// NewNoteRepository 创建 NoteRepository 实例
func NewNoteRepository(dao *Dao) domain.NoteRepository {
	return &noteRepository{dao: dao}
}

func (r *noteRepository) toDomain(m *model.Note) *domain.Note {
	if m == nil {
		return nil
	}
	return &domain.Note{
		ID:        m.ID,
		VaultID:   m.VaultID,
		Timestamp: convert.StrTo(m.Timestamp).MustFloat64(),
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
	}
}

func (r *noteRepository) toModel(note *domain.Note) *model.Note {
	if note == nil {
		return nil
	}
	return &model.Note{
		ID:        note.ID,
		VaultID:   note.VaultID,
		Timestamp: strconv.FormatFloat(note.Timestamp, 'f', -1, 64),
		Text:      note.Text,
		CreatedAt: note.CreatedAt,
	}
}

// ListByVault 获取保险库下的全部笔记, 按创建时间升序
func (r *noteRepository) ListByVault(ctx context.Context, vaultID string) ([]*domain.Note, error) {
	var ms []*model.Note
	err := r.dao.Db.WithContext(ctx).
		Where("vault_id = ?", vaultID).
		Order("created_at ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	notes := make([]*domain.Note, 0, len(ms))
	for _, m := range ms {
		notes = append(notes, r.toDomain(m))
	}
	return notes, nil
}

// GetByID 根据ID获取笔记
func (r *noteRepository) GetByID(ctx context.Context, id string) (*domain.Note, error) {
	var m model.Note
	err := r.dao.Db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// Create 创建笔记
func (r *noteRepository) Create(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	m := r.toModel(note)
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = timex.Now()
	}
	if err := r.dao.Db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(m), nil
}

// UpdateText 更新笔记正文
func (r *noteRepository) UpdateText(ctx context.Context, id, text string) error {
	result := r.dao.Db.WithContext(ctx).Model(&model.Note{}).
		Where("id = ?", id).
		Update("text", text)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete 物理删除笔记
func (r *noteRepository) Delete(ctx context.Context, id string) error {
	return r.dao.Db.WithContext(ctx).Where("id = ?", id).Delete(&model.Note{}).Error
}

// DeleteByVault 删除保险库下的全部笔记
func (r *noteRepository) DeleteByVault(ctx context.Context, vaultID string) error {
	return r.dao.Db.WithContext(ctx).Where("vault_id = ?", vaultID).Delete(&model.Note{}).Error
}

// DeleteOrphans 删除所属保险库已不存在的笔记
func (r *noteRepository) DeleteOrphans(ctx context.Context) (int64, error) {
	result := r.dao.Db.WithContext(ctx).
		Where("vault_id NOT IN (?)", r.dao.Db.Model(&model.Vault{}).Select("id")).
		Delete(&model.Note{})
	return result.RowsAffected, result.Error
}
