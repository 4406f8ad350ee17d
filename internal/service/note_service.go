package service

import (
	"context"
	"errors"

	"github.com/sillo/learning-vault-service/internal/domain"
	"github.com/sillo/learning-vault-service/internal/dto"
	"github.com/sillo/learning-vault-service/pkg/code"

	"gorm.io/gorm"
)

// NoteService 定义笔记业务服务接口
type NoteService interface {
	// List 获取保险库下的全部笔记
	List(ctx context.Context, vaultID string) ([]*dto.NoteDTO, error)

	// Add 在保险库下创建笔记, 保险库必须存在
	Add(ctx context.Context, vaultID string, req *dto.NoteCreateRequest) (*dto.NoteDTO, error)

	// UpdateText 更新笔记正文
	UpdateText(ctx context.Context, vaultID, noteID, text string) (*dto.NoteDTO, error)

	// Delete 删除笔记, 删除不存在的ID不报错
	Delete(ctx context.Context, vaultID, noteID string) error
}

// noteService 实现 NoteService 接口
type noteService struct {
	repo      domain.NoteRepository
	vaultRepo domain.VaultRepository
}

// NewNoteService 创建 NoteService 实例
func NewNoteService(repo domain.NoteRepository, vaultRepo domain.VaultRepository) NoteService {
	return &noteService{repo: repo, vaultRepo: vaultRepo}
}

// List 获取保险库下的全部笔记
func (s *noteService) List(ctx context.Context, vaultID string) ([]*dto.NoteDTO, error) {
	notes, err := s.repo.ListByVault(ctx, vaultID)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return dto.NotesToDTO(notes), nil
}

// Add 在保险库下创建笔记
// timestamp 不做范围校验, 由客户端保证
func (s *noteService) Add(ctx context.Context, vaultID string, req *dto.NoteCreateRequest) (*dto.NoteDTO, error) {
	if _, err := s.vaultRepo.GetByID(ctx, vaultID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorVaultNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	note := &domain.Note{
		VaultID:   vaultID,
		Timestamp: req.Timestamp,
		Text:      req.Text,
	}
	created, err := s.repo.Create(ctx, note)
	if err != nil {
		return nil, code.ErrorNoteCreateFail.WithDetails(err.Error())
	}
	return dto.NoteToDTO(created), nil
}

// UpdateText 更新笔记正文
// 校验笔记属于指定的保险库
func (s *noteService) UpdateText(ctx context.Context, vaultID, noteID, text string) (*dto.NoteDTO, error) {
	note, err := s.repo.GetByID(ctx, noteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorNoteNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	if note.VaultID != vaultID {
		return nil, code.ErrorNoteNotFound
	}

	if err := s.repo.UpdateText(ctx, noteID, text); err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	note.Text = text
	return dto.NoteToDTO(note), nil
}

// Delete 删除笔记
// 笔记不存在或不属于指定保险库时静默成功
func (s *noteService) Delete(ctx context.Context, vaultID, noteID string) error {
	note, err := s.repo.GetByID(ctx, noteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return code.ErrorDBQuery.WithDetails(err.Error())
	}
	if note.VaultID != vaultID {
		return nil
	}

	if err := s.repo.Delete(ctx, noteID); err != nil {
		return code.ErrorDBQuery.WithDetails(err.Error())
	}
	return nil
}
