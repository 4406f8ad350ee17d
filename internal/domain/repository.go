// Package domain 定义领域模型和接口
package domain

import "context"

// VaultRepository 保险库仓储接口
type VaultRepository interface {
	// List 获取某账号的全部保险库, 按添加时间倒序
	List(ctx context.Context, ownerID string) ([]*Vault, error)

	// GetByID 根据ID获取保险库
	GetByID(ctx context.Context, id string) (*Vault, error)

	// Create 创建保险库
	Create(ctx context.Context, vault *Vault) (*Vault, error)

	// Touch 更新保险库的最近活动时间, progress 非空时一并更新学习进度
	Touch(ctx context.Context, id string, progress *float64) error

	// DeleteWithNotes 事务内删除保险库及其全部笔记
	DeleteWithNotes(ctx context.Context, id string) error

	// CountByOwner 获取某账号的保险库数量
	CountByOwner(ctx context.Context, ownerID string) (int64, error)
}

// NoteRepository 笔记仓储接口
type NoteRepository interface {
	// ListByVault 获取保险库下的全部笔记, 按创建时间升序
	ListByVault(ctx context.Context, vaultID string) ([]*Note, error)

	// GetByID 根据ID获取笔记
	GetByID(ctx context.Context, id string) (*Note, error)

	// Create 创建笔记
	Create(ctx context.Context, note *Note) (*Note, error)

	// UpdateText 更新笔记正文
	UpdateText(ctx context.Context, id, text string) error

	// Delete 物理删除笔记
	Delete(ctx context.Context, id string) error

	// DeleteByVault 删除保险库下的全部笔记
	DeleteByVault(ctx context.Context, vaultID string) error

	// DeleteOrphans 删除所属保险库已不存在的笔记
	DeleteOrphans(ctx context.Context) (int64, error)
}

// AccountRepository 账号仓储接口
type AccountRepository interface {
	// GetByID 根据ID获取账号
	GetByID(ctx context.Context, id string) (*Account, error)

	// GetByUsername 根据用户名获取账号
	GetByUsername(ctx context.Context, username string) (*Account, error)

	// Create 创建账号
	Create(ctx context.Context, account *Account) (*Account, error)
}
