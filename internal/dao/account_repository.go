package dao

import (
	"context"

	"github.com/sillo/learning-vault-service/internal/domain"
	"github.com/sillo/learning-vault-service/internal/model"
	"github.com/sillo/learning-vault-service/pkg/convert"
	"github.com/sillo/learning-vault-service/pkg/timex"

	"github.com/google/uuid"
)

// accountRepository 实现 domain.AccountRepository 接口
type accountRepository struct {
	dao *Dao
}

// NewAccountRepository 创建 AccountRepository 实例
func NewAccountRepository(dao *Dao) domain.AccountRepository {
	return &accountRepository{dao: dao}
}

// GetByID 根据ID获取账号
func (r *accountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	var m model.Account
	err := r.dao.Db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		return nil, err
	}
	return convert.StructAssign(&m, &domain.Account{}).(*domain.Account), nil
}

// GetByUsername 根据用户名获取账号
func (r *accountRepository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	var m model.Account
	err := r.dao.Db.WithContext(ctx).Where("username = ?", username).First(&m).Error
	if err != nil {
		return nil, err
	}
	return convert.StructAssign(&m, &domain.Account{}).(*domain.Account), nil
}

// Create 创建账号
func (r *accountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	m := convert.StructAssign(account, &model.Account{}).(*model.Account)
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = timex.Now()
	}
	if err := r.dao.Db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return convert.StructAssign(m, &domain.Account{}).(*domain.Account), nil
}
