package service

import (
	"context"
	"errors"

	"github.com/sillo/learning-vault-service/internal/domain"
	"github.com/sillo/learning-vault-service/internal/dto"
	"github.com/sillo/learning-vault-service/pkg/code"
	"github.com/sillo/learning-vault-service/pkg/util"

	"gorm.io/gorm"
)

// AccountService 定义账号业务服务接口
type AccountService interface {
	// Register 注册账号, 用户名冲突返回错误
	Register(ctx context.Context, req *dto.AccountRegisterRequest) (*dto.AccountDTO, error)

	// Get 根据ID获取账号
	Get(ctx context.Context, id string) (*dto.AccountDTO, error)

	// EnsureAccount 保证指定ID的账号存在, 用于启动时初始化默认账号
	EnsureAccount(ctx context.Context, id, username, password string) (*dto.AccountDTO, error)
}

// accountService 实现 AccountService 接口
type accountService struct {
	repo domain.AccountRepository
}

// NewAccountService 创建 AccountService 实例
func NewAccountService(repo domain.AccountRepository) AccountService {
	return &accountService{repo: repo}
}

// Register 注册账号
func (s *accountService) Register(ctx context.Context, req *dto.AccountRegisterRequest) (*dto.AccountDTO, error) {
	_, err := s.repo.GetByUsername(ctx, req.Username)
	if err == nil {
		return nil, code.ErrorAccountExist
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	hash, err := util.GeneratePasswordHash(req.Password)
	if err != nil {
		return nil, code.ErrorServerInternal.WithDetails(err.Error())
	}

	account, err := s.repo.Create(ctx, &domain.Account{
		Username: req.Username,
		Password: hash,
	})
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return dto.AccountToDTO(account), nil
}

// Get 根据ID获取账号
func (s *accountService) Get(ctx context.Context, id string) (*dto.AccountDTO, error) {
	account, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorAccountNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return dto.AccountToDTO(account), nil
}

// EnsureAccount 保证指定ID的账号存在
// 已存在时直接返回, 不修改已有账号
func (s *accountService) EnsureAccount(ctx context.Context, id, username, password string) (*dto.AccountDTO, error) {
	account, err := s.repo.GetByID(ctx, id)
	if err == nil {
		return dto.AccountToDTO(account), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := util.GeneratePasswordHash(password)
	if err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, &domain.Account{
		ID:       id,
		Username: username,
		Password: hash,
	})
	if err != nil {
		return nil, err
	}
	return dto.AccountToDTO(created), nil
}
