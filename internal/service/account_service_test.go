package service

import (
	"context"
	"errors"
	"testing"

	"github.com/sillo/learning-vault-service/internal/domain"
	"github.com/sillo/learning-vault-service/internal/dto"
	"github.com/sillo/learning-vault-service/pkg/code"
	"github.com/sillo/learning-vault-service/pkg/util"

	"gorm.io/gorm"
)

type mockAccountRepo struct {
	domain.AccountRepository
	byID   map[string]*domain.Account
	byName map[string]*domain.Account
}

func newMockAccountRepo() *mockAccountRepo {
	return &mockAccountRepo{
		byID:   map[string]*domain.Account{},
		byName: map[string]*domain.Account{},
	}
}

func (m *mockAccountRepo) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	if a, ok := m.byID[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAccountRepo) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	if a, ok := m.byName[username]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAccountRepo) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	a := *account
	if a.ID == "" {
		a.ID = "acc-1"
	}
	m.byID[a.ID] = &a
	m.byName[a.Username] = &a
	return &a, nil
}

func TestAccountServiceRegister(t *testing.T) {
	repo := newMockAccountRepo()
	svc := NewAccountService(repo)

	got, err := svc.Register(context.Background(), &dto.AccountRegisterRequest{Username: "learner", Password: "secret123"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if got.Username != "learner" {
		t.Errorf("username: got %q", got.Username)
	}

	// 密码以 bcrypt 哈希存储
	stored := repo.byName["learner"]
	if stored.Password == "secret123" {
		t.Error("password must not be stored in plaintext")
	}
	if !util.CheckPasswordHash(stored.Password, "secret123") {
		t.Error("stored hash does not verify against the original password")
	}

	// 用户名冲突
	_, err = svc.Register(context.Background(), &dto.AccountRegisterRequest{Username: "learner", Password: "other123"})
	if !errors.Is(err, code.ErrorAccountExist) {
		t.Errorf("expected ErrorAccountExist, got %v", err)
	}
}

func TestAccountServiceEnsureAccount(t *testing.T) {
	repo := newMockAccountRepo()
	svc := NewAccountService(repo)
	ctx := context.Background()

	first, err := svc.EnsureAccount(ctx, "user-123", "learner", "bootstrap-pw")
	if err != nil {
		t.Fatalf("EnsureAccount failed: %v", err)
	}
	if first.ID != "user-123" {
		t.Errorf("id: got %q, want user-123", first.ID)
	}

	// 已存在时不修改
	repo.byID["user-123"].Password = "frozen"
	again, err := svc.EnsureAccount(ctx, "user-123", "learner", "new-pw")
	if err != nil {
		t.Fatalf("EnsureAccount failed: %v", err)
	}
	if again.ID != "user-123" {
		t.Errorf("id: got %q", again.ID)
	}
	if repo.byID["user-123"].Password != "frozen" {
		t.Error("existing account must not be modified")
	}
}

func TestAccountServiceGet(t *testing.T) {
	repo := newMockAccountRepo()
	repo.byID["user-123"] = &domain.Account{ID: "user-123", Username: "learner"}
	svc := NewAccountService(repo)

	got, err := svc.Get(context.Background(), "user-123")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Username != "learner" {
		t.Errorf("username: got %q", got.Username)
	}

	_, err = svc.Get(context.Background(), "missing")
	if !errors.Is(err, code.ErrorAccountNotFound) {
		t.Errorf("expected ErrorAccountNotFound, got %v", err)
	}
}
