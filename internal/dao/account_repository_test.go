package dao

import (
	"context"
	"errors"
	"testing"

	"github.com/sillo/learning-vault-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestAccountCreateAndGet(t *testing.T) {
	d := newTestDao(t)
	repo := NewAccountRepository(d)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Account{Username: "learner", Password: "hashed"})
	assert.Nil(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	byID, err := repo.GetByID(ctx, created.ID)
	assert.Nil(t, err)
	assert.Equal(t, "learner", byID.Username)

	byName, err := repo.GetByUsername(ctx, "learner")
	assert.Nil(t, err)
	assert.Equal(t, created.ID, byName.ID)

	_, err = repo.GetByUsername(ctx, "nobody")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestAccountUsernameUnique(t *testing.T) {
	d := newTestDao(t)
	repo := NewAccountRepository(d)
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.Account{Username: "learner", Password: "a"})
	assert.Nil(t, err)

	_, err = repo.Create(ctx, &domain.Account{Username: "learner", Password: "b"})
	assert.NotNil(t, err)
}
