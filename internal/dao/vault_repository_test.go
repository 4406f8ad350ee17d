package dao

import (
	"context"
	"errors"
	"testing"

	"github.com/sillo/learning-vault-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestVaultCreateAndList(t *testing.T) {
	d := newTestDao(t)
	repo := NewVaultRepository(d)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Vault{
		OwnerID:   "owner-1",
		Kind:      "video",
		Title:     "Go Concurrency Patterns",
		SourceURL: "https://www.youtube.com/watch?v=f6kdp27TYZs",
	})
	assert.Nil(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.AddedAt.IsZero())
	// 新建即记录一次活动
	assert.False(t, created.LastActiveAt.IsZero())

	// addedAt 在后续读取中保持不变
	got, err := repo.GetByID(ctx, created.ID)
	assert.Nil(t, err)
	assert.Equal(t, created.AddedAt.Unix(), got.AddedAt.Unix())
	assert.Equal(t, created.SourceURL, got.SourceURL)

	list, err := repo.List(ctx, "owner-1")
	assert.Nil(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	// 其他账号看不到
	other, err := repo.List(ctx, "owner-2")
	assert.Nil(t, err)
	assert.Len(t, other, 0)
}

func TestVaultTouch(t *testing.T) {
	d := newTestDao(t)
	repo := NewVaultRepository(d)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Vault{
		OwnerID:   "owner-1",
		Kind:      "video",
		Title:     "t",
		SourceURL: "https://youtu.be/dQw4w9WgXcQ",
	})
	assert.Nil(t, err)

	// 不带进度时只刷新活动时间
	err = repo.Touch(ctx, created.ID, nil)
	assert.Nil(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	assert.Nil(t, err)
	assert.False(t, got.LastActiveAt.IsZero())
	assert.Equal(t, float64(0), got.Progress)

	// 带进度时一并更新
	progress := 0.75
	err = repo.Touch(ctx, created.ID, &progress)
	assert.Nil(t, err)

	got, err = repo.GetByID(ctx, created.ID)
	assert.Nil(t, err)
	assert.Equal(t, 0.75, got.Progress)

	err = repo.Touch(ctx, "missing-id", nil)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestVaultDeleteWithNotes(t *testing.T) {
	d := newTestDao(t)
	vaults := NewVaultRepository(d)
	notes := NewNoteRepository(d)
	ctx := context.Background()

	v, err := vaults.Create(ctx, &domain.Vault{
		OwnerID:   "owner-1",
		Kind:      "video",
		Title:     "t",
		SourceURL: "https://youtu.be/dQw4w9WgXcQ",
	})
	assert.Nil(t, err)

	_, err = notes.Create(ctx, &domain.Note{VaultID: v.ID, Timestamp: 12, Text: "n1"})
	assert.Nil(t, err)
	_, err = notes.Create(ctx, &domain.Note{VaultID: v.ID, Timestamp: 99, Text: "n2"})
	assert.Nil(t, err)

	err = vaults.DeleteWithNotes(ctx, v.ID)
	assert.Nil(t, err)

	_, err = vaults.GetByID(ctx, v.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	left, err := notes.ListByVault(ctx, v.ID)
	assert.Nil(t, err)
	assert.Len(t, left, 0)

	// 删除不存在的ID不报错
	err = vaults.DeleteWithNotes(ctx, "missing-id")
	assert.Nil(t, err)
}

func TestVaultCountByOwner(t *testing.T) {
	d := newTestDao(t)
	repo := NewVaultRepository(d)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := repo.Create(ctx, &domain.Vault{
			OwnerID:   "owner-1",
			Kind:      "video",
			Title:     "t",
			SourceURL: "https://youtu.be/dQw4w9WgXcQ",
		})
		assert.Nil(t, err)
	}

	count, err := repo.CountByOwner(ctx, "owner-1")
	assert.Nil(t, err)
	assert.Equal(t, int64(3), count)
}
