package service

import (
	"context"
	"errors"
	"testing"

	"github.com/sillo/learning-vault-service/internal/domain"
	"github.com/sillo/learning-vault-service/internal/dto"
	"github.com/sillo/learning-vault-service/pkg/code"
	"github.com/sillo/learning-vault-service/pkg/timex"

	"gorm.io/gorm"
)

type mockNoteRepo struct {
	domain.NoteRepository
	notes      map[string]*domain.Note
	nextID     int
	deletedIDs []string
}

func newMockNoteRepo() *mockNoteRepo {
	return &mockNoteRepo{notes: map[string]*domain.Note{}, nextID: 1}
}

func (m *mockNoteRepo) ListByVault(ctx context.Context, vaultID string) ([]*domain.Note, error) {
	var list []*domain.Note
	for _, n := range m.notes {
		if n.VaultID == vaultID {
			list = append(list, n)
		}
	}
	return list, nil
}

func (m *mockNoteRepo) GetByID(ctx context.Context, id string) (*domain.Note, error) {
	if n, ok := m.notes[id]; ok {
		copied := *n
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockNoteRepo) Create(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	n := *note
	n.ID = "note-1"
	n.CreatedAt = timex.Now()
	m.notes[n.ID] = &n
	return &n, nil
}

func (m *mockNoteRepo) UpdateText(ctx context.Context, id, text string) error {
	if n, ok := m.notes[id]; ok {
		n.Text = text
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (m *mockNoteRepo) Delete(ctx context.Context, id string) error {
	m.deletedIDs = append(m.deletedIDs, id)
	delete(m.notes, id)
	return nil
}

func TestNoteServiceAdd(t *testing.T) {
	ctx := context.Background()
	vaultRepo := newMockVaultRepo()
	vaultRepo.vaults["vault-1"] = &domain.Vault{ID: "vault-1"}
	svc := &noteService{repo: newMockNoteRepo(), vaultRepo: vaultRepo}

	got, err := svc.Add(ctx, "vault-1", &dto.NoteCreateRequest{Text: "hello", Timestamp: 125})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if got.Text != "hello" {
		t.Errorf("text: got %q, want hello", got.Text)
	}
	if got.Timestamp != 125 {
		t.Errorf("timestamp: got %v, want 125", got.Timestamp)
	}
	if got.CreatedAt == "" {
		t.Error("createdAt should be set")
	}

	// 保险库不存在时拒绝创建
	_, err = svc.Add(ctx, "missing-vault", &dto.NoteCreateRequest{Text: "x", Timestamp: 0})
	if !errors.Is(err, code.ErrorVaultNotFound) {
		t.Errorf("expected ErrorVaultNotFound, got %v", err)
	}
}

func TestNoteServiceUpdateText(t *testing.T) {
	ctx := context.Background()
	repo := newMockNoteRepo()
	repo.notes["note-1"] = &domain.Note{ID: "note-1", VaultID: "vault-1", Text: "before"}
	svc := &noteService{repo: repo, vaultRepo: newMockVaultRepo()}

	got, err := svc.UpdateText(ctx, "vault-1", "note-1", "after")
	if err != nil {
		t.Fatalf("UpdateText failed: %v", err)
	}
	if got.Text != "after" {
		t.Errorf("text: got %q, want after", got.Text)
	}

	// 笔记属于其他保险库时视为不存在
	_, err = svc.UpdateText(ctx, "other-vault", "note-1", "x")
	if !errors.Is(err, code.ErrorNoteNotFound) {
		t.Errorf("expected ErrorNoteNotFound, got %v", err)
	}

	_, err = svc.UpdateText(ctx, "vault-1", "missing", "x")
	if !errors.Is(err, code.ErrorNoteNotFound) {
		t.Errorf("expected ErrorNoteNotFound, got %v", err)
	}
}

func TestNoteServiceDelete(t *testing.T) {
	ctx := context.Background()
	repo := newMockNoteRepo()
	repo.notes["note-1"] = &domain.Note{ID: "note-1", VaultID: "vault-1"}
	svc := &noteService{repo: repo, vaultRepo: newMockVaultRepo()}

	if err := svc.Delete(ctx, "vault-1", "note-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if len(repo.deletedIDs) != 1 {
		t.Fatalf("expected one deletion, got %v", repo.deletedIDs)
	}

	// 不存在的笔记静默成功
	if err := svc.Delete(ctx, "vault-1", "missing"); err != nil {
		t.Errorf("Delete of missing note should succeed: %v", err)
	}

	// 属于其他保险库的笔记不删除
	repo.notes["note-2"] = &domain.Note{ID: "note-2", VaultID: "other-vault"}
	if err := svc.Delete(ctx, "vault-1", "note-2"); err != nil {
		t.Errorf("Delete of mismatched note should succeed: %v", err)
	}
	if _, ok := repo.notes["note-2"]; !ok {
		t.Error("note in another vault must not be deleted")
	}
}
