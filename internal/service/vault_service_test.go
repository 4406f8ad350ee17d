package service

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/sillo/learning-vault-service/global"
	"github.com/sillo/learning-vault-service/internal/domain"
	"github.com/sillo/learning-vault-service/internal/dto"
	"github.com/sillo/learning-vault-service/pkg/code"
	"github.com/sillo/learning-vault-service/pkg/provider"
	"github.com/sillo/learning-vault-service/pkg/timex"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	global.Logger = zap.NewNop()
	os.Exit(m.Run())
}

type mockVaultRepo struct {
	domain.VaultRepository
	vaults     map[string]*domain.Vault
	createErr  error
	deletedIDs []string
}

func newMockVaultRepo() *mockVaultRepo {
	return &mockVaultRepo{vaults: map[string]*domain.Vault{}}
}

func (m *mockVaultRepo) Create(ctx context.Context, vault *domain.Vault) (*domain.Vault, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	v := *vault
	v.ID = "vault-1"
	v.AddedAt = timex.Now()
	v.LastActiveAt = timex.Now()
	m.vaults[v.ID] = &v
	return &v, nil
}

func (m *mockVaultRepo) GetByID(ctx context.Context, id string) (*domain.Vault, error) {
	if v, ok := m.vaults[id]; ok {
		return v, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockVaultRepo) Touch(ctx context.Context, id string, progress *float64) error {
	if _, ok := m.vaults[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.vaults[id].LastActiveAt = timex.Now()
	if progress != nil {
		m.vaults[id].Progress = *progress
	}
	return nil
}

func (m *mockVaultRepo) DeleteWithNotes(ctx context.Context, id string) error {
	m.deletedIDs = append(m.deletedIDs, id)
	delete(m.vaults, id)
	return nil
}

type mockMetadata struct {
	meta *provider.Metadata
	err  error
}

func (m *mockMetadata) Fetch(ctx context.Context, url string) (*provider.Metadata, error) {
	return m.meta, m.err
}

func newVaultService(repo domain.VaultRepository, metadata provider.MetadataFetcher) *vaultService {
	return &vaultService{repo: repo, metadata: metadata, sf: &singleflight.Group{}}
}

func TestVaultServiceCreate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		req           *dto.VaultCreateRequest
		meta          *provider.Metadata
		metaErr       error
		wantTitle     string
		wantKind      string
		wantThumbnail string
	}{
		{
			name:          "metadata enriched video",
			req:           &dto.VaultCreateRequest{SourceURL: "https://www.youtube.com/watch?v=f6kdp27TYZs"},
			meta:          &provider.Metadata{Title: "Go Concurrency Patterns", Thumbnail: "https://i.ytimg.com/vi/f6kdp27TYZs/hq.jpg"},
			wantTitle:     "Go Concurrency Patterns",
			wantKind:      "video",
			wantThumbnail: "https://i.ytimg.com/vi/f6kdp27TYZs/hq.jpg",
		},
		{
			name:          "metadata failure falls back to defaults",
			req:           &dto.VaultCreateRequest{SourceURL: "https://www.youtube.com/watch?v=f6kdp27TYZs"},
			metaErr:       errors.New("connection refused"),
			wantTitle:     "New Learning Vault",
			wantKind:      "video",
			wantThumbnail: "https://img.youtube.com/vi/f6kdp27TYZs/maxresdefault.jpg",
		},
		{
			name:          "unparseable link uses placeholder thumbnail",
			req:           &dto.VaultCreateRequest{SourceURL: "https://example.com/talk"},
			metaErr:       errors.New("connection refused"),
			wantTitle:     "New Learning Vault",
			wantKind:      "video",
			wantThumbnail: PlaceholderThumbnail,
		},
		{
			name:          "playlist link infers playlist kind",
			req:           &dto.VaultCreateRequest{SourceURL: "https://www.youtube.com/playlist?list=PL59FEE129ADFF2B12"},
			meta:          &provider.Metadata{Title: "Course", Thumbnail: "https://i.ytimg.com/pl.jpg"},
			wantTitle:     "Course",
			wantKind:      "playlist",
			wantThumbnail: "https://i.ytimg.com/pl.jpg",
		},
		{
			name:          "client supplied fields win",
			req:           &dto.VaultCreateRequest{SourceURL: "https://www.youtube.com/watch?v=f6kdp27TYZs", Title: "My Title", ThumbnailURL: "https://cdn.example.com/t.jpg"},
			wantTitle:     "My Title",
			wantKind:      "video",
			wantThumbnail: "https://cdn.example.com/t.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockVaultRepo()
			svc := newVaultService(repo, &mockMetadata{meta: tt.meta, err: tt.metaErr})

			got, err := svc.Create(ctx, "user-123", tt.req)
			if err != nil {
				t.Fatalf("Create failed: %v", err)
			}
			if got.Title != tt.wantTitle {
				t.Errorf("title: got %q, want %q", got.Title, tt.wantTitle)
			}
			if got.Kind != tt.wantKind {
				t.Errorf("kind: got %q, want %q", got.Kind, tt.wantKind)
			}
			if got.ThumbnailURL != tt.wantThumbnail {
				t.Errorf("thumbnail: got %q, want %q", got.ThumbnailURL, tt.wantThumbnail)
			}
			if got.AddedAt == "" {
				t.Error("addedAt should be set on create")
			}
			if got.OwnerID != "user-123" {
				t.Errorf("ownerID: got %q, want user-123", got.OwnerID)
			}
		})
	}
}

func TestVaultServiceCreatePersistenceFailure(t *testing.T) {
	repo := newMockVaultRepo()
	repo.createErr = errors.New("disk full")
	svc := newVaultService(repo, &mockMetadata{meta: &provider.Metadata{Title: "t"}})

	_, err := svc.Create(context.Background(), "user-123", &dto.VaultCreateRequest{SourceURL: "https://youtu.be/dQw4w9WgXcQ"})
	var appErr *code.Code
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *code.Code error, got %v", err)
	}
	if appErr.Code() != code.ErrorVaultCreateFail.Code() {
		t.Errorf("code: got %d, want %d", appErr.Code(), code.ErrorVaultCreateFail.Code())
	}
}

func TestVaultServiceDelete(t *testing.T) {
	repo := newMockVaultRepo()
	repo.vaults["vault-1"] = &domain.Vault{ID: "vault-1", OwnerID: "user-123"}
	svc := newVaultService(repo, &mockMetadata{})

	if err := svc.Delete(context.Background(), "vault-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok := repo.vaults["vault-1"]; ok {
		t.Error("vault should be removed")
	}

	// 重复删除不报错
	if err := svc.Delete(context.Background(), "vault-1"); err != nil {
		t.Fatalf("Delete of missing id should succeed: %v", err)
	}
}

func TestVaultServiceTouch(t *testing.T) {
	repo := newMockVaultRepo()
	repo.vaults["vault-1"] = &domain.Vault{ID: "vault-1"}
	svc := newVaultService(repo, &mockMetadata{})

	if err := svc.Touch(context.Background(), "vault-1", nil); err != nil {
		t.Fatalf("Touch failed: %v", err)
	}
	if repo.vaults["vault-1"].LastActiveAt.IsZero() {
		t.Error("lastActiveAt should be set")
	}
	if repo.vaults["vault-1"].Progress != 0 {
		t.Errorf("progress must stay untouched without a value, got %v", repo.vaults["vault-1"].Progress)
	}

	progress := 0.5
	if err := svc.Touch(context.Background(), "vault-1", &progress); err != nil {
		t.Fatalf("Touch failed: %v", err)
	}
	if repo.vaults["vault-1"].Progress != 0.5 {
		t.Errorf("progress: got %v, want 0.5", repo.vaults["vault-1"].Progress)
	}

	err := svc.Touch(context.Background(), "missing", nil)
	if !errors.Is(err, code.ErrorVaultNotFound) {
		t.Errorf("expected ErrorVaultNotFound, got %v", err)
	}
}

func TestVaultServiceMetadataFallback(t *testing.T) {
	svc := newVaultService(newMockVaultRepo(), &mockMetadata{err: errors.New("timeout")})

	meta := svc.Metadata(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	if meta.Title != DefaultVaultTitle {
		t.Errorf("title: got %q, want %q", meta.Title, DefaultVaultTitle)
	}
	if meta.Thumbnail != "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg" {
		t.Errorf("thumbnail: got %q", meta.Thumbnail)
	}
}
