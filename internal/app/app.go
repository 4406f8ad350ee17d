// Package app 提供应用容器，封装所有依赖和服务
package app

import (
	"context"
	"fmt"

	"github.com/sillo/learning-vault-service/global"
	"github.com/sillo/learning-vault-service/internal/dao"
	"github.com/sillo/learning-vault-service/internal/domain"
	"github.com/sillo/learning-vault-service/internal/model"
	"github.com/sillo/learning-vault-service/internal/service"
	"github.com/sillo/learning-vault-service/pkg/provider"
	"github.com/sillo/learning-vault-service/pkg/provider/gemini"
	"github.com/sillo/learning-vault-service/pkg/provider/noembed"
	"github.com/sillo/learning-vault-service/pkg/provider/youtube"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App 应用容器，封装所有依赖和服务
type App struct {
	logger *zap.Logger
	DB     *gorm.DB
	Dao    *dao.Dao

	// Repository 层
	VaultRepo   domain.VaultRepository
	NoteRepo    domain.NoteRepository
	AccountRepo domain.AccountRepository

	// 外部协作方
	Metadata  provider.MetadataFetcher
	Searcher  provider.MediaSearcher
	Assistant provider.Assistant

	// Service 层
	VaultService     service.VaultService
	NoteService      service.NoteService
	MediaService     service.MediaService
	AssistantService service.AssistantService
	AccountService   service.AccountService
}

// NewApp 创建应用容器实例
// 初始化所有依赖并进行依赖注入
// logger: zap 日志器（必须）
// db: 数据库连接（必须）
func NewApp(logger *zap.Logger, db *gorm.DB) (*App, error) {
	if global.Config == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if db == nil {
		return nil, fmt.Errorf("database is required")
	}

	a := &App{
		logger: logger,
		DB:     db,
	}

	if err := model.AutoMigrateAll(db); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	a.Dao = dao.New(db)
	a.VaultRepo = dao.NewVaultRepository(a.Dao)
	a.NoteRepo = dao.NewNoteRepository(a.Dao)
	a.AccountRepo = dao.NewAccountRepository(a.Dao)

	// 外部协作方在启动时构造一次, 注入到服务层
	p := global.Config.Providers
	a.Metadata = noembed.New(p.Noembed.BaseURL, p.Noembed.Timeout)
	a.Searcher = youtube.New(p.YouTube.BaseURL, p.YouTube.APIKey, p.YouTube.Timeout)
	a.Assistant = gemini.New(p.Assistant.BaseURL, p.Assistant.APIKey, p.Assistant.Model, p.Assistant.Timeout)

	a.VaultService = service.NewVaultService(a.VaultRepo, a.Metadata)
	a.NoteService = service.NewNoteService(a.NoteRepo, a.VaultRepo)
	a.MediaService = service.NewMediaService(a.Searcher)
	a.AssistantService = service.NewAssistantService(a.Assistant)
	a.AccountService = service.NewAccountService(a.AccountRepo)

	return a, nil
}

// Bootstrap 初始化默认账号
// 无鉴权模式下所有保险库都挂在这个固定账号下
func (a *App) Bootstrap(ctx context.Context) error {
	c := global.Config.App
	account, err := a.AccountService.EnsureAccount(ctx, c.DefaultOwnerID, c.DefaultUsername, randomPassword())
	if err != nil {
		return fmt.Errorf("ensure default account: %w", err)
	}
	a.logger.Info("default account ready",
		zap.String("id", account.ID),
		zap.String("username", account.Username))
	return nil
}

// Logger 获取日志器
func (a *App) Logger() *zap.Logger {
	return a.logger
}
