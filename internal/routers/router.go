// Package routers 组装 HTTP 路由
package routers

import (
	"time"

	"github.com/sillo/learning-vault-service/global"
	"github.com/sillo/learning-vault-service/internal/app"
	"github.com/sillo/learning-vault-service/internal/middleware"
	"github.com/sillo/learning-vault-service/internal/routers/api_router"
	"github.com/sillo/learning-vault-service/pkg/limiter"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var methodLimiters = limiter.NewMethodLimiter().AddBuckets(
	limiter.BucketRule{
		Key:          "/api/ai",
		FillInterval: time.Second,
		Capacity:     10,
		Quantum:      10,
	},
	limiter.BucketRule{
		Key:          "/api/search",
		FillInterval: time.Second,
		Capacity:     20,
		Quantum:      20,
	},
)

func NewRouter(appContainer *app.App, uni *ut.UniversalTranslator) *gin.Engine {

	cfg := global.Config

	r := gin.New()

	// prom 监控
	r.GET("/debug/vars", api_router.Expvar)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.Use(middleware.AppInfo())
		api.Use(middleware.Metrics())
		api.Use(middleware.TraceMiddleware())
		api.Use(middleware.RateLimiter(methodLimiters))
		api.Use(middleware.ContextTimeout(cfg.Server.ContextTimeout))
		api.Use(middleware.Cors())
		api.Use(middleware.LangWithTranslator(uni))
		api.Use(middleware.AccessLog())
		api.Use(middleware.RecoveryWithLogger(appContainer.Logger()))

		// 创建 Handlers（注入 App Container）
		vaultHandler := api_router.NewVaultHandler(appContainer)
		noteHandler := api_router.NewNoteHandler(appContainer)
		mediaHandler := api_router.NewMediaHandler(appContainer)
		assistantHandler := api_router.NewAssistantHandler(appContainer)
		accountHandler := api_router.NewAccountHandler(appContainer)
		healthHandler := api_router.NewHealthHandler(appContainer)

		api.POST("/metadata", mediaHandler.Metadata)
		api.GET("/search", mediaHandler.Search)
		api.GET("/playlists/:id/items", mediaHandler.PlaylistItems)

		api.GET("/vaults", vaultHandler.List)
		api.POST("/vaults", vaultHandler.Create)
		api.DELETE("/vaults/:id", vaultHandler.Delete)
		api.PATCH("/vaults/:id/activity", vaultHandler.Touch)

		api.GET("/vaults/:id/notes", noteHandler.List)
		api.POST("/vaults/:id/notes", noteHandler.Create)
		api.PUT("/vaults/:id/notes/:noteId", noteHandler.Update)
		api.DELETE("/vaults/:id/notes/:noteId", noteHandler.Delete)

		api.POST("/ai/summary", assistantHandler.Summary)
		api.POST("/ai/chat", assistantHandler.Chat)

		api.POST("/accounts/register", accountHandler.Register)

		api.GET("/health", healthHandler.Check)
	}

	r.NoRoute(middleware.NoFound())

	return r
}
