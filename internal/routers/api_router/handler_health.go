// Package api_router 提供 HTTP API 路由处理器
package api_router

import (
	"github.com/sillo/learning-vault-service/global"
	"github.com/sillo/learning-vault-service/internal/app"
	pkgapp "github.com/sillo/learning-vault-service/pkg/app"
	"github.com/sillo/learning-vault-service/pkg/code"
	"github.com/sillo/learning-vault-service/pkg/util"

	"github.com/gin-gonic/gin"
)

// HealthHandler 健康检查处理器
type HealthHandler struct {
	*Handler
}

// NewHealthHandler 创建健康检查处理器实例
func NewHealthHandler(a *app.App) *HealthHandler {
	return &HealthHandler{Handler: NewHandler(a)}
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status   string        `json:"status"`   // "healthy" 或 "unhealthy"
	Version  string        `json:"version"`  // 服务版本号
	Database string        `json:"database"` // "connected" 或 "error"
	Vaults   int64         `json:"vaults"`   // 默认账号下的保险库数量
	System   *util.SysInfo `json:"system"`   // 主机运行信息
}

// Check 健康检查接口
// @Summary 健康检查
// @Description 检查服务健康状态，包括数据库连接和保险库数量
// @Tags 系统
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /api/health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	response := HealthResponse{
		Status:   "healthy",
		Version:  app.Version,
		Database: "connected",
		System:   util.GetSysInfo(),
	}

	// 数据库连通性以一次真实查询验证
	count, err := h.App.VaultRepo.CountByOwner(c.Request.Context(), global.Config.App.DefaultOwnerID)
	if err != nil {
		response.Status = "unhealthy"
		response.Database = "error"
		pkgapp.NewResponse(c).ToResponse(code.Failed.WithData(response))
		return
	}
	response.Vaults = count

	pkgapp.NewResponse(c).ToResponse(code.Success.WithData(response))
}
