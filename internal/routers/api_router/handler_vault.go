package api_router

import (
	"github.com/sillo/learning-vault-service/global"
	"github.com/sillo/learning-vault-service/internal/app"
	"github.com/sillo/learning-vault-service/internal/dto"
	pkgapp "github.com/sillo/learning-vault-service/pkg/app"
	"github.com/sillo/learning-vault-service/pkg/code"
	apperrors "github.com/sillo/learning-vault-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VaultHandler 保险库 API 路由处理器
// 使用 App Container 注入依赖，支持统一错误处理
type VaultHandler struct {
	*Handler
}

// NewVaultHandler 创建 VaultHandler 实例
func NewVaultHandler(a *app.App) *VaultHandler {
	return &VaultHandler{
		Handler: NewHandler(a),
	}
}

// ownerID 当前请求归属的账号
// 尚未接入鉴权, 统一使用配置的默认账号
func (h *VaultHandler) ownerID(c *gin.Context) string {
	return global.Config.App.DefaultOwnerID
}

// List 获取保险库列表
// @Summary 获取保险库列表
// @Description 返回当前账号的全部保险库, 按添加时间倒序
// @Tags 保险库
// @Produce json
// @Success 200 {array} dto.VaultDTO "成功"
// @Router /api/vaults [get]
func (h *VaultHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	ctx := c.Request.Context()

	vaults, err := h.App.VaultService.List(ctx, h.ownerID(c))
	if err != nil {
		h.logError(ctx, "VaultHandler.List", err)
		apperrors.ErrorResponse(c, err)
		return
	}
	response.ToResponse(code.Success.WithData(vaults))
}

// Create 创建保险库
// @Summary 创建保险库
// @Description 根据粘贴的链接创建保险库, 元数据补全失败时使用默认标题和占位图
// @Tags 保险库
// @Accept json
// @Produce json
// @Param params body dto.VaultCreateRequest true "保险库参数"
// @Success 201 {object} dto.VaultDTO "成功"
// @Router /api/vaults [post]
func (h *VaultHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.VaultCreateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("VaultHandler.Create.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	ctx := c.Request.Context()
	vault, err := h.App.VaultService.Create(ctx, h.ownerID(c), params)
	if err != nil {
		h.logError(ctx, "VaultHandler.Create", err)
		apperrors.ErrorResponse(c, err)
		return
	}
	response.ToResponse(code.SuccessCreate.WithData(vault))
}

// Delete 删除保险库
// @Summary 删除保险库
// @Description 删除保险库及其全部笔记, 删除不存在的ID同样返回成功
// @Tags 保险库
// @Produce json
// @Success 200 {object} map[string]bool "成功"
// @Router /api/vaults/{id} [delete]
func (h *VaultHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	ctx := c.Request.Context()

	if err := h.App.VaultService.Delete(ctx, c.Param("id")); err != nil {
		h.logError(ctx, "VaultHandler.Delete", err)
		apperrors.ErrorResponse(c, err)
		return
	}
	response.ToResponse(code.SuccessDelete)
}

// Touch 记录学习活动
// @Summary 记录学习活动
// @Description 将保险库的最近活动时间更新为当前时间, 可选同时更新学习进度
// @Tags 保险库
// @Accept json
// @Produce json
// @Param params body dto.VaultActivityRequest false "活动参数"
// @Success 200 {object} map[string]bool "成功"
// @Router /api/vaults/{id}/activity [patch]
func (h *VaultHandler) Touch(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.VaultActivityRequest{}

	// 请求体可以整个省略
	if c.Request.ContentLength > 0 {
		valid, errs := pkgapp.BindAndValid(c, params)
		if !valid {
			h.App.Logger().Error("VaultHandler.Touch.BindAndValid err", zap.Error(errs))
			response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
			return
		}
	}

	ctx := c.Request.Context()
	if err := h.App.VaultService.Touch(ctx, c.Param("id"), params.Progress); err != nil {
		h.logError(ctx, "VaultHandler.Touch", err)
		apperrors.ErrorResponse(c, err)
		return
	}
	response.ToResponse(code.SuccessUpdate)
}
