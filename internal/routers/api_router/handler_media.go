package api_router

import (
	"github.com/sillo/learning-vault-service/internal/app"
	"github.com/sillo/learning-vault-service/internal/dto"
	pkgapp "github.com/sillo/learning-vault-service/pkg/app"
	"github.com/sillo/learning-vault-service/pkg/code"
	apperrors "github.com/sillo/learning-vault-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MediaHandler 媒体元数据与搜索 API 路由处理器
type MediaHandler struct {
	*Handler
}

// NewMediaHandler 创建 MediaHandler 实例
func NewMediaHandler(a *app.App) *MediaHandler {
	return &MediaHandler{
		Handler: NewHandler(a),
	}
}

// Metadata 获取链接元数据
// @Summary 获取链接元数据
// @Description 解析链接的标题和缩略图, 提供方失败时返回默认值
// @Tags 媒体
// @Accept json
// @Produce json
// @Param params body dto.MetadataRequest true "链接参数"
// @Success 200 {object} dto.MetadataDTO "成功"
// @Router /api/metadata [post]
func (h *MediaHandler) Metadata(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.MetadataRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("MediaHandler.Metadata.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	meta := h.App.VaultService.Metadata(c.Request.Context(), params.URL)
	response.ToResponse(code.Success.WithData(meta))
}

// Search 搜索视频或播放列表
// @Summary 搜索视频或播放列表
// @Description 提供方未配置时返回固定的配置提示条目
// @Tags 媒体
// @Produce json
// @Param q query string true "搜索关键词"
// @Param type query string false "video 或 playlist"
// @Success 200 {array} dto.MediaItemDTO "成功"
// @Router /api/search [get]
func (h *MediaHandler) Search(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.SearchRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("MediaHandler.Search.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	ctx := c.Request.Context()
	items, err := h.App.MediaService.Search(ctx, params.Query, params.Type)
	if err != nil {
		h.logError(ctx, "MediaHandler.Search", err)
		apperrors.ErrorResponse(c, err)
		return
	}
	response.ToResponse(code.Success.WithData(items))
}

// PlaylistItems 获取播放列表条目
// @Summary 获取播放列表条目
// @Description 私有视频被过滤, 提供方未配置或失败时返回空列表
// @Tags 媒体
// @Produce json
// @Success 200 {array} dto.MediaItemDTO "成功"
// @Router /api/playlists/{id}/items [get]
func (h *MediaHandler) PlaylistItems(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	items := h.App.MediaService.PlaylistItems(c.Request.Context(), c.Param("id"))
	response.ToResponse(code.Success.WithData(items))
}
