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

// NoteHandler 笔记 API 路由处理器
type NoteHandler struct {
	*Handler
}

// NewNoteHandler 创建 NoteHandler 实例
func NewNoteHandler(a *app.App) *NoteHandler {
	return &NoteHandler{
		Handler: NewHandler(a),
	}
}

// List 获取笔记列表
// @Summary 获取笔记列表
// @Description 返回保险库下的全部笔记, 按创建时间升序
// @Tags 笔记
// @Produce json
// @Success 200 {array} dto.NoteDTO "成功"
// @Router /api/vaults/{id}/notes [get]
func (h *NoteHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	ctx := c.Request.Context()

	notes, err := h.App.NoteService.List(ctx, c.Param("id"))
	if err != nil {
		h.logError(ctx, "NoteHandler.List", err)
		apperrors.ErrorResponse(c, err)
		return
	}
	response.ToResponse(code.Success.WithData(notes))
}

// Create 创建笔记
// @Summary 创建笔记
// @Description 在保险库下创建带时间戳的笔记
// @Tags 笔记
// @Accept json
// @Produce json
// @Param params body dto.NoteCreateRequest true "笔记参数"
// @Success 201 {object} dto.NoteDTO "成功"
// @Router /api/vaults/{id}/notes [post]
func (h *NoteHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteCreateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("NoteHandler.Create.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	ctx := c.Request.Context()
	note, err := h.App.NoteService.Add(ctx, c.Param("id"), params)
	if err != nil {
		h.logError(ctx, "NoteHandler.Create", err)
		apperrors.ErrorResponse(c, err)
		return
	}
	response.ToResponse(code.SuccessCreate.WithData(note))
}

// Update 更新笔记正文
// @Summary 更新笔记正文
// @Tags 笔记
// @Accept json
// @Produce json
// @Param params body dto.NoteUpdateRequest true "笔记参数"
// @Success 200 {object} dto.NoteDTO "成功"
// @Router /api/vaults/{id}/notes/{noteId} [put]
func (h *NoteHandler) Update(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteUpdateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("NoteHandler.Update.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	ctx := c.Request.Context()
	note, err := h.App.NoteService.UpdateText(ctx, c.Param("id"), c.Param("noteId"), params.Text)
	if err != nil {
		h.logError(ctx, "NoteHandler.Update", err)
		apperrors.ErrorResponse(c, err)
		return
	}
	response.ToResponse(code.SuccessUpdate.WithData(note))
}

// Delete 删除笔记
// @Summary 删除笔记
// @Description 删除不存在的笔记同样返回成功
// @Tags 笔记
// @Produce json
// @Success 200 {object} map[string]bool "成功"
// @Router /api/vaults/{id}/notes/{noteId} [delete]
func (h *NoteHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	ctx := c.Request.Context()

	if err := h.App.NoteService.Delete(ctx, c.Param("id"), c.Param("noteId")); err != nil {
		h.logError(ctx, "NoteHandler.Delete", err)
		apperrors.ErrorResponse(c, err)
		return
	}
	response.ToResponse(code.SuccessDelete)
}
