package api_router

import (
	"github.com/sillo/learning-vault-service/internal/app"
	"github.com/sillo/learning-vault-service/internal/dto"
	pkgapp "github.com/sillo/learning-vault-service/pkg/app"
	"github.com/sillo/learning-vault-service/pkg/code"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AssistantHandler AI 助手 API 路由处理器
// 提供方失败时返回回退内容, 这两个接口从不返回 5xx
type AssistantHandler struct {
	*Handler
}

// NewAssistantHandler 创建 AssistantHandler 实例
func NewAssistantHandler(a *app.App) *AssistantHandler {
	return &AssistantHandler{
		Handler: NewHandler(a),
	}
}

// Summary 生成学习总结
// @Summary 生成学习总结
// @Description 返回三条要点和建议行动, 提供方失败时返回确定性回退内容
// @Tags 助手
// @Accept json
// @Produce json
// @Param params body dto.SummaryRequest true "总结参数"
// @Success 200 {object} dto.SummaryDTO "成功"
// @Router /api/ai/summary [post]
func (h *AssistantHandler) Summary(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.SummaryRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("AssistantHandler.Summary.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	summary := h.App.AssistantService.Summary(c.Request.Context(), params.Title, params.Context)
	response.ToResponse(code.Success.WithData(summary))
}

// Chat 生成助手回复
// @Summary 生成助手回复
// @Description 提供方失败时返回致歉回退文案
// @Tags 助手
// @Accept json
// @Produce json
// @Param params body dto.ChatRequest true "对话参数"
// @Success 200 {object} dto.ChatDTO "成功"
// @Router /api/ai/chat [post]
func (h *AssistantHandler) Chat(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.ChatRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("AssistantHandler.Chat.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	reply := h.App.AssistantService.Chat(c.Request.Context(), params.Message, params.Context)
	response.ToResponse(code.Success.WithData(reply))
}
