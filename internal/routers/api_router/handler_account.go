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

// AccountHandler 账号 API 路由处理器
type AccountHandler struct {
	*Handler
}

// NewAccountHandler 创建 AccountHandler 实例
func NewAccountHandler(a *app.App) *AccountHandler {
	return &AccountHandler{
		Handler: NewHandler(a),
	}
}

// Register 注册账号
// @Summary 注册账号
// @Description 用户名已存在时返回 409
// @Tags 账号
// @Accept json
// @Produce json
// @Param params body dto.AccountRegisterRequest true "注册参数"
// @Success 201 {object} dto.AccountDTO "成功"
// @Router /api/accounts/register [post]
func (h *AccountHandler) Register(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.AccountRegisterRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("AccountHandler.Register.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	ctx := c.Request.Context()
	account, err := h.App.AccountService.Register(ctx, params)
	if err != nil {
		h.logError(ctx, "AccountHandler.Register", err)
		apperrors.ErrorResponse(c, err)
		return
	}
	response.ToResponse(code.SuccessCreate.WithData(account))
}
