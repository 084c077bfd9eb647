package controller

import (
	"edms_training_backend/internal/service"
	"edms_training_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// swagger:model LoginRequest
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary 用户登录
// @Description 明文核对用户名与口令，成功返回用户记录（不含密码），不签发令牌
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "登录凭据"
// @Success 200 {object} model.User
// @Failure 400 {object} map[string]string "字段缺失"
// @Failure 401 {object} map[string]string "凭据错误"
// @Router /api/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, util.ErrMissingCredentials.Error())
		return
	}

	user, err := c.AuthService.Login(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrMissingCredentials):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrInvalidCredentials):
			util.Unauthorized(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, user)
}
