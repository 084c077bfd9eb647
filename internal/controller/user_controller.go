package controller

import (
	"edms_training_backend/internal/model"
	"edms_training_backend/internal/service"
	"edms_training_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// SaveUsers godoc
// @Summary 批量保存用户
// @Description 以载荷为准对齐用户表（新建/更新/删除），admin 不可删除；整体在一个事务内
// @Tags 用户
// @Accept  json
// @Produce  json
// @Param   body body []model.User true "期望的完整用户列表"
// @Success 200 {array} model.User
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/users [post]
func (c *UserController) SaveUsers(ctx *gin.Context) {
	var payload []model.User
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	users, err := c.UserService.BulkReplace(payload)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, users)
}
