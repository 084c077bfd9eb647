package controller

import (
	"edms_training_backend/internal/service"
	"edms_training_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DataController struct {
	UserService     *service.UserService
	TrainingService *service.TrainingService
	AttemptService  *service.AttemptService
}

func NewDataController(
	userService *service.UserService,
	trainingService *service.TrainingService,
	attemptService *service.AttemptService,
) *DataController {
	return &DataController{
		UserService:     userService,
		TrainingService: trainingService,
		AttemptService:  attemptService,
	}
}

// GetData godoc
// @Summary 启动引导数据
// @Description 一次性返回全部用户（不含密码）、训练图集和历史训练记录
// @Tags 数据
// @Produce  json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /api/data [get]
func (c *DataController) GetData(ctx *gin.Context) {
	users, err := c.UserService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	trainingData, err := c.TrainingService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	attempts, err := c.AttemptService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"users":        users,
		"trainingData": trainingData,
		"allAttempts":  attempts,
	})
}
