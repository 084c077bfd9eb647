package controller

import (
	"edms_training_backend/internal/model"
	"edms_training_backend/internal/service"
	"edms_training_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AttemptController struct {
	AttemptService *service.AttemptService
}

func NewAttemptController(attemptService *service.AttemptService) *AttemptController {
	return &AttemptController{AttemptService: attemptService}
}

// SaveAttempt godoc
// @Summary 保存一次训练记录
// @Description 汇总字段由客户端计算，服务端原样落库并返回带 id 的记录
// @Tags 训练
// @Accept  json
// @Produce  json
// @Param   body body model.TrainingAttempt true "训练记录（不含 id）"
// @Success 201 {object} model.TrainingAttempt
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/attempts [post]
func (c *AttemptController) SaveAttempt(ctx *gin.Context) {
	var attempt model.TrainingAttempt
	if err := ctx.ShouldBindJSON(&attempt); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.AttemptService.Record(&attempt); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, attempt)
}
