package controller

import (
	"edms_training_backend/internal/model"
	"edms_training_backend/internal/service"
	"edms_training_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type BackupController struct {
	BackupService *service.BackupService
}

func NewBackupController(backupService *service.BackupService) *BackupController {
	return &BackupController{BackupService: backupService}
}

// Export godoc
// @Summary 导出完整快照
// @Description 返回含密码的用户、训练图集和全部训练记录，用于备份下载
// @Tags 备份
// @Produce  json
// @Success 200 {object} model.AppBackup
// @Failure 500 {object} map[string]string
// @Router /api/export [get]
func (c *BackupController) Export(ctx *gin.Context) {
	backup, err := c.BackupService.Export()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, backup)
}

// Import godoc
// @Summary 导入完整快照
// @Description 只校验三个顶层字段存在且为列表；清空全部数据后按备份 id 原样重建
// @Tags 备份
// @Accept  json
// @Produce  json
// @Param   body body model.AppBackup true "完整快照"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/import [post]
func (c *BackupController) Import(ctx *gin.Context) {
	var backup model.AppBackup
	if err := ctx.ShouldBindJSON(&backup); err != nil {
		util.BadRequest(ctx, util.ErrInvalidBackup.Error())
		return
	}

	// 顶层三个字段必须都在且为列表；逐条内容不做校验
	if backup.Users == nil || backup.TrainingData == nil || backup.Attempts == nil {
		util.BadRequest(ctx, util.ErrInvalidBackup.Error())
		return
	}

	if err := c.BackupService.Import(&backup); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Message(ctx, "Data imported successfully.")
}
