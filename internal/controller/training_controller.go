package controller

import (
	"edms_training_backend/internal/model"
	"edms_training_backend/internal/service"
	"edms_training_backend/internal/util"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TrainingController struct {
	TrainingService *service.TrainingService
	Storage         *service.StorageService
}

func NewTrainingController(trainingService *service.TrainingService, storage *service.StorageService) *TrainingController {
	return &TrainingController{
		TrainingService: trainingService,
		Storage:         storage,
	}
}

// SaveTrainingData godoc
// @Summary 整体覆盖训练图集
// @Description 以载荷为准全量替换训练图片与条目，图片 id 由调用方指定
// @Tags 训练
// @Accept  json
// @Produce  json
// @Param   body body []model.TrainingImage true "完整训练图集"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/training-data [post]
func (c *TrainingController) SaveTrainingData(ctx *gin.Context) {
	var payload []model.TrainingImage
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.TrainingService.Replace(payload); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Message(ctx, "Training data saved successfully.")
}

// UploadImage godoc
// @Summary 上传扫描件图片
// @Description 考官上传训练用扫描件，返回可填入 imageUrl 的地址
// @Tags 训练
// @Accept  multipart/form-data
// @Produce  json
// @Param   file formData file true "图片文件"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/training-images/upload [post]
func (c *TrainingController) UploadImage(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "image file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	filename := "training/" + uuid.New().String() + filepath.Ext(fileHeader.Filename)
	contentType := fileHeader.Header.Get("Content-Type")

	url, err := c.Storage.Provider.Upload(ctx.Request.Context(), filename, file, fileHeader.Size, contentType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"url": url})
}
