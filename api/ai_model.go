package api

import (
	"strconv"

	"aichat/database"
	"aichat/middleware"
	"aichat/models"

	"github.com/gin-gonic/gin"
)

// AIModelHandler AI模型配置处理器
type AIModelHandler struct{}

// NewAIModelHandler 创建AI模型配置处理器
func NewAIModelHandler() *AIModelHandler {
	return &AIModelHandler{}
}

// CreateAIModelRequest 创建AI模型请求
type CreateAIModelRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=100" example:"default"`
	ModelName    string `json:"modelName" binding:"required,min=1,max=100" example:"llama3"`
	SystemPrompt string `json:"systemPrompt" example:"Be terse."`
}

// UpdateAIModelRequest 更新AI模型请求
type UpdateAIModelRequest struct {
	Name         string `json:"name" binding:"omitempty,min=1,max=100"`
	ModelName    string `json:"modelName" binding:"omitempty,min=1,max=100"`
	SystemPrompt string `json:"systemPrompt"`
}

// Create 创建AI模型配置
// @Summary 创建AI模型
// @Description 创建新的AI模型配置（底层模型标识 + 系统提示词），名称全局唯一
// @Tags AI模型
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateAIModelRequest true "AI模型信息"
// @Success 201 {object} Response{data=models.AIModel} "创建成功"
// @Failure 400 {object} Response "参数错误或模型名称已存在"
// @Failure 500 {object} Response "服务器错误"
// @Router /api/models [post]
func (h *AIModelHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CreateAIModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	// 名称全局唯一（不按用户区分）
	var existing models.AIModel
	if err := database.DB.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		BadRequest(c, "模型名称已存在")
		return
	}

	// 系统提示词默认值
	if req.SystemPrompt == "" {
		req.SystemPrompt = models.DefaultSystemPrompt
	}

	aiModel := models.AIModel{
		Name:         req.Name,
		ModelName:    req.ModelName,
		SystemPrompt: req.SystemPrompt,
		UserID:       userID,
	}

	if err := database.DB.Create(&aiModel).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建失败"))
		return
	}

	Created(c, "创建成功", aiModel)
}

// List 获取AI模型列表
// @Summary 获取AI模型列表
// @Description 获取当前用户创建的所有AI模型配置
// @Tags AI模型
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.AIModel} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/models [get]
func (h *AIModelHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var list []models.AIModel
	if err := database.DB.Where("user_id = ?", userID).Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, list)
}

// Update 更新AI模型配置
// @Summary 更新AI模型
// @Description 更新当前用户的AI模型配置
// @Tags AI模型
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param modelId path int true "AI模型ID"
// @Param request body UpdateAIModelRequest true "更新的模型信息"
// @Success 200 {object} Response{data=models.AIModel} "更新成功"
// @Failure 400 {object} Response "参数错误或模型名称已存在"
// @Failure 404 {object} Response "模型不存在"
// @Router /api/models/{modelId} [put]
func (h *AIModelHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("modelId"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var aiModel models.AIModel
	if err := database.DB.Where("id = ? AND user_id = ?", uint(id), userID).First(&aiModel).Error; err != nil {
		NotFound(c, "模型不存在")
		return
	}

	var req UpdateAIModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	// 如果更新名称，检查是否与其他模型冲突
	if req.Name != "" && req.Name != aiModel.Name {
		var existing models.AIModel
		if err := database.DB.Where("name = ? AND id != ?", req.Name, aiModel.ID).First(&existing).Error; err == nil {
			BadRequest(c, "模型名称已存在")
			return
		}
	}

	// 更新字段
	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.ModelName != "" {
		updates["model_name"] = req.ModelName
	}
	if req.SystemPrompt != "" {
		updates["system_prompt"] = req.SystemPrompt
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&aiModel).Updates(updates).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "更新失败"))
			return
		}
	}

	SuccessWithMessage(c, "更新成功", aiModel)
}

// Delete 删除AI模型配置
// @Summary 删除AI模型
// @Description 删除当前用户的AI模型配置；不存在或非本人创建时静默成功
// @Tags AI模型
// @Produce json
// @Security BearerAuth
// @Param modelId path int true "AI模型ID"
// @Success 200 {object} Response "删除成功"
// @Failure 400 {object} Response "无效的ID"
// @Router /api/models/{modelId} [delete]
func (h *AIModelHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("modelId"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	// 无匹配记录也返回成功
	if err := database.DB.Where("id = ? AND user_id = ?", uint(id), userID).
		Delete(&models.AIModel{}).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}
