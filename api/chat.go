package api

import (
	"strconv"

	"aichat/config"
	"aichat/database"
	"aichat/middleware"
	"aichat/models"
	"aichat/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ChatHandler 聊天处理器
type ChatHandler struct {
	ollama *service.OllamaService
}

// NewChatHandler 创建聊天处理器
func NewChatHandler(cfg *config.Config) *ChatHandler {
	return &ChatHandler{
		ollama: service.NewOllamaService(&cfg.Ollama),
	}
}

// ChatRequest 聊天请求
// chatId 为空时新建会话
type ChatRequest struct {
	Message string `json:"message" binding:"required,min=1" example:"hi"`
	ChatID  *uint  `json:"chatId" example:"1"`
	ModelID uint   `json:"modelId" binding:"required" example:"1"`
}

// ChatResponse 聊天响应
type ChatResponse struct {
	Response string `json:"response"`
	ChatID   uint   `json:"chatId"`
}

// List 获取聊天列表
// @Summary 获取聊天列表
// @Description 获取当前用户的所有聊天会话，含按追加顺序排列的消息
// @Tags 聊天
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.Chat} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/chats [get]
func (h *ChatHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var chats []models.Chat
	if err := database.DB.Where("user_id = ?", userID).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("chat_messages.id ASC")
		}).
		Order("created_at DESC").
		Find(&chats).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, chats)
}

// Get 获取单个聊天
// @Summary 获取单个聊天
// @Description 根据ID获取当前用户的一个聊天会话
// @Tags 聊天
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param chatId path int true "聊天ID"
// @Success 200 {object} Response{data=models.Chat} "获取成功"
// @Failure 404 {object} Response "聊天不存在"
// @Router /api/chat/{chatId} [get]
func (h *ChatHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("chatId"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var chat models.Chat
	if err := database.DB.Where("id = ? AND user_id = ?", uint(id), userID).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("chat_messages.id ASC")
		}).
		First(&chat).Error; err != nil {
		NotFound(c, "聊天不存在")
		return
	}

	Success(c, chat)
}

// Delete 删除聊天
// @Summary 删除聊天
// @Description 删除当前用户的一个聊天会话及其消息
// @Tags 聊天
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param chatId path int true "聊天ID"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "聊天不存在"
// @Router /api/chat/{chatId} [delete]
func (h *ChatHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("chatId"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	// 非本人或不存在，一律视为不存在
	var chat models.Chat
	if err := database.DB.Where("id = ? AND user_id = ?", uint(id), userID).First(&chat).Error; err != nil {
		NotFound(c, "聊天不存在")
		return
	}

	if err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("chat_id = ?", chat.ID).Delete(&models.ChatMessage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&chat).Error
	}); err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}

// Relay 发送消息并转发给推理服务
// @Summary 发送聊天消息
// @Description 将用户消息追加到会话（chatId 为空时新建），同步调用推理服务，再追加 AI 回复并持久化。推理失败时不写入任何数据。
// @Tags 聊天
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChatRequest true "聊天请求"
// @Success 200 {object} Response{data=ChatResponse} "发送成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "AI模型或聊天不存在"
// @Failure 500 {object} Response "获取AI回复失败"
// @Router /api/chat [post]
func (h *ChatHandler) Relay(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	// 解析模型配置，仅限本人创建的模型
	var aiModel models.AIModel
	if err := database.DB.Where("id = ? AND user_id = ?", req.ModelID, userID).First(&aiModel).Error; err != nil {
		NotFound(c, "AI模型不存在")
		return
	}

	// 解析或准备聊天会话，仅限本人的会话
	var chat models.Chat
	isNew := req.ChatID == nil
	if isNew {
		chat = models.Chat{
			UserID: userID,
			Title:  models.DefaultChatTitle,
		}
	} else {
		if err := database.DB.Where("id = ? AND user_id = ?", *req.ChatID, userID).First(&chat).Error; err != nil {
			NotFound(c, "聊天不存在")
			return
		}
	}

	// 同步调用推理服务，失败则不写入任何数据
	reply, err := h.ollama.Chat(aiModel.ModelName, aiModel.SystemPrompt, req.Message)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "获取AI回复失败"))
		return
	}

	// 一个事务内落库：新会话 + 用户消息 + AI回复
	if err := database.DB.Transaction(func(tx *gorm.DB) error {
		if isNew {
			if err := tx.Create(&chat).Error; err != nil {
				return err
			}
		}
		messages := []models.ChatMessage{
			{ChatID: chat.ID, Text: req.Message, IsAI: false},
			{ChatID: chat.ID, Text: reply, IsAI: true},
		}
		return tx.Create(&messages).Error
	}); err != nil {
		InternalError(c, SafeErrorMessage(err, "保存聊天记录失败"))
		return
	}

	Success(c, ChatResponse{
		Response: reply,
		ChatID:   chat.ID,
	})
}
