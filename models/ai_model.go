package models

import (
	"time"

	"gorm.io/gorm"
)

// DefaultSystemPrompt 未指定系统提示词时的默认值
const DefaultSystemPrompt = "You are a helpful AI assistant."

// AIModel AI模型配置：指向底层推理模型及其系统提示词
type AIModel struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Name         string         `json:"name" gorm:"size:100;not null;uniqueIndex"` // 配置名称，全局唯一
	ModelName    string         `json:"modelName" gorm:"size:100;not null"`        // 底层推理模型标识，如 llama3
	SystemPrompt string         `json:"systemPrompt" gorm:"type:text;not null"`
	UserID       uint           `json:"userId" gorm:"index;not null"` // 创建者
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"-"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (AIModel) TableName() string {
	return "ai_models"
}
