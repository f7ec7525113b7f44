package models

import (
	"time"

	"gorm.io/gorm"
)

// DefaultChatTitle 新建聊天的默认标题
const DefaultChatTitle = "New Chat"

// Chat 聊天会话，消息按插入顺序只追加
type Chat struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    uint           `json:"userId" gorm:"index;not null"` // 所属用户
	Title     string         `json:"title" gorm:"size:100;not null"`
	Messages  []ChatMessage  `json:"messages" gorm:"foreignKey:ChatID"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (Chat) TableName() string {
	return "chats"
}

// ChatMessage 单条聊天消息，追加后不可变
// 以子表行存储，追加即插入，避免整段消息列表的读-改-写竞争
type ChatMessage struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	ChatID    uint           `json:"-" gorm:"index;not null"`
	Text      string         `json:"text" gorm:"type:text;not null"`
	IsAI      bool           `json:"isAi" gorm:"not null;default:false"` // true=AI回复，false=用户输入
	CreatedAt time.Time      `json:"timestamp"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (ChatMessage) TableName() string {
	return "chat_messages"
}
