package service

import (
	"testing"

	"aichat/config"

	"github.com/stretchr/testify/assert"
)

func newTestEmailService() *EmailService {
	return NewEmailService(&config.EmailConfig{})
}

func TestSendPasswordResetEmailDisabled(t *testing.T) {
	s := newTestEmailService()
	err := s.SendPasswordResetEmail("test@example.com", "张三", "123456")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "邮件服务未启用")
}

func TestGenerateResetEmailBody(t *testing.T) {
	s := newTestEmailService()
	body := s.generateResetEmailBody("张三", "888999")
	assert.Contains(t, body, "张三")
	assert.Contains(t, body, "888999")
	assert.Contains(t, body, "密码重置")
	assert.Contains(t, body, "10 分钟")
}
