package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"aichat/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOllamaServiceChat(t *testing.T) {
	var got chatRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		assert.Equal(t, "POST", r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"message": map[string]string{"role": "assistant", "content": "你好！有什么可以帮你？"},
		})
	}))
	defer ts.Close()

	s := NewOllamaService(&config.OllamaConfig{BaseURL: ts.URL, TimeoutSeconds: 5})
	reply, err := s.Chat("llama3", "Be terse.", "hi")
	require.NoError(t, err)
	assert.Equal(t, "你好！有什么可以帮你？", reply)

	// 请求体：system + user 两条消息，非流式
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "Be terse.", got.Messages[0].Content)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Equal(t, "hi", got.Messages[1].Content)
	assert.Equal(t, "llama3", got.Model)
	assert.False(t, got.Stream)
}

func TestOllamaServiceChatUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer ts.Close()

	s := NewOllamaService(&config.OllamaConfig{BaseURL: ts.URL, TimeoutSeconds: 5})
	_, err := s.Chat("llama3", "prompt", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestOllamaServiceChatUnreachable(t *testing.T) {
	// 不存在的端口，连接直接失败
	s := NewOllamaService(&config.OllamaConfig{BaseURL: "http://127.0.0.1:1", TimeoutSeconds: 1})
	_, err := s.Chat("llama3", "prompt", "hi")
	assert.Error(t, err)
}
