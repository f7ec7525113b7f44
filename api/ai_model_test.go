package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"aichat/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAIModelHandler_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 名称未占用
	mock.ExpectQuery("SELECT .* FROM `ai_models`").
		WithArgs("default").
		WillReturnRows(sqlmock.NewRows([]string{}))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `ai_models`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/models", NewAIModelHandler().Create)

	body := `{"name":"default","modelName":"llama3","systemPrompt":"Be terse."}`
	req := httptest.NewRequest("POST", "/models", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 201, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "default", data["name"])
	assert.Equal(t, "llama3", data["modelName"])
	assert.Equal(t, "Be terse.", data["systemPrompt"])
	assert.Equal(t, float64(1), data["userId"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAIModelHandler_Create_DefaultSystemPrompt(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `ai_models`").
		WithArgs("bare").
		WillReturnRows(sqlmock.NewRows([]string{}))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `ai_models`").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/models", NewAIModelHandler().Create)

	// 未指定 systemPrompt 时使用默认提示词
	body := `{"name":"bare","modelName":"llama3"}`
	req := httptest.NewRequest("POST", "/models", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 201, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, models.DefaultSystemPrompt, data["systemPrompt"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAIModelHandler_Create_DuplicateName(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 全局唯一：其他用户占用的名称同样冲突
	mock.ExpectQuery("SELECT .* FROM `ai_models`").
		WithArgs("default").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "model_name", "system_prompt", "user_id", "created_at", "updated_at", "deleted_at"}).
			AddRow(1, "default", "llama3", "x", 2, time.Now(), time.Now(), nil))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/models", NewAIModelHandler().Create)

	body := `{"name":"default","modelName":"mistral"}`
	req := httptest.NewRequest("POST", "/models", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "模型名称已存在", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAIModelHandler_List(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `ai_models`").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "model_name", "system_prompt", "user_id", "created_at", "updated_at", "deleted_at"}).
			AddRow(1, "default", "llama3", "Be terse.", 1, time.Now(), time.Now(), nil).
			AddRow(2, "coding", "codellama", "You write Go.", 1, time.Now(), time.Now(), nil))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/models", NewAIModelHandler().List)

	req := httptest.NewRequest("GET", "/models", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	list := resp["data"].([]interface{})
	assert.Len(t, list, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAIModelHandler_Delete_NoMatchStillSucceeds(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 所有权不匹配视为不存在，静默成功
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `ai_models`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.DELETE("/models/:modelId", NewAIModelHandler().Delete)

	req := httptest.NewRequest("DELETE", "/models/42", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "删除成功", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAIModelHandler_Delete_InvalidID(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.DELETE("/models/:modelId", NewAIModelHandler().Delete)

	req := httptest.NewRequest("DELETE", "/models/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}
