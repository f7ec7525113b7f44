package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"aichat/database"
	"aichat/middleware"
	"aichat/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 聊天记录导出处理器
type ExportHandler struct{}

// NewExportHandler 创建导出处理器
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// loadChatForExport 加载本人的聊天及消息
func loadChatForExport(c *gin.Context) (*models.Chat, bool) {
	userID := middleware.GetCurrentUserID(c)

	chatIDStr := c.Query("chat_id")
	if chatIDStr == "" {
		BadRequest(c, "缺少 chat_id")
		return nil, false
	}
	chatID, err := strconv.ParseUint(chatIDStr, 10, 32)
	if err != nil {
		BadRequest(c, "无效的 chat_id")
		return nil, false
	}

	var chat models.Chat
	if err := database.DB.Where("id = ? AND user_id = ?", uint(chatID), userID).First(&chat).Error; err != nil {
		NotFound(c, "聊天不存在")
		return nil, false
	}

	if err := database.DB.Where("chat_id = ?", chat.ID).
		Order("id ASC").
		Find(&chat.Messages).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询消息失败"))
		return nil, false
	}

	return &chat, true
}

func roleLabel(isAI bool) string {
	if isAI {
		return "AI"
	}
	return "用户"
}

// ExportCSV 导出聊天记录为 CSV
// @Summary 导出聊天记录为 CSV
// @Description 导出指定聊天会话的全部消息为 CSV 文件
// @Tags 导出
// @Accept json
// @Produce text/csv
// @Security BearerAuth
// @Param chat_id query int true "聊天ID"
// @Success 200 {file} file "CSV 文件"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "聊天不存在"
// @Router /api/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	chat, ok := loadChatForExport(c)
	if !ok {
		return
	}

	// 生成 CSV
	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 中文显示
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)

	// 写入表头
	headers := []string{"ID", "角色", "内容", "时间"}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	// 写入数据
	for _, msg := range chat.Messages {
		row := []string{
			fmt.Sprintf("%d", msg.ID),
			roleLabel(msg.IsAI),
			msg.Text,
			msg.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, "生成 CSV 失败")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	// 设置响应头
	filename := fmt.Sprintf("chat_%d.csv", chat.ID)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportJSON 导出聊天记录为 JSON
// @Summary 导出聊天记录为 JSON
// @Description 导出指定聊天会话的全部消息为 JSON 格式
// @Tags 导出
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param chat_id query int true "聊天ID"
// @Success 200 {object} Response{data=models.Chat} "导出成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "聊天不存在"
// @Router /api/export/json [get]
func (h *ExportHandler) ExportJSON(c *gin.Context) {
	chat, ok := loadChatForExport(c)
	if !ok {
		return
	}

	Success(c, gin.H{
		"chat":          chat,
		"message_count": len(chat.Messages),
	})
}

// ExportExcel 导出聊天记录为 Excel
// @Summary 导出聊天记录为 Excel
// @Description 导出指定聊天会话的全部消息为 XLSX 文件
// @Tags 导出
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param chat_id query int true "聊天ID"
// @Success 200 {file} file "Excel 文件"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "聊天不存在"
// @Router /api/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	chat, ok := loadChatForExport(c)
	if !ok {
		return
	}

	// 创建 Excel 文件
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "聊天记录"
	f.SetSheetName("Sheet1", sheetName)

	// 设置表头样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	// 数据样式
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center", WrapText: true},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	// 设置列宽
	f.SetColWidth(sheetName, "A", "A", 10)
	f.SetColWidth(sheetName, "B", "B", 10)
	f.SetColWidth(sheetName, "C", "C", 80)
	f.SetColWidth(sheetName, "D", "D", 20)

	// 写入表头
	headers := []string{"ID", "角色", "内容", "时间"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	// 写入数据
	for i, msg := range chat.Messages {
		row := i + 2
		values := []interface{}{
			msg.ID,
			roleLabel(msg.IsAI),
			msg.Text,
			msg.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			f.SetCellValue(sheetName, cell, v)
			f.SetCellStyle(sheetName, cell, cell, dataStyle)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		InternalError(c, "生成 Excel 失败")
		return
	}

	filename := fmt.Sprintf("chat_%d.xlsx", chat.ID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
