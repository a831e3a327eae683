package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/amanullahykhan/voice-chatbot-project/internal/middleware"
	"github.com/amanullahykhan/voice-chatbot-project/internal/store"
	"github.com/amanullahykhan/voice-chatbot-project/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// Export caps the number of turns written to a file.
const exportLimit = 1000

// ExportHandler downloads a conversation's history as CSV or XLSX.
type ExportHandler struct {
	Messages *store.MessageStore
}

func NewExportHandler(messages *store.MessageStore) *ExportHandler {
	return &ExportHandler{Messages: messages}
}

// ExportCSV streams the conversation as a CSV attachment.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	conversationID := c.DefaultQuery("conversation_id", "default")
	msgs, err := h.Messages.FullHistory(userID, conversationID, exportLimit)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to load history")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"history_%s.csv\"",
		time.Now().Format("20060102")))

	// UTF-8 BOM so spreadsheet apps detect the encoding
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write([]string{"Role", "Content", "Style", "Emotion", "Time"})
	for _, m := range msgs {
		writer.Write([]string{
			m.Role,
			m.Content,
			m.VoiceStyle,
			m.Emotion,
			m.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
}

// ExportXLSX writes the conversation as an Excel workbook.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	conversationID := c.DefaultQuery("conversation_id", "default")
	msgs, err := h.Messages.FullHistory(userID, conversationID, exportLimit)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to load history")
		return
	}

	f := excelize.NewFile()
	sheetName := "History"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to create sheet")
		return
	}
	f.SetActiveSheet(index)

	headers := []string{"Role", "Content", "Style", "Emotion", "Time"}
	for i, h := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, h)
	}

	for idx, m := range msgs {
		row := idx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), m.Role)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), m.Content)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), m.VoiceStyle)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), m.Emotion)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), m.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "B", 60)
	f.SetColWidth(sheetName, "C", "C", 12)
	f.SetColWidth(sheetName, "D", "D", 12)
	f.SetColWidth(sheetName, "E", "E", 20)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"history_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to export")
	}
}
