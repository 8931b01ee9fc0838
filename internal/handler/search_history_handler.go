package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"SpotMap-App/internal/domain/model"
	"SpotMap-App/internal/domain/repository"
)

// SearchHistoryHandler 会員検索履歴APIのハンドラー
type SearchHistoryHandler struct {
	historyRepo repository.SearchHistoryRepository
}

// NewSearchHistoryHandler 新しいSearchHistoryHandlerインスタンスを作成
func NewSearchHistoryHandler(historyRepo repository.SearchHistoryRepository) *SearchHistoryHandler {
	return &SearchHistoryHandler{
		historyRepo: historyRepo,
	}
}

// searchQueryRequest 検索履歴保存リクエスト
type searchQueryRequest struct {
	Query string `json:"query" binding:"required"`
}

// GetSearchHistory 検索履歴を新しい順で返すエンドポイント
// GET /api/search-history
func (h *SearchHistoryHandler) GetSearchHistory(c *gin.Context) {
	history, err := h.historyRepo.List(c.Request.Context(), currentUID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "検索履歴の取得に失敗しました",
			"details": err.Error(),
		})
		return
	}
	if history == nil {
		history = []model.SearchQuery{}
	}

	c.JSON(http.StatusOK, gin.H{"queries": history})
}

// PostSearchQuery 検索クエリを履歴に保存するエンドポイント
// POST /api/search-history
func (h *SearchHistoryHandler) PostSearchQuery(c *gin.Context) {
	var req searchQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "queryが空です",
		})
		return
	}

	if err := h.historyRepo.Save(c.Request.Context(), currentUID(c), query); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "検索履歴の保存に失敗しました",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"query": query, "status": "saved"})
}
