package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"SpotMap-App/internal/domain/model"
	"SpotMap-App/internal/domain/repository"
)

// FavoritesHandler 会員お気に入りAPIのハンドラー
type FavoritesHandler struct {
	favoritesRepo repository.FavoritesRepository
}

// NewFavoritesHandler 新しいFavoritesHandlerインスタンスを作成
func NewFavoritesHandler(favoritesRepo repository.FavoritesRepository) *FavoritesHandler {
	return &FavoritesHandler{
		favoritesRepo: favoritesRepo,
	}
}

// favoriteRequest お気に入り登録リクエスト
type favoriteRequest struct {
	ItemID string `json:"item_id" binding:"required"`
}

// GetFavorites お気に入り一覧を返すエンドポイント
// GET /api/favorites
func (h *FavoritesHandler) GetFavorites(c *gin.Context) {
	favorites, err := h.favoritesRepo.List(c.Request.Context(), currentUID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "お気に入り一覧の取得に失敗しました",
			"details": err.Error(),
		})
		return
	}
	if favorites == nil {
		favorites = []model.Favorite{}
	}

	c.JSON(http.StatusOK, gin.H{"items": favorites})
}

// PostFavorite お気に入りを登録するエンドポイント（冪等）
// POST /api/favorites
func (h *FavoritesHandler) PostFavorite(c *gin.Context) {
	var req favoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	if err := h.favoritesRepo.Add(c.Request.Context(), currentUID(c), req.ItemID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "お気に入りの登録に失敗しました",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"item_id": req.ItemID, "status": "added"})
}

// DeleteFavorite お気に入りを解除するエンドポイント（冪等）
// DELETE /api/favorites/:item_id
func (h *FavoritesHandler) DeleteFavorite(c *gin.Context) {
	itemID := c.Param("item_id")
	if itemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "item_idが指定されていません",
		})
		return
	}

	if err := h.favoritesRepo.Remove(c.Request.Context(), currentUID(c), itemID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "お気に入りの解除に失敗しました",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"item_id": itemID, "status": "removed"})
}
