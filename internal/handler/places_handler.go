package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"SpotMap-App/internal/domain/model"
	"SpotMap-App/internal/domain/repository"
	"SpotMap-App/internal/domain/service"
)

// PlacesHandler スポットカタログ・地域階層・行政境界APIのハンドラー
type PlacesHandler struct {
	placesRepo   repository.PlacesRepository
	boundaryRepo repository.BoundaryRepository

	catalog []model.Place
	tree    model.GeoTree
}

// NewPlacesHandler 新しいPlacesHandlerインスタンスを作成
func NewPlacesHandler(placesRepo repository.PlacesRepository, boundaryRepo repository.BoundaryRepository) *PlacesHandler {
	return &PlacesHandler{
		placesRepo:   placesRepo,
		boundaryRepo: boundaryRepo,
		tree:         model.GeoTree{},
	}
}

// LoadCatalog 起動時にカタログを読み込み、地域階層ツリーを構築する
func (h *PlacesHandler) LoadCatalog(ctx context.Context) error {
	places, err := h.placesRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("カタログの読み込み失敗: %w", err)
	}
	h.catalog = places
	h.tree = service.BuildGeoTree(places)
	return nil
}

// GetSpots スポット一覧を返すエンドポイント。?q= でテキスト検索できる。
// GET /api/spots
func (h *PlacesHandler) GetSpots(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))

	spots := h.catalog
	if query != "" {
		spots = service.ApplyFilters(h.catalog, service.FilterInput{Query: query})
	}
	if spots == nil {
		spots = []model.Place{}
	}

	c.JSON(http.StatusOK, gin.H{
		"spots": spots,
		"count": len(spots),
	})
}

// GetSpotByID スポットを1件返すエンドポイント
// GET /api/spots/:id
func (h *PlacesHandler) GetSpotByID(c *gin.Context) {
	id := c.Param("id")

	for i := range h.catalog {
		if h.catalog[i].ID == id {
			c.JSON(http.StatusOK, h.catalog[i])
			return
		}
	}

	place, err := h.placesRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "スポットが見つかりません",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, place)
}

// GetGeoTree 地方→都道府県→市区町村の階層ツリーを返すエンドポイント
// GET /api/geo
func (h *PlacesHandler) GetGeoTree(c *gin.Context) {
	c.JSON(http.StatusOK, h.tree)
}

// GetBoundary 行政境界GeoJSONを返すエンドポイント。
// 境界が存在しない場合は {"geojson": null} を返す（404にはしない）。
// GET /api/geo-boundary?pref=京都府&city=京都市
func (h *PlacesHandler) GetBoundary(c *gin.Context) {
	prefKey := strings.TrimSpace(c.Query("pref"))
	cityKey := strings.TrimSpace(c.Query("city"))

	if prefKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "prefパラメータが指定されていません",
		})
		return
	}
	if cityKey == model.CityAllArea {
		cityKey = ""
	}

	boundary, err := h.boundaryRepo.Get(c.Request.Context(), prefKey, cityKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "境界データの取得に失敗しました",
			"details": err.Error(),
		})
		return
	}

	geoJSON, err := model.BoundaryToGeoJSON(boundary)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "境界データの変換に失敗しました",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, model.BoundaryResponse{GeoJSON: geoJSON})
}
