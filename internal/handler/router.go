package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"SpotMap-App/internal/infrastructure/identity"
)

// RouterDeps ルーター構築に必要なハンドラー一式
type RouterDeps struct {
	Places        *PlacesHandler
	Favorites     *FavoritesHandler
	Comments      *CommentsHandler
	SearchHistory *SearchHistoryHandler
	Verifier      *identity.TokenVerifier
}

// SetupRouter APIエンドポイントを登録したGinルーターを構築する。
// /api/favorites以下・/api/comments以下・/api/search-history以下は会員専用。
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "SpotMap-App"})
		})
		api.GET("/public", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "誰でも閲覧できるエンドポイントです"})
		})

		api.GET("/spots", deps.Places.GetSpots)
		api.GET("/spots/:id", deps.Places.GetSpotByID)
		api.GET("/geo", deps.Places.GetGeoTree)
		api.GET("/geo-boundary", deps.Places.GetBoundary)

		member := api.Group("")
		member.Use(AuthMiddleware(deps.Verifier))
		{
			member.GET("/member-only", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{
					"message": "会員限定エンドポイントです",
					"uid":     currentUID(c),
				})
			})

			member.GET("/favorites", deps.Favorites.GetFavorites)
			member.POST("/favorites", deps.Favorites.PostFavorite)
			member.DELETE("/favorites/:item_id", deps.Favorites.DeleteFavorite)

			member.GET("/comments", deps.Comments.GetComments)
			member.POST("/comments", deps.Comments.PostComment)

			member.GET("/search-history", deps.SearchHistory.GetSearchHistory)
			member.POST("/search-history", deps.SearchHistory.PostSearchQuery)
		}
	}

	return r
}
