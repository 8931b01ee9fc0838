package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"SpotMap-App/internal/infrastructure/identity"
)

const (
	contextKeyUID  = "uid"
	contextKeyUser = "user"
)

// AuthMiddleware Authorizationヘッダーのベアラートークンを検証し、
// 会員情報をコンテキストに載せるミドルウェア
func AuthMiddleware(verifier *identity.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "認証トークンが指定されていません",
			})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		user, err := verifier.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "認証トークンが無効です",
			})
			return
		}

		c.Set(contextKeyUID, user.UID)
		c.Set(contextKeyUser, user)
		c.Next()
	}
}

// currentUID ミドルウェアが設定した会員IDを取り出す
func currentUID(c *gin.Context) string {
	return c.GetString(contextKeyUID)
}
