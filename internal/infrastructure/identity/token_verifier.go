package identity

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"SpotMap-App/internal/domain/model"
)

const tokenLifetime = 24 * time.Hour

// TokenVerifier HS256署名のベアラートークンを検証・発行する
type TokenVerifier struct {
	secret []byte
}

// NewTokenVerifier JWT_SECRET環境変数から検証器を作成
func NewTokenVerifier() (*TokenVerifier, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET環境変数が設定されていません")
	}
	return &TokenVerifier{secret: []byte(secret)}, nil
}

// NewTokenVerifierWithSecret テスト用に秘密鍵を直接指定して作成
func NewTokenVerifierWithSecret(secret string) *TokenVerifier {
	return &TokenVerifier{secret: []byte(secret)}
}

// Verify トークンを検証し、会員情報を返す
func (v *TokenVerifier) Verify(tokenString string) (*model.AuthUser, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("想定外の署名方式: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, model.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, model.ErrUnauthorized
	}
	uid, ok := claims["uid"].(string)
	if !ok || uid == "" {
		return nil, model.ErrUnauthorized
	}

	user := &model.AuthUser{UID: uid}
	if email, ok := claims["email"].(string); ok {
		user.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		user.DisplayName = name
	}
	return user, nil
}

// Issue 会員情報からトークンを発行する
func (v *TokenVerifier) Issue(user *model.AuthUser) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":   user.UID,
		"email": user.Email,
		"name":  user.DisplayName,
		"exp":   time.Now().Add(tokenLifetime).Unix(),
	})
	tokenString, err := token.SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("トークンの発行失敗: %w", err)
	}
	return tokenString, nil
}
