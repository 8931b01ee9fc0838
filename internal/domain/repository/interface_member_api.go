package repository

import (
	"context"

	"SpotMap-App/internal/domain/model"
)

// MemberAPI セッション状態キャッシュが消費する認証付きバックエンド契約。
// 実装側がベアラートークンを保持し、リクエストに付与する。
type MemberAPI interface {
	ListFavorites(ctx context.Context) ([]model.Favorite, error)
	AddFavorite(ctx context.Context, itemID string) error
	RemoveFavorite(ctx context.Context, itemID string) error

	ListComments(ctx context.Context, targetID string) ([]model.Comment, error)
	CreateComment(ctx context.Context, comment *model.Comment) (*model.Comment, error)

	ListSearchHistory(ctx context.Context) ([]model.SearchQuery, error)
	SaveSearchQuery(ctx context.Context, query string) error
}
