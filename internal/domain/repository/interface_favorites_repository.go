package repository

import (
	"context"

	"SpotMap-App/internal/domain/model"
)

// FavoritesRepository 会員ごとのお気に入り永続化
type FavoritesRepository interface {
	// List uidのお気に入り一覧を登録の新しい順で取得
	List(ctx context.Context, uid string) ([]model.Favorite, error)

	// Add お気に入りを登録する。登録済みの場合は何もしない（冪等）。
	Add(ctx context.Context, uid, itemID string) error

	// Remove お気に入りを解除する。未登録の場合も成功扱い（冪等）。
	Remove(ctx context.Context, uid, itemID string) error
}
