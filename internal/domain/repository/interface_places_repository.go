package repository

import (
	"context"

	"SpotMap-App/internal/domain/model"
)

// PlacesRepository スポットカタログの取得。
// レコードはリポジトリ実装側で正規化済み（model.NormalizePlace適用後）とする。
type PlacesRepository interface {
	List(ctx context.Context) ([]model.Place, error)
	GetByID(ctx context.Context, id string) (*model.Place, error)
}
