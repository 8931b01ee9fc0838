package client

import (
	"context"

	"github.com/paulmach/orb"

	"SpotMap-App/internal/domain/model"
	"SpotMap-App/internal/domain/repository"
)

// RemotePlacesRepository APIクライアント経由のスポットカタログ。
// バックエンドと同居しないプロセス（探索クライアント）向けのPlacesRepository実装。
type RemotePlacesRepository struct {
	api *APIClient
}

func NewRemotePlacesRepository(api *APIClient) repository.PlacesRepository {
	return &RemotePlacesRepository{api: api}
}

func (r *RemotePlacesRepository) List(ctx context.Context) ([]model.Place, error) {
	return r.api.ListSpots(ctx)
}

func (r *RemotePlacesRepository) GetByID(ctx context.Context, id string) (*model.Place, error) {
	var place model.Place
	if err := r.api.get(ctx, "/api/spots/"+id, &place); err != nil {
		return nil, err
	}
	return &place, nil
}

// RemoteBoundaryRepository APIクライアント経由の行政境界リポジトリ
type RemoteBoundaryRepository struct {
	api *APIClient
}

func NewRemoteBoundaryRepository(api *APIClient) repository.BoundaryRepository {
	return &RemoteBoundaryRepository{api: api}
}

func (r *RemoteBoundaryRepository) Get(ctx context.Context, prefKey, cityKey string) (orb.MultiPolygon, error) {
	raw, err := r.api.GetBoundary(ctx, prefKey, cityKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	return model.BoundaryFromGeoJSON(raw)
}
