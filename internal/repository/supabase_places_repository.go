package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"SpotMap-App/internal/domain/helper"
	"SpotMap-App/internal/domain/model"
	"SpotMap-App/internal/domain/repository"
	"SpotMap-App/internal/infrastructure/database"
)

// SupabasePlacesRepository Supabase REST API経由のスポットカタログ。
// 直接のPostgreSQL接続が使えない環境向けのPostgresPlacesRepositoryの代替実装。
type SupabasePlacesRepository struct {
	client *database.SupabaseClient
}

func NewSupabasePlacesRepository(client *database.SupabaseClient) repository.PlacesRepository {
	return &SupabasePlacesRepository{
		client: client,
	}
}

func (r *SupabasePlacesRepository) List(ctx context.Context) ([]model.Place, error) {
	data, count, err := r.client.GetClient().From("spots").Select("*", "exact", false).Execute()
	if err != nil {
		return nil, fmt.Errorf("スポットデータの取得失敗: %w", err)
	}
	_ = count

	var raws []model.RawPlace
	if err := json.Unmarshal([]byte(data), &raws); err != nil {
		return nil, fmt.Errorf("スポットデータのJSONアンマーシャル失敗: %w", err)
	}

	places := model.NormalizePlaces(raws)
	for i := range places {
		helper.EnrichHierarchy(&places[i])
	}
	return places, nil
}

func (r *SupabasePlacesRepository) GetByID(ctx context.Context, id string) (*model.Place, error) {
	data, count, err := r.client.GetClient().From("spots").Select("*", "exact", false).Eq("id", id).Execute()
	if err != nil {
		return nil, fmt.Errorf("スポットデータの取得失敗: %w", err)
	}
	_ = count

	var raws []model.RawPlace
	if err := json.Unmarshal([]byte(data), &raws); err != nil {
		return nil, fmt.Errorf("スポットデータのJSONアンマーシャル失敗: %w", err)
	}
	if len(raws) == 0 {
		return nil, fmt.Errorf("スポット ID %s が見つかりません", id)
	}

	place := model.NormalizePlace(raws[0], 0)
	helper.EnrichHierarchy(&place)
	return &place, nil
}
