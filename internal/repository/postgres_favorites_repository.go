package repository

import (
	"context"
	"fmt"

	"SpotMap-App/internal/domain/model"
	"SpotMap-App/internal/domain/repository"
	"SpotMap-App/internal/infrastructure/database"
)

type PostgresFavoritesRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresFavoritesRepository(client *database.PostgreSQLClient) repository.FavoritesRepository {
	return &PostgresFavoritesRepository{
		client: client,
	}
}

func (r *PostgresFavoritesRepository) List(ctx context.Context, uid string) ([]model.Favorite, error) {
	query := `SELECT item_id, created_at FROM favorites WHERE uid = $1 ORDER BY created_at DESC`

	rows, err := r.client.DB.QueryContext(ctx, query, uid)
	if err != nil {
		return nil, fmt.Errorf("お気に入り一覧の取得失敗: %w", err)
	}
	defer rows.Close()

	var favorites []model.Favorite
	for rows.Next() {
		var fav model.Favorite
		if err := rows.Scan(&fav.ItemID, &fav.CreatedAt); err != nil {
			return nil, fmt.Errorf("お気に入りデータスキャンエラー: %w", err)
		}
		favorites = append(favorites, fav)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("お気に入り一覧の走査失敗: %w", err)
	}

	return favorites, nil
}

// Add お気に入りを登録する。(uid, item_id)のユニーク制約により重複登録は無視される。
func (r *PostgresFavoritesRepository) Add(ctx context.Context, uid, itemID string) error {
	query := `INSERT INTO favorites (uid, item_id, created_at) VALUES ($1, $2, NOW())
	          ON CONFLICT (uid, item_id) DO NOTHING`

	if _, err := r.client.DB.ExecContext(ctx, query, uid, itemID); err != nil {
		return fmt.Errorf("お気に入りの登録失敗: %w", err)
	}
	return nil
}

// Remove お気に入りを解除する。未登録でも成功扱い。
func (r *PostgresFavoritesRepository) Remove(ctx context.Context, uid, itemID string) error {
	query := `DELETE FROM favorites WHERE uid = $1 AND item_id = $2`

	if _, err := r.client.DB.ExecContext(ctx, query, uid, itemID); err != nil {
		return fmt.Errorf("お気に入りの解除失敗: %w", err)
	}
	return nil
}
