package repository

import (
	"context"
	"fmt"

	"SpotMap-App/internal/domain/model"
	"SpotMap-App/internal/domain/repository"
	"SpotMap-App/internal/infrastructure/database"
)

type PostgresSearchHistoryRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresSearchHistoryRepository(client *database.PostgreSQLClient) repository.SearchHistoryRepository {
	return &PostgresSearchHistoryRepository{
		client: client,
	}
}

func (r *PostgresSearchHistoryRepository) List(ctx context.Context, uid string) ([]model.SearchQuery, error) {
	query := `SELECT query, created_at FROM search_history
	          WHERE uid = $1 ORDER BY created_at DESC LIMIT $2`

	rows, err := r.client.DB.QueryContext(ctx, query, uid, model.SearchHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("検索履歴の取得失敗: %w", err)
	}
	defer rows.Close()

	var history []model.SearchQuery
	for rows.Next() {
		var q model.SearchQuery
		if err := rows.Scan(&q.Query, &q.Timestamp); err != nil {
			return nil, fmt.Errorf("検索履歴データスキャンエラー: %w", err)
		}
		history = append(history, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("検索履歴の走査失敗: %w", err)
	}

	return history, nil
}

// Save 検索クエリを保存する。同一クエリはタイムスタンプ更新で先頭に繰り上げ、
// 上限を超えた古い履歴は削除する。
func (r *PostgresSearchHistoryRepository) Save(ctx context.Context, uid, query string) error {
	upsert := `INSERT INTO search_history (uid, query, created_at) VALUES ($1, $2, NOW())
	           ON CONFLICT (uid, query) DO UPDATE SET created_at = NOW()`

	if _, err := r.client.DB.ExecContext(ctx, upsert, uid, query); err != nil {
		return fmt.Errorf("検索履歴の保存失敗: %w", err)
	}

	trim := `DELETE FROM search_history
	         WHERE uid = $1 AND (uid, query) NOT IN (
	             SELECT uid, query FROM search_history
	             WHERE uid = $1 ORDER BY created_at DESC LIMIT $2
	         )`

	if _, err := r.client.DB.ExecContext(ctx, trim, uid, model.SearchHistoryLimit); err != nil {
		return fmt.Errorf("検索履歴の整理失敗: %w", err)
	}
	return nil
}
