package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"SpotMap-App/internal/domain/model"
	"SpotMap-App/internal/domain/repository"
	"SpotMap-App/internal/infrastructure/database"
)

type PostgresCommentsRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresCommentsRepository(client *database.PostgreSQLClient) repository.CommentsRepository {
	return &PostgresCommentsRepository{
		client: client,
	}
}

func (r *PostgresCommentsRepository) ListByTarget(ctx context.Context, uid, targetID string) ([]model.Comment, error) {
	query := `SELECT id, target_id, target_name, author, body, rating, created_at
	          FROM comments WHERE uid = $1 AND target_id = $2 ORDER BY created_at DESC`

	rows, err := r.client.DB.QueryContext(ctx, query, uid, targetID)
	if err != nil {
		return nil, fmt.Errorf("コメント一覧の取得失敗: %w", err)
	}
	defer rows.Close()

	var comments []model.Comment
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.TargetID, &c.Name, &c.Author, &c.Body, &c.Rating, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("コメントデータスキャンエラー: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("コメント一覧の走査失敗: %w", err)
	}

	return comments, nil
}

// Create コメントを作成する。IDと作成日時はサーバー側で採番する。
func (r *PostgresCommentsRepository) Create(ctx context.Context, uid string, comment *model.Comment) (*model.Comment, error) {
	if err := comment.Validate(); err != nil {
		return nil, err
	}

	created := *comment
	created.ID = uuid.New().String()
	created.CreatedAt = time.Now()

	query := `INSERT INTO comments (id, uid, target_id, target_name, author, body, rating, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.client.DB.ExecContext(ctx, query,
		created.ID, uid, created.TargetID, created.Name, created.Author, created.Body, created.Rating, created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("コメントの作成失敗: %w", err)
	}

	return &created, nil
}
