package repository

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SpotMap-App/internal/domain/model"
	"SpotMap-App/internal/infrastructure/database"
)

// setupPostgresClient 接続情報が無い環境ではテストをスキップする
func setupPostgresClient(t *testing.T) *database.PostgreSQLClient {
	t.Helper()

	if os.Getenv("DATABASE_URL") == "" && os.Getenv("SUPABASE_URL") == "" {
		t.Skip("DATABASE_URL / SUPABASE_URL が未設定のためスキップ")
	}

	client, err := database.NewPostgreSQLClient()
	if err != nil {
		t.Fatalf("PostgreSQLクライアントの初期化に失敗: %v", err)
	}
	t.Cleanup(func() { client.Close() })

	log.Println("✅ PostgreSQLクライアント初期化成功")
	return client
}

func TestPostgresPlacesRepository_Integration(t *testing.T) {
	client := setupPostgresClient(t)
	repo := NewPostgresPlacesRepository(client)

	places, err := repo.List(context.Background())
	require.NoError(t, err)

	log.Printf("📋 取得されたスポット数: %d", len(places))
	for _, p := range places {
		assert.NotEmpty(t, p.ID)
		// 正規化済みなら座標なしレコードはHasCoords=false
		if !p.HasCoords {
			assert.Zero(t, p.Lat)
			assert.Zero(t, p.Lon)
		}
	}
}

func TestPostgresFavoritesRepository_Integration(t *testing.T) {
	client := setupPostgresClient(t)
	repo := NewPostgresFavoritesRepository(client)

	ctx := context.Background()
	uid := "test-" + uuid.New().String()
	itemID := "test-spot"

	require.NoError(t, repo.Add(ctx, uid, itemID))
	// 冪等性の確認
	require.NoError(t, repo.Add(ctx, uid, itemID))

	favorites, err := repo.List(ctx, uid)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, itemID, favorites[0].ItemID)

	require.NoError(t, repo.Remove(ctx, uid, itemID))
	require.NoError(t, repo.Remove(ctx, uid, itemID))

	favorites, err = repo.List(ctx, uid)
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestPostgresCommentsRepository_Integration(t *testing.T) {
	client := setupPostgresClient(t)
	repo := NewPostgresCommentsRepository(client)

	ctx := context.Background()
	uid := "test-" + uuid.New().String()

	created, err := repo.Create(ctx, uid, &model.Comment{
		TargetID: "test-spot",
		Name:     "テストスポット",
		Author:   "テスト",
		Body:     "統合テストのコメント",
		Rating:   4,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	comments, err := repo.ListByTarget(ctx, uid, "test-spot")
	require.NoError(t, err)
	require.NotEmpty(t, comments)
	assert.Equal(t, created.ID, comments[0].ID)

	// バリデーションエラーは保存前に弾く
	_, err = repo.Create(ctx, uid, &model.Comment{TargetID: "test-spot", Body: "", Rating: 4})
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestPostgresSearchHistoryRepository_Integration(t *testing.T) {
	client := setupPostgresClient(t)
	repo := NewPostgresSearchHistoryRepository(client)

	ctx := context.Background()
	uid := "test-" + uuid.New().String()

	require.NoError(t, repo.Save(ctx, uid, "温泉"))
	require.NoError(t, repo.Save(ctx, uid, "絶景"))
	// 同一クエリは先頭へ繰り上げ
	require.NoError(t, repo.Save(ctx, uid, "温泉"))

	history, err := repo.List(ctx, uid)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "温泉", history[0].Query)
	assert.Equal(t, "絶景", history[1].Query)
	assert.LessOrEqual(t, len(history), model.SearchHistoryLimit)
}
