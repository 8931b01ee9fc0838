package repository

import (
	"context"

	"SpotMap-App/internal/domain/model"
)

// SearchHistoryRepository 会員ごとの検索履歴永続化
type SearchHistoryRepository interface {
	// List 検索履歴を新しい順で最大 model.SearchHistoryLimit 件取得
	List(ctx context.Context, uid string) ([]model.SearchQuery, error)

	// Save 検索クエリを保存する。同一クエリが既にあればタイムスタンプのみ更新し、
	// 保持件数が上限を超えた分は古い順に削除する。
	Save(ctx context.Context, uid, query string) error
}
