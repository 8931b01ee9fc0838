package model

import (
	"strings"
	"time"
)

// Comment 会員によるスポットへのコメント。作成後の編集・削除はこのコアでは扱わない。
type Comment struct {
	ID        string    `json:"id,omitempty"`
	TargetID  string    `json:"target_id"`
	Name      string    `json:"target_name,omitempty"`
	Author    string    `json:"author,omitempty"`
	Body      string    `json:"body"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate コメントの入力検証。本文はトリム後に非空、評価は1〜5。
func (c *Comment) Validate() error {
	if strings.TrimSpace(c.Body) == "" {
		return ErrValidation
	}
	if c.Rating < 1 || c.Rating > 5 {
		return ErrValidation
	}
	return nil
}

// Favorite お気に入り登録
type Favorite struct {
	ItemID    string    `json:"item_id"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// SearchQuery 検索履歴の1件（新しい順で保持される）
type SearchQuery struct {
	Query     string    `json:"query"`
	Timestamp time.Time `json:"timestamp"`
}

// SearchHistoryLimit 会員ごとに保持する検索履歴の最大件数
const SearchHistoryLimit = 20
