package service

import "SpotMap-App/internal/domain/model"

// RatingSummary 平均評価と件数。キャッシュ更新のたびに再計算する（結果は保持しない）。
type RatingSummary struct {
	Average float64 `json:"avg"`
	Count   int     `json:"count"`
}

// AggregateRating コメント一覧から平均評価を計算する。0件なら平均0。
func AggregateRating(comments []model.Comment) RatingSummary {
	if len(comments) == 0 {
		return RatingSummary{}
	}

	sum := 0
	for _, c := range comments {
		sum += c.Rating
	}
	return RatingSummary{
		Average: float64(sum) / float64(len(comments)),
		Count:   len(comments),
	}
}
