package repository

import (
	"context"

	"github.com/paulmach/orb"
)

// BoundaryRepository 行政境界ポリゴンの取得。
// 該当する境界が存在しない場合は (nil, nil) を返す（エラーではなくミス扱い）。
// 行政境界はセッション中に変化しない静的データとして扱ってよい。
type BoundaryRepository interface {
	Get(ctx context.Context, prefKey, cityKey string) (orb.MultiPolygon, error)
}
