package service

import (
	"context"
	"fmt"
	"log"

	"github.com/paulmach/orb"

	"SpotMap-App/internal/domain/model"
	"SpotMap-App/internal/domain/repository"
)

// GeoScopeResolver 地方→都道府県→市区町村のカスケード選択を保持し、
// スコープの中心・半径・bbox・境界ポリゴンへ解決する。
// アクティブなスコープはプロセス内で常に一つ。
type GeoScopeResolver struct {
	tree         model.GeoTree
	boundaryRepo repository.BoundaryRepository

	scope model.GeoScope

	// 境界ポリゴンは (prefKey, cityKey) 単位でキャッシュし、セッション中は失効させない
	boundaryCache map[string]orb.MultiPolygon

	// スコープ変更のたびに進める世代カウンタ。
	// 取得完了時に世代が進んでいたら、そのレスポンスは陳腐化したものとして捨てる。
	generation uint64
}

// NewGeoScopeResolver GeoScopeResolverの新しいインスタンスを作成
func NewGeoScopeResolver(tree model.GeoTree, boundaryRepo repository.BoundaryRepository) *GeoScopeResolver {
	return &GeoScopeResolver{
		tree:          tree,
		boundaryRepo:  boundaryRepo,
		scope:         model.GeoScope{Level: model.ScopeLevelNone},
		boundaryCache: make(map[string]orb.MultiPolygon),
	}
}

// Scope 現在のスコープを返す
func (r *GeoScopeResolver) Scope() model.GeoScope {
	return r.scope
}

// ClearScope スコープをすべて解除する
func (r *GeoScopeResolver) ClearScope() model.GeoScope {
	return r.SetScope("", "", "")
}

// SetScope カスケード規則を適用してスコープを設定する。
//   - 市キーは地方＋県が揃っている場合のみ有効。揃っていなければ粗いレベルへフォールバック。
//   - 市の「全域」選択は市の絞り込みなし（県スコープ維持）として扱う。
//   - 粗いレベルを選び直すと細かいレベルの選択はクリアされる。
func (r *GeoScopeResolver) SetScope(regionKey, prefKey, cityKey string) model.GeoScope {
	r.generation++

	if cityKey == model.CityAllArea {
		cityKey = ""
	}

	scope := model.GeoScope{Level: model.ScopeLevelNone}

	region, ok := r.tree[regionKey]
	if regionKey == "" || !ok {
		r.scope = scope
		return scope
	}

	scope.Level = model.ScopeLevelRegion
	scope.Key = regionKey
	scope.RegionKey = regionKey
	center := model.CenterLatLng(region.Center)
	scope.Center = &center
	scope.Zoom = region.Zoom
	scope.RadiusMeters = region.Radius

	pref, ok := region.Prefs[prefKey]
	if prefKey == "" || !ok {
		r.scope = scope
		return scope
	}

	scope.Level = model.ScopeLevelPref
	scope.Key = prefKey
	scope.PrefKey = prefKey
	prefCenter := model.CenterLatLng(pref.Center)
	scope.Center = &prefCenter
	scope.Zoom = pref.Zoom
	scope.RadiusMeters = pref.Radius
	scope.BBox = model.BBoxBounds(pref.BBox)

	city, ok := pref.Cities[cityKey]
	if cityKey == "" || !ok {
		r.scope = scope
		return scope
	}

	scope.Level = model.ScopeLevelCity
	scope.Key = cityKey
	scope.CityKey = cityKey
	cityCenter := model.CenterLatLng(city.Center)
	scope.Center = &cityCenter
	scope.Zoom = city.Zoom
	scope.RadiusMeters = city.Radius
	scope.BBox = model.BBoxBounds(city.BBox)

	r.scope = scope
	return scope
}

// ResolveBoundary 現在のスコープの境界ポリゴンを解決する。
// (prefKey, cityKey) で取得し、見つからなければ cityKey なしでもう一度だけ試す。
// どちらも無い・取得に失敗した場合は nil を返し、呼び出し側は円・bboxヒントへ
// フォールバックする。取得中にスコープが変わっていた場合は結果を捨てる。
func (r *GeoScopeResolver) ResolveBoundary(ctx context.Context) (orb.MultiPolygon, error) {
	scope := r.scope
	if scope.PrefKey == "" {
		return nil, nil
	}

	cacheKey := scope.PrefKey + "|" + scope.CityKey
	if cached, ok := r.boundaryCache[cacheKey]; ok {
		return cached, nil
	}

	gen := r.generation

	boundary, err := r.boundaryRepo.Get(ctx, scope.PrefKey, scope.CityKey)
	if err == nil && boundary == nil && scope.CityKey != "" {
		// 市単位のポリゴンが無い場合は県単位で再試行
		boundary, err = r.boundaryRepo.Get(ctx, scope.PrefKey, "")
	}

	if r.generation != gen {
		log.Printf("境界取得結果を破棄します（スコープ変更済み: %s/%s）", scope.PrefKey, scope.CityKey)
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("境界ポリゴンの取得失敗 (%s/%s): %w", scope.PrefKey, scope.CityKey, err)
	}

	if boundary != nil {
		r.boundaryCache[cacheKey] = boundary
	}
	return boundary, nil
}

// FitKind ビューポートフィットに使う幾何の種類
type FitKind string

const (
	FitNone       FitKind = "none"
	FitBoundary   FitKind = "boundary"
	FitBBox       FitKind = "bbox"
	FitCenterZoom FitKind = "center_zoom"
	FitCircle     FitKind = "circle" // 円はフィット対象ではなくガイド表示
)

// FitTarget ビューポートフィットの指示。優先順は
// 境界ポリゴン > bbox > center+zoom > 円。
type FitTarget struct {
	Kind         FitKind
	Boundary     orb.MultiPolygon
	BBox         *model.Bounds
	Center       model.LatLng
	Zoom         int
	RadiusMeters float64
}

// ResolveFitTarget 現在のスコープに対するビューポートフィット指示を返す
func (r *GeoScopeResolver) ResolveFitTarget(ctx context.Context) FitTarget {
	boundary, err := r.ResolveBoundary(ctx)
	if err != nil {
		log.Printf("⚠️ 境界取得に失敗、ヒントへフォールバック: %v", err)
	}
	if boundary != nil {
		return FitTarget{Kind: FitBoundary, Boundary: boundary}
	}

	scope := r.scope
	if scope.BBox != nil {
		return FitTarget{Kind: FitBBox, BBox: scope.BBox}
	}
	if scope.Center != nil && scope.Zoom > 0 {
		return FitTarget{Kind: FitCenterZoom, Center: *scope.Center, Zoom: scope.Zoom}
	}
	if scope.HasCircle() {
		return FitTarget{Kind: FitCircle, Center: *scope.Center, RadiusMeters: scope.RadiusMeters}
	}
	return FitTarget{Kind: FitNone}
}
