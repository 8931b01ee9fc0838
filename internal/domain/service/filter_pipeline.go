package service

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"SpotMap-App/internal/domain/helper"
	"SpotMap-App/internal/domain/model"
)

// FilterFlags フィルタパイプラインの切り替えフラグ
type FilterFlags struct {
	OnlyDiscount   bool // 割引ありのみ
	OnlyFavorites  bool // お気に入りのみ（未ログイン時は上流で必ずオフにする）
	BoundsOnly     bool // 地図ビューポート内のみ
	SortByDistance bool // 現在地からの距離順
}

// FilterInput パイプラインへの入力一式。パイプラインは入力を一切変更しない。
type FilterInput struct {
	Scope           model.GeoScope
	Selection       model.SpatialSelection
	Viewport        *model.Bounds
	TagFilter       []string
	Query           string
	Flags           FilterFlags
	FavoriteIDs     map[string]bool
	CurrentLocation *model.LatLng
}

// ApplyFilters カタログから可視スポットの順序付きリストを作る純粋関数。
// 各ステージは生存集合を狭めるだけで、ステージの順序は固定（正しさのための順序）。
// 座標を使う判定がアクティブな場合、座標なしスポットは素通しではなく除外する。
func ApplyFilters(places []model.Place, in FilterInput) []model.Place {
	result := make([]model.Place, 0, len(places))

	tokens := tokenizeQuery(in.Query)
	tagSet := make(map[string]bool, len(in.TagFilter))
	for _, t := range in.TagFilter {
		if t != "" {
			tagSet[t] = true
		}
	}

	for _, p := range places {
		loc, hasLoc := p.Location()

		// 1. スコープの円形範囲による絞り込み
		if in.Scope.HasCircle() {
			if !hasLoc || !helper.WithinRadius(*in.Scope.Center, in.Scope.RadiusMeters, loc) {
				continue
			}
		}

		// 2. 地方・県・市ラベルによる絞り込み（住所部分一致をフォールバックとする）
		if in.Scope.IsActive() && !matchesScopeLabels(&p, in.Scope) {
			continue
		}

		// 3. 地図上の円・矩形選択
		if _, isNone := in.Selection.(model.SelectionNone); in.Selection != nil && !isNone {
			if !hasLoc || !helper.SelectionContains(in.Selection, loc) {
				continue
			}
		}

		// 4. ビューポート内のみ
		if in.Flags.BoundsOnly && in.Viewport != nil {
			if !hasLoc || !in.Viewport.Contains(loc) {
				continue
			}
		}

		// 5. タグフィルタ（集合の交差。UIは単一選択だが契約は複数選択対応）
		if len(tagSet) > 0 && !hasAnyTag(&p, tagSet) {
			continue
		}

		// 6. テキスト検索（トークンはAND、フィールド内は部分一致）
		if len(tokens) > 0 && !matchesAllTokens(&p, tokens) {
			continue
		}

		// 7. 割引フィルタ
		if in.Flags.OnlyDiscount && !p.HasDiscount() {
			continue
		}

		// 8. お気に入りフィルタ
		if in.Flags.OnlyFavorites && !in.FavoriteIDs[p.ID] {
			continue
		}

		result = append(result, p)
	}

	// 9. 距離ソート（現在地があれば）。座標なしは無限遠扱いで末尾に回す。
	// 距離の注釈はこのパス内だけの一時データで、Placeには保存しない。
	if in.Flags.SortByDistance && in.CurrentLocation != nil {
		type annotated struct {
			place  model.Place
			meters float64
		}
		ann := make([]annotated, len(result))
		for i, p := range result {
			meters := math.Inf(1)
			if loc, ok := p.Location(); ok {
				meters = helper.HaversineMeters(*in.CurrentLocation, loc)
			}
			ann[i] = annotated{place: p, meters: meters}
		}
		sort.SliceStable(ann, func(i, j int) bool {
			return ann[i].meters < ann[j].meters
		})
		for i := range ann {
			result[i] = ann[i].place
		}
	}

	return result
}

// matchesScopeLabels スコープの各レベルのキーに対して、スポット自身の地域ラベルが
// 一致するか、住所にキーが含まれるかを要求する（タグ付け漏れレコードの救済）。
func matchesScopeLabels(p *model.Place, scope model.GeoScope) bool {
	check := func(label, key string) bool {
		if key == "" {
			return true
		}
		return label == key || strings.Contains(p.Address, key)
	}
	return check(p.Region, scope.RegionKey) &&
		check(p.Prefecture, scope.PrefKey) &&
		check(p.City, scope.CityKey)
}

// hasAnyTag スポットのタグ集合と選択タグ集合が交差するか
func hasAnyTag(p *model.Place, tagSet map[string]bool) bool {
	for _, tag := range p.Tags {
		if tagSet[tag] {
			return true
		}
	}
	return false
}

// matchesAllTokens すべてのトークンが検索対象テキストのどこかに含まれるか
func matchesAllTokens(p *model.Place, tokens []string) bool {
	text := p.SearchableText()
	for _, token := range tokens {
		if !strings.Contains(text, token) {
			return false
		}
	}
	return true
}

var queryStripPattern = regexp.MustCompile(`[[:punct:]]|[｜、。．，！？・「」『』（）]`)

// tokenizeQuery 検索クエリを小文字化し、記号・パイプ区切りを除去して
// 空白区切りのトークンに分割する
func tokenizeQuery(query string) []string {
	normalized := strings.ToLower(query)
	normalized = queryStripPattern.ReplaceAllString(normalized, " ")
	return strings.Fields(normalized)
}
