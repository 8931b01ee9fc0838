package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"SpotMap-App/internal/domain/model"
	"SpotMap-App/internal/domain/repository"
	"SpotMap-App/internal/domain/service"
)

// LocationProvider 端末の現在地取得。呼び出しは1回限りで、タイムアウトは
// 呼び出し側がctxで与える。実装はキャッシュ済みの位置を返してもよい。
type LocationProvider interface {
	CurrentLocation(ctx context.Context) (model.LatLng, error)
}

// 現在地取得の制限時間
const locationTimeout = 10 * time.Second

// ExploreUseCase 地図探索の状態一式（カタログ・スコープ・選択・フラグ・セッション）を
// 保持し、どの状態変化でもフィルタパイプラインを再評価してマーカー同期へ流す。
// 「状態が変わったらパイプラインを再実行する」が唯一のディスパッチ規則。
type ExploreUseCase struct {
	placesRepo   repository.PlacesRepository
	boundaryRepo repository.BoundaryRepository
	session      SessionUseCase
	markerSync   *service.MarkerSynchronizer
	location     LocationProvider

	catalog  []model.Place
	tree     model.GeoTree
	resolver *service.GeoScopeResolver

	selection       model.SpatialSelection
	viewport        *model.Bounds
	tagFilter       []string
	query           string
	flags           service.FilterFlags
	currentLocation *model.LatLng

	visible []model.Place
}

// NewExploreUseCase ExploreUseCaseの新しいインスタンスを作成
func NewExploreUseCase(
	placesRepo repository.PlacesRepository,
	boundaryRepo repository.BoundaryRepository,
	session SessionUseCase,
	surface service.MapSurface,
	location LocationProvider,
) *ExploreUseCase {
	return &ExploreUseCase{
		placesRepo:   placesRepo,
		boundaryRepo: boundaryRepo,
		session:      session,
		markerSync:   service.NewMarkerSynchronizer(surface),
		location:     location,
		selection:    model.SelectionNone{},
		resolver:     service.NewGeoScopeResolver(model.GeoTree{}, boundaryRepo),
	}
}

// LoadCatalog カタログと地域階層を読み込む。取得に失敗した場合は空カタログへ
// フォールバックし、スコープ・フィルタUIは「データなし」状態に退化する。
func (u *ExploreUseCase) LoadCatalog(ctx context.Context) error {
	places, err := u.placesRepo.List(ctx)
	if err != nil {
		u.catalog = nil
		u.tree = model.GeoTree{}
		u.resolver = service.NewGeoScopeResolver(u.tree, u.boundaryRepo)
		u.Refresh()
		return fmt.Errorf("%w: %v", model.ErrDataUnavailable, err)
	}

	u.catalog = places
	u.tree = service.BuildGeoTree(places)
	u.resolver = service.NewGeoScopeResolver(u.tree, u.boundaryRepo)
	log.Printf("カタログ読み込み完了 (%d件)", len(places))
	u.Refresh()
	return nil
}

// Catalog 読み込み済みカタログ
func (u *ExploreUseCase) Catalog() []model.Place {
	return u.catalog
}

// GeoTree 地域階層ツリー
func (u *ExploreUseCase) GeoTree() model.GeoTree {
	return u.tree
}

// Visible 直近のフィルタ結果
func (u *ExploreUseCase) Visible() []model.Place {
	return u.visible
}

// Session セッション状態
func (u *ExploreUseCase) Session() SessionUseCase {
	return u.session
}

// Scope 現在の地域スコープ
func (u *ExploreUseCase) Scope() model.GeoScope {
	return u.resolver.Scope()
}

// SetScope 地域スコープを設定し、再評価する
func (u *ExploreUseCase) SetScope(regionKey, prefKey, cityKey string) []model.Place {
	u.resolver.SetScope(regionKey, prefKey, cityKey)
	return u.Refresh()
}

// ResolveFitTarget 現在のスコープに対するビューポートフィット指示
func (u *ExploreUseCase) ResolveFitTarget(ctx context.Context) service.FitTarget {
	return u.resolver.ResolveFitTarget(ctx)
}

// PlaceCircle 地図上の円選択を設定する（既存の選択は破棄）
func (u *ExploreUseCase) PlaceCircle(center model.LatLng, radiusMeters float64) []model.Place {
	u.selection = model.SelectionCircle{Center: center, RadiusMeters: radiusMeters}
	return u.Refresh()
}

// PlaceRectangle 矩形ドラッグ通知による矩形選択を設定する（既存の選択は破棄）
func (u *ExploreUseCase) PlaceRectangle(bounds model.Bounds) []model.Place {
	u.selection = model.SelectionRectangle{Bounds: bounds}
	return u.Refresh()
}

// ClearSelection 地図上の選択を解除する
func (u *ExploreUseCase) ClearSelection() []model.Place {
	u.selection = model.SelectionNone{}
	return u.Refresh()
}

// SetViewport 地図ビューポートの変更通知
func (u *ExploreUseCase) SetViewport(bounds model.Bounds) []model.Place {
	u.viewport = &bounds
	return u.Refresh()
}

// SetTagFilter タグフィルタを設定する
func (u *ExploreUseCase) SetTagFilter(tags []string) []model.Place {
	u.tagFilter = tags
	return u.Refresh()
}

// SetQuery テキスト検索クエリを設定する
func (u *ExploreUseCase) SetQuery(query string) []model.Place {
	u.query = query
	return u.Refresh()
}

// Search クエリを設定して再評価し、会員なら検索履歴にも記録する。
// 履歴保存の失敗は検索結果には影響しない（通知用にエラーのみ返す）。
func (u *ExploreUseCase) Search(ctx context.Context, query string) ([]model.Place, error) {
	visible := u.SetQuery(query)

	if u.session.IsAuthenticated() && query != "" {
		if err := u.session.RecordSearch(ctx, query); err != nil {
			return visible, err
		}
	}
	return visible, nil
}

// SetFlags フィルタフラグを設定する
func (u *ExploreUseCase) SetFlags(flags service.FilterFlags) []model.Place {
	u.flags = flags
	return u.Refresh()
}

// Flags 現在のフィルタフラグ
func (u *ExploreUseCase) Flags() service.FilterFlags {
	return u.flags
}

// EnableDistanceSort 現在地を取得して距離ソートを有効にする。
// 取得は時間制限付きの1回限りで、既に取得済みの位置があればそれを使う。
// 失敗時は距離ソートを諦めてカタログ順のままにする。
func (u *ExploreUseCase) EnableDistanceSort(ctx context.Context) ([]model.Place, error) {
	if u.currentLocation == nil {
		if u.location == nil {
			return u.visible, model.ErrGeolocation
		}
		timeoutCtx, cancel := context.WithTimeout(ctx, locationTimeout)
		defer cancel()

		loc, err := u.location.CurrentLocation(timeoutCtx)
		if err != nil {
			u.flags.SortByDistance = false
			return u.Refresh(), fmt.Errorf("%w: %v", model.ErrGeolocation, err)
		}
		u.currentLocation = &loc
	}

	u.flags.SortByDistance = true
	return u.Refresh(), nil
}

// DisableDistanceSort 距離ソートを無効にする
func (u *ExploreUseCase) DisableDistanceSort() []model.Place {
	u.flags.SortByDistance = false
	return u.Refresh()
}

// OnAuthChange 認証遷移を適用し、必ず再評価する。
// 遷移をまたいだフィルタ結果はお気に入り・コメントの可視性が変わっている
// 可能性があるため、ここでの再実行が正となる。
func (u *ExploreUseCase) OnAuthChange(ctx context.Context, user *model.AuthUser, credential string) error {
	err := u.session.OnAuthChange(ctx, user, credential)
	u.Refresh()
	return err
}

// ToggleFavorite お気に入りを反転し、再評価する
func (u *ExploreUseCase) ToggleFavorite(ctx context.Context, placeID string) (bool, error) {
	nowFavorite, err := u.session.ToggleFavorite(ctx, placeID)
	u.Refresh()
	return nowFavorite, err
}

// Refresh フィルタパイプラインを再評価し、マーカー同期へ流す
func (u *ExploreUseCase) Refresh() []model.Place {
	flags := u.flags
	if !u.session.IsAuthenticated() {
		// お気に入りフィルタは未認証では意味を持たない（集合が空）ため強制オフ
		flags.OnlyFavorites = false
	}

	input := service.FilterInput{
		Scope:           u.resolver.Scope(),
		Selection:       u.selection,
		Viewport:        u.viewport,
		TagFilter:       u.tagFilter,
		Query:           u.query,
		Flags:           flags,
		FavoriteIDs:     u.session.FavoriteIDs(),
		CurrentLocation: u.currentLocation,
	}

	u.visible = service.ApplyFilters(u.catalog, input)
	u.markerSync.Sync(u.visible)
	return u.visible
}
