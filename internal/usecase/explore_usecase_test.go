package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SpotMap-App/internal/domain/model"
	"SpotMap-App/internal/domain/service"
)

// fakePlacesRepo テスト用のカタログリポジトリ
type fakePlacesRepo struct {
	places []model.Place
	err    error
}

func (f *fakePlacesRepo) List(ctx context.Context) ([]model.Place, error) {
	return f.places, f.err
}

func (f *fakePlacesRepo) GetByID(ctx context.Context, id string) (*model.Place, error) {
	for i := range f.places {
		if f.places[i].ID == id {
			return &f.places[i], nil
		}
	}
	return nil, errors.New("not found")
}

// nilBoundaryRepo 常に境界なし
type nilBoundaryRepo struct{}

func (nilBoundaryRepo) Get(ctx context.Context, prefKey, cityKey string) (orb.MultiPolygon, error) {
	return nil, nil
}

// countingSurface マーカー指示の回数だけ記録する地図面
type countingSurface struct {
	addCalls    int
	removeCalls int
}

func (c *countingSurface) AddMarkers(places []model.Place) { c.addCalls++ }
func (c *countingSurface) RemoveMarkers(ids []string)      { c.removeCalls++ }

// fakeLocation テスト用の現在地プロバイダ
type fakeLocation struct {
	loc   model.LatLng
	err   error
	calls int
}

func (f *fakeLocation) CurrentLocation(ctx context.Context) (model.LatLng, error) {
	f.calls++
	return f.loc, f.err
}

func exploreCatalog() []model.Place {
	return []model.Place{
		{
			ID: "kinkakuji", Name: "金閣寺", Lat: 35.0394, Lon: 135.7292, HasCoords: true,
			Tags: []string{"寺社"}, Address: "京都府京都市北区",
			Region: "近畿", Prefecture: "京都府", City: "京都市",
		},
		{
			ID: "osakajo", Name: "大阪城", Lat: 34.6873, Lon: 135.5262, HasCoords: true,
			Tags: []string{"城"}, Address: "大阪府大阪市中央区",
			Region: "近畿", Prefecture: "大阪府", City: "大阪市",
		},
	}
}

func newTestExplore(t *testing.T, location LocationProvider) (*ExploreUseCase, *countingSurface, *fakeMemberAPI) {
	t.Helper()

	api := newFakeMemberAPI()
	surface := &countingSurface{}
	u := NewExploreUseCase(
		&fakePlacesRepo{places: exploreCatalog()},
		nilBoundaryRepo{},
		NewSessionUseCase(api),
		surface,
		location,
	)
	require.NoError(t, u.LoadCatalog(context.Background()))
	return u, surface, api
}

func TestExploreUseCase_LoadCatalog(t *testing.T) {
	u, surface, _ := newTestExplore(t, nil)

	assert.Len(t, u.Catalog(), 2)
	assert.Len(t, u.Visible(), 2)
	assert.Contains(t, u.GeoTree(), "近畿")
	assert.Equal(t, 1, surface.addCalls)
}

func TestExploreUseCase_LoadCatalog失敗は空カタログへフォールバック(t *testing.T) {
	u := NewExploreUseCase(
		&fakePlacesRepo{err: errors.New("db down")},
		nilBoundaryRepo{},
		NewSessionUseCase(newFakeMemberAPI()),
		&countingSurface{},
		nil,
	)

	err := u.LoadCatalog(context.Background())
	assert.ErrorIs(t, err, model.ErrDataUnavailable)
	assert.Empty(t, u.Catalog())
	assert.Empty(t, u.Visible())
}

func TestExploreUseCase_スコープ設定で再評価する(t *testing.T) {
	u, _, _ := newTestExplore(t, nil)

	visible := u.SetScope("近畿", "京都府", "")
	require.Len(t, visible, 1)
	assert.Equal(t, "kinkakuji", visible[0].ID)

	visible = u.SetScope("", "", "")
	assert.Len(t, visible, 2)
}

func TestExploreUseCase_選択の設定と解除(t *testing.T) {
	u, _, _ := newTestExplore(t, nil)

	visible := u.PlaceCircle(model.LatLng{Lat: 34.6873, Lon: 135.5262}, 10000)
	require.Len(t, visible, 1)
	assert.Equal(t, "osakajo", visible[0].ID)

	// 矩形を置くと円は破棄される
	visible = u.PlaceRectangle(model.Bounds{MinLat: 34.9, MinLon: 135.6, MaxLat: 35.1, MaxLon: 135.8})
	require.Len(t, visible, 1)
	assert.Equal(t, "kinkakuji", visible[0].ID)

	visible = u.ClearSelection()
	assert.Len(t, visible, 2)
}

func TestExploreUseCase_未認証ならお気に入りフィルタを強制オフ(t *testing.T) {
	u, _, _ := newTestExplore(t, nil)

	visible := u.SetFlags(service.FilterFlags{OnlyFavorites: true})

	// 未認証では空集合マッチではなくフィルタ自体が無効になる
	assert.Len(t, visible, 2)
}

func TestExploreUseCase_認証後はお気に入りフィルタが効く(t *testing.T) {
	u, _, _ := newTestExplore(t, nil)
	ctx := context.Background()

	require.NoError(t, u.OnAuthChange(ctx, testUser(), "token-1"))
	_, err := u.ToggleFavorite(ctx, "kinkakuji")
	require.NoError(t, err)

	visible := u.SetFlags(service.FilterFlags{OnlyFavorites: true})
	require.Len(t, visible, 1)
	assert.Equal(t, "kinkakuji", visible[0].ID)

	// ログアウトで強制オフに戻る
	require.NoError(t, u.OnAuthChange(ctx, nil, ""))
	assert.Len(t, u.Visible(), 2)
}

func TestExploreUseCase_Searchは会員なら履歴を記録する(t *testing.T) {
	u, _, api := newTestExplore(t, nil)
	ctx := context.Background()

	// 未認証は記録なし
	visible, err := u.Search(ctx, "金閣寺")
	require.NoError(t, err)
	assert.Len(t, visible, 1)
	assert.Empty(t, api.savedQueries)

	require.NoError(t, u.OnAuthChange(ctx, testUser(), "token-1"))
	_, err = u.Search(ctx, "大阪城")
	require.NoError(t, err)
	assert.Equal(t, []string{"大阪城"}, api.savedQueries)
}

func TestExploreUseCase_距離ソートの有効化(t *testing.T) {
	location := &fakeLocation{loc: model.LatLng{Lat: 34.70, Lon: 135.50}}
	u, _, _ := newTestExplore(t, location)

	visible, err := u.EnableDistanceSort(context.Background())
	require.NoError(t, err)
	require.Len(t, visible, 2)
	assert.Equal(t, "osakajo", visible[0].ID)

	// 取得済みの現在地は再利用する
	u.DisableDistanceSort()
	_, err = u.EnableDistanceSort(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, location.calls)
}

func TestExploreUseCase_現在地取得失敗ならカタログ順のまま(t *testing.T) {
	location := &fakeLocation{err: errors.New("permission denied")}
	u, _, _ := newTestExplore(t, location)

	visible, err := u.EnableDistanceSort(context.Background())
	assert.ErrorIs(t, err, model.ErrGeolocation)
	require.Len(t, visible, 2)
	assert.Equal(t, "kinkakuji", visible[0].ID)
	assert.False(t, u.Flags().SortByDistance)
}

func TestExploreUseCase_プロバイダなしでもエラーで返す(t *testing.T) {
	u, _, _ := newTestExplore(t, nil)

	_, err := u.EnableDistanceSort(context.Background())
	assert.ErrorIs(t, err, model.ErrGeolocation)
}
