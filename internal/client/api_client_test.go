package client

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SpotMap-App/internal/domain/model"
	"SpotMap-App/internal/handler"
	"SpotMap-App/internal/infrastructure/identity"
)

// 以下はサーバー側リポジトリのメモリ実装。クライアントとハンドラーを
// 実HTTP経由で突き合わせるためのテスト用バックエンド。

type memPlacesRepo struct {
	places []model.Place
}

func (m *memPlacesRepo) List(ctx context.Context) ([]model.Place, error) {
	return m.places, nil
}

func (m *memPlacesRepo) GetByID(ctx context.Context, id string) (*model.Place, error) {
	for i := range m.places {
		if m.places[i].ID == id {
			return &m.places[i], nil
		}
	}
	return nil, assert.AnError
}

type memBoundaryRepo struct {
	boundaries map[string]orb.MultiPolygon
}

func (m *memBoundaryRepo) Get(ctx context.Context, prefKey, cityKey string) (orb.MultiPolygon, error) {
	return m.boundaries[prefKey+"|"+cityKey], nil
}

type memFavoritesRepo struct {
	items map[string][]model.Favorite // uid -> favorites
}

func (m *memFavoritesRepo) List(ctx context.Context, uid string) ([]model.Favorite, error) {
	return m.items[uid], nil
}

func (m *memFavoritesRepo) Add(ctx context.Context, uid, itemID string) error {
	for _, fav := range m.items[uid] {
		if fav.ItemID == itemID {
			return nil
		}
	}
	m.items[uid] = append(m.items[uid], model.Favorite{ItemID: itemID, CreatedAt: time.Now()})
	return nil
}

func (m *memFavoritesRepo) Remove(ctx context.Context, uid, itemID string) error {
	kept := m.items[uid][:0]
	for _, fav := range m.items[uid] {
		if fav.ItemID != itemID {
			kept = append(kept, fav)
		}
	}
	m.items[uid] = kept
	return nil
}

type memCommentsRepo struct {
	comments map[string][]model.Comment // uid|target -> comments
}

func (m *memCommentsRepo) ListByTarget(ctx context.Context, uid, targetID string) ([]model.Comment, error) {
	return m.comments[uid+"|"+targetID], nil
}

func (m *memCommentsRepo) Create(ctx context.Context, uid string, comment *model.Comment) (*model.Comment, error) {
	if err := comment.Validate(); err != nil {
		return nil, err
	}
	created := *comment
	created.ID = "c1"
	created.CreatedAt = time.Now()
	key := uid + "|" + comment.TargetID
	m.comments[key] = append([]model.Comment{created}, m.comments[key]...)
	return &created, nil
}

type memHistoryRepo struct {
	queries map[string][]model.SearchQuery
}

func (m *memHistoryRepo) List(ctx context.Context, uid string) ([]model.SearchQuery, error) {
	return m.queries[uid], nil
}

func (m *memHistoryRepo) Save(ctx context.Context, uid, query string) error {
	updated := []model.SearchQuery{{Query: query, Timestamp: time.Now()}}
	for _, q := range m.queries[uid] {
		if q.Query != query {
			updated = append(updated, q)
		}
	}
	if len(updated) > model.SearchHistoryLimit {
		updated = updated[:model.SearchHistoryLimit]
	}
	m.queries[uid] = updated
	return nil
}

func setupTestServer(t *testing.T) (*httptest.Server, *identity.TokenVerifier) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	verifier := identity.NewTokenVerifierWithSecret("test-secret")

	boundary, err := model.BoundaryFromGeoJSON([]byte(
		`{"type":"Polygon","coordinates":[[[135.0,34.0],[136.0,34.0],[136.0,36.0],[135.0,36.0],[135.0,34.0]]]}`))
	require.NoError(t, err)

	placesHandler := handler.NewPlacesHandler(
		&memPlacesRepo{places: []model.Place{
			{ID: "kinkakuji", Name: "金閣寺", Lat: 35.0394, Lon: 135.7292, HasCoords: true,
				Address: "京都府京都市北区", Region: "近畿", Prefecture: "京都府", City: "京都市"},
			{ID: "osakajo", Name: "大阪城", Lat: 34.6873, Lon: 135.5262, HasCoords: true,
				Address: "大阪府大阪市中央区", Region: "近畿", Prefecture: "大阪府", City: "大阪市"},
		}},
		&memBoundaryRepo{boundaries: map[string]orb.MultiPolygon{"京都府|": boundary}},
	)
	require.NoError(t, placesHandler.LoadCatalog(context.Background()))

	router := handler.SetupRouter(handler.RouterDeps{
		Places:        placesHandler,
		Favorites:     handler.NewFavoritesHandler(&memFavoritesRepo{items: map[string][]model.Favorite{}}),
		Comments:      handler.NewCommentsHandler(&memCommentsRepo{comments: map[string][]model.Comment{}}),
		SearchHistory: handler.NewSearchHistoryHandler(&memHistoryRepo{queries: map[string][]model.SearchQuery{}}),
		Verifier:      verifier,
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server, verifier
}

func memberToken(t *testing.T, verifier *identity.TokenVerifier) string {
	t.Helper()
	token, err := verifier.Issue(&model.AuthUser{UID: "user-1", Email: "u@example.com"})
	require.NoError(t, err)
	return token
}

func TestAPIClient_スポットカタログと検索(t *testing.T) {
	server, _ := setupTestServer(t)
	c := New(server.URL)
	ctx := context.Background()

	spots, err := c.ListSpots(ctx)
	require.NoError(t, err)
	assert.Len(t, spots, 2)

	tree, err := c.GetGeoTree(ctx)
	require.NoError(t, err)
	assert.Contains(t, tree, "近畿")

	repo := NewRemotePlacesRepository(c)
	place, err := repo.GetByID(ctx, "kinkakuji")
	require.NoError(t, err)
	assert.Equal(t, "金閣寺", place.Name)
}

func TestAPIClient_境界の取得(t *testing.T) {
	server, _ := setupTestServer(t)
	c := New(server.URL)
	ctx := context.Background()

	raw, err := c.GetBoundary(ctx, "京都府", "")
	require.NoError(t, err)
	assert.NotNil(t, raw)

	// 無い境界は (nil, nil)
	raw, err = c.GetBoundary(ctx, "奈良県", "")
	require.NoError(t, err)
	assert.Nil(t, raw)

	// RemoteBoundaryRepositoryはポリゴンへ変換して返す
	repo := NewRemoteBoundaryRepository(c)
	boundary, err := repo.Get(ctx, "京都府", "")
	require.NoError(t, err)
	assert.NotNil(t, boundary)

	boundary, err = repo.Get(ctx, "奈良県", "")
	require.NoError(t, err)
	assert.Nil(t, boundary)
}

func TestAPIClient_未認証の会員APIは拒否される(t *testing.T) {
	server, _ := setupTestServer(t)
	c := New(server.URL)

	_, err := c.ListFavorites(context.Background())
	assert.ErrorIs(t, err, model.ErrUnauthorized)

	// 無効なトークンも拒否
	c.SetCredential("invalid-token")
	_, err = c.ListFavorites(context.Background())
	assert.ErrorIs(t, err, model.ErrUnauthorized)
}

func TestAPIClient_お気に入りの登録と解除(t *testing.T) {
	server, verifier := setupTestServer(t)
	c := New(server.URL)
	c.SetCredential(memberToken(t, verifier))
	ctx := context.Background()

	require.NoError(t, c.AddFavorite(ctx, "kinkakuji"))
	// 冪等
	require.NoError(t, c.AddFavorite(ctx, "kinkakuji"))

	favorites, err := c.ListFavorites(ctx)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "kinkakuji", favorites[0].ItemID)

	require.NoError(t, c.RemoveFavorite(ctx, "kinkakuji"))
	favorites, err = c.ListFavorites(ctx)
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestAPIClient_コメントの作成と取得(t *testing.T) {
	server, verifier := setupTestServer(t)
	c := New(server.URL)
	c.SetCredential(memberToken(t, verifier))
	ctx := context.Background()

	created, err := c.CreateComment(ctx, &model.Comment{
		TargetID: "kinkakuji", Name: "金閣寺", Body: "素晴らしい", Rating: 5,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	comments, err := c.ListComments(ctx, "kinkakuji")
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "素晴らしい", comments[0].Body)

	// バリデーションエラーはリクエスト失敗として返る
	_, err = c.CreateComment(ctx, &model.Comment{TargetID: "kinkakuji", Body: "", Rating: 5})
	assert.ErrorIs(t, err, model.ErrRequestFailed)
}

func TestAPIClient_検索履歴(t *testing.T) {
	server, verifier := setupTestServer(t)
	c := New(server.URL)
	c.SetCredential(memberToken(t, verifier))
	ctx := context.Background()

	require.NoError(t, c.SaveSearchQuery(ctx, "温泉"))
	require.NoError(t, c.SaveSearchQuery(ctx, "絶景"))
	require.NoError(t, c.SaveSearchQuery(ctx, "温泉"))

	history, err := c.ListSearchHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "温泉", history[0].Query)
	assert.Equal(t, "絶景", history[1].Query)
}
