package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SpotMap-App/internal/domain/model"
	"SpotMap-App/internal/infrastructure/identity"
)

type stubPlacesRepo struct {
	places []model.Place
}

func (s *stubPlacesRepo) List(ctx context.Context) ([]model.Place, error) {
	return s.places, nil
}

func (s *stubPlacesRepo) GetByID(ctx context.Context, id string) (*model.Place, error) {
	return nil, assert.AnError
}

type stubBoundaryRepo struct{}

func (stubBoundaryRepo) Get(ctx context.Context, prefKey, cityKey string) (orb.MultiPolygon, error) {
	return nil, nil
}

type stubCommentsRepo struct{}

func (stubCommentsRepo) ListByTarget(ctx context.Context, uid, targetID string) ([]model.Comment, error) {
	return nil, nil
}

func (stubCommentsRepo) Create(ctx context.Context, uid string, comment *model.Comment) (*model.Comment, error) {
	if err := comment.Validate(); err != nil {
		return nil, err
	}
	created := *comment
	created.ID = "c1"
	return &created, nil
}

type stubFavoritesRepo struct{}

func (stubFavoritesRepo) List(ctx context.Context, uid string) ([]model.Favorite, error) {
	return nil, nil
}
func (stubFavoritesRepo) Add(ctx context.Context, uid, itemID string) error    { return nil }
func (stubFavoritesRepo) Remove(ctx context.Context, uid, itemID string) error { return nil }

type stubHistoryRepo struct{}

func (stubHistoryRepo) List(ctx context.Context, uid string) ([]model.SearchQuery, error) {
	return nil, nil
}
func (stubHistoryRepo) Save(ctx context.Context, uid, query string) error { return nil }

func setupTestRouter(t *testing.T) (*gin.Engine, *identity.TokenVerifier) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	verifier := identity.NewTokenVerifierWithSecret("test-secret")

	places := NewPlacesHandler(&stubPlacesRepo{places: []model.Place{
		{ID: "kinkakuji", Name: "金閣寺", Lat: 35.0394, Lon: 135.7292, HasCoords: true,
			Prefecture: "京都府", City: "京都市", Region: "近畿"},
	}}, stubBoundaryRepo{})
	require.NoError(t, places.LoadCatalog(context.Background()))

	router := SetupRouter(RouterDeps{
		Places:        places,
		Favorites:     NewFavoritesHandler(stubFavoritesRepo{}),
		Comments:      NewCommentsHandler(stubCommentsRepo{}),
		SearchHistory: NewSearchHistoryHandler(stubHistoryRepo{}),
		Verifier:      verifier,
	})
	return router, verifier
}

func doRequest(router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRouter_公開エンドポイント(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/api/public", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/api/spots", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Spots []model.Place `json:"spots"`
		Count int           `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
}

func TestRouter_スポット検索クエリ(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/spots?q=%E9%87%91%E9%96%A3%E5%AF%BA", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)

	// 一致しないクエリは0件（空配列で返る）
	w = doRequest(router, http.MethodGet, "/api/spots?q=zzz", "", "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Zero(t, resp.Count)
	assert.Contains(t, w.Body.String(), `"spots":[]`)
}

func TestRouter_境界はprefパラメータ必須(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/geo-boundary", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 境界が無い場合でも200で geojson: null
	w = doRequest(router, http.MethodGet, "/api/geo-boundary?pref=%E4%BA%AC%E9%83%BD%E5%BA%9C", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"geojson":null`)
}

func TestRouter_会員エンドポイントの認証(t *testing.T) {
	router, verifier := setupTestRouter(t)

	paths := []string{"/api/member-only", "/api/favorites", "/api/comments?target_id=x", "/api/search-history"}
	for _, path := range paths {
		w := doRequest(router, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}

	token, err := verifier.Issue(&model.AuthUser{UID: "user-1"})
	require.NoError(t, err)

	w := doRequest(router, http.MethodGet, "/api/member-only", token, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestRouter_コメント作成のバリデーション(t *testing.T) {
	router, verifier := setupTestRouter(t)
	token, err := verifier.Issue(&model.AuthUser{UID: "user-1"})
	require.NoError(t, err)

	// target_id欠落はバインドエラー
	w := doRequest(router, http.MethodPost, "/api/comments", token, `{"body":"良い","rating":5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 評価が範囲外
	w = doRequest(router, http.MethodPost, "/api/comments", token, `{"target_id":"x","body":"良い","rating":9}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 正常系
	w = doRequest(router, http.MethodPost, "/api/comments", token, `{"target_id":"x","body":"良い","rating":5}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRouter_検索履歴のバリデーション(t *testing.T) {
	router, verifier := setupTestRouter(t)
	token, err := verifier.Issue(&model.AuthUser{UID: "user-1"})
	require.NoError(t, err)

	w := doRequest(router, http.MethodPost, "/api/search-history", token, `{"query":"   "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodPost, "/api/search-history", token, `{"query":"温泉"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}
