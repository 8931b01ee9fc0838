// Package client はSpotMap-AppバックエンドAPIのHTTPクライアントを提供する。
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"SpotMap-App/internal/domain/model"
)

const requestTimeout = 30 * time.Second

// APIClient SpotMap-AppバックエンドのHTTPクライアント。
// repository.MemberAPIを実装し、認証遷移時にSetCredentialでトークンを差し替える。
type APIClient struct {
	baseURL    string
	credential string
	httpClient *http.Client
}

// New 新しいAPIクライアントを作成
func New(baseURL string) *APIClient {
	return &APIClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// SetCredential ベアラートークンを設定する。空文字で未認証状態に戻す。
func (c *APIClient) SetCredential(credential string) {
	c.credential = credential
}

// ListSpots スポットカタログを取得する
func (c *APIClient) ListSpots(ctx context.Context) ([]model.Place, error) {
	var resp struct {
		Spots []model.Place `json:"spots"`
	}
	if err := c.get(ctx, "/api/spots", &resp); err != nil {
		return nil, err
	}
	return resp.Spots, nil
}

// GetGeoTree 地域階層ツリーを取得する
func (c *APIClient) GetGeoTree(ctx context.Context) (model.GeoTree, error) {
	var tree model.GeoTree
	if err := c.get(ctx, "/api/geo", &tree); err != nil {
		return nil, err
	}
	return tree, nil
}

// GetBoundary 行政境界ポリゴンを取得する。境界が無い場合は (nil, nil)。
func (c *APIClient) GetBoundary(ctx context.Context, prefKey, cityKey string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("pref", prefKey)
	if cityKey != "" {
		params.Set("city", cityKey)
	}

	var resp model.BoundaryResponse
	if err := c.get(ctx, "/api/geo-boundary?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	if string(resp.GeoJSON) == "null" {
		return nil, nil
	}
	return resp.GeoJSON, nil
}

// ListFavorites お気に入り一覧を取得する
func (c *APIClient) ListFavorites(ctx context.Context) ([]model.Favorite, error) {
	var resp struct {
		Items []model.Favorite `json:"items"`
	}
	if err := c.get(ctx, "/api/favorites", &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// AddFavorite お気に入りを登録する
func (c *APIClient) AddFavorite(ctx context.Context, itemID string) error {
	body := map[string]string{"item_id": itemID}
	return c.post(ctx, "/api/favorites", body, nil)
}

// RemoveFavorite お気に入りを解除する
func (c *APIClient) RemoveFavorite(ctx context.Context, itemID string) error {
	return c.doDelete(ctx, "/api/favorites/"+url.PathEscape(itemID))
}

// ListComments 対象スポットのコメント一覧を取得する
func (c *APIClient) ListComments(ctx context.Context, targetID string) ([]model.Comment, error) {
	params := url.Values{}
	params.Set("target_id", targetID)

	var resp struct {
		Comments []model.Comment `json:"comments"`
	}
	if err := c.get(ctx, "/api/comments?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	return resp.Comments, nil
}

// CreateComment コメントを作成する
func (c *APIClient) CreateComment(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	body := map[string]any{
		"target_id":   comment.TargetID,
		"target_name": comment.Name,
		"author":      comment.Author,
		"body":        comment.Body,
		"rating":      comment.Rating,
	}

	var created model.Comment
	if err := c.post(ctx, "/api/comments", body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListSearchHistory 検索履歴を取得する
func (c *APIClient) ListSearchHistory(ctx context.Context) ([]model.SearchQuery, error) {
	var resp struct {
		Queries []model.SearchQuery `json:"queries"`
	}
	if err := c.get(ctx, "/api/search-history", &resp); err != nil {
		return nil, err
	}
	return resp.Queries, nil
}

// SaveSearchQuery 検索クエリを履歴に保存する
func (c *APIClient) SaveSearchQuery(ctx context.Context, query string) error {
	body := map[string]string{"query": query}
	return c.post(ctx, "/api/search-history", body, nil)
}

func (c *APIClient) get(ctx context.Context, path string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("リクエストの作成失敗: %w", err)
	}
	return c.do(req, result)
}

func (c *APIClient) post(ctx context.Context, path string, body any, result any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("リクエストボディのマーシャル失敗: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("リクエストの作成失敗: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, result)
}

func (c *APIClient) doDelete(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("リクエストの作成失敗: %w", err)
	}
	return c.do(req, nil)
}

// do 認証ヘッダーを付与してリクエストを実行し、レスポンスをデコードする
func (c *APIClient) do(req *http.Request, result any) error {
	if c.credential != "" {
		req.Header.Set("Authorization", "Bearer "+c.credential)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("レスポンスの読み取り失敗: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return model.ErrUnauthorized
	}
	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			return fmt.Errorf("%w: %s", model.ErrRequestFailed, errResp.Error)
		}
		return fmt.Errorf("%w: %s", model.ErrRequestFailed, http.StatusText(resp.StatusCode))
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("レスポンスのデコード失敗: %w", err)
		}
	}

	return nil
}
