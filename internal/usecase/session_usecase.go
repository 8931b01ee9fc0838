package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"SpotMap-App/internal/domain/model"
	"SpotMap-App/internal/domain/repository"
	"SpotMap-App/internal/domain/service"
)

// CredentialCarrier 認証遷移時にベアラートークンを差し替えられるMemberAPI実装
type CredentialCarrier interface {
	SetCredential(credential string)
}

// SessionUseCase 認証セッションに紐づく状態（お気に入り・コメントキャッシュ・検索履歴）。
// 認証遷移のたびにキャッシュ全体を無効化する。未認証の間、お気に入り集合と
// 検索履歴は常に空として読める。
type SessionUseCase interface {
	// OnAuthChange 認証プロバイダからの遷移イベントを適用する。
	// コメントキャッシュは無条件でクリアし、認証成立時はお気に入りと検索履歴を
	// バックエンドから取り直す。進行中だったフィルタ・描画パスは遷移完了後に
	// 必ず再実行すること。
	OnAuthChange(ctx context.Context, user *model.AuthUser, credential string) error

	IsAuthenticated() bool
	CurrentUser() *model.AuthUser

	// FavoriteIDs 現在のお気に入りID集合（未認証時は空）
	FavoriteIDs() map[string]bool
	IsFavorite(placeID string) bool

	// ToggleFavorite お気に入りを楽観的に反転し、対応するリクエストを発行する。
	// 未認証ならネットワーク送信せずに拒否。リクエスト失敗時もローカルの反転は
	// 巻き戻さない（元実装の挙動を踏襲。DESIGN.md参照）。
	ToggleFavorite(ctx context.Context, placeID string) (bool, error)

	// EnsureComments コメント一覧を返す。キャッシュがあればそれを、なければ取得して
	// キャッシュする。取得失敗時は空を返しキャッシュしない（次回の呼び出しで再試行）。
	EnsureComments(ctx context.Context, placeID string) ([]model.Comment, error)

	// CachedComments キャッシュ済みコメントのみを返す（取得は行わない）
	CachedComments(placeID string) []model.Comment

	// SubmitComment 入力検証のうえコメントを作成し、成功時のみキャッシュの先頭に挿入する
	SubmitComment(ctx context.Context, placeID, placeName, body string, rating int, author string) (*model.Comment, error)

	// Rating キャッシュ済みコメントから平均評価を計算する（キャッシュ外の取得はしない）
	Rating(placeID string) service.RatingSummary

	// SearchHistory 検索履歴（新しい順、未認証時は空）
	SearchHistory() []model.SearchQuery

	// RecordSearch 検索クエリを履歴に記録する（ローカル即時反映＋バックエンド保存）
	RecordSearch(ctx context.Context, query string) error
}

// sessionUseCaseImpl SessionUseCaseの実装
type sessionUseCaseImpl struct {
	api repository.MemberAPI

	authenticated bool
	user          *model.AuthUser

	favoriteIDs   map[string]bool
	commentCache  map[string][]model.Comment
	searchHistory []model.SearchQuery

	// 認証遷移のたびに進める世代カウンタ。遷移をまたいだ取得結果は破棄する。
	generation uint64
}

// NewSessionUseCase SessionUseCaseの新しいインスタンスを作成
func NewSessionUseCase(api repository.MemberAPI) SessionUseCase {
	return &sessionUseCaseImpl{
		api:          api,
		favoriteIDs:  make(map[string]bool),
		commentCache: make(map[string][]model.Comment),
	}
}

// OnAuthChange 認証遷移を適用する
func (s *sessionUseCaseImpl) OnAuthChange(ctx context.Context, user *model.AuthUser, credential string) error {
	s.generation++
	s.authenticated = user != nil && credential != ""
	s.user = user

	// コメントキャッシュは遷移のたびに無条件でクリア
	s.commentCache = make(map[string][]model.Comment)
	s.favoriteIDs = make(map[string]bool)
	s.searchHistory = nil

	if carrier, ok := s.api.(CredentialCarrier); ok {
		if s.authenticated {
			carrier.SetCredential(credential)
		} else {
			carrier.SetCredential("")
		}
	}

	if !s.authenticated {
		log.Printf("セッション終了: 会員状態をクリアしました")
		return nil
	}

	log.Printf("セッション開始 (uid: %s)", user.UID)
	gen := s.generation

	favorites, err := s.api.ListFavorites(ctx)
	if err != nil {
		return fmt.Errorf("お気に入り一覧の取得失敗: %w", err)
	}
	history, err := s.api.ListSearchHistory(ctx)
	if err != nil {
		return fmt.Errorf("検索履歴の取得失敗: %w", err)
	}

	if s.generation != gen {
		// 取得中に別の認証遷移が完了している。結果は捨てる。
		return nil
	}

	for _, fav := range favorites {
		s.favoriteIDs[fav.ItemID] = true
	}
	s.searchHistory = history
	return nil
}

func (s *sessionUseCaseImpl) IsAuthenticated() bool {
	return s.authenticated
}

func (s *sessionUseCaseImpl) CurrentUser() *model.AuthUser {
	return s.user
}

// FavoriteIDs お気に入りID集合のコピーを返す
func (s *sessionUseCaseImpl) FavoriteIDs() map[string]bool {
	ids := make(map[string]bool, len(s.favoriteIDs))
	for id := range s.favoriteIDs {
		ids[id] = true
	}
	return ids
}

func (s *sessionUseCaseImpl) IsFavorite(placeID string) bool {
	return s.favoriteIDs[placeID]
}

// ToggleFavorite お気に入りを楽観的に反転する
func (s *sessionUseCaseImpl) ToggleFavorite(ctx context.Context, placeID string) (bool, error) {
	if !s.authenticated {
		return false, model.ErrUnauthorized
	}

	nowFavorite := !s.favoriteIDs[placeID]
	if nowFavorite {
		s.favoriteIDs[placeID] = true
	} else {
		delete(s.favoriteIDs, placeID)
	}

	var err error
	if nowFavorite {
		err = s.api.AddFavorite(ctx, placeID)
	} else {
		err = s.api.RemoveFavorite(ctx, placeID)
	}
	if err != nil {
		return nowFavorite, fmt.Errorf("お気に入りの更新リクエスト失敗: %w", err)
	}
	return nowFavorite, nil
}

// EnsureComments コメント一覧を取得またはキャッシュから返す
func (s *sessionUseCaseImpl) EnsureComments(ctx context.Context, placeID string) ([]model.Comment, error) {
	if !s.authenticated {
		return nil, model.ErrUnauthorized
	}

	if cached, ok := s.commentCache[placeID]; ok {
		return cached, nil
	}

	gen := s.generation
	comments, err := s.api.ListComments(ctx, placeID)
	if err != nil {
		// 失敗はキャッシュしない（次回の呼び出しで再試行できるようにする）
		return []model.Comment{}, fmt.Errorf("コメント一覧の取得失敗: %w", err)
	}
	if s.generation != gen {
		// 取得中に認証遷移が完了している。結果は捨て、次のパスで取り直す。
		return []model.Comment{}, nil
	}
	if comments == nil {
		comments = []model.Comment{}
	}

	s.commentCache[placeID] = comments
	return comments, nil
}

func (s *sessionUseCaseImpl) CachedComments(placeID string) []model.Comment {
	return s.commentCache[placeID]
}

// SubmitComment コメントを検証・作成する
func (s *sessionUseCaseImpl) SubmitComment(ctx context.Context, placeID, placeName, body string, rating int, author string) (*model.Comment, error) {
	if !s.authenticated {
		return nil, model.ErrUnauthorized
	}

	comment := &model.Comment{
		TargetID: placeID,
		Name:     placeName,
		Author:   strings.TrimSpace(author),
		Body:     strings.TrimSpace(body),
		Rating:   rating,
	}
	if err := comment.Validate(); err != nil {
		return nil, err
	}

	created, err := s.api.CreateComment(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("コメントの作成失敗: %w", err)
	}

	// 確認後に反映する楽観的更新。未取得のスポットには部分的なリストを
	// 作らない（次のEnsureCommentsで全件取得させる）。
	if cached, ok := s.commentCache[placeID]; ok {
		s.commentCache[placeID] = append([]model.Comment{*created}, cached...)
	}

	return created, nil
}

// Rating キャッシュ済みコメントから平均評価を計算する
func (s *sessionUseCaseImpl) Rating(placeID string) service.RatingSummary {
	return service.AggregateRating(s.commentCache[placeID])
}

// SearchHistory 検索履歴のコピーを返す
func (s *sessionUseCaseImpl) SearchHistory() []model.SearchQuery {
	history := make([]model.SearchQuery, len(s.searchHistory))
	copy(history, s.searchHistory)
	return history
}

// RecordSearch 検索クエリを履歴に記録する
func (s *sessionUseCaseImpl) RecordSearch(ctx context.Context, query string) error {
	if !s.authenticated {
		return model.ErrUnauthorized
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return model.ErrValidation
	}

	// ローカルは即時反映: 同一クエリを除いて先頭に積み、上限で切り詰める
	updated := []model.SearchQuery{{Query: query, Timestamp: time.Now()}}
	for _, q := range s.searchHistory {
		if q.Query != query {
			updated = append(updated, q)
		}
	}
	if len(updated) > model.SearchHistoryLimit {
		updated = updated[:model.SearchHistoryLimit]
	}
	s.searchHistory = updated

	if err := s.api.SaveSearchQuery(ctx, query); err != nil {
		return fmt.Errorf("検索履歴の保存失敗: %w", err)
	}
	return nil
}
