package repository

import (
	"context"

	"SpotMap-App/internal/domain/model"
)

// CommentsRepository 会員コメントの永続化
type CommentsRepository interface {
	// ListByTarget uidが対象スポットに付けたコメントを新しい順で取得
	ListByTarget(ctx context.Context, uid, targetID string) ([]model.Comment, error)

	// Create コメントを作成し、ID・作成日時を付与して返す
	Create(ctx context.Context, uid string, comment *model.Comment) (*model.Comment, error)
}
