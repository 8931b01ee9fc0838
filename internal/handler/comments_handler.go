package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"SpotMap-App/internal/domain/model"
	"SpotMap-App/internal/domain/repository"
	"SpotMap-App/internal/domain/service"
)

// CommentsHandler 会員コメントAPIのハンドラー
type CommentsHandler struct {
	commentsRepo repository.CommentsRepository
}

// NewCommentsHandler 新しいCommentsHandlerインスタンスを作成
func NewCommentsHandler(commentsRepo repository.CommentsRepository) *CommentsHandler {
	return &CommentsHandler{
		commentsRepo: commentsRepo,
	}
}

// commentRequest コメント作成リクエスト
type commentRequest struct {
	TargetID   string `json:"target_id" binding:"required"`
	TargetName string `json:"target_name"`
	Author     string `json:"author"`
	Body       string `json:"body"`
	Rating     int    `json:"rating"`
}

// GetComments 対象スポットのコメント一覧と平均評価を返すエンドポイント
// GET /api/comments?target_id=xxx
func (h *CommentsHandler) GetComments(c *gin.Context) {
	targetID := c.Query("target_id")
	if targetID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "target_idパラメータが指定されていません",
		})
		return
	}

	comments, err := h.commentsRepo.ListByTarget(c.Request.Context(), currentUID(c), targetID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "コメント一覧の取得に失敗しました",
			"details": err.Error(),
		})
		return
	}
	if comments == nil {
		comments = []model.Comment{}
	}

	c.JSON(http.StatusOK, gin.H{
		"comments": comments,
		"rating":   service.AggregateRating(comments),
	})
}

// PostComment コメントを作成するエンドポイント
// POST /api/comments
func (h *CommentsHandler) PostComment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	comment := &model.Comment{
		TargetID: req.TargetID,
		Name:     req.TargetName,
		Author:   req.Author,
		Body:     req.Body,
		Rating:   req.Rating,
	}

	created, err := h.commentsRepo.Create(c.Request.Context(), currentUID(c), comment)
	if err != nil {
		if errors.Is(err, model.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "バリデーションエラー",
				"details": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "コメントの作成に失敗しました",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, created)
}
