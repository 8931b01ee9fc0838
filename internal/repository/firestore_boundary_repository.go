package repository

import (
	"context"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/paulmach/orb"

	"SpotMap-App/internal/domain/model"
	"SpotMap-App/internal/domain/repository"
)

const boundaryCollection = "geoBoundaries"

// FirestoreBoundaryRepository Firestoreに格納した行政境界GeoJSONのリポジトリ。
// ドキュメントIDは都道府県キー単独（"京都府"）または市区町村付き（"京都府_京都市"）。
type FirestoreBoundaryRepository struct {
	client *firestore.Client
}

// NewFirestoreBoundaryRepository 新しいFirestoreBoundaryRepositoryインスタンスを作成
func NewFirestoreBoundaryRepository(client *firestore.Client) repository.BoundaryRepository {
	return &FirestoreBoundaryRepository{
		client: client,
	}
}

// firestoreBoundaryDoc 境界ドキュメントの形式
type firestoreBoundaryDoc struct {
	GeoJSON string `firestore:"geojson"`
}

// Get 境界ポリゴンを取得する。ドキュメントが無い場合は (nil, nil) を返す。
func (r *FirestoreBoundaryRepository) Get(ctx context.Context, prefKey, cityKey string) (orb.MultiPolygon, error) {
	if prefKey == "" {
		return nil, nil
	}

	docID := prefKey
	if cityKey != "" {
		docID = prefKey + "_" + cityKey
	}

	doc, err := r.client.Collection(boundaryCollection).Doc(docID).Get(ctx)
	if err != nil {
		if status := err.Error(); strings.Contains(status, "NotFound") || strings.Contains(status, "not found") {
			return nil, nil
		}
		return nil, fmt.Errorf("境界ドキュメントの取得に失敗しました (%s): %w", docID, err)
	}

	var data firestoreBoundaryDoc
	if err := doc.DataTo(&data); err != nil {
		return nil, fmt.Errorf("境界ドキュメントの変換に失敗しました (%s): %w", docID, err)
	}
	if data.GeoJSON == "" {
		return nil, nil
	}

	boundary, err := model.BoundaryFromGeoJSON([]byte(data.GeoJSON))
	if err != nil {
		return nil, fmt.Errorf("境界GeoJSONのパースに失敗しました (%s): %w", docID, err)
	}

	log.Printf("✅ Boundary retrieved: %s", docID)
	return boundary, nil
}
