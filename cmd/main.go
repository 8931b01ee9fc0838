package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/paulmach/orb"

	"SpotMap-App/internal/domain/repository"
	"SpotMap-App/internal/handler"
	"SpotMap-App/internal/infrastructure/database"
	"SpotMap-App/internal/infrastructure/firestore"
	"SpotMap-App/internal/infrastructure/identity"
	repoimpl "SpotMap-App/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	ctx := context.Background()

	verifier, err := identity.NewTokenVerifier()
	if err != nil {
		log.Fatalf("トークン検証器の初期化失敗: %v", err)
	}

	fmt.Println("Initializing PostgreSQL client...")
	postgresClient, err := database.NewPostgreSQLClient()
	if err != nil {
		log.Fatalf("PostgreSQLクライアント初期化失敗: %v", err)
	}
	defer postgresClient.Close()

	if err := postgresClient.HealthCheck(); err != nil {
		log.Fatalf("PostgreSQLヘルスチェック失敗: %v", err)
	}
	fmt.Println("✅ PostgreSQL connection successful!")

	// Firestoreは境界データ配信用。未設定ならば境界なしで起動する。
	var boundaryRepo repository.BoundaryRepository = nullBoundaryRepository{}
	if projectID := os.Getenv("FIRESTORE_PROJECT_ID"); projectID != "" {
		firestoreClient, err := firestore.NewFirestoreClient(ctx, projectID)
		if err != nil {
			log.Fatalf("Firestoreクライアント初期化失敗: %v", err)
		}
		defer firestoreClient.Close()
		boundaryRepo = repoimpl.NewFirestoreBoundaryRepository(firestoreClient.GetClient())
	} else {
		fmt.Println("⚠️ FIRESTORE_PROJECT_ID未設定のため境界データなしで起動します")
	}

	placesRepo := repoimpl.NewPostgresPlacesRepository(postgresClient)
	favoritesRepo := repoimpl.NewPostgresFavoritesRepository(postgresClient)
	commentsRepo := repoimpl.NewPostgresCommentsRepository(postgresClient)
	historyRepo := repoimpl.NewPostgresSearchHistoryRepository(postgresClient)

	placesHandler := handler.NewPlacesHandler(placesRepo, boundaryRepo)
	if err := placesHandler.LoadCatalog(ctx); err != nil {
		log.Fatalf("カタログの読み込み失敗: %v", err)
	}

	r := handler.SetupRouter(handler.RouterDeps{
		Places:        placesHandler,
		Favorites:     handler.NewFavoritesHandler(favoritesRepo),
		Comments:      handler.NewCommentsHandler(commentsRepo),
		SearchHistory: handler.NewSearchHistoryHandler(historyRepo),
		Verifier:      verifier,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("SpotMap-App server starting on :%s...\n", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("サーバーの起動失敗: %v", err)
	}
}

// nullBoundaryRepository Firestore未設定時のフォールバック。常に境界なしを返す。
type nullBoundaryRepository struct{}

func (nullBoundaryRepository) Get(ctx context.Context, prefKey, cityKey string) (orb.MultiPolygon, error) {
	return nil, nil
}
