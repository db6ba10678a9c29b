package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"Ringmaster-Agent/internal/database"
	"Ringmaster-Agent/internal/domain/repository"
	"Ringmaster-Agent/internal/handler"
	pgdb "Ringmaster-Agent/internal/infrastructure/database"
	fsinfra "Ringmaster-Agent/internal/infrastructure/firestore"
	"Ringmaster-Agent/internal/infrastructure/maps"
	"Ringmaster-Agent/internal/infrastructure/weather"
	repoImpl "Ringmaster-Agent/internal/repository"
	"Ringmaster-Agent/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	ctx := context.Background()

	// 天気APIキーは任意。未設定の場合はモックモードで動作する
	weatherAPIKey := os.Getenv("OPENWEATHER_API_KEY")
	if weatherAPIKey == "" {
		fmt.Println("⚠️  OPENWEATHER_API_KEYが未設定のため、天気はモックモードで動作します")
	}

	// ホテル・イベントストアの初期化
	placesRepo, cleanup, err := buildPlacesRepository(ctx)
	if err != nil {
		log.Fatalf("ストアの初期化に失敗: %v", err)
	}
	defer cleanup()

	// プロバイダとユースケースの組み立て
	weatherProvider := weather.NewOpenWeatherProvider(weatherAPIKey)
	geocodingProvider := maps.NewNominatimGeocodingProvider()
	routingProvider := maps.NewOSRMRoutingProvider(geocodingProvider)
	tripPlanUseCase := usecase.NewTripPlanUseCase(weatherProvider, routingProvider, placesRepo)

	// HTTPハンドラーの設定
	tripPlanHandler := handler.NewTripPlanHandler(tripPlanUseCase)

	router := gin.Default()
	router.GET("/", tripPlanHandler.GetRoot)
	router.GET("/api/health", tripPlanHandler.GetHealth)
	router.POST("/plan-trip", tripPlanHandler.PostPlanTrip)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8001"
	}

	fmt.Printf("Ringmaster Agent server starting on :%s...\n", port)
	log.Fatal(router.Run(":" + port))
}

// buildPlacesRepository はPLACES_BACKEND環境変数に応じたストア実装を初期化する
// firestore（デフォルト） / postgres / supabase
func buildPlacesRepository(ctx context.Context) (repository.PlacesRepository, func(), error) {
	backend := os.Getenv("PLACES_BACKEND")
	if backend == "" {
		backend = "firestore"
	}

	switch backend {
	case "firestore":
		projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
		if projectID == "" {
			fmt.Println("⚠️  環境変数が設定されていません:")
			fmt.Println("必要な環境変数: GOOGLE_CLOUD_PROJECT")
			fmt.Println("\n.envファイルを作成するか、環境変数を設定してください")
			return nil, nil, fmt.Errorf("GOOGLE_CLOUD_PROJECT環境変数が設定されていません")
		}

		fmt.Println("Initializing Firestore client...")
		firestoreClient, err := fsinfra.NewFirestoreClient(ctx, projectID)
		if err != nil {
			return nil, nil, fmt.Errorf("Firestoreクライアント初期化失敗: %w", err)
		}
		fmt.Println("✅ Firestore connection successful!")

		cleanup := func() { firestoreClient.Close() }
		return repoImpl.NewFirestorePlacesRepository(firestoreClient.GetClient()), cleanup, nil

	case "postgres":
		fmt.Println("Initializing PostgreSQL client...")
		postgresClient, err := pgdb.NewPostgreSQLClient()
		if err != nil {
			return nil, nil, fmt.Errorf("PostgreSQLクライアント初期化失敗: %w", err)
		}

		fmt.Println("Performing PostgreSQL health check...")
		if err := postgresClient.HealthCheck(); err != nil {
			return nil, nil, fmt.Errorf("PostgreSQLヘルスチェック失敗: %w", err)
		}
		fmt.Println("✅ PostgreSQL connection successful!")

		cleanup := func() { postgresClient.Close() }
		return repoImpl.NewPostgresPlacesRepository(postgresClient), cleanup, nil

	case "supabase":
		fmt.Println("Initializing Supabase client...")
		supabaseClient, err := database.NewSupabaseClient()
		if err != nil {
			return nil, nil, fmt.Errorf("Supabaseクライアント初期化失敗: %w", err)
		}

		fmt.Println("Performing Supabase health check...")
		if err := supabaseClient.HealthCheck(); err != nil {
			return nil, nil, fmt.Errorf("Supabaseヘルスチェック失敗: %w", err)
		}
		fmt.Println("✅ Supabase connection successful!")

		return repoImpl.NewSupabasePlacesRepository(supabaseClient), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("未対応のPLACES_BACKENDです: %s", backend)
	}
}
