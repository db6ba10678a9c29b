package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"Ringmaster-Agent/internal/domain/model"
	fsinfra "Ringmaster-Agent/internal/infrastructure/firestore"
)

// Firestoreのhotels/eventsコレクションにサンプルデータを投入するシードコマンド
func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	if projectID == "" {
		log.Fatal("GOOGLE_CLOUD_PROJECT環境変数が設定されていません")
	}

	ctx := context.Background()

	firestoreClient, err := fsinfra.NewFirestoreClient(ctx, projectID)
	if err != nil {
		log.Fatalf("Firestoreクライアント初期化失敗: %v", err)
	}
	defer firestoreClient.Close()

	client := firestoreClient.GetClient()

	for _, hotel := range sampleHotels() {
		docID := uuid.New().String()
		if _, err := client.Collection(model.CollectionHotels).Doc(docID).Set(ctx, hotel); err != nil {
			log.Fatalf("❌ ホテルの投入に失敗 (%s): %v", hotel["name"], err)
		}
		log.Printf("✅ Hotel seeded: %s (%s)", hotel["name"], docID)
	}

	for _, event := range sampleEvents() {
		docID := uuid.New().String()
		if _, err := client.Collection(model.CollectionEvents).Doc(docID).Set(ctx, event); err != nil {
			log.Fatalf("❌ イベントの投入に失敗 (%s): %v", event["place"], err)
		}
		log.Printf("✅ Event seeded: %s (%s)", event["place"], docID)
	}

	fmt.Println("🎉 シード投入完了")
}

func sampleHotels() []map[string]interface{} {
	return []map[string]interface{}{
		{
			"name":            "Jaipur Palace Hotel",
			"city":            "Jaipur",
			"address":         "12 Amer Road, Jaipur",
			"price_per_night": 85,
			"rating":          4.3,
			"amenities":       []string{"wifi", "pool", "breakfast"},
			"description":     "Heritage hotel near Amber Fort",
		},
		{
			"name":            "Pink City Residency",
			"city":            "Jaipur",
			"address":         "45 MI Road, Jaipur",
			"price_per_night": 60,
			"rating":          3.9,
			"amenities":       []string{"wifi", "parking"},
			"description":     "Budget stay in the old city",
		},
		{
			"name":            "Hotel Le Marais",
			"city":            "Paris",
			"address":         "8 Rue des Archives, Paris",
			"price_per_night": 150,
			"rating":          4.6,
			"amenities":       []string{"wifi", "breakfast"},
			"description":     "Boutique hotel in central Paris",
		},
	}
}

func sampleEvents() []map[string]interface{} {
	return []map[string]interface{}{
		{
			"city":        "Jaipur",
			"place":       "Albert Hall Museum",
			"type":        "Exhibition",
			"duration":    "2 hours",
			"description": "Rajasthani art and history exhibition",
			"organizer":   uuid.New().String(),
		},
		{
			"city":        "Paris",
			"place":       "Accor Arena",
			"type":        "Concert",
			"duration":    "3 hours",
			"description": "Evening concert",
			"organizer":   uuid.New().String(),
		},
	}
}
