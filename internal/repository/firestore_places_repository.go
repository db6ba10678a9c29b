package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"Ringmaster-Agent/internal/domain/model"
	domainRepo "Ringmaster-Agent/internal/domain/repository"
)

// FirestorePlacesRepository Firestoreを使用したホテル・イベント検索リポジトリ
type FirestorePlacesRepository struct {
	client *firestore.Client
}

// NewFirestorePlacesRepository 新しいFirestorePlacesRepositoryインスタンスを作成
func NewFirestorePlacesRepository(client *firestore.Client) domainRepo.PlacesRepository {
	return &FirestorePlacesRepository{
		client: client,
	}
}

func (r *FirestorePlacesRepository) FindHotelsByCity(ctx context.Context, city string, limit int) ([]model.Place, error) {
	return r.findByCity(ctx, model.CollectionHotels, city, limit)
}

func (r *FirestorePlacesRepository) FindEventsByCity(ctx context.Context, city string, limit int) ([]model.Place, error) {
	return r.findByCity(ctx, model.CollectionEvents, city, limit)
}

// findByCity コレクションを取得してクライアント側で都市名の部分一致フィルタを行う
// Firestoreには部分一致演算子がないため、全件取得してフィルタリングする
func (r *FirestorePlacesRepository) findByCity(ctx context.Context, collection, city string, limit int) ([]model.Place, error) {
	docs, err := r.client.Collection(collection).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("%sコレクションの取得に失敗: %w", collection, err)
	}

	places := make([]model.Place, 0, limit)
	for _, doc := range docs {
		if len(places) >= limit {
			break
		}

		raw := doc.Data()
		recordCity, _ := raw["city"].(string)
		if !MatchesCity(recordCity, city) {
			continue
		}

		// ドキュメントIDとDocumentRef参照を文字列化した新しいレコードを構築する
		places = append(places, NormalizePlace(doc.Ref.ID, raw))
	}

	return places, nil
}
