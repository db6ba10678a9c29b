package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"Ringmaster-Agent/internal/database"
	"Ringmaster-Agent/internal/domain/model"
	domainRepo "Ringmaster-Agent/internal/domain/repository"
)

// SupabasePlacesRepository Supabase (PostgREST) を使用したホテル・イベント検索リポジトリ
type SupabasePlacesRepository struct {
	client *database.SupabaseClient
}

func NewSupabasePlacesRepository(client *database.SupabaseClient) domainRepo.PlacesRepository {
	return &SupabasePlacesRepository{
		client: client,
	}
}

func (r *SupabasePlacesRepository) FindHotelsByCity(ctx context.Context, city string, limit int) ([]model.Place, error) {
	return r.findByCity(ctx, model.CollectionHotels, city, limit)
}

func (r *SupabasePlacesRepository) FindEventsByCity(ctx context.Context, city string, limit int) ([]model.Place, error) {
	return r.findByCity(ctx, model.CollectionEvents, city, limit)
}

// findByCity PostgRESTのilikeフィルタで都市名の部分一致検索を行う
func (r *SupabasePlacesRepository) findByCity(ctx context.Context, table, city string, limit int) ([]model.Place, error) {
	data, count, err := r.client.GetClient().From(table).
		Select("*", "exact", false).
		Ilike("city", "%"+city+"%").
		Limit(limit, "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("%sテーブルの検索に失敗: %w", table, err)
	}
	_ = count

	var rawRecords []map[string]interface{}
	if err := json.Unmarshal([]byte(data), &rawRecords); err != nil {
		return nil, fmt.Errorf("%sデータのJSONアンマーシャル失敗: %w", table, err)
	}

	places := make([]model.Place, 0, len(rawRecords))
	for _, raw := range rawRecords {
		var id string
		if rawID, ok := raw["id"]; ok {
			id = stringifyReference(rawID)
			delete(raw, "id")
		}
		places = append(places, NormalizePlace(id, raw))
	}

	return places, nil
}
