package repository

import (
	"context"
	"fmt"

	"Ringmaster-Agent/internal/domain/model"
	domainRepo "Ringmaster-Agent/internal/domain/repository"
	"Ringmaster-Agent/internal/infrastructure/database"
)

// PostgresPlacesRepository PostgreSQL直接接続を使用したホテル・イベント検索リポジトリ
type PostgresPlacesRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresPlacesRepository(client *database.PostgreSQLClient) domainRepo.PlacesRepository {
	return &PostgresPlacesRepository{
		client: client,
	}
}

func (r *PostgresPlacesRepository) FindHotelsByCity(ctx context.Context, city string, limit int) ([]model.Place, error) {
	return r.findByCity(ctx, model.CollectionHotels, city, limit)
}

func (r *PostgresPlacesRepository) FindEventsByCity(ctx context.Context, city string, limit int) ([]model.Place, error) {
	return r.findByCity(ctx, model.CollectionEvents, city, limit)
}

// findByCity ILIKEによる部分一致検索でテーブルからレコードを取得する
// テーブルスキーマに依存しないよう、カラム名を動的に解決してマップに詰め替える
func (r *PostgresPlacesRepository) findByCity(ctx context.Context, table, city string, limit int) ([]model.Place, error) {
	query := fmt.Sprintf(`SELECT * FROM %s WHERE city ILIKE '%%' || $1 || '%%' LIMIT $2`, table)

	rows, err := r.client.DB.QueryContext(ctx, query, city, limit)
	if err != nil {
		return nil, fmt.Errorf("%sテーブルの検索に失敗: %w", table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("カラム情報の取得に失敗: %w", err)
	}

	places := make([]model.Place, 0, limit)
	for rows.Next() {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("%sレコードのスキャンに失敗: %w", table, err)
		}

		raw := make(map[string]interface{}, len(columns))
		var id string
		for i, column := range columns {
			value := values[i]
			// lib/pqはテキスト系カラムを[]byteで返す
			if b, ok := value.([]byte); ok {
				value = string(b)
			}
			if column == "id" {
				id = stringifyReference(value)
				continue
			}
			raw[column] = value
		}

		places = append(places, NormalizePlace(id, raw))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%sレコードの読み取りに失敗: %w", table, err)
	}

	return places, nil
}
