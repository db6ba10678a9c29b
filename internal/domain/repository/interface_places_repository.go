package repository

import (
	"context"

	"Ringmaster-Agent/internal/domain/model"
)

// PlacesRepository ホテル・イベントのドキュメントストア検索インターフェース
// 都市名の大文字小文字を区別しない部分一致で検索し、ストア順で最大limit件を返す
// ヒットなしはエラーではなく空スライスで表現する
type PlacesRepository interface {
	FindHotelsByCity(ctx context.Context, city string, limit int) ([]model.Place, error)
	FindEventsByCity(ctx context.Context, city string, limit int) ([]model.Place, error)
}
