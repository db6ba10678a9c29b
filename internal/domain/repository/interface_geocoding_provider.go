package repository

import (
	"context"

	"Ringmaster-Agent/internal/domain/model"
)

// GeocodingProvider 都市名から座標を解決するプロバイダインターフェース
type GeocodingProvider interface {
	// GetCoordinates は都市名を座標に解決する
	// サービスエラー・非成功ステータス・マッチなしの場合は(nil, error)を返す
	// リトライは行わない
	GetCoordinates(ctx context.Context, city string) (*model.Coordinates, error)
}
