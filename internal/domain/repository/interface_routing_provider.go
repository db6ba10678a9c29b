package repository

import (
	"context"

	"Ringmaster-Agent/internal/domain/model"
)

// RoutingProvider 出発地から目的地までの経路情報を取得するプロバイダインターフェース
type RoutingProvider interface {
	// GetRouteInfo は固定の出発地から目的地都市までの車での経路情報を取得する
	// ジオコーディングやルーティングの失敗時は"Unknown"フィールドに劣化するため、
	// 戻り値は必ず非nil
	GetRouteInfo(ctx context.Context, destinationCity string) *model.RouteInfo
}
