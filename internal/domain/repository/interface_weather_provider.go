package repository

import (
	"context"

	"Ringmaster-Agent/internal/domain/model"
)

// WeatherProvider 天気情報取得の責務を持つプロバイダインターフェース
type WeatherProvider interface {
	// GetCurrentWeather は都市の現在の天気を取得する
	// 外部APIの失敗時はモック値に劣化するため、戻り値は必ず非nil
	GetCurrentWeather(ctx context.Context, city string) *model.WeatherInfo
}
