package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"Ringmaster-Agent/internal/domain/model"
	"Ringmaster-Agent/internal/domain/repository"
)

const defaultOSRMBaseURL = "http://router.project-osrm.org"

// OSRMRoutingProvider はOSRM APIを使用した経路検索の実装
// 出発地は固定（model.DefaultOriginCity）で、両都市をGeocodingProviderで解決してから
// 経路を計算する。あらゆる失敗は"Unknown"フィールドを持つRouteInfoに劣化する
type OSRMRoutingProvider struct {
	geocodingProvider repository.GeocodingProvider
	baseURL           string
	httpClient        *http.Client
}

// NewOSRMRoutingProvider は新しいプロバイダを生成する
func NewOSRMRoutingProvider(geocodingProvider repository.GeocodingProvider) *OSRMRoutingProvider {
	return NewOSRMRoutingProviderWithURL(defaultOSRMBaseURL, geocodingProvider)
}

// NewOSRMRoutingProviderWithURL はベースURLを指定してプロバイダを生成する（テスト用）
func NewOSRMRoutingProviderWithURL(baseURL string, geocodingProvider repository.GeocodingProvider) *OSRMRoutingProvider {
	return &OSRMRoutingProvider{
		geocodingProvider: geocodingProvider,
		baseURL:           baseURL,
		httpClient:        &http.Client{Timeout: 10 * time.Second},
	}
}

// GetRouteInfo は固定の出発地から目的地都市までの車での経路情報を取得する
func (p *OSRMRoutingProvider) GetRouteInfo(ctx context.Context, destinationCity string) *model.RouteInfo {
	originCity := model.DefaultOriginCity

	originCoords, err := p.geocodingProvider.GetCoordinates(ctx, originCity)
	if err != nil {
		log.Printf("⚠️ 出発地のジオコーディングに失敗 (%s): %v", originCity, err)
	}
	destCoords, err := p.geocodingProvider.GetCoordinates(ctx, destinationCity)
	if err != nil {
		log.Printf("⚠️ 目的地のジオコーディングに失敗 (%s): %v", destinationCity, err)
	}

	if originCoords == nil || destCoords == nil {
		return &model.RouteInfo{
			Distance:    "Unknown",
			Duration:    "Unknown",
			Mode:        "Road (Calculation Failed)",
			Description: "Could not geocode cities.",
		}
	}

	req, err := http.NewRequestWithContext(ctx, "GET", p.buildURL(originCoords, destCoords), nil)
	if err != nil {
		log.Printf("❌ ルーティングリクエストの作成に失敗: %v", err)
		return routeUnavailable()
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		log.Printf("❌ ルーティングAPIへのリクエストに失敗: %v", err)
		return routeUnavailable()
	}
	defer resp.Body.Close()

	var apiResp osrmRouteResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		log.Printf("❌ ルーティングレスポンスのパースに失敗: %v", err)
		return routeUnavailable()
	}

	if resp.StatusCode != http.StatusOK || apiResp.Code != "Ok" || len(apiResp.Routes) == 0 {
		log.Printf("⚠️ 有効なルートが見つかりませんでした (status: %s, code: %s)", resp.Status, apiResp.Code)
		return &model.RouteInfo{
			Distance:    "Unknown",
			Duration:    "Unknown",
			Mode:        "Road",
			Description: "Route not found.",
		}
	}

	route := apiResp.Routes[0]
	distanceKm := route.Distance / 1000
	durationHours := route.Duration / 3600

	return &model.RouteInfo{
		Distance:    fmt.Sprintf("%.1f km", distanceKm),
		Duration:    fmt.Sprintf("%.1f hours", durationHours),
		Mode:        "Road",
		Description: fmt.Sprintf("Driving from %s to %s", originCity, destinationCity),
	}
}

// buildURL はOSRMのパス形式 "{lon},{lat};{lon},{lat}" でリクエストURLを構築する
func (p *OSRMRoutingProvider) buildURL(origin, dest *model.Coordinates) string {
	originPoint := origin.ToPoint()
	destPoint := dest.ToPoint()
	return fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=false",
		p.baseURL,
		originPoint.Lon(), originPoint.Lat(),
		destPoint.Lon(), destPoint.Lat(),
	)
}

func routeUnavailable() *model.RouteInfo {
	return &model.RouteInfo{
		Distance:    "Unknown",
		Duration:    "Unknown",
		Mode:        "Road",
		Description: "Routing service unavailable.",
	}
}

// --- OSRM APIのレスポンスをパースするための構造体 ---

type osrmRouteResponse struct {
	Code   string      `json:"code"`
	Routes []osrmRoute `json:"routes"`
}
type osrmRoute struct {
	Distance float64 `json:"distance"` // meters
	Duration float64 `json:"duration"` // seconds
}
