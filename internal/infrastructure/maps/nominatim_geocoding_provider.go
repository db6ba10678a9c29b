package maps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"Ringmaster-Agent/internal/domain/model"
)

const (
	defaultNominatimBaseURL = "https://nominatim.openstreetmap.org/search"

	// Nominatimの利用規約でUser-Agentの明示が必須
	geocodingUserAgent = "RingmasterAgent/1.0"
)

// NominatimGeocodingProvider はNominatim APIを使用したジオコーディングの実装
type NominatimGeocodingProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewNominatimGeocodingProvider は新しいプロバイダを生成する
func NewNominatimGeocodingProvider() *NominatimGeocodingProvider {
	return NewNominatimGeocodingProviderWithURL(defaultNominatimBaseURL)
}

// NewNominatimGeocodingProviderWithURL はベースURLを指定してプロバイダを生成する（テスト用）
func NewNominatimGeocodingProviderWithURL(baseURL string) *NominatimGeocodingProvider {
	return &NominatimGeocodingProvider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// GetCoordinates は都市名を座標に解決する
// 最初のマッチのみを使用し、失敗時はリトライせずエラーを返す
func (p *NominatimGeocodingProvider) GetCoordinates(ctx context.Context, city string) (*model.Coordinates, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", p.buildURL(city), nil)
	if err != nil {
		return nil, fmt.Errorf("ジオコーディングリクエストの作成に失敗: %w", err)
	}
	req.Header.Set("User-Agent", geocodingUserAgent)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ジオコーディングAPIへのリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ジオコーディングAPIからエラーステータスが返されました: %s", resp.Status)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("ジオコーディングレスポンスのパースに失敗: %w", err)
	}

	if len(results) == 0 {
		return nil, errors.New("都市名に一致する座標が見つかりませんでした: " + city)
	}

	// lon/latは文字列で返ってくるため数値パースが必要
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("経度のパースに失敗: %w", err)
	}
	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("緯度のパースに失敗: %w", err)
	}

	return &model.Coordinates{Longitude: lon, Latitude: lat}, nil
}

func (p *NominatimGeocodingProvider) buildURL(city string) string {
	params := url.Values{}
	params.Set("q", city)
	params.Set("format", "json")
	params.Set("limit", "1")
	return fmt.Sprintf("%s?%s", p.baseURL, params.Encode())
}

// --- Nominatim APIのレスポンスをパースするための構造体 ---

type nominatimResult struct {
	Lon string `json:"lon"`
	Lat string `json:"lat"`
}
