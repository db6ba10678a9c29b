package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"Ringmaster-Agent/internal/domain/model"
)

const defaultOpenWeatherBaseURL = "http://api.openweathermap.org/data/2.5/weather"

// OpenWeatherProvider はOpenWeatherMap APIを使用した天気取得の実装
// APIキー未設定時はモックモードで動作し、外部呼び出しを一切行わない
type OpenWeatherProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewOpenWeatherProvider は新しいプロバイダを生成する
// apiKeyが空文字列の場合はモックモードになる
func NewOpenWeatherProvider(apiKey string) *OpenWeatherProvider {
	return NewOpenWeatherProviderWithURL(defaultOpenWeatherBaseURL, apiKey)
}

// NewOpenWeatherProviderWithURL はベースURLを指定してプロバイダを生成する（テスト用）
func NewOpenWeatherProviderWithURL(baseURL, apiKey string) *OpenWeatherProvider {
	return &OpenWeatherProvider{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// GetCurrentWeather はOpenWeatherMap APIを呼び出して現在の天気を取得する
// いかなる失敗でもエラーは返さず、劣化した天気情報に置き換える
func (p *OpenWeatherProvider) GetCurrentWeather(ctx context.Context, city string) *model.WeatherInfo {
	if p.apiKey == "" {
		log.Printf("🌤️ 天気APIキー未設定のためモックデータを返却 (都市: %s)", city)
		return model.MockWeather()
	}

	req, err := http.NewRequestWithContext(ctx, "GET", p.buildURL(city), nil)
	if err != nil {
		log.Printf("❌ 天気APIリクエストの作成に失敗: %v", err)
		return model.FallbackWeather()
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		// 通信失敗はモックにフォールバック（キー未設定のモックとはログで区別する）
		log.Printf("❌ 天気APIへのリクエストに失敗、フォールバックを返却: %v", err)
		return model.FallbackWeather()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("⚠️ 天気APIからエラーステータスが返されました: %s", resp.Status)
		return model.UnavailableWeather()
	}

	var apiResp openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		log.Printf("❌ 天気APIレスポンスのパースに失敗、フォールバックを返却: %v", err)
		return model.FallbackWeather()
	}

	condition := ""
	if len(apiResp.Weather) > 0 {
		condition = apiResp.Weather[0].Description
	}

	// 多日予報APIは呼ばないため、ライブデータにも固定の予報リストを添付する
	return &model.WeatherInfo{
		Temperature: fmt.Sprintf("%.1f°C", apiResp.Main.Temp),
		Condition:   condition,
		Humidity:    fmt.Sprintf("%d%%", apiResp.Main.Humidity),
		Forecast:    model.CannedForecast(),
	}
}

func (p *OpenWeatherProvider) buildURL(city string) string {
	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", p.apiKey)
	params.Set("units", "metric")
	return fmt.Sprintf("%s?%s", p.baseURL, params.Encode())
}

// --- OpenWeatherMap APIのレスポンスをパースするための構造体 ---

type openWeatherResponse struct {
	Main    openWeatherMain        `json:"main"`
	Weather []openWeatherCondition `json:"weather"`
}
type openWeatherMain struct {
	Temp     float64 `json:"temp"`
	Humidity int     `json:"humidity"`
}
type openWeatherCondition struct {
	Description string `json:"description"`
}
