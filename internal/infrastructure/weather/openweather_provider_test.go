package weather

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"Ringmaster-Agent/internal/domain/model"
)

func TestOpenWeatherProvider_GetCurrentWeather(t *testing.T) {
	ctx := context.Background()

	t.Run("APIキー未設定時は固定のモックを返す", func(t *testing.T) {
		provider := NewOpenWeatherProvider("")

		info := provider.GetCurrentWeather(ctx, "Paris")

		want := &model.WeatherInfo{
			Temperature: "25°C",
			Condition:   "Sunny (Mock)",
			Humidity:    "60%",
			Forecast:    []string{"Sunny", "Cloudy", "Rain"},
		}
		if !reflect.DeepEqual(info, want) {
			t.Errorf("モック天気が不正: got %+v, want %+v", info, want)
		}
	})

	t.Run("成功レスポンスからライブデータをパースする", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("units"); got != "metric" {
				t.Errorf("unitsパラメータが不正: got %q", got)
			}
			if got := r.URL.Query().Get("q"); got != "Paris" {
				t.Errorf("qパラメータが不正: got %q", got)
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"main": map[string]any{
					"temp":     18.5,
					"humidity": 72,
				},
				"weather": []map[string]any{{"description": "light rain"}},
			})
		}))
		defer server.Close()

		provider := NewOpenWeatherProviderWithURL(server.URL, "test-key")
		info := provider.GetCurrentWeather(ctx, "Paris")

		if info.Temperature != "18.5°C" {
			t.Errorf("気温が不正: got %q", info.Temperature)
		}
		if info.Condition != "light rain" {
			t.Errorf("天候が不正: got %q", info.Condition)
		}
		if info.Humidity != "72%" {
			t.Errorf("湿度が不正: got %q", info.Humidity)
		}
		// ライブデータでも予報は固定リスト
		if !reflect.DeepEqual(info.Forecast, []string{"Sunny", "Cloudy", "Rain"}) {
			t.Errorf("予報が不正: got %v", info.Forecast)
		}
	})

	t.Run("非成功ステータス時はUnavailableに劣化する", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		provider := NewOpenWeatherProviderWithURL(server.URL, "bad-key")
		info := provider.GetCurrentWeather(ctx, "Paris")

		if info.Condition != "Unavailable" {
			t.Errorf("天候が不正: got %q, want Unavailable", info.Condition)
		}
		if info.Temperature != "N/A" || info.Humidity != "N/A" {
			t.Errorf("劣化フィールドが不正: %+v", info)
		}
		if len(info.Forecast) != 0 {
			t.Errorf("予報は空であるべき: got %v", info.Forecast)
		}
	})

	t.Run("通信失敗時はフォールバックモックを返す", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // 即クローズして接続エラーを発生させる

		provider := NewOpenWeatherProviderWithURL(server.URL, "test-key")
		info := provider.GetCurrentWeather(ctx, "Paris")

		if info.Condition != "Sunny (Mock Fallback)" {
			t.Errorf("天候が不正: got %q, want Sunny (Mock Fallback)", info.Condition)
		}
		if info.Temperature != "25°C" {
			t.Errorf("気温が不正: got %q", info.Temperature)
		}
	})

	t.Run("パース失敗時はフォールバックモックを返す", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer server.Close()

		provider := NewOpenWeatherProviderWithURL(server.URL, "test-key")
		info := provider.GetCurrentWeather(ctx, "Paris")

		if info.Condition != "Sunny (Mock Fallback)" {
			t.Errorf("天候が不正: got %q, want Sunny (Mock Fallback)", info.Condition)
		}
	})
}
