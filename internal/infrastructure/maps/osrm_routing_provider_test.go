package maps

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"Ringmaster-Agent/internal/domain/model"
)

// stubGeocodingProvider テスト用の固定応答ジオコーディング
type stubGeocodingProvider struct {
	coords map[string]*model.Coordinates
}

func (s *stubGeocodingProvider) GetCoordinates(ctx context.Context, city string) (*model.Coordinates, error) {
	if c, ok := s.coords[city]; ok {
		return c, nil
	}
	return nil, errors.New("都市名に一致する座標が見つかりませんでした: " + city)
}

func allCitiesGeocoder() *stubGeocodingProvider {
	return &stubGeocodingProvider{coords: map[string]*model.Coordinates{
		"New Delhi": {Longitude: 77.2090, Latitude: 28.6139},
		"Jaipur":    {Longitude: 75.7873, Latitude: 26.9124},
	}}
}

func TestOSRMRoutingProvider_GetRouteInfo(t *testing.T) {
	ctx := context.Background()

	t.Run("成功時は距離と時間をフォーマットして返す", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"code": "Ok",
				"routes": []map[string]any{
					{"distance": 268900.0, "duration": 11520.0},
				},
			})
		}))
		defer server.Close()

		provider := NewOSRMRoutingProviderWithURL(server.URL, allCitiesGeocoder())
		route := provider.GetRouteInfo(ctx, "Jaipur")

		if route.Distance != "268.9 km" {
			t.Errorf("距離が不正: got %q", route.Distance)
		}
		if route.Duration != "3.2 hours" {
			t.Errorf("時間が不正: got %q", route.Duration)
		}
		if route.Mode != "Road" {
			t.Errorf("モードが不正: got %q", route.Mode)
		}
		if route.Description != "Driving from New Delhi to Jaipur" {
			t.Errorf("説明が不正: got %q", route.Description)
		}
	})

	t.Run("ジオコーディング失敗時はUnknownに劣化する", func(t *testing.T) {
		provider := NewOSRMRoutingProvider(&stubGeocodingProvider{coords: map[string]*model.Coordinates{}})
		route := provider.GetRouteInfo(ctx, "Atlantis")

		if route.Distance != "Unknown" || route.Duration != "Unknown" {
			t.Errorf("劣化フィールドが不正: %+v", route)
		}
		if route.Mode != "Road (Calculation Failed)" {
			t.Errorf("モードが不正: got %q", route.Mode)
		}
		if route.Description != "Could not geocode cities." {
			t.Errorf("説明が不正: got %q", route.Description)
		}
	})

	t.Run("ルートが見つからない場合はRoute not foundになる", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"code":   "NoRoute",
				"routes": []map[string]any{},
			})
		}))
		defer server.Close()

		provider := NewOSRMRoutingProviderWithURL(server.URL, allCitiesGeocoder())
		route := provider.GetRouteInfo(ctx, "Jaipur")

		if route.Distance != "Unknown" || route.Duration != "Unknown" {
			t.Errorf("劣化フィールドが不正: %+v", route)
		}
		if route.Description != "Route not found." {
			t.Errorf("説明が不正: got %q", route.Description)
		}
	})

	t.Run("通信失敗時はRouting service unavailableになる", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // 即クローズして接続エラーを発生させる

		provider := NewOSRMRoutingProviderWithURL(server.URL, allCitiesGeocoder())
		route := provider.GetRouteInfo(ctx, "Jaipur")

		if route.Distance != "Unknown" || route.Duration != "Unknown" {
			t.Errorf("劣化フィールドが不正: %+v", route)
		}
		if route.Description != "Routing service unavailable." {
			t.Errorf("説明が不正: got %q", route.Description)
		}
	})
}
