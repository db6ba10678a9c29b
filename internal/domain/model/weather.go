package model

// WeatherInfo 目的地の現在の天気情報（フォールバックにより必ず値が存在する）
type WeatherInfo struct {
	Temperature string   `json:"temp"`      // 例: "25.5°C" / "N/A"
	Condition   string   `json:"condition"` // 例: "clear sky" / "Sunny (Mock)"
	Humidity    string   `json:"humidity"`  // 例: "60%" / "N/A"
	Forecast    []string `json:"forecast"`  // 0〜3件の簡易予報
}

// CannedForecast 固定の簡易3日予報
// 実際の予報APIは呼ばず、ライブデータ取得時もこのリストを添付する
func CannedForecast() []string {
	return []string{"Sunny", "Cloudy", "Rain"}
}

// MockWeather APIキー未設定時に返す固定のモック天気
func MockWeather() *WeatherInfo {
	return &WeatherInfo{
		Temperature: "25°C",
		Condition:   "Sunny (Mock)",
		Humidity:    "60%",
		Forecast:    CannedForecast(),
	}
}

// FallbackWeather 通信・パース失敗時に返すモック天気
// 構造はMockWeatherと同じだが、Conditionでフォールバックであることを区別する
func FallbackWeather() *WeatherInfo {
	return &WeatherInfo{
		Temperature: "25°C",
		Condition:   "Sunny (Mock Fallback)",
		Humidity:    "60%",
		Forecast:    CannedForecast(),
	}
}

// UnavailableWeather APIが非成功ステータスを返した場合の天気
func UnavailableWeather() *WeatherInfo {
	return &WeatherInfo{
		Temperature: "N/A",
		Condition:   "Unavailable",
		Humidity:    "N/A",
		Forecast:    []string{},
	}
}
