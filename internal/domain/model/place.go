package model

import "strconv"

// Place ドキュメントストアから取得したホテル・イベントのレコード
// フィールド名→値の不透明なマップとして扱う
// "_id" とオーナー・主催者参照はリポジトリ層で必ずプレーンな文字列に変換済み
type Place map[string]interface{}

// GetString 指定フィールドを文字列として取得（存在しない・文字列でない場合は空文字列）
func (p Place) GetString(key string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return ""
}

// PricePerNight ホテルの1泊料金を取得（未設定時はDefaultHotelPrice）
func (p Place) PricePerNight() float64 {
	v, ok := p["price_per_night"]
	if !ok {
		return DefaultHotelPrice
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		// PostgreSQLのnumeric型は文字列として返ることがある
		if parsed, err := strconv.ParseFloat(n, 64); err == nil {
			return parsed
		}
		return DefaultHotelPrice
	default:
		return DefaultHotelPrice
	}
}
