package model

import "github.com/paulmach/orb"

// Coordinates 経度・緯度のペア（ジオコーディング結果）
type Coordinates struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// ToPoint orb.Point（lon, lat順）に変換
func (c *Coordinates) ToPoint() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// CoordinatesFromPoint orb.PointからCoordinatesを生成
func CoordinatesFromPoint(p orb.Point) *Coordinates {
	return &Coordinates{
		Longitude: p.Lon(),
		Latitude:  p.Lat(),
	}
}

// RouteInfo 出発地から目的地までの経路情報
// ルーティングに失敗しても構造体は必ず返る（各フィールドが"Unknown"に劣化する）
type RouteInfo struct {
	Distance    string `json:"distance"`    // 例: "268.9 km" / "Unknown"
	Duration    string `json:"duration"`    // 例: "3.2 hours" / "Unknown"
	Mode        string `json:"mode"`        // 例: "Road" / "Road (Calculation Failed)"
	Description string `json:"description"` // 経路の説明またはエラーの説明
}
