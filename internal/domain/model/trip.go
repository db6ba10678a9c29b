package model

// TripRequest 旅行プラン生成リクエスト
type TripRequest struct {
	Destination string `json:"destination" binding:"required"` // 目的地の都市名
	Days        int    `json:"days" binding:"required"`        // 旅行日数（1以上）
}

// TripPlan 集約された旅行プラン全体のレスポンス
type TripPlan struct {
	Destination string         `json:"destination"`
	Weather     *WeatherInfo   `json:"weather"`
	Route       *RouteInfo     `json:"route"`
	Hotels      []Place        `json:"hotels"`
	Events      []Place        `json:"events"`
	Itinerary   []ItineraryDay `json:"itinerary"`
	Budget      *Budget        `json:"budget"`
}

// ItineraryDay 1日分のアクティビティプラン
type ItineraryDay struct {
	Day        int      `json:"day"`        // 1始まりの日番号
	Activities []string `json:"activities"` // その日のアクティビティ（必ず1件以上）
}

// Budget 旅行費用の見積もり
type Budget struct {
	Total     string          `json:"total"`
	Breakdown BudgetBreakdown `json:"breakdown"`
}

// BudgetBreakdown カテゴリ別の費用内訳（すべて "$%.2f" 形式）
type BudgetBreakdown struct {
	Accommodation string `json:"accommodation"`
	Food          string `json:"food"`
	Activities    string `json:"activities"`
	Travel        string `json:"travel"`
}
