package model

// プラン生成で使用する定数
const (
	// DefaultOriginCity 経路計算の固定出発地
	DefaultOriginCity = "New Delhi"

	// PlaceLookupLimit ホテル・イベント検索の最大取得件数
	PlaceLookupLimit = 3

	// DefaultHotelPrice price_per_night未設定時のデフォルト1泊料金（ドル）
	DefaultHotelPrice = 100.0

	// DailyFoodCost 1日あたりの食費（ドル）
	DailyFoodCost = 50.0

	// DailyActivitiesCost 1日あたりのアクティビティ費（ドル）
	DailyActivitiesCost = 30.0

	// BaseTravelCost 日数・距離に依存しない固定の移動費（ドル）
	BaseTravelCost = 50.0
)

// ストアのコレクション名
const (
	CollectionHotels = "hotels"
	CollectionEvents = "events"
)
