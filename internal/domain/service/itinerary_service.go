package service

import (
	"fmt"

	"Ringmaster-Agent/internal/domain/model"
)

// ItineraryService 日数とイベント情報から日別のアクティビティプランを導出するサービス
// ルールベースの決定的な生成であり、乱数・外部呼び出しは一切使わない
type ItineraryService struct{}

// NewItineraryService 新しいItineraryServiceインスタンスを作成
func NewItineraryService() *ItineraryService {
	return &ItineraryService{}
}

// Generate は日数分のItineraryDayを生成する
// ルールの優先順位: 1日目 > 2日目(イベントあり) > 最終日 > それ以外
func (s *ItineraryService) Generate(city string, days int, events []model.Place) []model.ItineraryDay {
	itinerary := make([]model.ItineraryDay, 0, days)

	for day := 1; day <= days; day++ {
		activities := []string{fmt.Sprintf("Explore %s", city)}

		switch {
		case day == 1:
			activities = append(activities, "Arrival and check-in", "Visit local markets")
		case day == 2 && len(events) > 0:
			activities = append(activities,
				fmt.Sprintf("Attend %s at %s", events[0].GetString("type"), events[0].GetString("place")),
				"Try local cuisine")
		case day == days:
			activities = append(activities, "Souvenir shopping", "Departure preparations")
		default:
			activities = append(activities, "Sightseeing", "Local experiences")
		}

		itinerary = append(itinerary, model.ItineraryDay{
			Day:        day,
			Activities: activities,
		})
	}

	return itinerary
}
