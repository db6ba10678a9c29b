package service

import (
	"fmt"

	"Ringmaster-Agent/internal/domain/model"
)

// BudgetService 日数とホテル料金から費用見積もりを導出するサービス
type BudgetService struct{}

// NewBudgetService 新しいBudgetServiceインスタンスを作成
func NewBudgetService() *BudgetService {
	return &BudgetService{}
}

// Estimate は費用内訳と合計を計算する
// routeは現在の計算式では使用しないが、呼び出し側との対称性のため受け取る
func (s *BudgetService) Estimate(days int, hotels []model.Place, route *model.RouteInfo) *model.Budget {
	avgHotelPrice := model.DefaultHotelPrice
	if len(hotels) > 0 {
		var sum float64
		for _, hotel := range hotels {
			sum += hotel.PricePerNight()
		}
		avgHotelPrice = sum / float64(len(hotels))
	}

	accommodationCost := avgHotelPrice * float64(days)
	foodCost := model.DailyFoodCost * float64(days)
	activitiesCost := model.DailyActivitiesCost * float64(days)
	travelCost := model.BaseTravelCost

	total := accommodationCost + foodCost + activitiesCost + travelCost

	return &model.Budget{
		Total: formatCurrency(total),
		Breakdown: model.BudgetBreakdown{
			Accommodation: formatCurrency(accommodationCost),
			Food:          formatCurrency(foodCost),
			Activities:    formatCurrency(activitiesCost),
			Travel:        formatCurrency(travelCost),
		},
	}
}

func formatCurrency(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
