package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"Ringmaster-Agent/internal/domain/model"
)

func TestBudgetService_Estimate(t *testing.T) {
	s := NewBudgetService()

	t.Run("ホテルなし3日間はデフォルト料金で計算される", func(t *testing.T) {
		budget := s.Estimate(3, nil, nil)

		assert.Equal(t, "$300.00", budget.Breakdown.Accommodation)
		assert.Equal(t, "$150.00", budget.Breakdown.Food)
		assert.Equal(t, "$90.00", budget.Breakdown.Activities)
		assert.Equal(t, "$50.00", budget.Breakdown.Travel)
		assert.Equal(t, "$590.00", budget.Total)
	})

	t.Run("宿泊費はホテル料金の平均から計算される", func(t *testing.T) {
		hotels := []model.Place{
			{"name": "A", "price_per_night": 80.0},
			{"name": "B", "price_per_night": 120.0},
		}
		budget := s.Estimate(2, hotels, nil)

		// 平均100ドル × 2日
		assert.Equal(t, "$200.00", budget.Breakdown.Accommodation)
		assert.Equal(t, "$440.00", budget.Total)
	})

	t.Run("料金未設定のホテルはデフォルト100ドルとして平均に含める", func(t *testing.T) {
		hotels := []model.Place{
			{"name": "A", "price_per_night": 40.0},
			{"name": "B"}, // price_per_nightなし
		}
		budget := s.Estimate(1, hotels, nil)

		// (40 + 100) / 2 = 70
		assert.Equal(t, "$70.00", budget.Breakdown.Accommodation)
	})

	t.Run("移動費は日数に依存しない固定値", func(t *testing.T) {
		shortTrip := s.Estimate(1, nil, nil)
		longTrip := s.Estimate(14, nil, nil)

		assert.Equal(t, "$50.00", shortTrip.Breakdown.Travel)
		assert.Equal(t, "$50.00", longTrip.Breakdown.Travel)
	})

	t.Run("経路情報は計算に影響しない", func(t *testing.T) {
		route := &model.RouteInfo{Distance: "9999.9 km", Duration: "99.9 hours", Mode: "Road"}

		withRoute := s.Estimate(3, nil, route)
		withoutRoute := s.Estimate(3, nil, nil)

		assert.Equal(t, withoutRoute, withRoute)
	})
}
