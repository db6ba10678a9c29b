package usecase

import (
	"context"
	"log"
	"sync"

	"Ringmaster-Agent/internal/domain/model"
	"Ringmaster-Agent/internal/domain/repository"
	"Ringmaster-Agent/internal/domain/service"
)

type TripPlanUseCase interface {
	// PlanTrip は各プロバイダとストアの結果を集約して旅行プランを生成する
	// どのコンポーネントが失敗してもプラン全体は失敗せず、該当部分が劣化した値になる
	PlanTrip(ctx context.Context, req *model.TripRequest) (*model.TripPlan, error)
}

// tripPlanUseCaseImpl はTripPlanUseCaseの実装
type tripPlanUseCaseImpl struct {
	weatherProvider  repository.WeatherProvider
	routingProvider  repository.RoutingProvider
	placesRepository repository.PlacesRepository
	itineraryService *service.ItineraryService
	budgetService    *service.BudgetService
}

// NewTripPlanUseCase 新しいTripPlanUseCaseインスタンスを作成
func NewTripPlanUseCase(
	weatherProvider repository.WeatherProvider,
	routingProvider repository.RoutingProvider,
	placesRepository repository.PlacesRepository,
) TripPlanUseCase {
	return &tripPlanUseCaseImpl{
		weatherProvider:  weatherProvider,
		routingProvider:  routingProvider,
		placesRepository: placesRepository,
		itineraryService: service.NewItineraryService(),
		budgetService:    service.NewBudgetService(),
	}
}

// PlanTrip は天気・経路・ホテル・イベントを並行取得し、旅程と予算を導出して集約する
// 天気・経路・ストア検索は互いに依存しないため並行に発行できる
// 旅程と予算はイベント・ホテルの結果を消費するため、合流後に導出する
func (u *tripPlanUseCaseImpl) PlanTrip(ctx context.Context, req *model.TripRequest) (*model.TripPlan, error) {
	destination := req.Destination
	days := req.Days

	log.Printf("🚀 旅行プラン生成開始 (目的地: %s, 日数: %d)", destination, days)

	var (
		weatherData *model.WeatherInfo
		routeData   *model.RouteInfo
		hotels      []model.Place
		events      []model.Place
	)

	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		weatherData = u.weatherProvider.GetCurrentWeather(ctx, destination)
	}()

	go func() {
		defer wg.Done()
		routeData = u.routingProvider.GetRouteInfo(ctx, destination)
	}()

	go func() {
		defer wg.Done()
		hotels = u.lookupPlaces(ctx, model.CollectionHotels, destination)
	}()

	go func() {
		defer wg.Done()
		events = u.lookupPlaces(ctx, model.CollectionEvents, destination)
	}()

	wg.Wait()

	itinerary := u.itineraryService.Generate(destination, days, events)
	budget := u.budgetService.Estimate(days, hotels, routeData)

	log.Printf("✅ 旅行プラン生成完了 (ホテル: %d件, イベント: %d件)", len(hotels), len(events))

	return &model.TripPlan{
		Destination: destination,
		Weather:     weatherData,
		Route:       routeData,
		Hotels:      hotels,
		Events:      events,
		Itinerary:   itinerary,
		Budget:      budget,
	}, nil
}

// lookupPlaces ストア検索の失敗を空スライスに劣化させる
// ヒットなしとストア障害はどちらも「プランにレコードなし」として扱う
func (u *tripPlanUseCaseImpl) lookupPlaces(ctx context.Context, collection, city string) []model.Place {
	var places []model.Place
	var err error

	switch collection {
	case model.CollectionHotels:
		places, err = u.placesRepository.FindHotelsByCity(ctx, city, model.PlaceLookupLimit)
	case model.CollectionEvents:
		places, err = u.placesRepository.FindEventsByCity(ctx, city, model.PlaceLookupLimit)
	}

	if err != nil {
		log.Printf("⚠️ %sの検索に失敗、空の結果で継続: %v", collection, err)
		return []model.Place{}
	}
	if places == nil {
		places = []model.Place{}
	}
	return places
}
