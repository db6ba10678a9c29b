package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"Ringmaster-Agent/internal/domain/model"
	"Ringmaster-Agent/internal/usecase"
)

// TripPlanHandler は旅行プラン生成APIのハンドラー
type TripPlanHandler struct {
	tripPlanUseCase usecase.TripPlanUseCase
}

// NewTripPlanHandler は新しいTripPlanHandlerインスタンスを作成
func NewTripPlanHandler(tripPlanUseCase usecase.TripPlanUseCase) *TripPlanHandler {
	return &TripPlanHandler{
		tripPlanUseCase: tripPlanUseCase,
	}
}

// PostPlanTrip は旅行プランを生成するエンドポイント
// POST /plan-trip
func (h *TripPlanHandler) PostPlanTrip(c *gin.Context) {
	var req model.TripRequest

	// リクエストボディのバインド
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	// バリデーション
	if err := h.validateRequest(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "バリデーションエラー",
			"details": err.Error(),
		})
		return
	}

	// UseCase呼び出し
	plan, err := h.tripPlanUseCase.PlanTrip(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "旅行プランの生成に失敗しました",
			"details": err.Error(),
		})
		return
	}

	// 成功レスポンス
	c.JSON(http.StatusOK, plan)
}

// validateRequest はリクエストの詳細バリデーションを行う
func (h *TripPlanHandler) validateRequest(req *model.TripRequest) error {
	// 目的地は必須
	if strings.TrimSpace(req.Destination) == "" {
		return &ValidationError{Field: "destination", Message: "目的地は必須です"}
	}

	// 日数は1以上
	if req.Days < 1 {
		return &ValidationError{Field: "days", Message: "日数は1以上を指定してください"}
	}

	return nil
}

// ValidationError はバリデーションエラーを表す
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// GetRoot はエージェントの稼働確認用エンドポイント
// GET /
func (h *TripPlanHandler) GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Ringmaster AI Agent is running",
	})
}

// GetHealth はヘルスチェックエンドポイント
// GET /api/health
func (h *TripPlanHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "Ringmaster-Agent",
	})
}
