package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"influencer_studio/core/api/services"
)

// AnalyticsHandler xử lý các request thống kê draft
type AnalyticsHandler struct {
	AnalyticsService *services.AnalyticsService
}

// NewAnalyticsHandler tạo mới AnalyticsHandler
func NewAnalyticsHandler() (*AnalyticsHandler, error) {
	analyticsService, err := services.NewAnalyticsService()
	if err != nil {
		return nil, fmt.Errorf("failed to create analytics service: %v", err)
	}

	return &AnalyticsHandler{
		AnalyticsService: analyticsService,
	}, nil
}

// Summary trả về thống kê tổng hợp: tổng số draft, theo category, theo status, theo ngày (7 ngày)
// Endpoint: GET /api/v1/analytics/summary
func (h *AnalyticsHandler) Summary(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		data, err := h.AnalyticsService.Summary(c.Context())
		HandleResponse(c, data, err)
		return nil
	})
}
