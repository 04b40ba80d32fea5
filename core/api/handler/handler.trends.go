package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"influencer_studio/core/api/services"
)

// TrendsHandler xử lý các request lấy từ khóa trending
type TrendsHandler struct {
	TrendsService *services.TrendsService
}

// NewTrendsHandler tạo mới TrendsHandler
func NewTrendsHandler() (*TrendsHandler, error) {
	trendsService, err := services.NewTrendsService()
	if err != nil {
		return nil, fmt.Errorf("failed to create trends service: %v", err)
	}

	return &TrendsHandler{
		TrendsService: trendsService,
	}, nil
}

// Get trả về danh sách từ khóa trending theo geo/window (cache-first, TTL 24h)
// Endpoint: GET /api/v1/trends?geo=US&window=7d
func (h *TrendsHandler) Get(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		geo := c.Query("geo")
		window := c.Query("window")

		data, err := h.TrendsService.Get(c.Context(), geo, window)
		HandleResponse(c, data, err)
		return nil
	})
}
