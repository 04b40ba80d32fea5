package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"influencer_studio/core/api/services"
)

// AgentHandler xử lý các request của agent critique trên FeedPost
type AgentHandler struct {
	AgentService *services.AgentService
}

// NewAgentHandler tạo mới AgentHandler
func NewAgentHandler() (*AgentHandler, error) {
	agentService, err := services.NewAgentService()
	if err != nil {
		return nil, fmt.Errorf("failed to create agent service: %v", err)
	}

	return &AgentHandler{
		AgentService: agentService,
	}, nil
}

// Critique chạy phân tích KPI của một FeedPost và lưu AgentRecord lên post
// Endpoint: POST /api/v1/agent/critique/:id
func (h *AgentHandler) Critique(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		id, err := ParseIDParam(c)
		if err != nil {
			HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.AgentService.Critique(c.Context(), id)
		HandleResponse(c, data, err)
		return nil
	})
}

// Apply tạo một draft mới từ khuyến nghị của agent trên FeedPost
// Endpoint: POST /api/v1/agent/apply/:id
func (h *AgentHandler) Apply(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		id, err := ParseIDParam(c)
		if err != nil {
			HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.AgentService.Apply(c.Context(), id)
		HandleResponse(c, data, err)
		return nil
	})
}
