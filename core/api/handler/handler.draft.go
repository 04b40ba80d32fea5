package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"influencer_studio/core/api/dto"
	models "influencer_studio/core/api/models/mongodb"
	"influencer_studio/core/api/services"
	"influencer_studio/core/common"
)

// DraftHandler xử lý các request liên quan đến Draft
type DraftHandler struct {
	BaseHandler[models.Draft, dto.DraftCreateInput, dto.DraftUpdateInput]
	DraftService *services.DraftService
}

// NewDraftHandler tạo mới DraftHandler
func NewDraftHandler() (*DraftHandler, error) {
	draftService, err := services.NewDraftService()
	if err != nil {
		return nil, fmt.Errorf("failed to create draft service: %v", err)
	}

	handler := &DraftHandler{
		DraftService: draftService,
	}
	handler.BaseHandler = *NewBaseHandler[models.Draft, dto.DraftCreateInput, dto.DraftUpdateInput](draftService.BaseServiceMongoImpl)

	return handler, nil
}

// Ideas trả về danh sách gợi ý topic tĩnh
// Endpoint: GET /api/v1/drafts/ideas
func (h *DraftHandler) Ideas(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		h.HandleResponse(c, h.DraftService.Ideas(), nil)
		return nil
	})
}

// InsertOne override để chạy pipeline tạo draft đầy đủ:
// validate persona, sinh caption/ảnh, suy ra category
// Endpoint: POST /api/v1/drafts/insert-one
func (h *DraftHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.DraftCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.DraftService.Create(c.Context(), &input)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// UpdateById override để patch theo allow-list field và revalidate tham chiếu persona
// Endpoint: PUT /api/v1/drafts/update-by-id/:id
func (h *DraftHandler) UpdateById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input dto.DraftUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.DraftService.Patch(c.Context(), id, &input)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// DeleteById override để xóa kèm file ảnh preview (best-effort)
// Endpoint: DELETE /api/v1/drafts/delete-by-id/:id
func (h *DraftHandler) DeleteById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.DraftService.Delete(c.Context(), id)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// Approve duyệt draft và publish FeedPost (idempotent)
// Endpoint: POST /api/v1/drafts/approve/:id
func (h *DraftHandler) Approve(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		draft, post, err := h.DraftService.Approve(c.Context(), id)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, fiber.Map{"draft": draft, "post": post}, nil)
		return nil
	})
}

// RegenerateCaption sinh lại caption + hashtags cho draft
// Endpoint: POST /api/v1/drafts/regenerate-caption/:id
func (h *DraftHandler) RegenerateCaption(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.DraftService.RegenerateCaption(c.Context(), id)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// RegenerateImage sinh lại ảnh preview cho draft
// Endpoint: POST /api/v1/drafts/regenerate-image/:id
func (h *DraftHandler) RegenerateImage(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.DraftService.RegenerateImage(c.Context(), id)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Export trả về file zip chứa caption.txt + image.jpg + meta.json của draft
// Endpoint: GET /api/v1/drafts/export/:id
func (h *DraftHandler) Export(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, filename, err := h.DraftService.Export(c.Context(), id)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		c.Set("Content-Type", "application/zip")
		c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		return c.Status(common.StatusOK).Send(data)
	})
}
