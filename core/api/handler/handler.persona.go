package handler

import (
	"fmt"
	"mime/multipart"

	"github.com/gofiber/fiber/v3"

	"influencer_studio/core/api/dto"
	models "influencer_studio/core/api/models/mongodb"
	"influencer_studio/core/api/services"
)

// PersonaHandler xử lý các request liên quan đến Persona
type PersonaHandler struct {
	BaseHandler[models.Persona, dto.PersonaCreateInput, dto.PersonaUpdateInput]
	PersonaService *services.PersonaService
}

// NewPersonaHandler tạo mới PersonaHandler
func NewPersonaHandler() (*PersonaHandler, error) {
	personaService, err := services.NewPersonaService()
	if err != nil {
		return nil, fmt.Errorf("failed to create persona service: %v", err)
	}

	handler := &PersonaHandler{
		PersonaService: personaService,
	}
	handler.BaseHandler = *NewBaseHandler[models.Persona, dto.PersonaCreateInput, dto.PersonaUpdateInput](personaService.BaseServiceMongoImpl)

	return handler, nil
}

// InsertOne override để nhận multipart form (field text + file portrait tùy chọn)
// Endpoint: POST /api/v1/personas/insert-one
func (h *PersonaHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := dto.PersonaCreateInput{
			Name:             c.FormValue("name"),
			Tone:             c.FormValue("tone"),
			BrandTag:         c.FormValue("brandTag"),
			Watermark:        c.FormValue("watermark"),
			ImageStyle:       c.FormValue("imageStyle"),
			IdentityHint:     c.FormValue("identityHint"),
			Mood:             c.FormValue("mood"),
			BackgroundPreset: c.FormValue("backgroundPreset"),
		}
		if err := h.validateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		// Portrait là tùy chọn, persona không có ảnh vẫn dùng được mode composite
		var portrait *multipart.FileHeader
		if file, err := c.FormFile("portrait"); err == nil {
			portrait = file
		}

		data, err := h.PersonaService.CreateWithPortrait(c.Context(), &input, portrait)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// UpdateById override để patch theo allow-list field (portrait immutable)
// Endpoint: PUT /api/v1/personas/update-by-id/:id
func (h *PersonaHandler) UpdateById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input dto.PersonaUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.PersonaService.Patch(c.Context(), id, &input)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// DeleteById override để xóa kèm file chân dung (best-effort, không cascade sang draft)
// Endpoint: DELETE /api/v1/personas/delete-by-id/:id
func (h *PersonaHandler) DeleteById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.PersonaService.Delete(c.Context(), id)
		h.HandleResponse(c, nil, err)
		return nil
	})
}
