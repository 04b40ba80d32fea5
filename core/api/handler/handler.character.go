package handler

import (
	"fmt"
	"mime/multipart"

	"github.com/gofiber/fiber/v3"

	"influencer_studio/core/api/dto"
	models "influencer_studio/core/api/models/mongodb"
	"influencer_studio/core/api/services"
)

// CharacterHandler xử lý các request liên quan đến Character
type CharacterHandler struct {
	BaseHandler[models.Character, dto.CharacterCreateInput, dto.CharacterUpdateInput]
	CharacterService *services.CharacterService
}

// NewCharacterHandler tạo mới CharacterHandler
func NewCharacterHandler() (*CharacterHandler, error) {
	characterService, err := services.NewCharacterService()
	if err != nil {
		return nil, fmt.Errorf("failed to create character service: %v", err)
	}

	handler := &CharacterHandler{
		CharacterService: characterService,
	}
	handler.BaseHandler = *NewBaseHandler[models.Character, dto.CharacterCreateInput, dto.CharacterUpdateInput](characterService.BaseServiceMongoImpl)

	return handler, nil
}

// InsertOne override để nhận multipart form (name, notes + file portrait tùy chọn)
// Endpoint: POST /api/v1/characters/insert-one
func (h *CharacterHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := dto.CharacterCreateInput{
			Name:  c.FormValue("name"),
			Notes: c.FormValue("notes"),
		}
		if err := h.validateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var portrait *multipart.FileHeader
		if file, err := c.FormFile("portrait"); err == nil {
			portrait = file
		}

		data, err := h.CharacterService.CreateWithPortrait(c.Context(), &input, portrait)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// UpdateById override để patch theo allow-list field
// Endpoint: PUT /api/v1/characters/update-by-id/:id
func (h *CharacterHandler) UpdateById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input dto.CharacterUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.CharacterService.Patch(c.Context(), id, &input)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// DeleteById override để xóa kèm file chân dung (best-effort)
// Endpoint: DELETE /api/v1/characters/delete-by-id/:id
func (h *CharacterHandler) DeleteById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.CharacterService.Delete(c.Context(), id)
		h.HandleResponse(c, nil, err)
		return nil
	})
}
