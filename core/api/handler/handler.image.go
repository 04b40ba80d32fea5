package handler

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v3"

	"influencer_studio/core/api/dto"
	"influencer_studio/core/api/services"
	"influencer_studio/core/common"
	"influencer_studio/core/global"
)

// ImageHandler xử lý endpoint sinh ảnh độc lập (không gắn với draft)
type ImageHandler struct {
	ImageService *services.ImageService
}

// NewImageHandler tạo mới ImageHandler
func NewImageHandler() (*ImageHandler, error) {
	imageService, err := services.NewImageService()
	if err != nil {
		return nil, fmt.Errorf("failed to create image service: %v", err)
	}

	return &ImageHandler{
		ImageService: imageService,
	}, nil
}

// Generate sinh một ảnh theo mode composite (template local) hoặc ai (dịch vụ ngoài)
// Endpoint: POST /api/v1/images/generate
func (h *ImageHandler) Generate(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		var input dto.ImageGenerateInput
		decoder := json.NewDecoder(bytes.NewReader(c.Body()))
		decoder.UseNumber()
		if err := decoder.Decode(&input); err != nil {
			HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON. Chi tiết: %v", err),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		if err := global.Validate.Struct(&input); err != nil {
			HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error()))
			return nil
		}

		data, err := h.ImageService.Generate(c.Context(), &input)
		HandleResponse(c, data, err)
		return nil
	})
}
