package services

import (
	"context"
	"fmt"

	"influencer_studio/core/api/dto"
	models "influencer_studio/core/api/models/mongodb"
	"influencer_studio/core/common"
	"influencer_studio/core/global"
	"influencer_studio/core/metrics"
	"influencer_studio/core/utility"
)

// ImageService là endpoint sinh ảnh độc lập (không gắn với draft nào):
// mode "composite" vẽ template local, mode "ai" gọi dịch vụ sinh ảnh bên ngoài.
type ImageService struct {
	personas  *BaseServiceMongoImpl[models.Persona]
	aiImage   *AIImageService
	composite *CompositeImageService
	prompts   *PromptBuilderService
	storage   *FileStorageService
}

// NewImageService tạo mới ImageService
func NewImageService() (*ImageService, error) {
	personaCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Personas)
	if !exist {
		return nil, fmt.Errorf("failed to get personas collection: %v", common.ErrNotFound)
	}

	storage, err := NewFileStorageService()
	if err != nil {
		return nil, err
	}

	return &ImageService{
		personas:  NewBaseServiceMongo[models.Persona](personaCol),
		aiImage:   NewAIImageService(),
		composite: NewCompositeImageService(),
		prompts:   NewPromptBuilderService(),
		storage:   storage,
	}, nil
}

// Generate sinh một ảnh theo input và lưu vào upload dir.
//
// mode "composite" (mặc định): vẽ template local, watermark lấy từ persona nếu có personaId.
// mode "ai": img2img từ portrait persona nếu personaId được truyền (ErrMissingAsset
// khi persona không có portrait), ngược lại text2img từ prompt thuần.
func (s *ImageService) Generate(ctx context.Context, input *dto.ImageGenerateInput) (dto.ImageResult, error) {
	var persona models.Persona
	personaLoaded := false
	if input.PersonaID != "" {
		id, err := utility.String2ObjectID(input.PersonaID)
		if err != nil {
			return dto.ImageResult{}, common.ErrInvalidReference
		}
		persona, err = s.personas.FindOneById(ctx, id)
		if err != nil {
			return dto.ImageResult{}, common.ErrInvalidReference
		}
		personaLoaded = true
	}

	var imgBytes []byte
	var err error

	if input.Mode == "ai" {
		prompt := input.Prompt
		if personaLoaded {
			if persona.PortraitFile == "" {
				return dto.ImageResult{}, common.ErrMissingAsset
			}
			if prompt == "" {
				prompt, _ = s.prompts.BuildFromPersona(&persona, input.Title, nil)
			}
			imgBytes, err = s.aiImage.Img2Img(ctx, s.storage.Path(persona.PortraitFile), prompt)
		} else {
			if prompt == "" {
				return dto.ImageResult{}, common.NewError(common.ErrCodeValidationInput, "Mode ai yêu cầu prompt hoặc personaId", common.StatusBadRequest, nil)
			}
			imgBytes, err = s.aiImage.Text2Img(ctx, prompt)
		}
	} else {
		watermark := ""
		if personaLoaded {
			watermark = persona.Watermark
			if watermark == "" {
				watermark = persona.Name
			}
		}
		imgBytes, err = s.composite.Render(input.Preset, input.Title, input.Subtitle, watermark)
	}
	if err != nil {
		return dto.ImageResult{}, err
	}

	if input.Mode == "ai" {
		metrics.ImagesGenerated.WithLabelValues("ai").Inc()
	} else {
		metrics.ImagesGenerated.WithLabelValues("composite").Inc()
	}

	storedName, publicURL, err := s.storage.SaveBytes(imgBytes, "jpg")
	if err != nil {
		return dto.ImageResult{}, err
	}

	return dto.ImageResult{File: storedName, URL: publicURL}, nil
}
