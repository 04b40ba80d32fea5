package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"influencer_studio/core/api/dto"
	models "influencer_studio/core/api/models/mongodb"
	"influencer_studio/core/common"
	"influencer_studio/core/global"
)

// PersonaService là service quản lý persona
type PersonaService struct {
	*BaseServiceMongoImpl[models.Persona]
	storage *FileStorageService
}

// NewPersonaService tạo mới PersonaService
func NewPersonaService() (*PersonaService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Personas)
	if !exist {
		return nil, fmt.Errorf("failed to get personas collection: %v", common.ErrNotFound)
	}

	storage, err := NewFileStorageService()
	if err != nil {
		return nil, err
	}

	return &PersonaService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.Persona](collection),
		storage:              storage,
	}, nil
}

// CreateWithPortrait tạo persona mới kèm ảnh chân dung upload (multipart).
// Portrait là tùy chọn: persona không có portrait vẫn dùng được cho composite,
// nhưng sinh ảnh img2img sẽ fail với ErrMissingAsset.
func (s *PersonaService) CreateWithPortrait(ctx context.Context, input *dto.PersonaCreateInput, portrait *multipart.FileHeader) (models.Persona, error) {
	persona := models.Persona{
		Name:             input.Name,
		Tone:             input.Tone,
		BrandTag:         input.BrandTag,
		Watermark:        input.Watermark,
		ImageStyle:       input.ImageStyle,
		IdentityHint:     input.IdentityHint,
		Mood:             input.Mood,
		BackgroundPreset: input.BackgroundPreset,
	}

	if portrait != nil {
		storedName, publicURL, err := s.storage.SaveUpload(portrait)
		if err != nil {
			return persona, err
		}
		persona.PortraitFile = storedName
		persona.PortraitURL = publicURL
	}

	created, err := s.InsertOne(ctx, persona)
	if err != nil {
		// Insert fail thì dọn file vừa lưu để không rác upload dir
		s.storage.Delete(persona.PortraitFile)
		return created, err
	}

	return created, nil
}

// Patch cập nhật persona theo allow-list field.
// Patch không có field nào trả về ErrNoFieldsProvided; ảnh chân dung không patch được.
func (s *PersonaService) Patch(ctx context.Context, id primitive.ObjectID, input *dto.PersonaUpdateInput) (models.Persona, error) {
	set := bson.M{}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Tone != nil {
		set["tone"] = *input.Tone
	}
	if input.BrandTag != nil {
		set["brandTag"] = *input.BrandTag
	}
	if input.Watermark != nil {
		set["watermark"] = *input.Watermark
	}
	if input.ImageStyle != nil {
		set["imageStyle"] = *input.ImageStyle
	}
	if input.IdentityHint != nil {
		set["identityHint"] = *input.IdentityHint
	}
	if input.Mood != nil {
		set["mood"] = *input.Mood
	}
	if input.BackgroundPreset != nil {
		set["backgroundPreset"] = *input.BackgroundPreset
	}

	if len(set) == 0 {
		return *new(models.Persona), common.ErrNoFieldsProvided
	}

	return s.UpdateById(ctx, id, bson.M{"$set": set})
}

// Delete xóa persona và ảnh chân dung của nó (xóa file best-effort).
// Draft đang tham chiếu persona này không bị cascade - tham chiếu sẽ dangling,
// các flow sau xử lý như persona không tồn tại.
func (s *PersonaService) Delete(ctx context.Context, id primitive.ObjectID) error {
	persona, err := s.FindOneById(ctx, id)
	if err != nil {
		return err
	}

	if err := s.DeleteById(ctx, id); err != nil {
		return err
	}

	s.storage.Delete(persona.PortraitFile)
	return nil
}
