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

// CharacterService là service quản lý character (asset chân dung độc lập với persona)
type CharacterService struct {
	*BaseServiceMongoImpl[models.Character]
	storage *FileStorageService
}

// NewCharacterService tạo mới CharacterService
func NewCharacterService() (*CharacterService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Characters)
	if !exist {
		return nil, fmt.Errorf("failed to get characters collection: %v", common.ErrNotFound)
	}

	storage, err := NewFileStorageService()
	if err != nil {
		return nil, err
	}

	return &CharacterService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.Character](collection),
		storage:              storage,
	}, nil
}

// CreateWithPortrait tạo character mới kèm ảnh chân dung upload (multipart)
func (s *CharacterService) CreateWithPortrait(ctx context.Context, input *dto.CharacterCreateInput, portrait *multipart.FileHeader) (models.Character, error) {
	character := models.Character{
		Name:  input.Name,
		Notes: input.Notes,
	}

	if portrait != nil {
		storedName, publicURL, err := s.storage.SaveUpload(portrait)
		if err != nil {
			return character, err
		}
		character.PortraitFile = storedName
		character.PortraitURL = publicURL
	}

	created, err := s.InsertOne(ctx, character)
	if err != nil {
		s.storage.Delete(character.PortraitFile)
		return created, err
	}

	return created, nil
}

// Patch cập nhật character theo allow-list field
func (s *CharacterService) Patch(ctx context.Context, id primitive.ObjectID, input *dto.CharacterUpdateInput) (models.Character, error) {
	set := bson.M{}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Notes != nil {
		set["notes"] = *input.Notes
	}

	if len(set) == 0 {
		return *new(models.Character), common.ErrNoFieldsProvided
	}

	return s.UpdateById(ctx, id, bson.M{"$set": set})
}

// Delete xóa character và ảnh chân dung của nó (xóa file best-effort)
func (s *CharacterService) Delete(ctx context.Context, id primitive.ObjectID) error {
	character, err := s.FindOneById(ctx, id)
	if err != nil {
		return err
	}

	if err := s.DeleteById(ctx, id); err != nil {
		return err
	}

	s.storage.Delete(character.PortraitFile)
	return nil
}
