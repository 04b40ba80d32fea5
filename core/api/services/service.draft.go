package services

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"influencer_studio/core/api/dto"
	models "influencer_studio/core/api/models/mongodb"
	"influencer_studio/core/common"
	"influencer_studio/core/global"
	"influencer_studio/core/logger"
	"influencer_studio/core/metrics"
	"influencer_studio/core/utility"
)

// draftIdeas là danh sách gợi ý topic tĩnh cho UI
var draftIdeas = []dto.DraftIdea{
	{ID: "i1", Title: "Leg day routine", Category: models.CategoryWorkout},
	{ID: "i2", Title: "High-protein breakfast bowl", Category: models.CategoryMeal},
	{ID: "i3", Title: "Active rest day walk", Category: models.CategoryLifestyle},
}

// DraftService quản lý vòng đời draft: tạo (kèm sinh caption + ảnh),
// patch allow-list, approve (sinh FeedPost kèm metrics mô phỏng),
// regenerate caption/ảnh, export zip.
type DraftService struct {
	*BaseServiceMongoImpl[models.Draft]
	personas   *BaseServiceMongoImpl[models.Persona]
	feedPosts  *BaseServiceMongoImpl[models.FeedPost]
	classifier *CategoryClassifierService
	simulator  *MetricsSimulatorService
	aiText     *AITextService
	aiImage    *AIImageService
	composite  *CompositeImageService
	prompts    *PromptBuilderService
	storage    *FileStorageService
}

// NewDraftService tạo mới DraftService
func NewDraftService() (*DraftService, error) {
	draftCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Drafts)
	if !exist {
		return nil, fmt.Errorf("failed to get drafts collection: %v", common.ErrNotFound)
	}
	personaCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Personas)
	if !exist {
		return nil, fmt.Errorf("failed to get personas collection: %v", common.ErrNotFound)
	}
	feedPostCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.FeedPosts)
	if !exist {
		return nil, fmt.Errorf("failed to get feed_posts collection: %v", common.ErrNotFound)
	}

	storage, err := NewFileStorageService()
	if err != nil {
		return nil, err
	}

	return &DraftService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.Draft](draftCol),
		personas:             NewBaseServiceMongo[models.Persona](personaCol),
		feedPosts:            NewBaseServiceMongo[models.FeedPost](feedPostCol),
		classifier:           NewCategoryClassifierService(),
		simulator:            NewMetricsSimulatorService(rand.New(rand.NewSource(time.Now().UnixNano()))),
		aiText:               NewAITextService(),
		aiImage:              NewAIImageService(),
		composite:            NewCompositeImageService(),
		prompts:              NewPromptBuilderService(),
		storage:              storage,
	}, nil
}

// Ideas trả về danh sách gợi ý topic tĩnh
func (s *DraftService) Ideas() []dto.DraftIdea {
	return draftIdeas
}

// loadPersona load persona theo string id.
// Id không hợp lệ hoặc persona không tồn tại đều trả về ErrInvalidReference (400),
// không phải ErrNotFound - tham chiếu hỏng là lỗi của request tạo/patch draft.
func (s *DraftService) loadPersona(ctx context.Context, personaID string) (models.Persona, error) {
	id, err := utility.String2ObjectID(personaID)
	if err != nil {
		return *new(models.Persona), common.ErrInvalidReference
	}

	persona, err := s.personas.FindOneById(ctx, id)
	if err != nil {
		return persona, common.ErrInvalidReference
	}
	return persona, nil
}

// fillCaption điền caption/hashtags còn thiếu qua AI, fallback static khi upstream lỗi.
// Field client đã truyền không bị ghi đè.
func (s *DraftService) fillCaption(ctx context.Context, draft *models.Draft, persona models.Persona, customText string) {
	if draft.Caption != "" && len(draft.Hashtags) > 0 {
		return
	}

	tone := persona.Tone
	if tone == "" {
		tone = "friendly, concise"
	}
	if customText == "" {
		customText = tone
	}

	caption, tags, err := s.aiText.GenCaptionAndTags(ctx, draft.Title, draft.Category, persona.BrandTag, customText)
	if err != nil {
		logger.GetAppLogger().Warnf("Sinh caption thất bại cho draft %q, dùng fallback: %v", draft.Title, err)
		metrics.CaptionFallbacks.Inc()
		caption = "Save this for later! 💡"
		tags = []string{"post", "daily", "ideas", "trending"}
	}

	if draft.Caption == "" {
		draft.Caption = caption
	}
	if len(draft.Hashtags) == 0 {
		draft.Hashtags = tags
	}
}

// generatePreview sinh ảnh preview cho draft và lưu vào storage.
//
// Chiến lược:
//   - Có API key + persona có portrait: img2img từ portrait (giữ khuôn mặt ổn định)
//   - Có API key nhưng persona không có portrait: ErrMissingAsset (img2img-only)
//   - Không có API key: composite placeholder rẻ tiền, không bao giờ lỗi upstream
func (s *DraftService) generatePreview(ctx context.Context, draft *models.Draft, persona models.Persona) error {
	var imgBytes []byte
	var err error

	if s.aiImage.HasCredential() {
		if persona.PortraitFile == "" {
			return common.ErrMissingAsset
		}
		positive, _ := s.prompts.BuildFromPersona(&persona, draft.Title, draft.Hashtags)
		imgBytes, err = s.aiImage.Img2Img(ctx, s.storage.Path(persona.PortraitFile), positive)
		if err != nil {
			return err
		}
		metrics.ImagesGenerated.WithLabelValues("ai").Inc()
	} else {
		imgBytes, err = s.renderComposite(draft, persona, "")
		if err != nil {
			return err
		}
		metrics.ImagesGenerated.WithLabelValues("composite").Inc()
	}

	storedName, publicURL, err := s.storage.SaveBytes(imgBytes, "jpg")
	if err != nil {
		return err
	}

	// Ảnh cũ (nếu có) bị thay thế, xóa best-effort
	s.storage.Delete(draft.ImageFile)
	draft.ImageFile = storedName
	draft.ImageURL = publicURL
	return nil
}

// renderComposite vẽ composite placeholder cho draft theo style của persona
func (s *DraftService) renderComposite(draft *models.Draft, persona models.Persona, preset string) ([]byte, error) {
	if preset == "" {
		preset = persona.ImageStyle
	}
	switch preset {
	case CompositePresetClean, CompositePresetGradient, CompositePresetPolaroid:
	default:
		preset = CompositePresetClean
	}

	watermark := persona.Watermark
	if watermark == "" {
		watermark = persona.Name
	}

	subtitle := ""
	if len(draft.Hashtags) > 0 {
		subtitle = "#" + draft.Hashtags[0]
	} else if persona.BrandTag != "" {
		subtitle = "#" + persona.BrandTag
	}
	if draft.CustomText != "" {
		subtitle = draft.CustomText
	}

	return s.composite.Render(preset, draft.Title, subtitle, watermark)
}

// Create tạo draft mới theo pipeline đầy đủ:
//
//  1. Validate tham chiếu persona (ErrInvalidReference nếu hỏng)
//  2. Điền caption/hashtags còn thiếu (AI với fallback static)
//  3. Sinh ảnh preview trừ khi skipImage (ErrMissingAsset nếu img2img mà persona không có portrait)
//  4. Suy ra category từ nội dung đã ghép nếu client không truyền
//  5. Persist với status "draft"
func (s *DraftService) Create(ctx context.Context, input *dto.DraftCreateInput) (models.Draft, error) {
	persona, err := s.loadPersona(ctx, input.PersonaID)
	if err != nil {
		return *new(models.Draft), err
	}

	draft := models.Draft{
		Title:      input.Title,
		Category:   input.Category,
		Caption:    input.Caption,
		Hashtags:   input.Hashtags,
		PersonaID:  persona.ID,
		Status:     models.DraftStatusDraft,
		CustomText: input.CustomText,
	}

	s.fillCaption(ctx, &draft, persona, input.CustomText)

	if !input.SkipImage {
		if err := s.generatePreview(ctx, &draft, persona); err != nil {
			return draft, err
		}
	}

	if draft.Category == "" {
		draft.Category = s.classifier.InferCategory(draft.Title, draft.Caption, draft.Hashtags)
	}

	created, err := s.InsertOne(ctx, draft)
	if err != nil {
		s.storage.Delete(draft.ImageFile)
		return created, err
	}

	metrics.DraftsCreated.Inc()
	return created, nil
}

// Patch cập nhật draft theo allow-list field.
// Patch rỗng trả về ErrNoFieldsProvided; đổi personaId thì tham chiếu mới được validate lại.
func (s *DraftService) Patch(ctx context.Context, id primitive.ObjectID, input *dto.DraftUpdateInput) (models.Draft, error) {
	set := bson.M{}
	if input.Title != nil {
		set["title"] = *input.Title
	}
	if input.Category != nil {
		set["category"] = *input.Category
	}
	if input.Caption != nil {
		set["caption"] = *input.Caption
	}
	if input.Hashtags != nil {
		set["hashtags"] = *input.Hashtags
	}
	if input.CustomText != nil {
		set["customText"] = *input.CustomText
	}
	if input.PersonaID != nil {
		persona, err := s.loadPersona(ctx, *input.PersonaID)
		if err != nil {
			return *new(models.Draft), err
		}
		set["personaId"] = persona.ID
	}

	if len(set) == 0 {
		return *new(models.Draft), common.ErrNoFieldsProvided
	}

	return s.UpdateById(ctx, id, bson.M{"$set": set})
}

// Approve duyệt draft và publish FeedPost.
//
// Idempotent cả hai phía:
//   - Draft đã approved: set lại status là no-op
//   - FeedPost: insert-if-absent theo draftId (unique index), approve lần hai
//     trả về post đã tồn tại thay vì tạo bản ghi trùng
//
// Category của FeedPost được suy lại từ nội dung cuối cùng của draft
// (có thể khác category lưu trên draft nếu draft đã bị patch sau khi tạo).
func (s *DraftService) Approve(ctx context.Context, id primitive.ObjectID) (models.Draft, models.FeedPost, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	draft, err := s.FindOneAndUpdate(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": models.DraftStatusApproved}}, opts)
	if err != nil {
		return draft, *new(models.FeedPost), err
	}

	personaHint := ""
	if persona, err := s.personas.FindOneById(ctx, draft.PersonaID); err == nil {
		personaHint = persona.PersonaHint()
	}

	category := s.classifier.InferCategory(draft.Title, draft.Caption, draft.Hashtags)

	post := models.FeedPost{
		DraftID:   draft.ID,
		Title:     draft.Title,
		Caption:   draft.Caption,
		Hashtags:  draft.Hashtags,
		ImageURL:  draft.ImageURL,
		PersonaID: draft.PersonaID,
		Category:  category,
		PostedAt:  time.Now().UnixMilli(),
		Metrics:   s.simulator.Simulate(category, personaHint),
	}

	post, created, err := s.feedPosts.InsertIfAbsent(ctx, bson.M{"draftId": draft.ID}, post)
	if err != nil {
		return draft, post, err
	}
	if !created {
		logger.GetAppLogger().Infof("Draft %s đã có feed post, approve là no-op", draft.ID.Hex())
	} else {
		metrics.DraftsApproved.Inc()
	}

	return draft, post, nil
}

// RegenerateCaption sinh lại caption + hashtags cho draft qua AI.
// Upstream lỗi thì fallback "{title} — save it!" và giữ hashtags cũ.
func (s *DraftService) RegenerateCaption(ctx context.Context, id primitive.ObjectID) (models.Draft, error) {
	draft, err := s.FindOneById(ctx, id)
	if err != nil {
		return draft, err
	}

	persona, err := s.loadPersona(ctx, draft.PersonaID.Hex())
	if err != nil {
		return draft, err
	}

	tone := persona.Tone
	if tone == "" {
		tone = "friendly, concise"
	}
	customText := draft.CustomText
	if customText == "" {
		customText = tone
	}

	caption, tags, err := s.aiText.GenCaptionAndTags(ctx, draft.Title, draft.Category, persona.BrandTag, customText)
	if err != nil {
		logger.GetAppLogger().Warnf("Regenerate caption thất bại cho draft %s, dùng fallback: %v", id.Hex(), err)
		caption = draft.Title + " — save it!"
		tags = draft.Hashtags
		if len(tags) == 0 && persona.BrandTag != "" {
			tags = []string{persona.BrandTag}
		}
	}

	return s.UpdateById(ctx, id, bson.M{"$set": bson.M{"caption": caption, "hashtags": tags}})
}

// RegenerateImage sinh lại ảnh preview cho draft (AI nếu có key, composite nếu không).
// Ảnh cũ bị xóa best-effort sau khi ảnh mới lưu thành công.
func (s *DraftService) RegenerateImage(ctx context.Context, id primitive.ObjectID) (models.Draft, error) {
	draft, err := s.FindOneById(ctx, id)
	if err != nil {
		return draft, err
	}

	persona, err := s.loadPersona(ctx, draft.PersonaID.Hex())
	if err != nil {
		return draft, err
	}

	if err := s.generatePreview(ctx, &draft, persona); err != nil {
		return draft, err
	}

	return s.UpdateById(ctx, id, bson.M{"$set": bson.M{
		"imageFile": draft.ImageFile,
		"imageUrl":  draft.ImageURL,
	}})
}

// Delete xóa draft và ảnh preview của nó (xóa file best-effort).
// FeedPost sinh từ draft này KHÔNG bị cascade - post sống độc lập sau khi publish.
func (s *DraftService) Delete(ctx context.Context, id primitive.ObjectID) error {
	draft, err := s.FindOneById(ctx, id)
	if err != nil {
		return err
	}

	if err := s.DeleteById(ctx, id); err != nil {
		return err
	}

	s.storage.Delete(draft.ImageFile)
	return nil
}

// buildExportArchive đóng gói draft thành zip: caption.txt (caption + hashtags),
// image.jpg (nếu có imageData), meta.json (title/category/status)
func buildExportArchive(draft models.Draft, imageData []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	captionText := draft.Caption
	if len(draft.Hashtags) > 0 {
		var tagLine string
		for i, t := range draft.Hashtags {
			if i > 0 {
				tagLine += " "
			}
			tagLine += "#" + t
		}
		captionText += "\n\n" + tagLine
	}
	if captionText == "" {
		captionText = "Add your caption here"
	}

	w, err := zw.Create("caption.txt")
	if err == nil {
		_, err = w.Write([]byte(captionText))
	}
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không ghi được caption.txt vào zip", common.StatusInternalServerError, err.Error())
	}

	if len(imageData) > 0 {
		if w, err := zw.Create("image.jpg"); err == nil {
			w.Write(imageData)
		}
	}

	meta, _ := json.MarshalIndent(map[string]string{
		"title":    draft.Title,
		"category": draft.Category,
		"status":   draft.Status,
	}, "", "  ")
	if w, err := zw.Create("meta.json"); err == nil {
		w.Write(meta)
	}

	if err := zw.Close(); err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không đóng được file zip", common.StatusInternalServerError, err.Error())
	}

	return buf.Bytes(), nil
}

// Export đóng gói draft thành zip kit để đăng tay.
// Ảnh không đọc được từ storage thì bỏ qua entry ảnh, không fail export.
//
// Trả về:
//   - []byte: Nội dung file zip
//   - string: Tên file download đề xuất
func (s *DraftService) Export(ctx context.Context, id primitive.ObjectID) ([]byte, string, error) {
	draft, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, "", err
	}

	var imageData []byte
	if draft.ImageFile != "" {
		imageData, _ = os.ReadFile(s.storage.Path(draft.ImageFile))
	}

	data, err := buildExportArchive(draft, imageData)
	if err != nil {
		return nil, "", err
	}

	return data, fmt.Sprintf("manual_post_kit_%s.zip", id.Hex()), nil
}
