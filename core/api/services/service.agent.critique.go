package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"influencer_studio/core/api/dto"
	models "influencer_studio/core/api/models/mongodb"
	"influencer_studio/core/common"
	"influencer_studio/core/global"
	"influencer_studio/core/logger"
	"influencer_studio/core/metrics"
	"influencer_studio/core/utility"
)

// Giới hạn kích thước của agent record
const (
	critiqueMaxInsights     = 4
	critiqueMaxInsightLen   = 120
	critiqueMaxRecs         = 5
	critiqueMaxRecLen       = 140
	critiqueCommentRateFlag = 0.003 // Dưới ngưỡng này -> đề xuất hỏi câu hỏi trong caption
	critiqueLikeRateFlag    = 0.015 // Dưới ngưỡng này -> đề xuất thử cover đậm hơn
)

// defaultImageIntent là giá trị mặc định cho 5 field image intent
var defaultImageIntent = models.ImageIntent{
	Style:       "clean minimal",
	Framing:     "close-up",
	Lighting:    "soft daylight",
	Background:  "plain",
	TextOverlay: "none",
}

// fallbackBaseInsights là hai insight cố định của fallback mode
var fallbackBaseInsights = []string{
	"Reach is in the expected range for this category; growth now depends on engagement quality.",
	"Likes carry most of the engagement; comments are the weaker signal on this post.",
}

// fallbackIntentPresets là bảng image intent theo category cho fallback mode
var fallbackIntentPresets = map[string]models.ImageIntent{
	models.CategoryMeal: {
		Style:       "warm appetizing",
		Framing:     "top-down flat lay",
		Lighting:    "golden hour",
		Background:  "wooden table",
		TextOverlay: "none",
	},
	models.CategoryWorkout: {
		Style:       "high energy",
		Framing:     "full body action shot",
		Lighting:    "hard directional light",
		Background:  "gym floor",
		TextOverlay: "none",
	},
	models.CategoryFinance: {
		Style:       "clean professional",
		Framing:     "medium shot",
		Lighting:    "soft office light",
		Background:  "desk setup",
		TextOverlay: "none",
	},
}

// fallbackRecsPresets là recommendation nền theo category cho fallback mode
var fallbackRecsPresets = map[string][]string{
	models.CategoryMeal:    {"Show the finished plate first, process shots after.", "Add one line with prep time to the caption."},
	models.CategoryWorkout: {"Open the caption with the number of sets and reps.", "Keep one hashtag about the specific muscle group."},
	models.CategoryFinance: {"Lead with one concrete number in the caption.", "Avoid jargon; one tip per post performs better."},
}

// fallbackDefaultRecs dùng khi category không có preset riêng
var fallbackDefaultRecs = []string{"Post at a consistent time of day.", "Keep the first caption line under 60 characters."}

// critiqueSnapshot là payload gửi cho external mode
type critiqueSnapshot struct {
	Title     string             `json:"title"`
	Caption   string             `json:"caption"`
	Hashtags  []string           `json:"hashtags"`
	Category  string             `json:"category"`
	PersonaID string             `json:"personaId"`
	KPIs      models.KPISnapshot `json:"kpis"`
}

// AgentService là cặp critique/apply của agent:
// critique chấm và gắn AgentRecord lên FeedPost, apply tạo draft kế tiếp từ nextDraftConfig.
type AgentService struct {
	feedPosts *BaseServiceMongoImpl[models.FeedPost]
	drafts    *BaseServiceMongoImpl[models.Draft]
	personas  *BaseServiceMongoImpl[models.Persona]
	kpi       *KPICalculatorService
	aiText    *AITextService
	aiImage   *AIImageService
	prompts   *PromptBuilderService
	storage   *FileStorageService
}

// NewAgentService tạo mới AgentService
func NewAgentService() (*AgentService, error) {
	feedPostCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.FeedPosts)
	if !exist {
		return nil, fmt.Errorf("failed to get feed_posts collection: %v", common.ErrNotFound)
	}
	draftCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Drafts)
	if !exist {
		return nil, fmt.Errorf("failed to get drafts collection: %v", common.ErrNotFound)
	}
	personaCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Personas)
	if !exist {
		return nil, fmt.Errorf("failed to get personas collection: %v", common.ErrNotFound)
	}

	storage, err := NewFileStorageService()
	if err != nil {
		return nil, err
	}

	return &AgentService{
		feedPosts: NewBaseServiceMongo[models.FeedPost](feedPostCol),
		drafts:    NewBaseServiceMongo[models.Draft](draftCol),
		personas:  NewBaseServiceMongo[models.Persona](personaCol),
		kpi:       NewKPICalculatorService(),
		aiText:    NewAITextService(),
		aiImage:   NewAIImageService(),
		prompts:   NewPromptBuilderService(),
		storage:   storage,
	}, nil
}

// normalizeIntent điền default cho field image intent còn thiếu
func normalizeIntent(intent models.ImageIntent) models.ImageIntent {
	if intent.Style == "" {
		intent.Style = defaultImageIntent.Style
	}
	if intent.Framing == "" {
		intent.Framing = defaultImageIntent.Framing
	}
	if intent.Lighting == "" {
		intent.Lighting = defaultImageIntent.Lighting
	}
	if intent.Background == "" {
		intent.Background = defaultImageIntent.Background
	}
	if intent.TextOverlay == "" {
		intent.TextOverlay = defaultImageIntent.TextOverlay
	}
	return intent
}

// truncateList cắt danh sách về tối đa maxItems entry, mỗi entry tối đa maxLen ký tự
func truncateList(items []string, maxItems, maxLen int) []string {
	if len(items) > maxItems {
		items = items[:maxItems]
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, utility.TruncateRunes(item, maxLen))
	}
	return out
}

// fallbackCritique build agent record bằng rule table, không gọi external.
// Deterministic: cùng post + KPIs luôn cho cùng kết quả.
func fallbackCritique(post models.FeedPost, kpis models.KPISnapshot) models.AgentRecord {
	insights := make([]string, len(fallbackBaseInsights))
	copy(insights, fallbackBaseInsights)

	recs, ok := fallbackRecsPresets[post.Category]
	if !ok {
		recs = fallbackDefaultRecs
	}
	recs = append([]string{}, recs...)
	if kpis.CommentRate < critiqueCommentRateFlag {
		recs = append(recs, "Ask a question at the end of the caption to invite comments.")
	}
	if kpis.LikeRate < critiqueLikeRateFlag {
		recs = append(recs, "Test a bolder cover image in the next post.")
	}

	intent, ok := fallbackIntentPresets[post.Category]
	if !ok {
		intent = defaultImageIntent
	}

	return models.AgentRecord{
		KPIs:            kpis,
		Insights:        insights,
		Recommendations: recs,
		NextDraftConfig: models.NextDraftConfig{Image: intent},
	}
}

// Critique chấm một FeedPost và ghi đè AgentRecord lên nó.
//
// External mode khi có API key; upstream lỗi hoặc không có key thì fallback
// rule table theo category. Record mới luôn tăng version so với record trước.
func (s *AgentService) Critique(ctx context.Context, postID primitive.ObjectID) (dto.CritiqueResult, error) {
	post, err := s.feedPosts.FindOneById(ctx, postID)
	if err != nil {
		return dto.CritiqueResult{}, err
	}

	kpis := s.kpi.Compute(post.Metrics)

	var record models.AgentRecord
	mode := "fallback"

	if s.aiText.HasCredential() {
		snapshot := critiqueSnapshot{
			Title:     post.Title,
			Caption:   post.Caption,
			Hashtags:  post.Hashtags,
			Category:  post.Category,
			PersonaID: post.PersonaID.Hex(),
			KPIs:      kpis,
		}
		payload, err := s.aiText.GenerateCritique(ctx, snapshot)
		if err != nil {
			logger.GetAppLogger().Warnf("Critique external mode thất bại cho post %s, chuyển fallback: %v", postID.Hex(), err)
			record = fallbackCritique(post, kpis)
		} else {
			mode = "external"
			record = models.AgentRecord{
				KPIs:            kpis,
				Insights:        payload.Insights,
				Recommendations: payload.Recommendations,
				NextDraftConfig: models.NextDraftConfig{
					Caption:  payload.NextDraftConfig.Caption,
					Hashtags: payload.NextDraftConfig.Hashtags,
					Image: models.ImageIntent{
						Style:       payload.NextDraftConfig.Image.Style,
						Framing:     payload.NextDraftConfig.Image.Framing,
						Lighting:    payload.NextDraftConfig.Image.Lighting,
						Background:  payload.NextDraftConfig.Image.Background,
						TextOverlay: payload.NextDraftConfig.Image.TextOverlay,
					},
				},
			}
		}
	} else {
		record = fallbackCritique(post, kpis)
	}

	record.Insights = truncateList(record.Insights, critiqueMaxInsights, critiqueMaxInsightLen)
	record.Recommendations = truncateList(record.Recommendations, critiqueMaxRecs, critiqueMaxRecLen)
	record.NextDraftConfig.Image = normalizeIntent(record.NextDraftConfig.Image)
	record.GeneratedAt = time.Now().UnixMilli()
	record.Version = 1
	if post.Agent != nil {
		record.Version = post.Agent.Version + 1
	}

	if _, err := s.feedPosts.UpdateById(ctx, postID, bson.M{"$set": bson.M{"agent": record}}); err != nil {
		return dto.CritiqueResult{}, err
	}

	metrics.CritiqueRuns.WithLabelValues(mode).Inc()

	return dto.CritiqueResult{
		PostID: postID.Hex(),
		Agent:  record,
		Mode:   mode,
	}, nil
}

// Apply tạo draft kế tiếp từ nextDraftConfig của post đã critique.
//
// Caption/hashtags thiếu trong config thì lấy từ post nguồn (hashtags cắt còn 3);
// ảnh mới sinh img2img theo image intent nếu có key + portrait, lỗi sinh ảnh
// chỉ log và giữ ảnh cũ của post - apply không bao giờ fail vì upstream ảnh.
func (s *AgentService) Apply(ctx context.Context, postID primitive.ObjectID) (dto.ApplyResult, error) {
	post, err := s.feedPosts.FindOneById(ctx, postID)
	if err != nil {
		return dto.ApplyResult{}, err
	}

	var cfg models.NextDraftConfig
	if post.Agent != nil {
		cfg = post.Agent.NextDraftConfig
	}

	caption := cfg.Caption
	if caption == "" {
		caption = post.Caption
	}
	hashtags := cfg.Hashtags
	if len(hashtags) == 0 {
		hashtags = post.Hashtags
		if len(hashtags) > 3 {
			hashtags = hashtags[:3]
		}
	}

	intent := normalizeIntent(cfg.Image)

	var persona models.Persona
	personaLoaded := false
	if !post.PersonaID.IsZero() {
		if p, err := s.personas.FindOneById(ctx, post.PersonaID); err == nil {
			persona = p
			personaLoaded = true
		}
	}

	draft := models.Draft{
		Title:     post.Title,
		Category:  post.Category,
		Caption:   caption,
		Hashtags:  hashtags,
		PersonaID: post.PersonaID,
		Status:    models.DraftStatusDraft,
		ImageURL:  post.ImageURL,
	}

	// Ảnh mới theo intent, best-effort
	if s.aiImage.HasCredential() && personaLoaded && persona.PortraitFile != "" {
		positive, _ := s.prompts.BuildFromImageIntent(&persona, post.Title, intent)
		if intent.TextOverlay != "none" && intent.TextOverlay != "" {
			positive += ", subtle text overlay: " + intent.TextOverlay + " (max 5 words)"
		}

		if imgBytes, err := s.aiImage.Img2Img(ctx, s.storage.Path(persona.PortraitFile), positive); err != nil {
			logger.GetAppLogger().Warnf("Apply img2img thất bại cho post %s, giữ ảnh cũ: %v", postID.Hex(), err)
		} else if storedName, publicURL, err := s.storage.SaveBytes(imgBytes, "jpg"); err == nil {
			draft.ImageFile = storedName
			draft.ImageURL = publicURL
		}
	}

	created, err := s.drafts.InsertOne(ctx, draft)
	if err != nil {
		s.storage.Delete(draft.ImageFile)
		return dto.ApplyResult{}, err
	}

	return dto.ApplyResult{
		SourcePostID: postID.Hex(),
		Draft:        created,
	}, nil
}
