package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"influencer_studio/core/common"
	"influencer_studio/core/global"
	"influencer_studio/core/metrics"
)

// System prompt và rules cho caption generation - giữ cố định để output ổn định
const (
	captionSystemPrompt = "You are an assistant that writes Instagram captions for a lifestyle persona. " +
		"Style: friendly, motivating, concise. Avoid medical/coach claims. No dangerous advice. " +
		"Use at most 2 emojis total. English language only."

	captionRules = "Write 1 caption of 90-140 characters for the given topic. " +
		"Then propose 10 short, relevant hashtags (lowercase, no diacritics). " +
		"Do not repeat brand tag; do not include #ai unless asked. " +
		"Return strict JSON with keys: caption (string), hashtags (array)."

	critiqueSystemPrompt = "You are a social media growth analyst. Given a post snapshot with KPI values, " +
		"return strict JSON with keys: insights (array of strings), recommendations (array of strings), " +
		"nextDraftConfig (object with optional caption, optional hashtags array, and image object with " +
		"keys style, framing, lighting, background, textOverlay). Be specific and concise."
)

// fallbackHashtags là danh sách hashtag an toàn khi không có API key hoặc upstream lỗi
var fallbackHashtags = []string{"gym", "fitness", "lifestyle", "workout", "inspo", "fit", "training", "health", "motivation"}

// chatRequest/chatResponse map body của OpenAI chat completions API
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	Temperature    float64       `json:"temperature"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// captionPayload là JSON contract của caption generation
type captionPayload struct {
	Caption  string   `json:"caption"`
	Hashtags []string `json:"hashtags"`
}

// critiquePayload là JSON contract của critique generation (external mode)
type critiquePayload struct {
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
	NextDraftConfig struct {
		Caption  string   `json:"caption,omitempty"`
		Hashtags []string `json:"hashtags,omitempty"`
		Image    struct {
			Style       string `json:"style,omitempty"`
			Framing     string `json:"framing,omitempty"`
			Lighting    string `json:"lighting,omitempty"`
			Background  string `json:"background,omitempty"`
			TextOverlay string `json:"textOverlay,omitempty"`
		} `json:"image"`
	} `json:"nextDraftConfig"`
}

// AITextService gọi dịch vụ sinh text OpenAI-compatible cho caption/hashtags và critique.
// Khi không có API key, caption dùng static fallback, còn critique để caller quyết định
// (AgentCritiqueService sẽ chuyển sang fallback mode).
type AITextService struct {
	client *resty.Client
	apiKey string
	model  string
}

// NewAITextService tạo mới AITextService từ cấu hình server
func NewAITextService() *AITextService {
	cfg := global.MongoDB_ServerConfig
	client := resty.New().
		SetBaseURL(cfg.OpenAIBaseURL).
		SetTimeout(60 * time.Second).
		SetHeader("Content-Type", "application/json")
	if cfg.OpenAIAPIKey != "" {
		client.SetAuthToken(cfg.OpenAIAPIKey)
	}

	return &AITextService{
		client: client,
		apiKey: cfg.OpenAIAPIKey,
		model:  cfg.OpenAITextModel,
	}
}

// HasCredential cho biết có API key để gọi external mode không
func (s *AITextService) HasCredential() bool {
	return s.apiKey != ""
}

// chatJSON gọi chat completions với JSON mode và unmarshal content vào out
func (s *AITextService) chatJSON(ctx context.Context, system, user string, out interface{}) error {
	body := chatRequest{
		Model:       s.model,
		Temperature: 0.8,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}
	body.ResponseFormat.Type = "json_object"

	var parsed chatResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&parsed).
		Post("/v1/chat/completions")
	if err != nil {
		metrics.UpstreamErrors.WithLabelValues("text").Inc()
		return common.NewError(common.ErrCodeUpstream, "Không gọi được dịch vụ sinh text", common.StatusBadGateway, err.Error())
	}
	if resp.IsError() {
		metrics.UpstreamErrors.WithLabelValues("text").Inc()
		return common.NewError(common.ErrCodeUpstream,
			fmt.Sprintf("Dịch vụ sinh text trả về status %d", resp.StatusCode()),
			common.StatusBadGateway, resp.String())
	}
	if len(parsed.Choices) == 0 {
		return common.NewError(common.ErrCodeUpstream, "Dịch vụ sinh text trả về response rỗng", common.StatusBadGateway, nil)
	}

	if err := json.Unmarshal([]byte(parsed.Choices[0].Message.Content), out); err != nil {
		return common.NewError(common.ErrCodeUpstream, "Dịch vụ sinh text trả về JSON không hợp lệ", common.StatusBadGateway, err.Error())
	}

	return nil
}

// GenCaptionAndTags sinh caption + hashtags cho topic.
// Không có API key -> static fallback an toàn (không bao giờ lỗi).
// Có API key nhưng upstream lỗi -> trả lỗi để caller quyết định fallback hay propagate.
func (s *AITextService) GenCaptionAndTags(ctx context.Context, topic, category, brandTag, customText string) (string, []string, error) {
	if brandTag == "" {
		brandTag = "fitai"
	}

	if !s.HasCredential() {
		tags := append([]string{brandTag}, fallbackHashtags...)
		return topic + " — save it for later! 💪", tags[:10], nil
	}

	styleHint := ""
	if strings.TrimSpace(customText) != "" {
		styleHint = "\nStyle hints: " + customText
	}
	user := fmt.Sprintf("%s\n\nTopic: %s\nCategory: %s\nBrand tag: #%s%s",
		captionRules, topic, category, brandTag, styleHint)

	var payload captionPayload
	if err := s.chatJSON(ctx, captionSystemPrompt, user, &payload); err != nil {
		return "", nil, err
	}

	caption := strings.TrimSpace(payload.Caption)
	if len(caption) > 160 {
		caption = caption[:160]
	}

	// Lọc tag: bỏ dấu #, giữ tag độ dài 2-24, tối đa 10, brand tag luôn đứng đầu
	var tags []string
	for _, h := range payload.Hashtags {
		h = strings.TrimPrefix(h, "#")
		if len(h) >= 2 && len(h) <= 24 {
			tags = append(tags, h)
		}
		if len(tags) == 10 {
			break
		}
	}
	hasBrand := false
	for _, t := range tags {
		if t == brandTag {
			hasBrand = true
			break
		}
	}
	if !hasBrand {
		tags = append([]string{brandTag}, tags...)
		if len(tags) > 10 {
			tags = tags[:10]
		}
	}

	return caption, tags, nil
}

// GenerateCritique gọi external mode của critique generator.
// Caller (AgentCritiqueService) chịu trách nhiệm fill default cho image intent
// và truncate insights/recommendations.
func (s *AITextService) GenerateCritique(ctx context.Context, snapshot interface{}) (*critiquePayload, error) {
	snapshotJSON, err := json.Marshal(snapshot)
	if err != nil {
		return nil, common.ErrInvalidFormat
	}

	var payload critiquePayload
	if err := s.chatJSON(ctx, critiqueSystemPrompt, string(snapshotJSON), &payload); err != nil {
		return nil, err
	}

	return &payload, nil
}
