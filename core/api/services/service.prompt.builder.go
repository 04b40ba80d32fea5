package services

import (
	"strings"

	models "influencer_studio/core/api/models/mongodb"
)

// forbiddenPromptWords là các từ gợi ý poster/text-trên-ảnh bị loại khỏi positive prompt
// để model ảnh không vẽ chữ/logo lên kết quả
var forbiddenPromptWords = []string{
	"poster", "banner", "flyer", "layout", "title", "caption",
	"typography", "text", "logo", "watermark", "frame",
}

// negativePrompt là negative prompt cố định cho mọi lần sinh ảnh
const negativePrompt = "text, caption, title, subtitle, poster, banner, watermark, logo, frame, " +
	"typography, graphic design, lowres, overexposed, underexposed, blurry, jpeg artifacts"

// PromptBuilderService ghép thuộc tính persona + topic + trend tags thành cặp
// positive/negative prompt cho sinh ảnh. Pure string templating, không gọi ra ngoài.
type PromptBuilderService struct{}

// NewPromptBuilderService tạo mới PromptBuilderService
func NewPromptBuilderService() *PromptBuilderService {
	return &PromptBuilderService{}
}

// stripForbidden loại các từ cấm khỏi prompt và chuẩn hóa whitespace
func stripForbidden(s string) string {
	low := strings.ToLower(s)
	for _, w := range forbiddenPromptWords {
		low = strings.ReplaceAll(low, w, "")
	}
	return strings.Join(strings.Fields(low), " ")
}

// BuildFromPersona build cặp (positive, negative) prompt từ persona + topic + trend tags.
// Thuộc tính persona rỗng được thay bằng default trung tính.
func (s *PromptBuilderService) BuildFromPersona(persona *models.Persona, topic string, trendTags []string) (positive string, negative string) {
	identity := "person"
	style := "photo_realistic"
	mood := "neutral"
	bg := "studio_gray"

	if persona != nil {
		if persona.IdentityHint != "" {
			identity = persona.IdentityHint
		}
		if persona.ImageStyle != "" {
			style = persona.ImageStyle
		}
		if persona.Mood != "" {
			mood = persona.Mood
		}
		if persona.BackgroundPreset != "" {
			bg = persona.BackgroundPreset
		}
	}

	// Tag quá dài (> 32 ký tự) bị bỏ qua để prompt không phình
	var tags []string
	for _, t := range trendTags {
		t = strings.TrimSpace(t)
		if t != "" && len(t) <= 32 {
			tags = append(tags, t)
		}
	}

	var b strings.Builder
	b.WriteString("portrait photo of " + identity + ", " + style + ", " + mood + ", " + bg)
	b.WriteString(", topic: " + strings.TrimSpace(topic))
	if len(tags) > 0 {
		b.WriteString(", " + strings.Join(tags, ", "))
	}
	b.WriteString(", natural skin, editorial lighting, shallow depth of field")

	return stripForbidden(b.String()), negativePrompt
}

// BuildFromImageIntent build positive prompt từ image intent do agent đề xuất
// (dùng khi apply nextDraftConfig cho draft kế tiếp)
func (s *PromptBuilderService) BuildFromImageIntent(persona *models.Persona, topic string, intent models.ImageIntent) (positive string, negative string) {
	identity := "person"
	if persona != nil && persona.IdentityHint != "" {
		identity = persona.IdentityHint
	}

	parts := []string{
		"portrait photo of " + identity,
		intent.Style,
		intent.Framing,
		intent.Lighting,
		intent.Background + " background",
		"topic: " + strings.TrimSpace(topic),
		"natural skin, editorial composition",
	}

	return stripForbidden(strings.Join(parts, ", ")), negativePrompt
}
