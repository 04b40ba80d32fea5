package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// =====================================================
// PERSONA - Hồ sơ giọng điệu/hình ảnh tái sử dụng
// =====================================================

// Persona đại diện cho một hồ sơ persona: ảnh chân dung gốc + các thuộc tính
// điều khiển prompt khi sinh caption và ảnh
type Persona struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name             string             `json:"name" bson:"name" index:"unique"`                                  // Tên persona (duy nhất)
	PortraitFile     string             `json:"portraitFile,omitempty" bson:"portraitFile,omitempty"`             // Tên file chân dung trong uploads dir
	PortraitURL      string             `json:"portraitUrl,omitempty" bson:"portraitUrl,omitempty"`               // URL public của ảnh chân dung
	Tone             string             `json:"tone,omitempty" bson:"tone,omitempty"`                             // Giọng điệu caption (ví dụ: "friendly, energetic")
	BrandTag         string             `json:"brandTag,omitempty" bson:"brandTag,omitempty"`                     // Hashtag thương hiệu, luôn đứng đầu danh sách hashtag
	Watermark        string             `json:"watermark,omitempty" bson:"watermark,omitempty"`                   // Text watermark trên ảnh composite
	ImageStyle       string             `json:"imageStyle,omitempty" bson:"imageStyle,omitempty"`                 // Style mặc định cho prompt ảnh
	IdentityHint     string             `json:"identityHint,omitempty" bson:"identityHint,omitempty"`             // Mô tả nhận dạng (giữ khuôn mặt ổn định khi img2img)
	Mood             string             `json:"mood,omitempty" bson:"mood,omitempty"`                             // Mood mặc định
	BackgroundPreset string             `json:"backgroundPreset,omitempty" bson:"backgroundPreset,omitempty"`     // Background preset mặc định
	CreatedAt        int64              `json:"createdAt,omitempty" bson:"createdAt,omitempty" index:"single:1;order:-1"` // Thời gian tạo (UnixMilli)
	UpdatedAt        int64              `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`                   // Thời gian cập nhật (UnixMilli)
}

// PersonaHint trả về chuỗi gợi ý dùng cho metrics simulator (bias theo tên + identity hint)
func (p *Persona) PersonaHint() string {
	return p.Name + " " + p.IdentityHint
}
