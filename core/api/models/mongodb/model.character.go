package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// =====================================================
// CHARACTER - Asset chân dung độc lập (không gắn 1:1 với Persona)
// =====================================================

// Character đại diện cho một asset chân dung đặt tên, quản lý độc lập với Persona
type Character struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name" index:"single:1"`                    // Tên character
	PortraitFile string             `json:"portraitFile,omitempty" bson:"portraitFile,omitempty"` // Tên file chân dung trong uploads dir
	PortraitURL  string             `json:"portraitUrl,omitempty" bson:"portraitUrl,omitempty"`   // URL public của ảnh chân dung
	Notes        string             `json:"notes,omitempty" bson:"notes,omitempty"`               // Ghi chú tự do
	CreatedAt    int64              `json:"createdAt,omitempty" bson:"createdAt,omitempty"`       // Thời gian tạo (UnixMilli)
	UpdatedAt    int64              `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`       // Thời gian cập nhật (UnixMilli)
}
