package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// =====================================================
// TRENDS CACHE - Cache từ khóa trends với TTL 24h
// =====================================================

// TrendsCache lưu payload từ khóa trends theo key băm của (geo, window).
// MongoDB tự xóa entry sau 24h nhờ TTL index trên expireBase (tag ttl:86400).
// Lưu ý: TTL index yêu cầu kiểu Date nên expireBase là time, không dùng createdAt UnixMilli.
type TrendsCache struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Key        string             `json:"key" bson:"key" index:"unique"`            // SHA1("{geo}|{window}|TRENDING_ONLY")
	Geo        string             `json:"geo" bson:"geo"`                           // Mã geo (US, VN, ...)
	Window     string             `json:"window" bson:"window"`                     // Cửa sổ thời gian (7d, 30d, ...)
	Keywords   []string           `json:"keywords" bson:"keywords"`                 // Danh sách từ khóa (tối đa 25)
	Source     string             `json:"source" bson:"source"`                     // "upstream" hoặc "seed" (fallback)
	ExpireBase primitive.DateTime `json:"expireBase" bson:"expireBase" index:"ttl:86400"` // Mốc tính TTL
	CreatedAt  int64              `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt  int64              `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
