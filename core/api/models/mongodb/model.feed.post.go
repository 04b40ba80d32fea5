package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// =====================================================
// FEED POST - Snapshot của Draft đã approve kèm metrics mô phỏng
// =====================================================

// RawMetrics chứa số liệu engagement thô được mô phỏng khi "publish"
type RawMetrics struct {
	Reach       int64 `json:"reach" bson:"reach"`             // Số người tiếp cận
	Impressions int64 `json:"impressions" bson:"impressions"` // Số lượt hiển thị (reach * U(1.2, 1.6))
	Likes       int64 `json:"likes" bson:"likes"`             // Số lượt thích
	Comments    int64 `json:"comments" bson:"comments"`       // Số bình luận
}

// KPISnapshot chứa các chỉ số dẫn xuất từ RawMetrics
// Tất cả rate được làm tròn 4 chữ số thập phân, score là số nguyên [0, 100]
type KPISnapshot struct {
	LikeRate       float64 `json:"likeRate" bson:"likeRate"`             // likes / reach
	CommentRate    float64 `json:"commentRate" bson:"commentRate"`       // comments / reach
	EngagementRate float64 `json:"engagementRate" bson:"engagementRate"` // (likes + comments) / reach
	Score          int     `json:"score" bson:"score"`                   // 0-100, weighted từ like/comment norm
}

// ImageIntent mô tả ý đồ ảnh cho draft kế tiếp (5 field bắt buộc, fill default nếu thiếu)
type ImageIntent struct {
	Style       string `json:"style" bson:"style"`             // Mặc định: "clean minimal"
	Framing     string `json:"framing" bson:"framing"`         // Mặc định: "close-up"
	Lighting    string `json:"lighting" bson:"lighting"`       // Mặc định: "soft daylight"
	Background  string `json:"background" bson:"background"`   // Mặc định: "plain"
	TextOverlay string `json:"textOverlay" bson:"textOverlay"` // Mặc định: "none"
}

// NextDraftConfig là cấu hình draft kế tiếp do agent đề xuất
type NextDraftConfig struct {
	Caption  string      `json:"caption,omitempty" bson:"caption,omitempty"`
	Hashtags []string    `json:"hashtags,omitempty" bson:"hashtags,omitempty"`
	Image    ImageIntent `json:"image" bson:"image"`
}

// AgentRecord là kết quả critique của agent, ghi đè mỗi lần critique lại
type AgentRecord struct {
	KPIs            KPISnapshot     `json:"kpis" bson:"kpis"`
	Insights        []string        `json:"insights" bson:"insights"`               // Tối đa 4 entries, mỗi entry <= 120 ký tự
	Recommendations []string        `json:"recommendations" bson:"recommendations"` // Tối đa 5 entries, mỗi entry <= 140 ký tự
	NextDraftConfig NextDraftConfig `json:"nextDraftConfig" bson:"nextDraftConfig"`
	Version         int             `json:"version" bson:"version"`         // Tăng mỗi lần critique lại
	GeneratedAt     int64           `json:"generatedAt" bson:"generatedAt"` // UnixMilli
}

// FeedPost là snapshot đã "publish" của một Draft đã approve.
// Ràng buộc: tối đa một FeedPost cho mỗi Draft - đảm bảo bằng unique index trên draftId
// kết hợp insert-if-absent, không dùng existence check rồi mới insert.
type FeedPost struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	DraftID   primitive.ObjectID `json:"draftId" bson:"draftId" index:"unique"`        // Tham chiếu về Draft nguồn (unique)
	Title     string             `json:"title" bson:"title"`                           // Denormalized từ Draft
	Caption   string             `json:"caption,omitempty" bson:"caption,omitempty"`   // Denormalized từ Draft
	Hashtags  []string           `json:"hashtags,omitempty" bson:"hashtags,omitempty"` // Denormalized từ Draft
	ImageURL  string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"` // Denormalized từ Draft
	PersonaID primitive.ObjectID `json:"personaId" bson:"personaId"`                   // Denormalized từ Draft
	Category  string             `json:"category" bson:"category" index:"single:1"`    // Re-infer từ nội dung cuối cùng khi approve
	PostedAt  int64              `json:"postedAt" bson:"postedAt" index:"single:1;order:-1"` // Thời điểm publish (UnixMilli)
	Metrics   RawMetrics         `json:"metrics" bson:"metrics"`                       // Metrics mô phỏng
	Agent     *AgentRecord       `json:"agent,omitempty" bson:"agent,omitempty"`       // Kết quả critique (nil cho đến lần critique đầu)
	CreatedAt int64              `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt int64              `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
