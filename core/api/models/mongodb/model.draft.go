package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// =====================================================
// DRAFT - Nội dung đang soạn thảo
// =====================================================

// Các trạng thái của Draft
// Chuyển trạng thái một chiều: draft -> approved (approve lại lần nữa là no-op)
const (
	DraftStatusDraft    = "draft"    // Trạng thái khởi tạo
	DraftStatusApproved = "approved" // Đã duyệt, đã sinh FeedPost
)

// Các category cố định của hệ thống
const (
	CategoryWorkout   = "workout"
	CategoryMeal      = "meal"
	CategoryFinance   = "finance"
	CategoryLifestyle = "lifestyle" // Category mặc định khi classifier không match keyword nào
)

// Categories là danh sách category theo thứ tự khai báo (thứ tự này quyết định tie-break của classifier)
var Categories = []string{CategoryWorkout, CategoryMeal, CategoryFinance, CategoryLifestyle}

// Draft đại diện cho một nội dung đang soạn thảo trước khi publish
type Draft struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title     string             `json:"title" bson:"title" index:"text"`                       // Tiêu đề/topic của bài
	Category  string             `json:"category" bson:"category" index:"single:1"`             // Category (workout|meal|finance|lifestyle)
	Caption   string             `json:"caption,omitempty" bson:"caption,omitempty"`            // Caption (sinh bởi AI nếu client không truyền)
	Hashtags  []string           `json:"hashtags,omitempty" bson:"hashtags,omitempty"`          // Danh sách hashtag (không có dấu #)
	PersonaID primitive.ObjectID `json:"personaId" bson:"personaId" index:"single:1"`           // Tham chiếu đến Persona (validate tồn tại khi tạo)
	Status    string             `json:"status" bson:"status" index:"single:1"`                 // draft | approved
	ImageFile string             `json:"imageFile,omitempty" bson:"imageFile,omitempty"`        // Tên file ảnh preview trong uploads dir
	ImageURL  string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`          // URL public của ảnh preview
	CustomText string            `json:"customText,omitempty" bson:"customText,omitempty"`      // Text overlay tùy chọn khi composite ảnh
	CreatedAt int64              `json:"createdAt,omitempty" bson:"createdAt,omitempty" index:"single:1;order:-1"` // Thời gian tạo (UnixMilli)
	UpdatedAt int64              `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`        // Thời gian cập nhật (UnixMilli)
}
