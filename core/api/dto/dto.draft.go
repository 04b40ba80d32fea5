package dto

// DraftCreateInput dữ liệu đầu vào khi tạo draft
type DraftCreateInput struct {
	Title      string   `json:"title" validate:"required,no_xss"`                      // Tiêu đề/topic
	Category   string   `json:"category,omitempty" validate:"omitempty,category"`      // Category (rỗng = classifier tự suy ra)
	Caption    string   `json:"caption,omitempty" validate:"omitempty,no_xss"`         // Caption (rỗng = AI sinh, fallback static)
	Hashtags   []string `json:"hashtags,omitempty"`                                    // Hashtag (rỗng = AI sinh)
	PersonaID  string   `json:"personaId" validate:"required"`                         // ID của Persona (dạng string ObjectID, phải tồn tại)
	CustomText string   `json:"customText,omitempty"`                                  // Text overlay tùy chọn
	SkipImage  bool     `json:"skipImage,omitempty"`                                   // true = không sinh ảnh preview khi tạo
}

// DraftUpdateInput dữ liệu đầu vào khi patch draft
// Allow-list các field mutable; patch rỗng bị từ chối với lỗi NoFieldsProvided
type DraftUpdateInput struct {
	Title      *string   `json:"title,omitempty" validate:"omitempty,no_xss"`
	Category   *string   `json:"category,omitempty" validate:"omitempty,category"`
	Caption    *string   `json:"caption,omitempty" validate:"omitempty,no_xss"`
	Hashtags   *[]string `json:"hashtags,omitempty"`
	PersonaID  *string   `json:"personaId,omitempty"` // Nếu đổi persona, tham chiếu mới được validate lại
	CustomText *string   `json:"customText,omitempty"`
}

// DraftIdea là một gợi ý topic tĩnh cho UI
type DraftIdea struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
}
