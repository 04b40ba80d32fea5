package dto

// CharacterCreateInput dữ liệu đầu vào khi tạo character (multipart form, kèm file chân dung)
type CharacterCreateInput struct {
	Name  string `json:"name" form:"name" validate:"required,no_xss"`
	Notes string `json:"notes,omitempty" form:"notes"`
}

// CharacterUpdateInput dữ liệu đầu vào khi patch character
type CharacterUpdateInput struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,no_xss"`
	Notes *string `json:"notes,omitempty"`
}
