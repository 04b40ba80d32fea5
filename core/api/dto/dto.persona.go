package dto

// PersonaCreateInput dữ liệu đầu vào khi tạo persona (multipart form, kèm file chân dung)
type PersonaCreateInput struct {
	Name             string `json:"name" form:"name" validate:"required,no_xss"`
	Tone             string `json:"tone,omitempty" form:"tone"`
	BrandTag         string `json:"brandTag,omitempty" form:"brandTag"`
	Watermark        string `json:"watermark,omitempty" form:"watermark"`
	ImageStyle       string `json:"imageStyle,omitempty" form:"imageStyle"`
	IdentityHint     string `json:"identityHint,omitempty" form:"identityHint"`
	Mood             string `json:"mood,omitempty" form:"mood"`
	BackgroundPreset string `json:"backgroundPreset,omitempty" form:"backgroundPreset"`
}

// PersonaUpdateInput dữ liệu đầu vào khi patch persona (ảnh chân dung immutable sau khi tạo)
type PersonaUpdateInput struct {
	Name             *string `json:"name,omitempty" validate:"omitempty,no_xss"`
	Tone             *string `json:"tone,omitempty"`
	BrandTag         *string `json:"brandTag,omitempty"`
	Watermark        *string `json:"watermark,omitempty"`
	ImageStyle       *string `json:"imageStyle,omitempty"`
	IdentityHint     *string `json:"identityHint,omitempty"`
	Mood             *string `json:"mood,omitempty"`
	BackgroundPreset *string `json:"backgroundPreset,omitempty"`
}
