package dto

// ImageGenerateInput dữ liệu đầu vào cho POST /images/generate
// Hai chế độ: text2img qua dịch vụ bên ngoài (mode=ai) hoặc composite local (mode=composite)
type ImageGenerateInput struct {
	Mode       string `json:"mode,omitempty" validate:"omitempty,oneof=ai composite"` // Mặc định "composite"
	Prompt     string `json:"prompt,omitempty"`                                       // Prompt cho mode=ai
	Preset     string `json:"preset,omitempty" validate:"omitempty,oneof=clean gradient polaroid"` // Preset cho mode=composite
	Title      string `json:"title,omitempty"`                                        // Text chính khi composite
	Subtitle   string `json:"subtitle,omitempty"`                                     // Text phụ khi composite
	PersonaID  string `json:"personaId,omitempty"`                                    // Lấy chân dung + watermark từ persona (tùy chọn)
}

// ImageResult là kết quả sinh ảnh: file đã lưu + URL public
type ImageResult struct {
	File string `json:"file"`
	URL  string `json:"url"`
}
