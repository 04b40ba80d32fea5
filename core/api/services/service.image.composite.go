package services

import (
	"bytes"
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"influencer_studio/core/common"
)

// Kích thước chuẩn của ảnh composite (tỷ lệ 4:5 của feed dọc)
const (
	compositeWidth  = 1080
	compositeHeight = 1350
)

// Các preset composite được hỗ trợ
const (
	CompositePresetClean    = "clean"
	CompositePresetGradient = "gradient"
	CompositePresetPolaroid = "polaroid"
)

// CompositeImageService vẽ ảnh preview rẻ tiền từ template, không gọi API ngoài.
// Dùng làm placeholder khi không sinh ảnh AI (không có key, hoặc client chọn mode composite).
type CompositeImageService struct{}

// NewCompositeImageService tạo mới CompositeImageService
func NewCompositeImageService() *CompositeImageService {
	return &CompositeImageService{}
}

// wrapText bẻ dòng theo số ký tự tối đa mỗi dòng, không cắt giữa từ
func wrapText(s string, width int) []string {
	var lines []string
	var line string
	for _, word := range strings.Fields(s) {
		if line == "" {
			line = word
			continue
		}
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// drawText vẽ một dòng text căn giữa theo chiều ngang tại baseline y
func drawText(dst *image.NRGBA, text string, y int, col color.Color) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P((compositeWidth-width)/2, y),
	}
	d.DrawString(text)
}

// drawTextAt vẽ text tại tọa độ (x, y) cho trước (không căn giữa)
func drawTextAt(dst *image.NRGBA, text string, x, y int, col color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// background build canvas nền theo preset
func (s *CompositeImageService) background(preset string) *image.NRGBA {
	switch preset {
	case CompositePresetGradient:
		// Gradient dọc từ #111827 xuống #312e81
		canvas := imaging.New(compositeWidth, compositeHeight, color.NRGBA{})
		top := [3]float64{17, 24, 39}
		bottom := [3]float64{49, 46, 129}
		for y := 0; y < compositeHeight; y++ {
			t := float64(y) / float64(compositeHeight-1)
			c := color.NRGBA{
				R: uint8(top[0] + (bottom[0]-top[0])*t),
				G: uint8(top[1] + (bottom[1]-top[1])*t),
				B: uint8(top[2] + (bottom[2]-top[2])*t),
				A: 255,
			}
			for x := 0; x < compositeWidth; x++ {
				canvas.SetNRGBA(x, y, c)
			}
		}
		return canvas

	case CompositePresetPolaroid:
		// Khung trắng, vùng ảnh tối bên trong với margin đều, đáy dày hơn
		canvas := imaging.New(compositeWidth, compositeHeight, color.NRGBA{R: 245, G: 245, B: 240, A: 255})
		inner := imaging.New(compositeWidth-120, compositeHeight-320, color.NRGBA{R: 24, G: 24, B: 28, A: 255})
		return imaging.Paste(canvas, inner, image.Pt(60, 60))

	default:
		// clean: nền tối với sọc ngang mờ mỗi 40px
		canvas := imaging.New(compositeWidth, compositeHeight, color.NRGBA{R: 18, G: 18, B: 22, A: 255})
		stripe := color.NRGBA{R: 28, G: 28, B: 32, A: 255}
		for y := 0; y < compositeHeight; y += 40 {
			for x := 0; x < compositeWidth; x++ {
				canvas.SetNRGBA(x, y, stripe)
			}
		}
		return canvas
	}
}

// Render vẽ ảnh composite 1080x1350 từ preset + title + subtitle + watermark.
// Title được uppercase và bẻ dòng 18 ký tự, căn giữa; subtitle nằm dưới title;
// watermark ở góc dưới trái. Trả về JPEG bytes quality 88.
func (s *CompositeImageService) Render(preset, title, subtitle, watermark string) ([]byte, error) {
	canvas := s.background(preset)

	titleColor := color.NRGBA{R: 240, G: 240, B: 240, A: 255}
	subColor := color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	markColor := color.NRGBA{R: 170, G: 170, B: 170, A: 255}
	if preset == CompositePresetPolaroid {
		// Watermark nằm trên khung trắng nên cần màu tối
		markColor = color.NRGBA{R: 90, G: 90, B: 90, A: 255}
	}

	lines := wrapText(strings.ToUpper(title), 18)
	lineHeight := 20
	startY := compositeHeight/2 - 60 - (len(lines)-1)*lineHeight/2
	for i, line := range lines {
		drawText(canvas, line, startY+i*lineHeight, titleColor)
	}

	if subtitle != "" {
		drawText(canvas, subtitle, compositeHeight/2+20, subColor)
	}
	if watermark != "" {
		drawTextAt(canvas, watermark, 24, compositeHeight-48, markColor)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, canvas, imaging.JPEG, imaging.JPEGQuality(88)); err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không encode được ảnh composite", common.StatusInternalServerError, err.Error())
	}
	return buf.Bytes(), nil
}
