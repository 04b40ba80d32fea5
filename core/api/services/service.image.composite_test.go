package services

import (
	"bytes"
	"image/jpeg"
	"reflect"
	"testing"
)

func TestWrapText(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  []string
	}{
		{"leg day routine", 18, []string{"leg day routine"}},
		{"high protein breakfast bowl", 12, []string{"high protein", "breakfast", "bowl"}},
		{"", 10, nil},
		{"supercalifragilistic", 5, []string{"supercalifragilistic"}}, // từ dài hơn width vẫn giữ nguyên
	}

	for _, c := range cases {
		got := wrapText(c.in, c.width)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("wrapText(%q, %d) = %v, muốn %v", c.in, c.width, got, c.want)
		}
	}
}

func TestRender_ProducesDecodableJPEG(t *testing.T) {
	s := NewCompositeImageService()

	for _, preset := range []string{CompositePresetClean, CompositePresetGradient, CompositePresetPolaroid} {
		data, err := s.Render(preset, "Morning routine that works", "5 habits", "FitAI")
		if err != nil {
			t.Fatalf("Render preset %s trả về lỗi: %v", preset, err)
		}

		img, err := jpeg.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("output preset %s không phải JPEG hợp lệ: %v", preset, err)
		}
		bounds := img.Bounds()
		if bounds.Dx() != compositeWidth || bounds.Dy() != compositeHeight {
			t.Errorf("preset %s phải ra ảnh %dx%d, got %dx%d", preset, compositeWidth, compositeHeight, bounds.Dx(), bounds.Dy())
		}
	}
}

func TestRender_UnknownPresetFallsBackToClean(t *testing.T) {
	s := NewCompositeImageService()

	data, err := s.Render("neon", "Title", "", "")
	if err != nil {
		t.Fatalf("preset lạ không được lỗi, phải dùng nền clean: %v", err)
	}
	if _, err := jpeg.Decode(bytes.NewReader(data)); err != nil {
		t.Fatalf("output preset lạ không decode được: %v", err)
	}
}
