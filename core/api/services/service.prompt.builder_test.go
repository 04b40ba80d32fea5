package services

import (
	"strings"
	"testing"

	models "influencer_studio/core/api/models/mongodb"
)

func TestBuildFromPersona_NilPersonaDefaults(t *testing.T) {
	s := NewPromptBuilderService()

	positive, negative := s.BuildFromPersona(nil, "morning routine", nil)

	if !strings.HasPrefix(positive, "portrait photo of person, photo_realistic, neutral, studio_gray") {
		t.Errorf("persona nil phải dùng default trung tính, got %q", positive)
	}
	if !strings.Contains(positive, "topic: morning routine") {
		t.Errorf("positive prompt thiếu topic: %q", positive)
	}
	if negative != negativePrompt {
		t.Errorf("negative prompt phải là hằng cố định")
	}
}

func TestBuildFromPersona_UsesPersonaAttributes(t *testing.T) {
	s := NewPromptBuilderService()
	persona := &models.Persona{
		IdentityHint:     "young woman athlete",
		ImageStyle:       "clean",
		Mood:             "energetic",
		BackgroundPreset: "gym interior",
	}

	positive, _ := s.BuildFromPersona(persona, "leg day", []string{"fitness", "gym"})

	for _, want := range []string{"young woman athlete", "energetic", "gym interior", "fitness"} {
		if !strings.Contains(positive, want) {
			t.Errorf("positive prompt thiếu %q: %q", want, positive)
		}
	}
}

func TestBuildFromPersona_SkipsOverlongTags(t *testing.T) {
	s := NewPromptBuilderService()
	longTag := strings.Repeat("x", 33)

	positive, _ := s.BuildFromPersona(nil, "topic", []string{longTag, "short"})

	if strings.Contains(positive, longTag) {
		t.Errorf("tag dài hơn 32 ký tự phải bị bỏ qua")
	}
	if !strings.Contains(positive, "short") {
		t.Errorf("tag hợp lệ phải được giữ lại")
	}
}

func TestStripForbidden(t *testing.T) {
	got := stripForbidden("clean poster with logo and text overlay")
	for _, w := range []string{"poster", "logo", "text"} {
		if strings.Contains(got, w) {
			t.Errorf("stripForbidden còn sót từ cấm %q trong %q", w, got)
		}
	}
	if strings.Contains(got, "  ") {
		t.Errorf("stripForbidden phải chuẩn hóa whitespace: %q", got)
	}
}

func TestBuildFromImageIntent(t *testing.T) {
	s := NewPromptBuilderService()
	intent := models.ImageIntent{
		Style:      "clean minimal",
		Framing:    "close-up",
		Lighting:   "soft daylight",
		Background: "plain",
	}

	positive, negative := s.BuildFromImageIntent(nil, "healthy snack", intent)

	for _, want := range []string{"portrait photo of person", "clean minimal", "close-up", "soft daylight", "plain background", "topic: healthy snack"} {
		if !strings.Contains(positive, want) {
			t.Errorf("prompt từ image intent thiếu %q: %q", want, positive)
		}
	}
	if negative != negativePrompt {
		t.Errorf("negative prompt phải là hằng cố định")
	}
}
