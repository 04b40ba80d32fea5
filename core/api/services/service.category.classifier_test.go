package services

import (
	"testing"

	models "influencer_studio/core/api/models/mongodb"
)

func TestInferCategory_KeywordMatch(t *testing.T) {
	s := NewCategoryClassifierService()

	cases := []struct {
		title    string
		caption  string
		hashtags []string
		want     string
	}{
		{"High-protein breakfast bowl", "", nil, models.CategoryMeal},
		{"Leg day routine", "reps and cardio today", nil, models.CategoryWorkout},
		{"Budget basics", "how to start saving money", []string{"invest"}, models.CategoryFinance},
		{"Morning walk", "daily vibes", nil, models.CategoryLifestyle},
	}

	for _, c := range cases {
		got := s.InferCategory(c.title, c.caption, c.hashtags)
		if got != c.want {
			t.Errorf("InferCategory(%q) = %q, muốn %q", c.title, got, c.want)
		}
	}
}

func TestInferCategory_EmptyInputDefaultsLifestyle(t *testing.T) {
	s := NewCategoryClassifierService()
	if got := s.InferCategory("", "", nil); got != models.CategoryLifestyle {
		t.Errorf("input rỗng phải trả về lifestyle, got %q", got)
	}
}

func TestInferCategory_Deterministic(t *testing.T) {
	s := NewCategoryClassifierService()
	first := s.InferCategory("Leg day", "gym time", []string{"fitness"})
	for i := 0; i < 10; i++ {
		if got := s.InferCategory("Leg day", "gym time", []string{"fitness"}); got != first {
			t.Fatalf("classifier không deterministic: %q != %q", got, first)
		}
	}
}

func TestInferCategory_TieBreakDeclarationOrder(t *testing.T) {
	s := NewCategoryClassifierService()
	// Mỗi category match đúng 1 keyword -> hòa, workout khai báo trước meal
	got := s.InferCategory("gym food", "", nil)
	if got != models.CategoryWorkout {
		t.Errorf("hòa keyword phải lấy category khai báo trước (workout), got %q", got)
	}
}

func TestInferCategory_IgnoresAIGeneratedToken(t *testing.T) {
	s := NewCategoryClassifierService()
	// "ai_generated" bị strip nên không ảnh hưởng kết quả
	if got := s.InferCategory("ai_generated", "", nil); got != models.CategoryLifestyle {
		t.Errorf("token ai_generated phải bị bỏ qua, got %q", got)
	}
}
