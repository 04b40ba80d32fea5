package services

import (
	"math/rand"
	"testing"

	models "influencer_studio/core/api/models/mongodb"
)

func TestSimulate_ReachWithinCategoryRange(t *testing.T) {
	s := NewMetricsSimulatorService(rand.New(rand.NewSource(42)))

	for i := 0; i < 100; i++ {
		m := s.Simulate(models.CategoryWorkout, "")
		if m.Reach < 3000 || m.Reach > 12000 {
			t.Fatalf("reach workout phải nằm trong [3000, 12000], got %d", m.Reach)
		}
	}
}

func TestSimulate_UnknownCategoryUsesDefaultRange(t *testing.T) {
	s := NewMetricsSimulatorService(rand.New(rand.NewSource(7)))

	for i := 0; i < 100; i++ {
		m := s.Simulate("unknown", "")
		if m.Reach < 1000 || m.Reach > 5000 {
			t.Fatalf("reach category lạ phải nằm trong [1000, 5000], got %d", m.Reach)
		}
	}
}

func TestSimulate_ImpressionsProportionalToReach(t *testing.T) {
	s := NewMetricsSimulatorService(rand.New(rand.NewSource(1)))

	for i := 0; i < 50; i++ {
		m := s.Simulate(models.CategoryMeal, "")
		ratio := float64(m.Impressions) / float64(m.Reach)
		if ratio < 1.19 || ratio > 1.61 {
			t.Fatalf("impressions/reach phải xấp xỉ [1.2, 1.6], got %f", ratio)
		}
	}
}

func TestSimulate_EngagementRateBounds(t *testing.T) {
	s := NewMetricsSimulatorService(rand.New(rand.NewSource(99)))

	for i := 0; i < 100; i++ {
		m := s.Simulate(models.CategoryLifestyle, "")
		likeRate := float64(m.Likes) / float64(m.Reach)
		commentRate := float64(m.Comments) / float64(m.Reach)
		// không bias: likeRate trong [0.02, 0.06), commentRate trong [0.002, 0.015)
		// floor integer có thể kéo rate xuống chút ít
		if likeRate < 0.015 || likeRate > 0.06 {
			t.Fatalf("likeRate không bias nằm ngoài khoảng mong đợi: %f", likeRate)
		}
		if commentRate > 0.015 {
			t.Fatalf("commentRate vượt trần 0.015: %f", commentRate)
		}
	}
}

func TestSimulate_PersonaBiasBoostsLikes(t *testing.T) {
	// Cùng seed, chỉ khác persona hint: food bias 1.25 phải cho likeRate cao hơn no-bias
	base := NewMetricsSimulatorService(rand.New(rand.NewSource(123)))
	biased := NewMetricsSimulatorService(rand.New(rand.NewSource(123)))

	mBase := base.Simulate(models.CategoryMeal, "")
	mBiased := biased.Simulate(models.CategoryMeal, "chef daily")

	if mBiased.Likes <= mBase.Likes {
		t.Errorf("bias chef (1.25) phải tăng likes: base=%d biased=%d", mBase.Likes, mBiased.Likes)
	}
	if mBiased.Reach != mBase.Reach {
		t.Errorf("cùng seed phải cho cùng reach: base=%d biased=%d", mBase.Reach, mBiased.Reach)
	}
}

func TestPersonaBias_FirstMatchWins(t *testing.T) {
	cases := []struct {
		hint string
		want float64
	}{
		{"fitness coach", 1.15},
		{"home chef", 1.25},
		{"crypto analyst", 0.90},
		{"fit chef", 1.15}, // match cả 2 rule, rule đầu thắng
		{"travel blogger", 1.0},
		{"", 1.0},
	}
	for _, c := range cases {
		if got := personaBias(c.hint); got != c.want {
			t.Errorf("personaBias(%q) = %f, muốn %f", c.hint, got, c.want)
		}
	}
}

func TestSimulate_SeededDeterminism(t *testing.T) {
	a := NewMetricsSimulatorService(rand.New(rand.NewSource(555)))
	b := NewMetricsSimulatorService(rand.New(rand.NewSource(555)))

	for i := 0; i < 10; i++ {
		ma := a.Simulate(models.CategoryFinance, "fin guru")
		mb := b.Simulate(models.CategoryFinance, "fin guru")
		if ma != mb {
			t.Fatalf("cùng seed phải cho cùng chuỗi metrics: %+v != %+v", ma, mb)
		}
	}
}
