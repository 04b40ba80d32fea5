package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	models "influencer_studio/core/api/models/mongodb"
)

func TestKPICompute_BasicRates(t *testing.T) {
	s := NewKPICalculatorService()

	kpis := s.Compute(models.RawMetrics{Reach: 1000, Likes: 40, Comments: 10})

	assert.Equal(t, 0.04, kpis.LikeRate, "likeRate phải là likes/reach")
	assert.Equal(t, 0.01, kpis.CommentRate, "commentRate phải là comments/reach")
	assert.Equal(t, 0.05, kpis.EngagementRate, "engagementRate phải là (likes+comments)/reach")
	// likeNorm = 0.04/0.08 = 0.5; commentNorm = 0.01/0.02 = 0.5
	// score = round(100 * (0.65*0.5 + 0.35*0.5)) = 50
	assert.Equal(t, 50, kpis.Score)
}

func TestKPICompute_CeilingClamp(t *testing.T) {
	s := NewKPICalculatorService()

	// Rate vượt trần: likeRate 0.5 > 0.08, commentRate 0.1 > 0.02 -> norm clamp về 1
	kpis := s.Compute(models.RawMetrics{Reach: 1000, Likes: 500, Comments: 100})

	assert.Equal(t, 100, kpis.Score, "rate vượt trần phải clamp, score tối đa 100")
	assert.Equal(t, 0.5, kpis.LikeRate, "likeRate thô không bị clamp, chỉ norm bị clamp")
}

func TestKPICompute_ZeroReachFloor(t *testing.T) {
	s := NewKPICalculatorService()

	// reach 0 -> floor về 1, không panic chia 0
	kpis := s.Compute(models.RawMetrics{Reach: 0, Likes: 0, Comments: 0})

	assert.Equal(t, 0.0, kpis.LikeRate)
	assert.Equal(t, 0, kpis.Score)
}

func TestKPICompute_Rounding(t *testing.T) {
	s := NewKPICalculatorService()

	// 1/3 = 0.3333... -> làm tròn 4 chữ số
	kpis := s.Compute(models.RawMetrics{Reach: 3, Likes: 1, Comments: 0})

	assert.Equal(t, 0.3333, kpis.LikeRate)
}

func TestKPICompute_Deterministic(t *testing.T) {
	s := NewKPICalculatorService()
	raw := models.RawMetrics{Reach: 5432, Likes: 123, Comments: 17}

	first := s.Compute(raw)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, s.Compute(raw), "cùng metrics phải cho cùng KPI")
	}
}
