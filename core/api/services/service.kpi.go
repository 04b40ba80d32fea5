package services

import (
	"math"

	models "influencer_studio/core/api/models/mongodb"
)

// Các hằng số của công thức KPI - weighting được tune bằng tay, không phải dẫn xuất.
// Rate vượt trần clamp không tăng score thêm.
const (
	kpiLikeRateCeiling    = 0.08 // Trần normalize cho like rate
	kpiCommentRateCeiling = 0.02 // Trần normalize cho comment rate
	kpiLikeWeight         = 0.65 // Trọng số like norm trong score
	kpiCommentWeight      = 0.35 // Trọng số comment norm trong score
)

// KPICalculatorService tính các chỉ số dẫn xuất từ metrics thô.
// Pure và deterministic: cùng metrics luôn cho cùng kết quả.
type KPICalculatorService struct{}

// NewKPICalculatorService tạo mới KPICalculatorService
func NewKPICalculatorService() *KPICalculatorService {
	return &KPICalculatorService{}
}

// round4 làm tròn 4 chữ số thập phân (chuẩn lưu trữ/hiển thị của rate)
func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// Compute tính KPI snapshot từ metrics thô.
//
// Công thức:
//   - reach = max(1, reach) - floor guard chống chia 0
//   - likeRate = likes/reach; commentRate = comments/reach; engagementRate = (likes+comments)/reach
//   - likeNorm = min(likeRate, 0.08)/0.08; commentNorm = min(commentRate, 0.02)/0.02
//   - score = round(100 * (0.65*likeNorm + 0.35*commentNorm)), số nguyên trong [0, 100]
func (s *KPICalculatorService) Compute(raw models.RawMetrics) models.KPISnapshot {
	reach := raw.Reach
	if reach < 1 {
		reach = 1
	}

	likeRate := float64(raw.Likes) / float64(reach)
	commentRate := float64(raw.Comments) / float64(reach)
	engagementRate := float64(raw.Likes+raw.Comments) / float64(reach)

	likeNorm := math.Min(likeRate, kpiLikeRateCeiling) / kpiLikeRateCeiling
	commentNorm := math.Min(commentRate, kpiCommentRateCeiling) / kpiCommentRateCeiling

	score := int(math.Round(100 * (kpiLikeWeight*likeNorm + kpiCommentWeight*commentNorm)))

	return models.KPISnapshot{
		LikeRate:       round4(likeRate),
		CommentRate:    round4(commentRate),
		EngagementRate: round4(engagementRate),
		Score:          score,
	}
}
