package services

import (
	"math/rand"
	"strings"
	"sync"

	models "influencer_studio/core/api/models/mongodb"
	"influencer_studio/core/utility"
)

// reachRange là khoảng (low, high) cho reach theo category
type reachRange struct {
	Low  int64
	High int64
}

// categoryReachRanges là bảng reach cố định theo category
var categoryReachRanges = map[string]reachRange{
	models.CategoryWorkout:   {Low: 3000, High: 12000},
	models.CategoryMeal:      {Low: 2500, High: 9000},
	models.CategoryFinance:   {Low: 1500, High: 6000},
	models.CategoryLifestyle: {Low: 2000, High: 8000},
}

// defaultReachRange dùng khi category không có trong bảng
var defaultReachRange = reachRange{Low: 1000, High: 5000}

// Các quy tắc bias theo persona hint, check theo thứ tự, chỉ áp dụng rule đầu tiên match
var personaBiasRules = []struct {
	Keywords []string
	Bias     float64
}{
	{Keywords: []string{"coach", "fit", "gym"}, Bias: 1.15},
	{Keywords: []string{"food", "chef"}, Bias: 1.25},
	{Keywords: []string{"crypto", "fin"}, Bias: 0.90},
}

// MetricsSimulatorService sinh số liệu engagement giả lập cho FeedPost mới.
// Random source được inject qua constructor để test có thể seed cố định;
// không đọc từ global generator.
type MetricsSimulatorService struct {
	rng *rand.Rand
	mu  sync.Mutex // rand.Rand không thread-safe, simulator được gọi từ nhiều request
}

// NewMetricsSimulatorService tạo mới MetricsSimulatorService với random source được cung cấp
func NewMetricsSimulatorService(rng *rand.Rand) *MetricsSimulatorService {
	return &MetricsSimulatorService{rng: rng}
}

// uniform trả về số thực ngẫu nhiên trong [low, high)
func (s *MetricsSimulatorService) uniform(low, high float64) float64 {
	return low + s.rng.Float64()*(high-low)
}

// personaBias tính hệ số bias từ persona hint (case-insensitive substring match).
// Chỉ rule đầu tiên match được áp dụng; không match rule nào -> 1.0
func personaBias(personaHint string) float64 {
	hint := strings.ToLower(personaHint)
	for _, rule := range personaBiasRules {
		if utility.ContainsAny(hint, rule.Keywords) {
			return rule.Bias
		}
	}
	return 1.0
}

// Simulate sinh metrics giả lập cho một bài theo category và persona hint.
//
// Thuật toán:
//  1. reach ~ U(low, high) integer theo bảng reach của category
//  2. impressions = reach * U(1.2, 1.6) truncate về integer
//  3. likeRate = U(0.02, 0.06) * bias(personaHint); commentRate = U(0.002, 0.015) không bias
//  4. likes = floor(reach * likeRate); comments = floor(reach * commentRate)
func (s *MetricsSimulatorService) Simulate(category, personaHint string) models.RawMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := categoryReachRanges[category]
	if !ok {
		r = defaultReachRange
	}

	reach := r.Low + s.rng.Int63n(r.High-r.Low+1)
	impressions := int64(float64(reach) * s.uniform(1.2, 1.6))

	bias := personaBias(personaHint)
	likeRate := s.uniform(0.02, 0.06) * bias
	commentRate := s.uniform(0.002, 0.015)

	return models.RawMetrics{
		Reach:       reach,
		Impressions: impressions,
		Likes:       int64(float64(reach) * likeRate),
		Comments:    int64(float64(reach) * commentRate),
	}
}
