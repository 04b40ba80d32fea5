package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"influencer_studio/core/api/dto"
	models "influencer_studio/core/api/models/mongodb"
	"influencer_studio/core/common"
	"influencer_studio/core/global"
)

// AnalyticsService tính thống kê tổng hợp trên collection drafts.
// Kết quả luôn đủ slot: mọi category/status đều có mặt với count 0,
// perDay luôn đúng 7 ngày liên tiếp kết thúc ở hôm nay.
type AnalyticsService struct {
	drafts *BaseServiceMongoImpl[models.Draft]
}

// NewAnalyticsService tạo mới AnalyticsService
func NewAnalyticsService() (*AnalyticsService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Drafts)
	if !exist {
		return nil, fmt.Errorf("failed to get drafts collection: %v", common.ErrNotFound)
	}

	return &AnalyticsService{
		drafts: NewBaseServiceMongo[models.Draft](collection),
	}, nil
}

// asInt64 đọc giá trị count từ bson.M (driver trả int32 hoặc int64 tùy pipeline)
func asInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int32:
		return int64(n)
	case int64:
		return n
	case float64:
		return int64(n)
	default:
		return 0
	}
}

// groupCounts chạy pipeline $group theo field và trả về map giá_trị -> count
func (s *AnalyticsService) groupCounts(ctx context.Context, field string) (map[string]int64, error) {
	pipeline := []bson.M{
		{"$group": bson.M{"_id": "$" + field, "count": bson.M{"$sum": 1}}},
	}

	rows, err := s.drafts.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		key, _ := row["_id"].(string)
		counts[key] = asInt64(row["count"])
	}
	return counts, nil
}

// perDayCounts đếm số draft tạo mỗi ngày trong 7 ngày gần nhất (UTC)
func (s *AnalyticsService) perDayCounts(ctx context.Context) ([]dto.DayCount, error) {
	now := time.Now().UTC()
	since := now.AddDate(0, 0, -6).Truncate(24 * time.Hour)

	pipeline := []bson.M{
		{"$match": bson.M{"createdAt": bson.M{"$gte": since.UnixMilli()}}},
		{"$group": bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m-%d",
				"date":   bson.M{"$toDate": "$createdAt"},
			}},
			"count": bson.M{"$sum": 1},
		}},
	}

	rows, err := s.drafts.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		key, _ := row["_id"].(string)
		counts[key] = asInt64(row["count"])
	}

	perDay := make([]dto.DayCount, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format("2006-01-02")
		perDay = append(perDay, dto.DayCount{Date: day, Count: counts[day]})
	}
	return perDay, nil
}

// Summary tính thống kê tổng hợp: total, byCategory, byStatus, perDay
func (s *AnalyticsService) Summary(ctx context.Context) (dto.AnalyticsSummary, error) {
	byCategory, err := s.groupCounts(ctx, "category")
	if err != nil {
		return dto.AnalyticsSummary{}, err
	}

	byStatus, err := s.groupCounts(ctx, "status")
	if err != nil {
		return dto.AnalyticsSummary{}, err
	}

	perDay, err := s.perDayCounts(ctx)
	if err != nil {
		return dto.AnalyticsSummary{}, err
	}

	summary := dto.AnalyticsSummary{PerDay: perDay}
	for _, category := range models.Categories {
		count := byCategory[category]
		summary.Total += count
		summary.ByCategory = append(summary.ByCategory, dto.CategoryCount{Category: category, Count: count})
	}
	for _, status := range []string{models.DraftStatusDraft, models.DraftStatusApproved} {
		summary.ByStatus = append(summary.ByStatus, dto.StatusCount{Status: status, Count: byStatus[status]})
	}

	return summary, nil
}
