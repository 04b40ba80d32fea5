package services

import (
	"strings"
	"testing"

	models "influencer_studio/core/api/models/mongodb"
)

func healthyKPIs() models.KPISnapshot {
	return models.KPISnapshot{LikeRate: 0.04, CommentRate: 0.01, EngagementRate: 0.05, Score: 50}
}

func TestFallbackCritique_CategoryPreset(t *testing.T) {
	post := models.FeedPost{Category: models.CategoryMeal}

	record := fallbackCritique(post, healthyKPIs())

	if len(record.Insights) != 2 {
		t.Fatalf("fallback phải có đúng 2 base insight, got %d", len(record.Insights))
	}
	if record.NextDraftConfig.Image.Framing != "top-down flat lay" {
		t.Errorf("category meal phải dùng intent preset meal, got %+v", record.NextDraftConfig.Image)
	}
	wantRecs := fallbackRecsPresets[models.CategoryMeal]
	if len(record.Recommendations) != len(wantRecs) {
		t.Errorf("KPI tốt không được thêm rec có điều kiện, got %v", record.Recommendations)
	}
}

func TestFallbackCritique_ConditionalRecommendations(t *testing.T) {
	post := models.FeedPost{Category: models.CategoryWorkout}
	kpis := models.KPISnapshot{LikeRate: 0.01, CommentRate: 0.001}

	record := fallbackCritique(post, kpis)

	joined := strings.Join(record.Recommendations, "|")
	if !strings.Contains(joined, "Ask a question") {
		t.Errorf("commentRate < 0.003 phải thêm rec hỏi câu hỏi: %v", record.Recommendations)
	}
	if !strings.Contains(joined, "bolder cover image") {
		t.Errorf("likeRate < 0.015 phải thêm rec cover đậm hơn: %v", record.Recommendations)
	}
}

func TestFallbackCritique_UnknownCategoryDefaults(t *testing.T) {
	post := models.FeedPost{Category: "unknown"}

	record := fallbackCritique(post, healthyKPIs())

	if record.NextDraftConfig.Image != defaultImageIntent {
		t.Errorf("category lạ phải dùng default intent, got %+v", record.NextDraftConfig.Image)
	}
	if record.Recommendations[0] != fallbackDefaultRecs[0] {
		t.Errorf("category lạ phải dùng default recs, got %v", record.Recommendations)
	}
}

func TestFallbackCritique_DoesNotMutatePresets(t *testing.T) {
	post := models.FeedPost{Category: models.CategoryFinance}
	kpis := models.KPISnapshot{LikeRate: 0.001, CommentRate: 0.001}

	before := len(fallbackRecsPresets[models.CategoryFinance])
	fallbackCritique(post, kpis)
	fallbackCritique(post, kpis)

	if len(fallbackRecsPresets[models.CategoryFinance]) != before {
		t.Errorf("fallbackCritique không được append vào preset dùng chung")
	}
}

func TestNormalizeIntent_FillsMissingFields(t *testing.T) {
	got := normalizeIntent(models.ImageIntent{Style: "bold"})

	if got.Style != "bold" {
		t.Errorf("field có sẵn phải được giữ nguyên, got %q", got.Style)
	}
	if got.Framing != defaultImageIntent.Framing || got.Lighting != defaultImageIntent.Lighting ||
		got.Background != defaultImageIntent.Background || got.TextOverlay != defaultImageIntent.TextOverlay {
		t.Errorf("field rỗng phải được điền default: %+v", got)
	}
}

func TestTruncateList(t *testing.T) {
	items := []string{"a", strings.Repeat("b", 50), "c", "d", "e"}

	got := truncateList(items, 3, 10)

	if len(got) != 3 {
		t.Fatalf("phải cắt còn tối đa 3 entry, got %d", len(got))
	}
	if len(got[1]) != 10 {
		t.Errorf("entry dài phải bị cắt còn 10 ký tự, got %d", len(got[1]))
	}
	if got[0] != "a" {
		t.Errorf("entry ngắn phải giữ nguyên, got %q", got[0])
	}
}
