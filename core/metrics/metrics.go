// Package metrics thu thập và expose metrics Prometheus cho toàn ứng dụng.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// DraftsCreated đếm số draft được tạo thành công
	DraftsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "studio_drafts_created_total",
		Help: "Tổng số draft được tạo thành công",
	})

	// DraftsApproved đếm số draft được duyệt và publish lên feed
	DraftsApproved = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "studio_drafts_approved_total",
		Help: "Tổng số draft được duyệt thành công",
	})

	// ImagesGenerated đếm số ảnh sinh ra, label mode: ai | composite
	ImagesGenerated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "studio_images_generated_total",
		Help: "Tổng số ảnh sinh ra theo chế độ",
	}, []string{"mode"})

	// CaptionFallbacks đếm số lần sinh caption rơi về template local
	CaptionFallbacks = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "studio_caption_fallback_total",
		Help: "Tổng số lần sinh caption dùng template local thay vì dịch vụ ngoài",
	})

	// CritiqueRuns đếm số lần chạy critique, label mode: external | fallback
	CritiqueRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "studio_critique_runs_total",
		Help: "Tổng số lần chạy agent critique theo chế độ",
	}, []string{"mode"})

	// TrendsRefreshes đếm số lần refresh cache trends, label source: upstream | cache | seed
	TrendsRefreshes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "studio_trends_refresh_total",
		Help: "Tổng số lần refresh cache trends theo nguồn dữ liệu",
	}, []string{"source"})

	// UpstreamErrors đếm lỗi gọi dịch vụ ngoài, label service: text | image | trends
	UpstreamErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "studio_upstream_errors_total",
		Help: "Tổng số lỗi khi gọi dịch vụ bên ngoài",
	}, []string{"service"})
)

func init() {
	prometheus.MustRegister(
		DraftsCreated,
		DraftsApproved,
		ImagesGenerated,
		CaptionFallbacks,
		CritiqueRuns,
		TrendsRefreshes,
		UpstreamErrors,
	)
}

// Handler trả về HTTP handler cho Prometheus scrape (/metrics)
func Handler() http.Handler {
	return promhttp.Handler()
}
