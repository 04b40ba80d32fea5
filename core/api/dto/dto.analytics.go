package dto

// CategoryCount là số draft theo category
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// StatusCount là số draft theo status
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// DayCount là số draft tạo trong một ngày (7 ngày gần nhất)
type DayCount struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int64  `json:"count"`
}

// AnalyticsSummary là response của GET /analytics/summary
type AnalyticsSummary struct {
	Total      int64           `json:"total"`
	ByCategory []CategoryCount `json:"byCategory"`
	ByStatus   []StatusCount   `json:"byStatus"`
	PerDay     []DayCount      `json:"perDay"`
}
