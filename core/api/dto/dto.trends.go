package dto

// TrendsResult là response của GET /trends
type TrendsResult struct {
	Geo      string   `json:"geo"`
	Window   string   `json:"window"`
	Keywords []string `json:"keywords"` // Tối đa 25 từ khóa
	Source   string   `json:"source"`   // "upstream" | "seed" | "cache"
	CachedAt int64    `json:"cachedAt"` // UnixMilli của entry cache
}
