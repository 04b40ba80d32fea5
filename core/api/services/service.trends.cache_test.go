package services

import (
	"strings"
	"testing"
)

func TestCacheKey_DeterministicAndDistinct(t *testing.T) {
	s := &TrendsService{}

	keyVN := s.CacheKey("VN", "day")
	if keyVN != s.CacheKey("VN", "day") {
		t.Errorf("cùng (geo, window) phải cho cùng cache key")
	}
	if len(keyVN) != 40 {
		t.Errorf("cache key phải là sha1 hex 40 ký tự, got %d", len(keyVN))
	}
	if keyVN == s.CacheKey("US", "day") {
		t.Errorf("geo khác phải cho key khác")
	}
	if keyVN == s.CacheKey("VN", "week") {
		t.Errorf("window khác phải cho key khác")
	}
}

func TestDedupeKeywords(t *testing.T) {
	got := dedupeKeywords([]string{" AI tools ", "ai tools", "", "Budget Travel", "budget travel", "coffee"})

	if len(got) != 3 {
		t.Fatalf("dedupe case-insensitive phải còn 3 entry, got %v", got)
	}
	if got[0] != "AI tools" {
		t.Errorf("phải trim whitespace và giữ entry đầu tiên theo thứ tự, got %q", got[0])
	}
	if got[1] != "Budget Travel" || got[2] != "coffee" {
		t.Errorf("thứ tự xuất hiện phải được giữ nguyên: %v", got)
	}
}

func TestDedupeKeywords_CapsAtLimit(t *testing.T) {
	var many []string
	for i := 0; i < 40; i++ {
		many = append(many, "kw"+strings.Repeat("x", i+1))
	}

	got := dedupeKeywords(many)

	if len(got) != trendsKeywordCap {
		t.Errorf("danh sách dài phải bị cap ở %d, got %d", trendsKeywordCap, len(got))
	}
}

func TestSeedKeywords_Valid(t *testing.T) {
	deduped := dedupeKeywords(seedKeywords)
	if len(deduped) != len(seedKeywords) {
		t.Errorf("seed keywords không được có entry trùng hoặc rỗng")
	}
}
