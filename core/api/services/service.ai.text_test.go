package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenCaptionAndTags_NoCredentialFallback(t *testing.T) {
	s := &AITextService{} // không có apiKey -> static fallback

	caption, tags, err := s.GenCaptionAndTags(context.Background(), "Leg day routine", "workout", "fitai", "")

	assert.NoError(t, err, "fallback mode không bao giờ lỗi")
	assert.Equal(t, "Leg day routine — save it for later! 💪", caption)
	assert.Len(t, tags, 10)
	assert.Equal(t, "fitai", tags[0], "brand tag phải đứng đầu")
}

func TestGenCaptionAndTags_DefaultBrandTag(t *testing.T) {
	s := &AITextService{}

	_, tags, err := s.GenCaptionAndTags(context.Background(), "topic", "lifestyle", "", "")

	assert.NoError(t, err)
	assert.Equal(t, "fitai", tags[0], "brand tag rỗng phải fallback về fitai")
}

func TestGenCaptionAndTags_FallbackTagsFromSafeList(t *testing.T) {
	s := &AITextService{}

	_, tags, err := s.GenCaptionAndTags(context.Background(), "topic", "meal", "ellai", "")

	assert.NoError(t, err)
	assert.Equal(t, "ellai", tags[0])
	for _, tag := range tags[1:] {
		found := false
		for _, safe := range fallbackHashtags {
			if tag == safe {
				found = true
				break
			}
		}
		assert.True(t, found, "tag %q phải lấy từ danh sách fallback", tag)
	}
}

func TestHasCredential(t *testing.T) {
	assert.False(t, (&AITextService{}).HasCredential())
	assert.True(t, (&AITextService{apiKey: "sk-test"}).HasCredential())
}

func TestCaptionPrompts_RequireStrictJSON(t *testing.T) {
	// Contract với upstream: cả 2 system flow đều yêu cầu strict JSON
	assert.True(t, strings.Contains(captionRules, "strict JSON"))
	assert.True(t, strings.Contains(critiqueSystemPrompt, "strict JSON"))
}
