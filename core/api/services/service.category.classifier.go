package services

import (
	"strings"

	models "influencer_studio/core/api/models/mongodb"
)

// categoryKeywords là bảng keyword cố định của classifier.
// Thứ tự khai báo trùng với models.Categories - tie-break lấy category khai báo trước.
// Keyword có thể trùng lặp giữa các category ("routine" từng xuất hiện ở nhiều nhóm
// qua các phiên bản), classifier chỉ đếm thô, không disambiguate.
var categoryKeywords = []struct {
	Category string
	Keywords []string
}{
	{models.CategoryWorkout, []string{"workout", "gym", "training", "leg day", "exercise", "fitness", "reps", "cardio"}},
	{models.CategoryMeal, []string{"meal", "recipe", "food", "breakfast", "protein", "dinner", "lunch", "snack", "kitchen"}},
	{models.CategoryFinance, []string{"finance", "crypto", "invest", "budget", "saving", "money", "stock", "portfolio"}},
	{models.CategoryLifestyle, []string{"lifestyle", "routine", "travel", "morning", "daily", "vibes", "walk"}},
}

// CategoryClassifierService suy ra category từ nội dung bài bằng keyword matching.
// Pure và deterministic: cùng input luôn trả về cùng category.
type CategoryClassifierService struct{}

// NewCategoryClassifierService tạo mới CategoryClassifierService
func NewCategoryClassifierService() *CategoryClassifierService {
	return &CategoryClassifierService{}
}

// InferCategory suy ra category từ title + caption + hashtags.
//
// Thuật toán:
//  1. Lowercase concat title + caption + hashtags (phân cách bởi space)
//  2. Strip chuỗi "ai_generated" và token " ai " đứng riêng để tránh self-bias
//  3. Đếm số keyword của từng category xuất hiện dạng substring
//  4. Category có count cao nhất thắng; hòa thì lấy category khai báo trước
//  5. Không match keyword nào -> lifestyle
//
// Luôn trả về đúng một category trong tập cố định, kể cả với input rỗng.
func (s *CategoryClassifierService) InferCategory(title, caption string, hashtags []string) string {
	text := strings.ToLower(title + " " + caption + " " + strings.Join(hashtags, " "))

	// Loại bỏ các token tự sinh để không bias kết quả
	text = strings.ReplaceAll(text, "ai_generated", " ")
	text = strings.ReplaceAll(text, " ai ", " ")

	bestCategory := models.CategoryLifestyle
	bestCount := 0

	for _, entry := range categoryKeywords {
		count := 0
		for _, keyword := range entry.Keywords {
			if strings.Contains(text, keyword) {
				count++
			}
		}
		// So sánh nghiêm ngặt: hòa giữ category khai báo trước
		if count > bestCount {
			bestCount = count
			bestCategory = entry.Category
		}
	}

	return bestCategory
}
