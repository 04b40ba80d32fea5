package utility

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ToMap chuyển đổi một struct/model thành map[string]interface{} theo bson tags.
// Dùng trong base service để thêm timestamps trước khi insert/update.
//
// Tham số:
//   - data: Struct hoặc map cần chuyển đổi
//
// Trả về:
//   - map[string]interface{}: Map kết quả với key theo bson tag
//   - error: Lỗi nếu marshal/unmarshal thất bại
func ToMap(data interface{}) (map[string]interface{}, error) {
	// Nếu data đã là map, trả về luôn
	if m, ok := data.(map[string]interface{}); ok {
		return m, nil
	}

	raw, err := bson.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("không thể marshal data: %w", err)
	}

	var result map[string]interface{}
	if err := bson.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("không thể unmarshal data thành map: %w", err)
	}

	// _id zero value sẽ làm MongoDB insert document với ObjectID rỗng
	// Xóa để driver tự generate
	if id, ok := result["_id"].(primitive.ObjectID); ok && id.IsZero() {
		delete(result, "_id")
	}

	return result, nil
}

// String2ObjectID chuyển chuỗi hex thành primitive.ObjectID.
// Trả về lỗi nếu chuỗi không phải ObjectID hợp lệ.
func String2ObjectID(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(s))
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("ObjectID không hợp lệ: %s", s)
	}
	return id, nil
}

// NewStoredFileName sinh tên file duy nhất cho file upload/generated.
// Format: <unix_nano_hex>_<objectid_hex>.<ext> - đảm bảo các request ghi đồng thời không đụng nhau.
func NewStoredFileName(ext string) string {
	ext = strings.TrimPrefix(strings.ToLower(ext), ".")
	if ext == "" {
		ext = "bin"
	}
	return fmt.Sprintf("%x_%s.%s", time.Now().UnixNano(), primitive.NewObjectID().Hex(), ext)
}

// ContainsAny kiểm tra chuỗi s (đã lowercase) có chứa bất kỳ substring nào trong danh sách không.
func ContainsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// TruncateRunes cắt chuỗi về tối đa n ký tự (theo rune, an toàn với unicode).
func TruncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
