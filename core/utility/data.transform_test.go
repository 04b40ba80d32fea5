package utility

import (
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type sampleDoc struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
	Age  int                `bson:"age"`
}

func TestToMap_StructWithBsonTags(t *testing.T) {
	m, err := ToMap(sampleDoc{Name: "maya", Age: 3})
	if err != nil {
		t.Fatalf("ToMap trả về lỗi: %v", err)
	}
	if m["name"] != "maya" {
		t.Errorf("key phải theo bson tag, got %v", m)
	}
	if _, ok := m["_id"]; ok {
		t.Errorf("_id zero value phải bị xóa khỏi map")
	}
}

func TestToMap_KeepsNonZeroID(t *testing.T) {
	id := primitive.NewObjectID()
	m, err := ToMap(sampleDoc{ID: id, Name: "maya"})
	if err != nil {
		t.Fatalf("ToMap trả về lỗi: %v", err)
	}
	if got, ok := m["_id"].(primitive.ObjectID); !ok || got != id {
		t.Errorf("_id khác zero phải được giữ nguyên, got %v", m["_id"])
	}
}

func TestToMap_PassthroughMap(t *testing.T) {
	in := map[string]interface{}{"a": 1}
	m, err := ToMap(in)
	if err != nil {
		t.Fatalf("ToMap trả về lỗi: %v", err)
	}
	if m["a"] != 1 {
		t.Errorf("map input phải được trả về nguyên vẹn")
	}
}

func TestString2ObjectID(t *testing.T) {
	id := primitive.NewObjectID()

	got, err := String2ObjectID("  " + id.Hex() + "  ")
	if err != nil {
		t.Fatalf("hex hợp lệ (có whitespace) không được lỗi: %v", err)
	}
	if got != id {
		t.Errorf("ObjectID parse sai: got %s, muốn %s", got.Hex(), id.Hex())
	}

	if _, err := String2ObjectID("not-a-hex"); err == nil {
		t.Errorf("chuỗi không phải hex phải trả về lỗi")
	}
}

func TestNewStoredFileName(t *testing.T) {
	name := NewStoredFileName(".PNG")
	if !strings.HasSuffix(name, ".png") {
		t.Errorf("extension phải lowercase và bỏ dấu chấm đầu: %q", name)
	}
	if !strings.Contains(name, "_") {
		t.Errorf("tên file phải có dạng <nano>_<objectid>.<ext>: %q", name)
	}

	if got := NewStoredFileName(""); !strings.HasSuffix(got, ".bin") {
		t.Errorf("extension rỗng phải fallback về bin: %q", got)
	}

	if NewStoredFileName("jpg") == NewStoredFileName("jpg") {
		t.Errorf("hai lần gọi phải sinh tên khác nhau")
	}
}

func TestContainsAny(t *testing.T) {
	if !ContainsAny("fitness coach", []string{"chef", "coach"}) {
		t.Errorf("phải match substring coach")
	}
	if ContainsAny("travel blogger", []string{"chef", "coach"}) {
		t.Errorf("không có substring nào match thì phải trả về false")
	}
	if ContainsAny("anything", nil) {
		t.Errorf("danh sách rỗng phải trả về false")
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := TruncateRunes("hello", 10); got != "hello" {
		t.Errorf("chuỗi ngắn hơn n phải giữ nguyên, got %q", got)
	}
	if got := TruncateRunes("hello", 3); got != "hel" {
		t.Errorf("TruncateRunes(hello, 3) = %q", got)
	}
	// Cắt theo rune, không vỡ ký tự unicode nhiều byte
	if got := TruncateRunes("xin chào 💪💪💪", 10); got != "xin chào 💪" {
		t.Errorf("cắt rune unicode sai: %q", got)
	}
}
