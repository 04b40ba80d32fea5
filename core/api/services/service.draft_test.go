package services

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	models "influencer_studio/core/api/models/mongodb"
)

func readZipEntries(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("output không phải zip hợp lệ: %v", err)
	}
	entries := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("không mở được entry %s: %v", f.Name, err)
		}
		content, _ := io.ReadAll(rc)
		rc.Close()
		entries[f.Name] = string(content)
	}
	return entries
}

func TestBuildExportArchive_FullKit(t *testing.T) {
	draft := models.Draft{
		Title:    "Leg day routine",
		Category: models.CategoryWorkout,
		Status:   models.DraftStatusDraft,
		Caption:  "Save this workout",
		Hashtags: []string{"gym", "fitness"},
	}

	data, err := buildExportArchive(draft, []byte("jpeg-bytes"))
	if err != nil {
		t.Fatalf("buildExportArchive trả về lỗi: %v", err)
	}

	entries := readZipEntries(t, data)
	if len(entries) != 3 {
		t.Fatalf("kit đầy đủ phải có 3 entry, got %v", entries)
	}
	if got := entries["caption.txt"]; got != "Save this workout\n\n#gym #fitness" {
		t.Errorf("caption.txt sai: %q", got)
	}
	if entries["image.jpg"] != "jpeg-bytes" {
		t.Errorf("image.jpg phải chứa đúng bytes ảnh")
	}
	meta := entries["meta.json"]
	for _, want := range []string{`"title": "Leg day routine"`, `"category": "workout"`, `"status": "draft"`} {
		if !bytes.Contains([]byte(meta), []byte(want)) {
			t.Errorf("meta.json thiếu %s: %s", want, meta)
		}
	}
}

func TestBuildExportArchive_NoImageNoCaption(t *testing.T) {
	draft := models.Draft{Title: "Untitled", Category: models.CategoryLifestyle, Status: models.DraftStatusDraft}

	data, err := buildExportArchive(draft, nil)
	if err != nil {
		t.Fatalf("buildExportArchive trả về lỗi: %v", err)
	}

	entries := readZipEntries(t, data)
	if _, ok := entries["image.jpg"]; ok {
		t.Errorf("không có ảnh thì không được tạo entry image.jpg")
	}
	if got := entries["caption.txt"]; got != "Add your caption here" {
		t.Errorf("caption rỗng phải dùng placeholder, got %q", got)
	}
}
