package services

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"influencer_studio/core/common"
	"influencer_studio/core/global"
	"influencer_studio/core/logger"
	"influencer_studio/core/utility"
)

// allowedImageMIMEs là các MIME type ảnh được chấp nhận khi upload
var allowedImageMIMEs = []string{"image/jpeg", "image/png", "image/webp"}

// FileStorageService quản lý file ảnh trong upload dir local và build URL public.
// Xóa file luôn là best-effort: file không tồn tại không phải lỗi.
type FileStorageService struct {
	uploadDir     string
	publicBaseURL string
}

// NewFileStorageService tạo mới FileStorageService, đảm bảo upload dir tồn tại
func NewFileStorageService() (*FileStorageService, error) {
	cfg := global.MongoDB_ServerConfig
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không tạo được thư mục upload", common.StatusInternalServerError, err.Error())
	}

	return &FileStorageService{
		uploadDir:     cfg.UploadDir,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
	}, nil
}

// Path trả về đường dẫn tuyệt đối của file đã lưu
func (s *FileStorageService) Path(storedName string) string {
	return filepath.Join(s.uploadDir, filepath.Base(storedName))
}

// PublicURL build URL public cho file đã lưu
func (s *FileStorageService) PublicURL(storedName string) string {
	if storedName == "" {
		return ""
	}
	return s.publicBaseURL + "/uploads/" + filepath.Base(storedName)
}

// SaveUpload lưu file multipart upload sau khi sniff MIME type thật từ nội dung.
// Chỉ chấp nhận jpeg/png/webp, các loại khác trả về ErrUnsupportedMediaType.
//
// Trả về:
//   - storedName: tên file đã lưu (unique, sinh từ utility.NewStoredFileName)
//   - publicURL: URL public của file
func (s *FileStorageService) SaveUpload(fileHeader *multipart.FileHeader) (storedName string, publicURL string, err error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", "", common.NewError(common.ErrCodeValidationInput, "Không đọc được file upload", common.StatusBadRequest, err.Error())
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", "", common.NewError(common.ErrCodeValidationInput, "Không đọc được file upload", common.StatusBadRequest, err.Error())
	}

	// Sniff MIME từ nội dung thật, không tin Content-Type của client
	mtype := mimetype.Detect(data)
	allowed := false
	for _, m := range allowedImageMIMEs {
		if mtype.Is(m) {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", "", common.ErrUnsupportedMediaType
	}

	return s.SaveBytes(data, strings.TrimPrefix(mtype.Extension(), "."))
}

// SaveBytes lưu raw bytes thành file mới với extension cho trước
func (s *FileStorageService) SaveBytes(data []byte, ext string) (storedName string, publicURL string, err error) {
	storedName = utility.NewStoredFileName(ext)
	if err := os.WriteFile(s.Path(storedName), data, 0o644); err != nil {
		return "", "", common.NewError(common.ErrCodeInternalServer, "Không ghi được file vào upload dir", common.StatusInternalServerError, err.Error())
	}
	return storedName, s.PublicURL(storedName), nil
}

// Delete xóa file đã lưu, best-effort.
// File không tồn tại hoặc xóa lỗi chỉ log warning, không trả lỗi cho caller.
func (s *FileStorageService) Delete(storedName string) {
	if storedName == "" {
		return
	}
	if err := os.Remove(s.Path(storedName)); err != nil && !os.IsNotExist(err) {
		logger.GetAppLogger().Warnf("Không xóa được file %s: %v", storedName, err)
	}
}
