package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"os"
	"time"

	"github.com/disintegration/imaging"
	"github.com/go-resty/resty/v2"

	"influencer_studio/core/common"
	"influencer_studio/core/global"
	"influencer_studio/core/metrics"
)

// padCanvasColor là màu nền #111827 khi mở rộng canvas 1024x1024 -> 4:5
var padCanvasColor = color.NRGBA{R: 17, G: 24, B: 39, A: 255}

// imagesResponse map body trả về của OpenAI images API (b64_json mode)
type imagesResponse struct {
	Data []struct {
		B64JSON string `json:"b64_json"`
	} `json:"data"`
}

// AIImageService gọi dịch vụ sinh ảnh OpenAI-compatible.
// Img2Img dùng images/edits với ảnh chân dung persona làm init image;
// Text2Img dùng images/generations. Output luôn là JPEG quality 92,
// pad về tỷ lệ 4:5 bằng cách mở rộng canvas (không kéo giãn ảnh).
type AIImageService struct {
	client *resty.Client
	apiKey string
	model  string
}

// NewAIImageService tạo mới AIImageService từ cấu hình server
func NewAIImageService() *AIImageService {
	cfg := global.MongoDB_ServerConfig
	client := resty.New().
		SetBaseURL(cfg.OpenAIBaseURL).
		SetTimeout(180 * time.Second)
	if cfg.OpenAIAPIKey != "" {
		client.SetAuthToken(cfg.OpenAIAPIKey)
	}

	return &AIImageService{
		client: client,
		apiKey: cfg.OpenAIAPIKey,
		model:  cfg.OpenAIImageModel,
	}
}

// HasCredential cho biết có API key để sinh ảnh không
func (s *AIImageService) HasCredential() bool {
	return s.apiKey != ""
}

// padToPortrait mở rộng canvas về tỷ lệ 4:5, ảnh gốc căn giữa theo chiều dọc
func padToPortrait(img image.Image) image.Image {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	targetH := w * 5 / 4
	if targetH <= h {
		return img
	}

	canvas := imaging.New(w, targetH, padCanvasColor)
	return imaging.Paste(canvas, img, image.Pt(0, (targetH-h)/2))
}

// encodeJPEG encode ảnh ra JPEG quality 92 (chuẩn lưu trữ của mọi ảnh sinh ra)
func encodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(92)); err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không encode được ảnh JPEG", common.StatusInternalServerError, err.Error())
	}
	return buf.Bytes(), nil
}

// decodeImagesResponse decode b64_json đầu tiên trong response thành image.Image
func decodeImagesResponse(parsed imagesResponse) (image.Image, error) {
	if len(parsed.Data) == 0 || parsed.Data[0].B64JSON == "" {
		return nil, common.NewError(common.ErrCodeUpstream, "Dịch vụ sinh ảnh không trả về b64_json", common.StatusBadGateway, nil)
	}

	raw, err := base64.StdEncoding.DecodeString(parsed.Data[0].B64JSON)
	if err != nil {
		return nil, common.NewError(common.ErrCodeUpstream, "Dịch vụ sinh ảnh trả về base64 không hợp lệ", common.StatusBadGateway, err.Error())
	}

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, common.NewError(common.ErrCodeUpstream, "Không decode được ảnh từ dịch vụ sinh ảnh", common.StatusBadGateway, err.Error())
	}

	return img, nil
}

// Img2Img sinh ảnh mới từ ảnh chân dung persona + prompt qua images/edits.
//
// Các bước:
//  1. Đọc init image và re-encode PNG (API chỉ nhận PNG cho image edit)
//  2. POST multipart tới /v1/images/edits, size 1024x1024
//  3. Decode b64_json, pad về 4:5, encode JPEG q92
//
// Trả về JPEG bytes; caller chịu trách nhiệm lưu file qua FileStorageService.
func (s *AIImageService) Img2Img(ctx context.Context, initImagePath, prompt string) ([]byte, error) {
	if !s.HasCredential() {
		return nil, common.NewError(common.ErrCodeUpstream, "Chưa cấu hình API key cho dịch vụ sinh ảnh", common.StatusBadGateway, nil)
	}

	initData, err := os.ReadFile(initImagePath)
	if err != nil {
		return nil, common.ErrMissingAsset
	}
	initImg, err := imaging.Decode(bytes.NewReader(initData))
	if err != nil {
		return nil, common.ErrMissingAsset
	}

	var pngBuf bytes.Buffer
	if err := imaging.Encode(&pngBuf, initImg, imaging.PNG); err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không encode được init image PNG", common.StatusInternalServerError, err.Error())
	}

	var parsed imagesResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetFileReader("image", "init.png", bytes.NewReader(pngBuf.Bytes())).
		SetMultipartFormData(map[string]string{
			"prompt": prompt,
			"model":  s.model,
			"size":   "1024x1024",
		}).
		SetResult(&parsed).
		Post("/v1/images/edits")
	if err != nil {
		metrics.UpstreamErrors.WithLabelValues("image").Inc()
		return nil, common.NewError(common.ErrCodeUpstream, "Không gọi được dịch vụ sinh ảnh", common.StatusBadGateway, err.Error())
	}
	if resp.IsError() {
		metrics.UpstreamErrors.WithLabelValues("image").Inc()
		return nil, common.NewError(common.ErrCodeUpstream,
			fmt.Sprintf("Dịch vụ sinh ảnh trả về status %d", resp.StatusCode()),
			common.StatusBadGateway, resp.String())
	}

	img, err := decodeImagesResponse(parsed)
	if err != nil {
		return nil, err
	}

	return encodeJPEG(padToPortrait(img))
}

// Text2Img sinh ảnh từ prompt thuần qua images/generations (không cần init image)
func (s *AIImageService) Text2Img(ctx context.Context, prompt string) ([]byte, error) {
	if !s.HasCredential() {
		return nil, common.NewError(common.ErrCodeUpstream, "Chưa cấu hình API key cho dịch vụ sinh ảnh", common.StatusBadGateway, nil)
	}

	var parsed imagesResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"model":  s.model,
			"prompt": prompt,
			"size":   "1024x1024",
		}).
		SetResult(&parsed).
		Post("/v1/images/generations")
	if err != nil {
		metrics.UpstreamErrors.WithLabelValues("image").Inc()
		return nil, common.NewError(common.ErrCodeUpstream, "Không gọi được dịch vụ sinh ảnh", common.StatusBadGateway, err.Error())
	}
	if resp.IsError() {
		metrics.UpstreamErrors.WithLabelValues("image").Inc()
		return nil, common.NewError(common.ErrCodeUpstream,
			fmt.Sprintf("Dịch vụ sinh ảnh trả về status %d", resp.StatusCode()),
			common.StatusBadGateway, resp.String())
	}

	img, err := decodeImagesResponse(parsed)
	if err != nil {
		return nil, err
	}

	return encodeJPEG(padToPortrait(img))
}
