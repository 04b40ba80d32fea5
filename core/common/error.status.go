package common

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// HTTP Status Code Constants
const (
	// Success Codes (2xx)
	StatusOK        = 200 // Thành công
	StatusCreated   = 201 // Tạo mới thành công
	StatusAccepted  = 202 // Yêu cầu được chấp nhận
	StatusNoContent = 204 // Thành công nhưng không có nội dung trả về

	// Client Error Codes (4xx)
	StatusBadRequest           = 400 // Yêu cầu không hợp lệ
	StatusUnauthorized         = 401 // Chưa xác thực
	StatusForbidden            = 403 // Không có quyền truy cập
	StatusNotFound             = 404 // Không tìm thấy tài nguyên
	StatusMethodNotAllowed     = 405 // Phương thức HTTP không được hỗ trợ
	StatusConflict             = 409 // Xung đột dữ liệu
	StatusUnsupportedMediaType = 415 // Loại file không được hỗ trợ
	StatusTooManyRequests      = 429 // Quá nhiều yêu cầu

	// Server Error Codes (5xx)
	StatusInternalServerError = 500 // Lỗi server
	StatusNotImplemented      = 501 // Chức năng chưa được triển khai
	StatusBadGateway          = 502 // Gateway không hợp lệ
	StatusServiceUnavailable  = 503 // Dịch vụ không khả dụng
	StatusGatewayTimeout      = 504 // Gateway timeout
)

// Response Messages
const (
	// Success Messages
	MsgSuccess   = "Thao tác thành công"
	MsgCreated   = "Tạo mới thành công"
	MsgAccepted  = "Yêu cầu được chấp nhận"
	MsgNoContent = "Không có nội dung trả về"

	// Error Messages
	MsgBadRequest         = "Yêu cầu không hợp lệ"
	MsgNotFound           = "Không tìm thấy tài nguyên"
	MsgMethodNotAllowed   = "Phương thức không được hỗ trợ"
	MsgConflict           = "Xung đột dữ liệu"
	MsgTooManyRequests    = "Quá nhiều yêu cầu"
	MsgInternalError      = "Lỗi hệ thống"
	MsgNotImplemented     = "Chức năng chưa được triển khai"
	MsgBadGateway         = "Gateway không hợp lệ"
	MsgServiceUnavailable = "Dịch vụ không khả dụng"

	// Validation Messages
	MsgValidationError = "Dữ liệu không hợp lệ"
	MsgDatabaseError   = "Lỗi tương tác với cơ sở dữ liệu"
	MsgInvalidFormat   = "Định dạng dữ liệu không hợp lệ"
)

// ErrorCode định nghĩa mã lỗi chi tiết
type ErrorCode struct {
	Code        string // Mã lỗi (ví dụ: VAL_001)
	Category    string // Phân loại lỗi (ví dụ: Validation)
	SubCategory string // Phân loại con (ví dụ: Input)
	Description string // Mô tả chi tiết
}

// Định nghĩa các mã lỗi theo hệ thống phân cấp
var (
	// System Errors (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{
		Code:        "SYS_001",
		Category:    "System",
		SubCategory: "Internal",
		Description: "Lỗi hệ thống nội bộ",
	}

	// Validation Errors (VAL_xxx)
	ErrCodeValidation = ErrorCode{
		Code:        "VAL",
		Category:    "Validation",
		SubCategory: "General",
		Description: "Lỗi xác thực dữ liệu chung",
	}

	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "Lỗi dữ liệu đầu vào",
	}

	ErrCodeValidationFormat = ErrorCode{
		Code:        "VAL_002",
		Category:    "Validation",
		SubCategory: "Format",
		Description: "Lỗi định dạng dữ liệu",
	}

	// Database Errors (DB_xxx)
	ErrCodeDatabase = ErrorCode{
		Code:        "DB",
		Category:    "Database",
		SubCategory: "General",
		Description: "Lỗi cơ sở dữ liệu chung",
	}

	ErrCodeDatabaseConnection = ErrorCode{
		Code:        "DB_001",
		Category:    "Database",
		SubCategory: "Connection",
		Description: "Lỗi kết nối cơ sở dữ liệu",
	}

	ErrCodeDatabaseQuery = ErrorCode{
		Code:        "DB_002",
		Category:    "Database",
		SubCategory: "Query",
		Description: "Lỗi truy vấn dữ liệu",
	}

	// Business Logic Errors (BIZ_xxx)
	ErrCodeBusiness = ErrorCode{
		Code:        "BIZ",
		Category:    "Business",
		SubCategory: "General",
		Description: "Lỗi logic nghiệp vụ chung",
	}

	ErrCodeBusinessState = ErrorCode{
		Code:        "BIZ_001",
		Category:    "Business",
		SubCategory: "State",
		Description: "Lỗi trạng thái nghiệp vụ",
	}

	ErrCodeBusinessOperation = ErrorCode{
		Code:        "BIZ_002",
		Category:    "Business",
		SubCategory: "Operation",
		Description: "Lỗi thao tác nghiệp vụ",
	}

	// Content Pipeline Errors (CNT_xxx)
	ErrCodeContentReference = ErrorCode{
		Code:        "CNT_001",
		Category:    "Content",
		SubCategory: "Reference",
		Description: "Tham chiếu đến persona/draft không hợp lệ",
	}

	ErrCodeContentAsset = ErrorCode{
		Code:        "CNT_002",
		Category:    "Content",
		SubCategory: "Asset",
		Description: "Thiếu ảnh nguồn cho img2img",
	}

	ErrCodeContentMedia = ErrorCode{
		Code:        "CNT_003",
		Category:    "Content",
		SubCategory: "Media",
		Description: "Loại file upload không được hỗ trợ",
	}

	// Upstream AI Service Errors (AI_xxx)
	ErrCodeUpstream = ErrorCode{
		Code:        "AI_001",
		Category:    "Upstream",
		SubCategory: "Generation",
		Description: "Dịch vụ sinh text/ảnh bên ngoài trả về lỗi",
	}
)

// Error định nghĩa cấu trúc lỗi chi tiết
type Error struct {
	Code       ErrorCode // Mã lỗi chi tiết
	Message    string    // Thông báo lỗi
	StatusCode int       // HTTP status code
	Details    any       // Thông tin chi tiết thêm về lỗi
}

// Error trả về message của lỗi
func (e *Error) Error() string {
	return e.Message
}

// Is kiểm tra xem error có phải là target error không (hỗ trợ errors.Is)
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}

	// So sánh với các custom error khác theo code + message
	if targetErr, ok := target.(*Error); ok {
		return e.Code.Code == targetErr.Code.Code && e.Message == targetErr.Message
	}

	return false
}

// NewError tạo một error mới với đầy đủ thông tin
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Custom errors
var (
	// Validation Errors
	ErrInvalidInput  = NewError(ErrCodeValidationInput, "Dữ liệu đầu vào không hợp lệ", StatusBadRequest, nil)
	ErrInvalidFormat = NewError(ErrCodeValidationFormat, "Định dạng dữ liệu không hợp lệ", StatusBadRequest, nil)
	ErrRequiredField = NewError(ErrCodeValidationInput, "Thiếu thông tin bắt buộc", StatusBadRequest, nil)

	// Database Errors
	ErrNotFound   = NewError(ErrCodeDatabaseQuery, "Không tìm thấy dữ liệu", StatusNotFound, nil)
	ErrDuplicate  = NewError(ErrCodeDatabaseQuery, "Dữ liệu đã tồn tại", StatusConflict, nil)
	ErrConstraint = NewError(ErrCodeDatabaseQuery, "Vi phạm ràng buộc dữ liệu", StatusBadRequest, nil)
	ErrConnection = NewError(ErrCodeDatabaseConnection, "Lỗi kết nối cơ sở dữ liệu", StatusServiceUnavailable, nil)

	// Business Logic Errors
	ErrInvalidState     = NewError(ErrCodeBusinessState, "Trạng thái không hợp lệ", StatusBadRequest, nil)
	ErrInvalidOperation = NewError(ErrCodeBusinessOperation, "Thao tác không hợp lệ", StatusBadRequest, nil)

	// Content Pipeline Errors
	ErrInvalidReference     = NewError(ErrCodeContentReference, "Tham chiếu persona/draft không hợp lệ", StatusBadRequest, nil)
	ErrNoFieldsProvided     = NewError(ErrCodeValidationInput, "Không có trường nào được cung cấp để cập nhật", StatusBadRequest, nil)
	ErrMissingAsset         = NewError(ErrCodeContentAsset, "Persona không có ảnh chân dung để sinh ảnh img2img", StatusBadRequest, nil)
	ErrUnsupportedMediaType = NewError(ErrCodeContentMedia, "Loại file không được hỗ trợ (chỉ nhận jpeg/png/webp)", StatusBadRequest, nil)
	ErrUpstreamFailure      = NewError(ErrCodeUpstream, "Dịch vụ AI bên ngoài trả về lỗi", StatusBadGateway, nil)
)

// ConvertMongoError chuyển đổi lỗi MongoDB sang lỗi hệ thống
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	// Không convert ErrNotFound - giữ nguyên để caller phân biệt 404
	if errors.Is(err, ErrNotFound) {
		return err
	}
	if customErr, ok := err.(*Error); ok {
		if customErr.Code.Code == ErrCodeDatabaseQuery.Code && customErr.StatusCode == StatusNotFound {
			return err
		}
	}

	// Kiểm tra các loại lỗi MongoDB cụ thể
	var mongoErr mongo.CommandError
	if errors.As(err, &mongoErr) {
		switch {
		case mongoErr.Code >= 100 && mongoErr.Code < 200:
			return ErrConnection
		case mongoErr.Code >= 300 && mongoErr.Code < 400:
			return NewError(ErrCodeDatabaseQuery, MsgDatabaseError, StatusInternalServerError, mongoErr.Message)
		case mongoErr.Code >= 400 && mongoErr.Code < 500:
			return NewError(ErrCodeDatabaseQuery, "Lỗi ghi dữ liệu MongoDB", StatusInternalServerError, mongoErr.Message)
		case mongoErr.Code >= 500:
			return NewError(ErrCodeDatabase, "Lỗi hệ thống MongoDB", StatusInternalServerError, mongoErr.Message)
		}
	}

	// Kiểm tra các lỗi MongoDB khác
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if mongo.IsNetworkError(err) {
		return ErrConnection
	}
	if mongo.IsTimeout(err) {
		return NewError(ErrCodeDatabaseConnection, "Kết nối MongoDB bị timeout", StatusServiceUnavailable, nil)
	}

	// Nếu không tìm thấy lỗi cụ thể, trả về lỗi hệ thống chung
	return NewError(ErrCodeDatabase, MsgDatabaseError, StatusInternalServerError, err.Error())
}
