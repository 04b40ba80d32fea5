package handler

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"

	"influencer_studio/core/common"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
// để message tiếng Việt encode đúng trên mọi client
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// HandleResponse xử lý và chuẩn hóa response trả về cho client.
// Format thống nhất: lỗi -> {code, message, details, status: "error"} với HTTP status từ Error;
// thành công -> {code: 200, message, data, status: "success"}.
func HandleResponse(c fiber.Ctx, data interface{}, err error) {
	if err != nil {
		var customErr *common.Error
		if errors.As(err, &customErr) {
			JSONResponse(c, customErr.StatusCode, fiber.Map{
				"code":    customErr.Code.Code,
				"message": customErr.Message,
				"details": customErr.Details,
				"status":  "error",
			})
			return
		}
		// Lỗi không phải custom error -> internal server error
		JSONResponse(c, common.StatusInternalServerError, fiber.Map{
			"code":    common.ErrCodeInternalServer.Code,
			"message": err.Error(),
			"status":  "error",
		})
		return
	}

	JSONResponse(c, common.StatusOK, fiber.Map{
		"code":    common.StatusOK,
		"message": common.MsgSuccess,
		"data":    data,
		"status":  "success",
	})
}

// SafeHandler bọc handler với recover để server luôn trả về response cho client,
// kể cả khi có panic trong quá trình xử lý
func SafeHandler(c fiber.Ctx, fn func() error) error {
	defer func() {
		if r := recover(); r != nil {
			debug.PrintStack()
			HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Lỗi hệ thống không mong muốn: %v", r),
				common.StatusInternalServerError,
				nil,
			))
		}
	}()
	return fn()
}

// HandleResponse method trên BaseHandler - forward đến helper chung
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleResponse(c fiber.Ctx, data interface{}, err error) {
	HandleResponse(c, data, err)
}

// SafeHandler method trên BaseHandler - forward đến helper chung
func (h *BaseHandler[T, CreateInput, UpdateInput]) SafeHandler(c fiber.Ctx, fn func() error) error {
	return SafeHandler(c, fn)
}
