package handler

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v3"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	"influencer_studio/core/common"
)

// InsertOne thêm mới một document vào database.
// Body được parse trực tiếp thành Model T và validate trước khi insert.
// Domain handler cần pipeline tạo riêng (sinh caption, ảnh, ...) sẽ override method này.
func (h *BaseHandler[T, CreateInput, UpdateInput]) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var model T
		if err := h.ParseRequestBody(c, &model); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		data, err := h.BaseService.InsertOne(c.Context(), model)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// FindOne tìm một document theo điều kiện filter.
// Filter và options được truyền qua query string dưới dạng JSON.
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.processFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		options, err := h.processMongoOptions(c, true)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.BaseService.FindOne(c.Context(), filter, options.(*mongoopts.FindOneOptions))
		h.HandleResponse(c, data, err)
		return nil
	})
}

// FindOneById tìm một document theo ID từ URI params
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindOneById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.BaseService.FindOneById(c.Context(), id)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Find tìm nhiều document theo điều kiện filter.
// Luôn trả về mảng (rỗng nếu không có kết quả), không bao giờ null.
func (h *BaseHandler[T, CreateInput, UpdateInput]) Find(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.processFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		options, err := h.processMongoOptions(c, false)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.BaseService.Find(c.Context(), filter, options.(*mongoopts.FindOptions))
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if data == nil {
			data = []T{}
		}

		h.HandleResponse(c, data, nil)
		return nil
	})
}

// FindWithPagination tìm nhiều document với phân trang (query params: filter, options, page, limit)
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindWithPagination(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.processFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		options, err := h.processMongoOptions(c, false)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)

		data, err := h.BaseService.FindWithPagination(c.Context(), filter, page, limit, options.(*mongoopts.FindOptions))
		h.HandleResponse(c, data, err)
		return nil
	})
}

// UpdateById cập nhật một document theo ID.
// Body là object JSON chứa các trường cần update ($set), các trường hệ thống
// (_id, createdAt, updatedAt) bị loại bỏ khỏi update.
// Domain handler cần allow-list chặt hơn sẽ override method này.
func (h *BaseHandler[T, CreateInput, UpdateInput]) UpdateById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var updateData map[string]interface{}
		if err := json.NewDecoder(bytes.NewReader(c.Body())).Decode(&updateData); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu cập nhật phải là một object JSON hợp lệ. Chi tiết lỗi: %v", err),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		delete(updateData, "_id")
		delete(updateData, "id")
		delete(updateData, "createdAt")
		delete(updateData, "updatedAt")

		if len(updateData) == 0 {
			h.HandleResponse(c, nil, common.ErrNoFieldsProvided)
			return nil
		}

		data, err := h.BaseService.UpdateById(c.Context(), id, map[string]interface{}{"$set": updateData})
		h.HandleResponse(c, data, err)
		return nil
	})
}

// DeleteById xóa một document theo ID từ URI params
func (h *BaseHandler[T, CreateInput, UpdateInput]) DeleteById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.BaseService.DeleteById(c.Context(), id)
		h.HandleResponse(c, nil, err)
		return nil
	})
}
