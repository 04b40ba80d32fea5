package handler

// Package handler chứa các handler xử lý request HTTP trong ứng dụng.
// Package này cung cấp các chức năng CRUD cơ bản và các tiện ích để xử lý request/response.

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	"influencer_studio/core/api/services"
	"influencer_studio/core/common"
	"influencer_studio/core/global"
)

// FilterOptions cấu hình cho việc validate filter từ query string
type FilterOptions struct {
	DeniedFields     []string // Các trường bị cấm filter
	AllowedOperators []string // Các operator MongoDB được phép
	MaxFields        int      // Số lượng field tối đa trong một filter
}

// BaseHandler là base handler cho các Fiber handler, cung cấp các chức năng CRUD cơ bản.
// Struct này sử dụng Generic Type để tái sử dụng cho nhiều loại model khác nhau.
//
// Type parameters:
// - T: Kiểu dữ liệu của model
// - CreateInput: Kiểu dữ liệu của input khi tạo mới
// - UpdateInput: Kiểu dữ liệu của input khi cập nhật
type BaseHandler[T any, CreateInput any, UpdateInput any] struct {
	BaseService   services.BaseServiceMongo[T] // Service xử lý logic nghiệp vụ với MongoDB
	filterOptions FilterOptions                // Cấu hình validate filter
}

// NewBaseHandler tạo mới một BaseHandler với BaseService được cung cấp
func NewBaseHandler[T any, CreateInput any, UpdateInput any](baseService services.BaseServiceMongo[T]) *BaseHandler[T, CreateInput, UpdateInput] {
	return &BaseHandler[T, CreateInput, UpdateInput]{
		BaseService: baseService,
		filterOptions: FilterOptions{
			DeniedFields: []string{"password", "token", "secret", "key", "hash"},
			AllowedOperators: []string{
				"$eq", "$gt", "$gte", "$lt", "$lte", "$in", "$nin", "$exists",
			},
			MaxFields: 10,
		},
	}
}

// validateInput validate dữ liệu đầu vào với validator từ global (struct tag validate)
func (h *BaseHandler[T, CreateInput, UpdateInput]) validateInput(input interface{}) error {
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}
	return nil
}

// ParseRequestBody parse và validate dữ liệu từ request body.
// Sử dụng json.Decoder với UseNumber() để xử lý chính xác các số.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseRequestBody(c fiber.Ctx, input interface{}) error {
	decoder := json.NewDecoder(bytes.NewReader(c.Body()))
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}

	return h.validateInput(input)
}

// GetIDFromContext lấy ID từ URI params của request
func (h *BaseHandler[T, CreateInput, UpdateInput]) GetIDFromContext(c fiber.Ctx) string {
	return c.Params("id")
}

// ParseIDParam lấy và validate ObjectID từ URI params
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseIDParam(c fiber.Ctx) (primitive.ObjectID, error) {
	return ParseIDParam(c)
}

// ParseIDParam lấy và validate ObjectID từ URI param "id" (helper dùng chung
// cho cả domain handler không embed BaseHandler)
func ParseIDParam(c fiber.Ctx) (primitive.ObjectID, error) {
	id := c.Params("id")
	if id == "" {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			"ID không được để trống trong URL params",
			common.StatusBadRequest,
			nil,
		)
	}
	if !primitive.IsValidObjectID(id) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
			common.StatusBadRequest,
			nil,
		)
	}
	objID, _ := primitive.ObjectIDFromHex(id)
	return objID, nil
}

// ParsePagination parse thông tin phân trang từ query string (page >= 1, limit > 0)
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParsePagination(c fiber.Ctx) (int64, int64) {
	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.ParseInt(c.Query("limit", "10"), 10, 64)
	if err != nil || limit <= 0 {
		limit = 10
	}

	return page, limit
}

// processFilter parse và validate filter từ query string (JSON)
func (h *BaseHandler[T, CreateInput, UpdateInput]) processFilter(c fiber.Ctx) (map[string]interface{}, error) {
	var filter map[string]interface{}

	filterStr := c.Query("filter", "{}")
	if err := json.Unmarshal([]byte(filterStr), &filter); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Filter không đúng định dạng JSON. Chi tiết lỗi: %v. Giá trị filter nhận được: %s", err, filterStr),
			common.StatusBadRequest,
			err,
		)
	}

	filter = h.normalizeFilter(filter)

	if err := h.validateFilter(filter); err != nil {
		return nil, err
	}

	return filter, nil
}

// normalizeFilter chuyển đổi các string có format ObjectId thành ObjectID trong filter.
// Hỗ trợ field tên kết thúc bằng "Id"/"ID" và MongoDB Extended JSON {"$oid": "..."}.
func (h *BaseHandler[T, CreateInput, UpdateInput]) normalizeFilter(filter map[string]interface{}) map[string]interface{} {
	if filter == nil {
		return filter
	}

	normalized := make(map[string]interface{})
	for field, value := range filter {
		fieldLower := strings.ToLower(field)
		isIDField := field == "_id" || (strings.HasSuffix(fieldLower, "id") && len(fieldLower) > 2)
		normalized[field] = h.normalizeFilterValue(value, isIDField)
	}

	return normalized
}

// normalizeFilterValue chuyển đổi giá trị trong filter, hỗ trợ nested structures
func (h *BaseHandler[T, CreateInput, UpdateInput]) normalizeFilterValue(value interface{}, isIDField bool) interface{} {
	if value == nil {
		return value
	}

	if mapValue, ok := value.(map[string]interface{}); ok {
		// MongoDB Extended JSON format: {"$oid": "..."}
		if oidValue, hasOid := mapValue["$oid"]; hasOid {
			if oidStr, ok := oidValue.(string); ok && primitive.IsValidObjectID(oidStr) {
				objID, err := primitive.ObjectIDFromHex(oidStr)
				if err == nil {
					return objID
				}
			}
			return value
		}

		// Operator map ($in, $eq, ...) - xử lý đệ quy từng value
		normalizedMap := make(map[string]interface{})
		for key, val := range mapValue {
			normalizedMap[key] = h.normalizeFilterValue(val, isIDField)
		}
		return normalizedMap
	}

	if strValue, ok := value.(string); ok && isIDField && primitive.IsValidObjectID(strValue) {
		objID, err := primitive.ObjectIDFromHex(strValue)
		if err == nil {
			return objID
		}
		return strValue
	}

	if arrValue, ok := value.([]interface{}); ok {
		normalizedArr := make([]interface{}, len(arrValue))
		for i, item := range arrValue {
			normalizedArr[i] = h.normalizeFilterValue(item, isIDField)
		}
		return normalizedArr
	}

	return value
}

// contains kiểm tra một chuỗi có trong danh sách không
func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// validateFilter kiểm tra tính hợp lệ của filter: số field, field bị cấm, operator được phép
func (h *BaseHandler[T, CreateInput, UpdateInput]) validateFilter(filter map[string]interface{}) error {
	if len(filter) > h.filterOptions.MaxFields {
		return common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Filter vượt quá số lượng trường cho phép. Tối đa %d trường, hiện tại có %d trường.", h.filterOptions.MaxFields, len(filter)),
			common.StatusBadRequest,
			nil,
		)
	}

	for field, value := range filter {
		if contains(h.filterOptions.DeniedFields, field) {
			return common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Trường '%s' không được phép sử dụng trong filter vì lý do bảo mật.", field),
				common.StatusBadRequest,
				nil,
			)
		}

		if mapValue, ok := value.(map[string]interface{}); ok {
			for op := range mapValue {
				if strings.HasPrefix(op, "$") && !contains(h.filterOptions.AllowedOperators, op) {
					return common.NewError(
						common.ErrCodeValidationFormat,
						fmt.Sprintf("Toán tử MongoDB '%s' không được phép sử dụng. Các toán tử được phép: %v", op, h.filterOptions.AllowedOperators),
						common.StatusBadRequest,
						nil,
					)
				}
			}
		}
	}

	return nil
}

// parseSortMap chuyển sort map từ JSON sang bson.D, chỉ chấp nhận giá trị 1 hoặc -1
func parseSortMap(sortMap map[string]interface{}) bson.D {
	sortBson := bson.D{}
	for field, value := range sortMap {
		var sortValue int
		switch v := value.(type) {
		case float64:
			sortValue = int(v)
		case json.Number:
			if intVal, err := v.Int64(); err == nil {
				sortValue = int(intVal)
			}
		case int:
			sortValue = v
		default:
			continue
		}
		if sortValue != 1 && sortValue != -1 {
			continue
		}
		sortBson = append(sortBson, bson.E{Key: field, Value: sortValue})
	}
	return sortBson
}

// processMongoOptions parse options từ query string và chuyển sang MongoDB options.
// Hỗ trợ: projection, sort, limit (tối đa 1000), skip.
func (h *BaseHandler[T, CreateInput, UpdateInput]) processMongoOptions(c fiber.Ctx, isFindOne bool) (interface{}, error) {
	var rawOptions map[string]interface{}

	optionsStr := c.Query("options", "{}")
	if err := json.Unmarshal([]byte(optionsStr), &rawOptions); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Options không đúng định dạng JSON. Chi tiết lỗi: %v. Giá trị options nhận được: %s", err, optionsStr),
			common.StatusBadRequest,
			err,
		)
	}

	if err := h.validateMongoOptions(rawOptions); err != nil {
		return nil, err
	}

	if isFindOne {
		opts := mongoopts.FindOne()
		if projection, ok := rawOptions["projection"].(map[string]interface{}); ok {
			opts.SetProjection(projection)
		}
		if sort, ok := rawOptions["sort"].(map[string]interface{}); ok {
			opts.SetSort(parseSortMap(sort))
		}
		return opts, nil
	}

	opts := mongoopts.Find()
	if projection, ok := rawOptions["projection"].(map[string]interface{}); ok {
		opts.SetProjection(projection)
	}
	if sort, ok := rawOptions["sort"].(map[string]interface{}); ok {
		opts.SetSort(parseSortMap(sort))
	}
	if limit, ok := rawOptions["limit"].(float64); ok {
		opts.SetLimit(int64(limit))
	}
	if skip, ok := rawOptions["skip"].(float64); ok {
		opts.SetSkip(int64(skip))
	}
	return opts, nil
}

// validateMongoOptions kiểm tra tính hợp lệ của các options
func (h *BaseHandler[T, CreateInput, UpdateInput]) validateMongoOptions(options map[string]interface{}) error {
	allowedOptions := map[string]bool{
		"projection": true,
		"sort":       true,
		"limit":      true,
		"skip":       true,
	}

	for key := range options {
		if !allowedOptions[key] {
			return common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Option '%s' không được hỗ trợ. Các options được phép: projection, sort, limit, skip", key),
				common.StatusBadRequest,
				nil,
			)
		}
	}

	if limit, ok := options["limit"].(float64); ok {
		if limit <= 0 {
			return common.NewError(common.ErrCodeValidationFormat, "Giá trị limit phải lớn hơn 0", common.StatusBadRequest, nil)
		}
		if limit > 1000 {
			return common.NewError(common.ErrCodeValidationFormat, "Giá trị limit không được vượt quá 1000 để đảm bảo hiệu năng hệ thống", common.StatusBadRequest, nil)
		}
	}

	if skip, ok := options["skip"].(float64); ok && skip < 0 {
		return common.NewError(common.ErrCodeValidationFormat, "Giá trị skip không được âm", common.StatusBadRequest, nil)
	}

	return nil
}
