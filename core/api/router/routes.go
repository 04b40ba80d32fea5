package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"influencer_studio/core/api/handler"
)

// CRUDHandler định nghĩa interface cho các handler CRUD
type CRUDHandler interface {
	// Create
	InsertOne(c fiber.Ctx) error

	// Read
	Find(c fiber.Ctx) error
	FindOne(c fiber.Ctx) error
	FindOneById(c fiber.Ctx) error
	FindWithPagination(c fiber.Ctx) error

	// Update
	UpdateById(c fiber.Ctx) error

	// Delete
	DeleteById(c fiber.Ctx) error
}

// Router quản lý việc định tuyến cho API
type Router struct {
	app *fiber.App
}

// CRUDConfig cấu hình các operation được phép cho mỗi collection
type CRUDConfig struct {
	InsOne   bool // Insert One
	Find     bool // Find All
	FindOne  bool // Find One
	FindById bool // Find By Id
	Paginate bool // Find With Pagination
	UpdById  bool // Update By Id
	DelById  bool // Delete By Id
}

// Config cho từng collection
var (
	readWriteConfig = CRUDConfig{
		InsOne: true,
		Find:   true, FindOne: true, FindById: true, Paginate: true,
		UpdById: true, DelById: true,
	}

	draftConfig     = readWriteConfig
	personaConfig   = readWriteConfig
	characterConfig = readWriteConfig

	// FeedPost chỉ được tạo qua flow duyệt draft; cho phép xóa để dọn dữ liệu
	feedPostConfig = CRUDConfig{
		InsOne: false,
		Find:   true, FindOne: true, FindById: true, Paginate: true,
		UpdById: false, DelById: true,
	}
)

// RoutePrefix chứa các prefix cơ bản cho API
type RoutePrefix struct {
	Base string // Prefix cơ bản (/api)
	V1   string // Prefix cho API version 1 (/api/v1)
}

// NewRoutePrefix tạo mới một instance của RoutePrefix với các giá trị mặc định
func NewRoutePrefix() RoutePrefix {
	base := "/api"
	return RoutePrefix{
		Base: base,
		V1:   base + "/v1",
	}
}

// NewRouter tạo mới một instance của Router
func NewRouter(app *fiber.App) *Router {
	return &Router{
		app: app,
	}
}

// registerCRUDRoutes đăng ký các route CRUD cho một collection
func (r *Router) registerCRUDRoutes(router fiber.Router, prefix string, h CRUDHandler, config CRUDConfig) {
	group := router.Group(prefix)

	// Create operations
	if config.InsOne {
		group.Post("/insert-one", h.InsertOne)
	}

	// Read operations
	if config.Find {
		group.Get("/find", h.Find)
	}
	if config.FindOne {
		group.Get("/find-one", h.FindOne)
	}
	if config.FindById {
		group.Get("/find-by-id/:id", h.FindOneById)
	}
	if config.Paginate {
		group.Get("/find-with-pagination", h.FindWithPagination)
	}

	// Update operations
	if config.UpdById {
		group.Put("/update-by-id/:id", h.UpdateById)
	}

	// Delete operations
	if config.DelById {
		group.Delete("/delete-by-id/:id", h.DeleteById)
	}
}

// registerSystemRoutes đăng ký các route cho system operations
func registerSystemRoutes(router fiber.Router, app *fiber.App) error {
	systemHandler, err := handler.NewSystemHandler()
	if err != nil {
		return fmt.Errorf("failed to create system handler: %v", err)
	}

	router.Get("/system/health", systemHandler.HandleHealth)

	// Metrics expose ở root để Prometheus scrape theo convention
	app.Get("/metrics", systemHandler.HandleMetrics)

	return nil
}

// registerContentRoutes đăng ký các route cho draft, persona, character và feed post
func (r *Router) registerContentRoutes(router fiber.Router) error {
	// Draft routes
	draftHandler, err := handler.NewDraftHandler()
	if err != nil {
		return fmt.Errorf("failed to create draft handler: %v", err)
	}
	// Các route đặc biệt của flow sản xuất nội dung
	draftGroup := router.Group("/drafts")
	draftGroup.Get("/ideas", draftHandler.Ideas)
	draftGroup.Post("/approve/:id", draftHandler.Approve)
	draftGroup.Post("/regenerate-caption/:id", draftHandler.RegenerateCaption)
	draftGroup.Post("/regenerate-image/:id", draftHandler.RegenerateImage)
	draftGroup.Get("/export/:id", draftHandler.Export)
	// CRUD routes
	r.registerCRUDRoutes(router, "/drafts", draftHandler, draftConfig)

	// Persona routes
	personaHandler, err := handler.NewPersonaHandler()
	if err != nil {
		return fmt.Errorf("failed to create persona handler: %v", err)
	}
	r.registerCRUDRoutes(router, "/personas", personaHandler, personaConfig)

	// Character routes
	characterHandler, err := handler.NewCharacterHandler()
	if err != nil {
		return fmt.Errorf("failed to create character handler: %v", err)
	}
	r.registerCRUDRoutes(router, "/characters", characterHandler, characterConfig)

	// FeedPost routes (chỉ đọc)
	feedPostHandler, err := handler.NewFeedPostHandler()
	if err != nil {
		return fmt.Errorf("failed to create feed post handler: %v", err)
	}
	r.registerCRUDRoutes(router, "/feed-posts", feedPostHandler, feedPostConfig)

	return nil
}

// registerAgentRoutes đăng ký các route cho agent critique
func registerAgentRoutes(router fiber.Router) error {
	agentHandler, err := handler.NewAgentHandler()
	if err != nil {
		return fmt.Errorf("failed to create agent handler: %v", err)
	}

	agentGroup := router.Group("/agent")
	agentGroup.Post("/critique/:id", agentHandler.Critique)
	agentGroup.Post("/apply/:id", agentHandler.Apply)

	return nil
}

// registerInsightRoutes đăng ký các route thống kê, trends và sinh ảnh độc lập
func registerInsightRoutes(router fiber.Router) error {
	analyticsHandler, err := handler.NewAnalyticsHandler()
	if err != nil {
		return fmt.Errorf("failed to create analytics handler: %v", err)
	}
	router.Get("/analytics/summary", analyticsHandler.Summary)

	trendsHandler, err := handler.NewTrendsHandler()
	if err != nil {
		return fmt.Errorf("failed to create trends handler: %v", err)
	}
	router.Get("/trends", trendsHandler.Get)

	imageHandler, err := handler.NewImageHandler()
	if err != nil {
		return fmt.Errorf("failed to create image handler: %v", err)
	}
	router.Post("/images/generate", imageHandler.Generate)

	return nil
}

// SetupRoutes thiết lập tất cả các route cho ứng dụng
func SetupRoutes(app *fiber.App) error {
	return NewRouter(app).SetupRoutes()
}

// SetupRoutes thiết lập tất cả các route của Router
func (r *Router) SetupRoutes() error {
	prefix := NewRoutePrefix()
	v1 := r.app.Group(prefix.V1)

	if err := registerSystemRoutes(v1, r.app); err != nil {
		return err
	}

	if err := r.registerContentRoutes(v1); err != nil {
		return err
	}

	if err := registerAgentRoutes(v1); err != nil {
		return err
	}

	if err := registerInsightRoutes(v1); err != nil {
		return err
	}

	return nil
}
