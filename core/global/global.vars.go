package global

import (
	"influencer_studio/config"
	"influencer_studio/core/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_Studio_CollectionName chứa tên các collection trong MongoDB
type MongoDB_Studio_CollectionName struct {
	Drafts      string // Tên collection cho draft nội dung
	Personas    string // Tên collection cho persona (hồ sơ giọng điệu/hình ảnh)
	Characters  string // Tên collection cho character (asset chân dung độc lập)
	FeedPosts   string // Tên collection cho bài đã "publish" kèm metrics mô phỏng
	TrendsCache string // Tên collection cho cache từ khóa trends (TTL 24h)
}

// Các biến toàn cục
var Validate *validator.Validate               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration // Cấu hình của server
var MongoDB_ColNames MongoDB_Studio_CollectionName = *new(MongoDB_Studio_CollectionName) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
