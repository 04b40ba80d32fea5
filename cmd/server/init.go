package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"influencer_studio/config"
	models "influencer_studio/core/api/models/mongodb"
	"influencer_studio/core/database"
	"influencer_studio/core/global"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Drafts = "content_drafts"
	global.MongoDB_ColNames.Personas = "content_personas"
	global.MongoDB_ColNames.Characters = "content_characters"
	global.MongoDB_ColNames.FeedPosts = "content_feed_posts"
	global.MongoDB_ColNames.TrendsCache = "trends_cache"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, category, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các db và collections nếu chưa có
	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection

	// Khởi tạo các index cho các collection
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Drafts), models.Draft{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Personas), models.Persona{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Characters), models.Character{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.FeedPosts), models.FeedPost{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.TrendsCache), models.TrendsCache{})
}
