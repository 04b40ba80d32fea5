package handler

import (
	"fmt"

	models "influencer_studio/core/api/models/mongodb"
	"influencer_studio/core/api/services"
)

// FeedPostHandler xử lý các request đọc FeedPost.
// FeedPost chỉ được tạo qua flow duyệt draft nên không có route insert/update riêng.
type FeedPostHandler struct {
	BaseHandler[models.FeedPost, models.FeedPost, models.FeedPost]
	FeedPostService *services.FeedPostService
}

// NewFeedPostHandler tạo mới FeedPostHandler
func NewFeedPostHandler() (*FeedPostHandler, error) {
	feedPostService, err := services.NewFeedPostService()
	if err != nil {
		return nil, fmt.Errorf("failed to create feed post service: %v", err)
	}

	handler := &FeedPostHandler{
		FeedPostService: feedPostService,
	}
	handler.BaseHandler = *NewBaseHandler[models.FeedPost, models.FeedPost, models.FeedPost](feedPostService.BaseServiceMongoImpl)

	return handler, nil
}
