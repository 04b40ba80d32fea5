package services

import (
	"fmt"

	"influencer_studio/core/common"
	"influencer_studio/core/global"

	models "influencer_studio/core/api/models/mongodb"
)

// FeedPostService là service quản lý feed post (snapshot đã publish của draft).
// Tạo mới chỉ qua DraftService.Approve (insert-if-absent theo draftId);
// xóa độc lập với draft nguồn.
type FeedPostService struct {
	*BaseServiceMongoImpl[models.FeedPost]
}

// NewFeedPostService tạo mới FeedPostService
func NewFeedPostService() (*FeedPostService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.FeedPosts)
	if !exist {
		return nil, fmt.Errorf("failed to get feed_posts collection: %v", common.ErrNotFound)
	}

	return &FeedPostService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.FeedPost](collection),
	}, nil
}
