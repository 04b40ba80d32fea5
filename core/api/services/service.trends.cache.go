package services

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"influencer_studio/core/api/dto"
	models "influencer_studio/core/api/models/mongodb"
	"influencer_studio/core/common"
	"influencer_studio/core/global"
	"influencer_studio/core/logger"
	"influencer_studio/core/metrics"
)

// trendsKeywordCap là số từ khóa tối đa trong một payload trends
const trendsKeywordCap = 25

// seedKeywords là danh sách từ khóa fallback khi upstream không trả về gì
// và cache cũng rỗng. Phủ đủ các nhóm chủ đề của persona mặc định.
var seedKeywords = []string{
	"AI tools for students",
	"thesis writing tips",
	"time management",
	"note-taking apps",
	"study motivation",
	"latest AI trends",
	"blockchain news",
	"startup ideas",
	"green tech",
	"digital marketing",
	"budget travel",
	"hidden gems Europe",
	"remote work lifestyle",
	"coffee culture",
	"local food experiences",
	"mental health awareness",
	"sustainable fashion",
	"personal branding",
	"career change",
	"work-life balance",
}

// trendsRSS map RSS feed của Google Trends daily trending
type trendsRSS struct {
	Channel struct {
		Items []struct {
			Title string `xml:"title"`
		} `xml:"item"`
	} `xml:"channel"`
}

// TrendsService fetch từ khóa trending và cache vào MongoDB với TTL 24h.
// Cache-aside: đọc cache theo key trước, miss mới gọi upstream; upstream lỗi
// thì replay payload cache gần nhất, cuối cùng mới rơi về seed keywords.
type TrendsService struct {
	*BaseServiceMongoImpl[models.TrendsCache]
	client *resty.Client
}

// NewTrendsService tạo mới TrendsService
func NewTrendsService() (*TrendsService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.TrendsCache)
	if !exist {
		return nil, fmt.Errorf("failed to get trends_cache collection: %v", common.ErrNotFound)
	}

	client := resty.New().
		SetBaseURL("https://trends.google.com").
		SetTimeout(30 * time.Second)

	return &TrendsService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.TrendsCache](collection),
		client:               client,
	}, nil
}

// CacheKey build key cache từ (geo, window).
// Hậu tố TRENDING_ONLY giữ cố định để key không đụng các chế độ fetch cũ.
func (s *TrendsService) CacheKey(geo, window string) string {
	sum := sha1.Sum([]byte(geo + "|" + window + "|TRENDING_ONLY"))
	return hex.EncodeToString(sum[:])
}

// fetchUpstream gọi Google Trends daily trending RSS cho geo.
// Lỗi mạng/parse trả về slice rỗng để caller rơi về fallback.
func (s *TrendsService) fetchUpstream(ctx context.Context, geo string) []string {
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("geo", strings.ToUpper(geo)).
		Get("/trending/rss")
	if err != nil || resp.IsError() {
		logger.GetAppLogger().Warnf("Fetch trends upstream thất bại (geo=%s): %v", geo, err)
		return nil
	}

	var feed trendsRSS
	if err := xml.Unmarshal(resp.Body(), &feed); err != nil {
		logger.GetAppLogger().Warnf("Parse trends RSS thất bại (geo=%s): %v", geo, err)
		return nil
	}

	var keywords []string
	for _, item := range feed.Channel.Items {
		if kw := strings.TrimSpace(item.Title); kw != "" {
			keywords = append(keywords, kw)
		}
		if len(keywords) == trendsKeywordCap {
			break
		}
	}
	return keywords
}

// lastCachedKeywords lấy từ khóa của entry cache gần nhất (bất kể geo/window)
func (s *TrendsService) lastCachedKeywords(ctx context.Context) []string {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	doc, err := s.FindOne(ctx, bson.M{}, opts)
	if err != nil {
		return nil
	}
	return doc.Keywords
}

// dedupeKeywords loại trùng case-insensitive, giữ thứ tự xuất hiện, cap 25
func dedupeKeywords(keywords []string) []string {
	seen := make(map[string]bool, len(keywords))
	var out []string
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		low := strings.ToLower(kw)
		if kw == "" || seen[low] {
			continue
		}
		seen[low] = true
		out = append(out, kw)
		if len(out) == trendsKeywordCap {
			break
		}
	}
	return out
}

// refresh fetch upstream (với fallback cache replay -> seed) và upsert vào cache
func (s *TrendsService) refresh(ctx context.Context, geo, window string) (models.TrendsCache, error) {
	source := "upstream"
	keywords := s.fetchUpstream(ctx, geo)
	if len(keywords) == 0 {
		keywords = s.lastCachedKeywords(ctx)
		source = "cache"
	}
	if len(keywords) == 0 {
		keywords = seedKeywords
		source = "seed"
	}
	keywords = dedupeKeywords(keywords)
	if len(keywords) == 0 {
		keywords = dedupeKeywords(seedKeywords)
		source = "seed"
	}

	metrics.TrendsRefreshes.WithLabelValues(source).Inc()
	if source != "upstream" {
		metrics.UpstreamErrors.WithLabelValues("trends").Inc()
	}

	entry := models.TrendsCache{
		Key:        s.CacheKey(geo, window),
		Geo:        geo,
		Window:     window,
		Keywords:   keywords,
		Source:     source,
		ExpireBase: primitive.NewDateTimeFromTime(time.Now()),
	}

	return s.Upsert(ctx, bson.M{"key": entry.Key}, entry)
}

// Get trả về payload trends cho (geo, window), cache-first.
// Geo/window rỗng dùng default từ config.
func (s *TrendsService) Get(ctx context.Context, geo, window string) (dto.TrendsResult, error) {
	cfg := global.MongoDB_ServerConfig
	if geo == "" {
		geo = cfg.TrendsDefaultGeo
	}
	if window == "" {
		window = cfg.TrendsDefaultWindow
	}

	entry, err := s.FindOne(ctx, bson.M{"key": s.CacheKey(geo, window)}, nil)
	if err != nil {
		entry, err = s.refresh(ctx, geo, window)
		if err != nil {
			return dto.TrendsResult{}, err
		}
	}

	return dto.TrendsResult{
		Geo:      entry.Geo,
		Window:   entry.Window,
		Keywords: entry.Keywords,
		Source:   entry.Source,
		CachedAt: entry.CreatedAt,
	}, nil
}

// Keywords là shortcut lấy danh sách từ khóa cho default geo/window.
// Lỗi được nuốt và trả về nil - trends chỉ là enrichment cho prompt, không block flow chính.
func (s *TrendsService) Keywords(ctx context.Context) []string {
	result, err := s.Get(ctx, "", "")
	if err != nil {
		return nil
	}
	return result.Keywords
}

// Warm force-refresh cache cho default geo/window, dùng bởi cron job định kỳ
func (s *TrendsService) Warm(ctx context.Context) error {
	cfg := global.MongoDB_ServerConfig
	_, err := s.refresh(ctx, cfg.TrendsDefaultGeo, cfg.TrendsDefaultWindow)
	return err
}
