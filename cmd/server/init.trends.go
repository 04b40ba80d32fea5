package main

import (
	"context"

	"github.com/robfig/cron/v3"

	"influencer_studio/core/api/services"
	"influencer_studio/core/global"
	"influencer_studio/core/logger"
)

// InitTrendsWarmJob khởi tạo cron job warm cache trends theo schedule trong config.
// Schedule rỗng nghĩa là tắt job, cache chỉ refresh lazy khi có request.
func InitTrendsWarmJob() {
	log := logger.GetAppLogger()

	schedule := global.MongoDB_ServerConfig.TrendsWarmSchedule
	if schedule == "" {
		log.Info("Trends warm job disabled (no schedule configured)")
		return
	}

	trendsService, err := services.NewTrendsService()
	if err != nil {
		log.WithError(err).Error("Failed to create trends service, continuing without warm job")
		return
	}

	c := cron.New()
	_, err = c.AddFunc(schedule, func() {
		defer func() {
			if r := recover(); r != nil {
				log.WithFields(map[string]interface{}{
					"panic": r,
				}).Error("📈 [TRENDS] Warm job panic")
			}
		}()

		if err := trendsService.Warm(context.Background()); err != nil {
			log.WithError(err).Warn("📈 [TRENDS] Warm cache failed")
			return
		}
		log.Info("📈 [TRENDS] Cache warmed successfully")
	})
	if err != nil {
		log.WithError(err).Errorf("Invalid trends warm schedule %q, continuing without warm job", schedule)
		return
	}

	c.Start()
	log.Infof("📈 [TRENDS] Warm job scheduled: %s", schedule)
}
