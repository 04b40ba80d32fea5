package main

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	models "influencer_studio/core/api/models/mongodb"
	"influencer_studio/core/api/services"
	"influencer_studio/core/global"
	"influencer_studio/core/logger"
)

// defaultPersonas là các persona mẫu được seed khi database còn trống
var defaultPersonas = []models.Persona{
	{
		Name:       "Maya",
		Tone:       "friendly, upbeat, concise",
		BrandTag:   "fitai",
		Watermark:  "FitAI",
		ImageStyle: "clean",
	},
	{
		Name:       "Ethan",
		Tone:       "calm, practical, no-hype",
		BrandTag:   "finai",
		Watermark:  "FinAI",
		ImageStyle: "gradient",
	},
	{
		Name:       "Ella",
		Tone:       "warm, aesthetic, minimal",
		BrandTag:   "ellai",
		Watermark:  "EllaAI",
		ImageStyle: "polaroid",
	},
}

// InitDefaultData seed các persona mặc định (idempotent, theo tên)
func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("🔄 [INIT] Starting InitDefaultData...")

	personaCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Personas)
	if !exist {
		log.Fatalf("Failed to get personas collection for default data")
	}
	personaService := services.NewBaseServiceMongo[models.Persona](personaCol)

	for _, persona := range defaultPersonas {
		created, inserted, err := personaService.InsertIfAbsent(context.TODO(), bson.M{"name": persona.Name}, persona)
		if err != nil {
			log.Warnf("Failed to seed persona %s: %v", persona.Name, err)
			continue
		}
		if inserted {
			log.Infof("✅ [INIT] Seeded default persona %s (ID: %s)", created.Name, created.ID.Hex())
		}
	}

	log.Info("✅ [INIT] InitDefaultData completed successfully")
}
