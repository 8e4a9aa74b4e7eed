package app

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/solemate/solemate-backend/internal/pkg/logger"
	"github.com/solemate/solemate-backend/internal/platform/gemini"
	"github.com/solemate/solemate-backend/internal/services"
)

type Services struct {
	Catalog services.CatalogService
	Chat    services.ChatService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, r Repos) (Services, error) {
	geminiClient, err := gemini.NewClient(log)
	if err != nil {
		return Services{}, fmt.Errorf("init gemini client: %w", err)
	}
	generator := services.NewGeminiGenerator(geminiClient, log)

	return Services{
		Catalog: services.NewCatalogService(db, log, r.Product),
		Chat:    services.NewChatService(db, log, r.Product, r.Message, generator, cfg.ContextWindow),
	}, nil
}
