package app

import (
	"github.com/solemate/solemate-backend/internal/domain"
	"github.com/solemate/solemate-backend/internal/pkg/envutil"
)

type Config struct {
	Port          string
	LogMode       string
	ContextWindow int
}

func LoadConfig() Config {
	return Config{
		Port:          envutil.String("PORT", "8080"),
		LogMode:       envutil.String("LOG_MODE", "development"),
		ContextWindow: envutil.Int("CHAT_CONTEXT_WINDOW", domain.DefaultContextWindow),
	}
}
