package app

import (
	"github.com/solemate/solemate-backend/internal/http/handlers"
)

type Handlers struct {
	Health  *handlers.HealthHandler
	Product *handlers.ProductHandler
	Chat    *handlers.ChatHandler
}

func wireHandlers(s Services) Handlers {
	return Handlers{
		Health:  handlers.NewHealthHandler(),
		Product: handlers.NewProductHandler(s.Catalog),
		Chat:    handlers.NewChatHandler(s.Chat),
	}
}
