package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/solemate/solemate-backend/internal/http/handlers"
	httpMW "github.com/solemate/solemate-backend/internal/http/middleware"
	"github.com/solemate/solemate-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	HealthHandler  *httpH.HealthHandler
	ProductHandler *httpH.ProductHandler
	ChatHandler    *httpH.ChatHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.AttachRequestContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	if cfg.HealthHandler != nil {
		r.GET("/", cfg.HealthHandler.Root)
		r.GET("/health", cfg.HealthHandler.HealthCheck)
	}

	if cfg.ProductHandler != nil {
		r.GET("/products", cfg.ProductHandler.ListProducts)
		r.GET("/products/:id", cfg.ProductHandler.GetProduct)
		r.POST("/products", cfg.ProductHandler.CreateProduct)
		r.PUT("/products/:id", cfg.ProductHandler.UpdateProduct)
		r.DELETE("/products/:id", cfg.ProductHandler.DeleteProduct)
	}

	if cfg.ChatHandler != nil {
		r.POST("/chat", cfg.ChatHandler.Chat)
		r.GET("/chat/history/:session_id", cfg.ChatHandler.GetHistory)
		r.DELETE("/chat/history/:session_id", cfg.ChatHandler.DeleteHistory)
	}

	return r
}
