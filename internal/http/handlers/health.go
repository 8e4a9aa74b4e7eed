package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

// GET /health
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// GET /
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"api":         "E-commerce Shoes Chat API",
		"version":     "1.0.0",
		"description": "API para e-commerce con chat AI y catálogo de productos de zapatos",
		"endpoints": []string{
			"GET /products",
			"GET /products/{product_id}",
			"POST /products",
			"PUT /products/{product_id}",
			"DELETE /products/{product_id}",
			"POST /chat",
			"GET /chat/history/{session_id}",
			"DELETE /chat/history/{session_id}",
			"GET /health",
		},
	})
}
