package middleware

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/solemate/solemate-backend/internal/pkg/envutil"
)

// CORS builds the cross-origin policy from CORS_ALLOW_ORIGINS, a
// comma-separated origin list. The default "*" allows every origin
// (credentials off, since wildcard plus credentials is rejected by
// browsers anyway).
func CORS() gin.HandlerFunc {
	raw := envutil.String("CORS_ALLOW_ORIGINS", "*")

	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Requested-With", "X-Request-Id"},
	}
	if raw == "*" {
		cfg.AllowAllOrigins = true
	} else {
		var origins []string
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	return cors.New(cfg)
}
