// Package server exposes the catalog, explanations, questions and results
// over a read-only JSON API.
package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RouterConfig struct {
	Handler        *Handler
	AllowedOrigins []string
	Log            *zap.SugaredLogger
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.Log != nil {
		r.Use(RequestLogger(cfg.Log))
	}
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(CORS(cfg.AllowedOrigins))
	}

	h := cfg.Handler
	r.GET("/healthz", h.Health)

	api := r.Group("/api")
	{
		api.GET("/timeline", h.Timeline)
		api.GET("/concepts", h.Concepts)
		api.GET("/explanations", h.Explanation)
		api.GET("/questions", h.Questions)
		api.GET("/results", h.Results)
	}
	return r
}
