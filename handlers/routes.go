package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Akash-2201/Student-data-analysis/config"
	"github.com/Akash-2201/Student-data-analysis/web"
)

const requestIDHeader = "X-Request-ID"

// NewRouter wires middleware, templates and routes
func NewRouter(h *APIHandler, sessionCfg config.SessionConfig) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	router := gin.New()
	router.Use(RequestLogger(), gin.Recovery())
	router.SetHTMLTemplate(tmpl)
	router.MaxMultipartMemory = h.MaxUploadBytes

	store := cookie.NewStore([]byte(sessionCfg.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   3600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions(sessionCfg.Name, store))

	// Upload form
	router.GET("/", h.Index)
	router.POST("/", h.Upload)

	api := router.Group("/api")
	{
		api.POST("/reports", h.CreateReport)
		api.POST("/reports/workbook", h.CreateWorkbook)
		api.GET("/reports/:reportId", h.GetReport)
		api.GET("/reports/:reportId/workbook", h.GetReportWorkbook)

		api.GET("/ping", PingHandler)
	}

	router.GET("/metrics", gin.WrapH(h.Metrics.Handler()))
	return router, nil
}

// RequestLogger logs each request with slog, tagging it with a request ID
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(requestIDHeader, requestID)

		c.Next()

		slog.InfoContext(c.Request.Context(), "request completed",
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Int("bytes", c.Writer.Size()),
			slog.String("duration", time.Since(start).String()))
	}
}
