package api

import (
	"github.com/gin-gonic/gin"
)

// NewServer creates the status HTTP server with all routes configured. The
// server only reads the tracker snapshot and the journal, it never touches
// the store.
func NewServer(handler *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", handler.GetHealth)
	r.GET("/status", handler.GetStatus)
	r.GET("/history", handler.GetHistory)

	return r
}
