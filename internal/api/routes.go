package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.GET("/", h.info)
	r.GET("/health", health)
	r.Any("/generate", h.generateAcademic)
	r.Any("/school/generate", h.generateSchool)
	r.GET("/barcode", h.barcode)
	r.POST("/barcode", h.barcode)
}

// NewRouter returns an engine with recovery, request ids and access logging
// installed and every route registered.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), AccessLog())
	RegisterRoutes(r, h)
	return r
}
