package server

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the API under /api. The greeting is also served at /.
func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/", s.hello)

	api := r.Group("/api")
	{
		api.GET("/health", s.health)
		api.GET("/hello", s.hello)
		api.GET("/poster.png", s.poster)
	}
}
