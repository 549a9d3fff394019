package routes

import (
	"studymate-backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler, authMiddleware gin.HandlerFunc) {
	r.GET("/", h.Root)

	// Public
	r.GET("/partners", h.ListPartners)
	r.GET("/partners/:id", h.GetPartner)
	r.POST("/partners/:id/request", h.RequestPartner)

	// Protected (bearer token)
	protected := r.Group("/")
	protected.Use(authMiddleware)
	{
		protected.POST("/partners", h.CreatePartner)
		protected.GET("/partners/my-profile", h.MyProfile)

		protected.GET("/my-requests", h.MyRequests)
		protected.PUT("/my-requests/:id", h.UpdateRequest)
		protected.DELETE("/my-requests/:id", h.DeleteRequest)
	}
}

// NewRouter builds the engine with the global middleware chain.
func NewRouter(h *handlers.Handler, authMiddleware gin.HandlerFunc, global ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(global...)
	SetupRoutes(r, h, authMiddleware)
	return r
}
