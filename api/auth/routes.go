package auth

import "github.com/gin-gonic/gin"

// RegisterRoutes registers auth routes on an authenticated group
func RegisterRoutes(router *gin.RouterGroup, handler *Handler) {
	router.POST("/auth/login", handler.Login)
	router.GET("/me", handler.Me)
}
