package router

import (
	"storyapp/internal/handlers"
	"storyapp/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the endpoint layer. Handlers arrive fully
// constructed; nothing here reaches for globals.
func RegisterRoutes(r *gin.Engine, auth *handlers.AuthHandler, users *handlers.UserHandler, stories *handlers.StoryHandler) {
	api := r.Group("/api")

	// Public routes
	api.POST("/auth/register", auth.Register)
	api.POST("/auth/login", auth.Login)
	api.GET("/stories", stories.List)
	api.GET("/stories/:id", stories.Detail)

	// Protected routes
	authorized := api.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.POST("/auth/logout", auth.Logout)
		authorized.GET("/auth/user", auth.Me)
		authorized.PUT("/profile", users.UpdateProfile)

		authorized.POST("/stories", stories.Create)
		authorized.GET("/stories/my", stories.My)
		authorized.PUT("/stories/:id", stories.Update)
		authorized.POST("/stories/:id/like", stories.Like)
	}
}
