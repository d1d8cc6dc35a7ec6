package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/emre/postova/internal/app/controllers"
	"github.com/emre/postova/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	feedController *controllers.FeedController,
	postController *controllers.PostController,
	commentController *controllers.CommentController,
	groupController *controllers.GroupController,
	followController *controllers.FollowController,
	authMiddleware *middleware.AuthMiddleware,
	storagePath string,
) {
	// Uploaded post images are served statically
	router.Static("/uploads", storagePath)

	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.Refresh)
	}

	// --- Public feeds (optional auth so the following flag can be set) ---
	public := v1.Group("")
	public.Use(authMiddleware.OptionalJWTAuth())
	{
		public.GET("/feed", feedController.GetGlobalFeed)
		public.GET("/groups", groupController.GetAllGroups)
		public.GET("/groups/:slug", groupController.GetGroup)
		public.GET("/groups/:slug/posts", feedController.GetGroupFeed)
		public.GET("/profiles/:username", feedController.GetProfile)
		public.GET("/posts/:id", postController.GetPost)
		public.GET("/posts/:id/comments", commentController.ListComments)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/feed/followed", feedController.GetFollowedFeed)

		authenticated.POST("/posts", postController.CreatePost)
		authenticated.PUT("/posts/:id", postController.UpdatePost)
		authenticated.DELETE("/posts/:id", postController.DeletePost)
		authenticated.POST("/posts/:id/comments", commentController.AddComment)

		authenticated.POST("/groups", groupController.CreateGroup)
		authenticated.PUT("/groups/:slug", groupController.UpdateGroup)
		authenticated.DELETE("/groups/:slug", groupController.DeleteGroup)

		authenticated.POST("/profiles/:username/follow", followController.FollowAuthor)
		authenticated.DELETE("/profiles/:username/follow", followController.UnfollowAuthor)
	}
}
