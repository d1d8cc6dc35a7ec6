package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/postova/internal/app/models/dto"
	"github.com/emre/postova/internal/app/services"
	"github.com/emre/postova/internal/middleware"
)

// FollowController handles following and unfollowing authors
type FollowController struct {
	followService services.FollowService
}

// NewFollowController creates a new FollowController
func NewFollowController(followService services.FollowService) *FollowController {
	return &FollowController{followService: followService}
}

// FollowAuthor handles following an author
// @Summary Follow an author
// @Description Subscribes the signed-in user to an author's posts. Following an already-followed author or yourself changes nothing.
// @Tags follows
// @Produce json
// @Security BearerAuth
// @Param username path string true "Author username"
// @Success 200 {object} dto.APIResponse "Following the author"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /profiles/{username}/follow [post]
func (c *FollowController) FollowAuthor(ctx *gin.Context) {
	username := ctx.Param("username")

	if err := c.followService.Follow(ctx, middleware.ViewerID(ctx), username); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"following": true}))
}

// UnfollowAuthor handles unfollowing an author
// @Summary Unfollow an author
// @Description Removes the signed-in user's subscription to an author. Unfollowing an author you do not follow changes nothing.
// @Tags follows
// @Produce json
// @Security BearerAuth
// @Param username path string true "Author username"
// @Success 200 {object} dto.APIResponse "No longer following the author"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /profiles/{username}/follow [delete]
func (c *FollowController) UnfollowAuthor(ctx *gin.Context) {
	username := ctx.Param("username")

	if err := c.followService.Unfollow(ctx, middleware.ViewerID(ctx), username); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"following": false}))
}
