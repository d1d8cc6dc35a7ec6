package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/emre/postova/internal/app/models/dto"
	"github.com/emre/postova/internal/app/services"
	"github.com/emre/postova/internal/middleware"
	"github.com/emre/postova/internal/pkg/cache"
	"github.com/emre/postova/internal/pkg/pagination"
)

// FeedController serves the read-only post feeds
type FeedController struct {
	feedService services.FeedService
	pageCache   cache.PageCache
	cacheTTL    time.Duration
}

// NewFeedController creates a new FeedController
func NewFeedController(feedService services.FeedService, pageCache cache.PageCache, cacheTTL time.Duration) *FeedController {
	return &FeedController{
		feedService: feedService,
		pageCache:   pageCache,
		cacheTTL:    cacheTTL,
	}
}

// GetGlobalFeed handles the global feed
// @Summary Global feed
// @Description Returns all posts, newest first, one page at a time. The first page is served from a short-TTL cache, so very recent posts may take a few seconds to appear there.
// @Tags feed
// @Produce json
// @Param page query int false "Page number (1-based)" default(1)
// @Success 200 {object} dto.APIResponse{data=dto.FeedResponse} "Feed page retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /feed [get]
func (c *FeedController) GetGlobalFeed(ctx *gin.Context) {
	page := pagination.ParsePage(ctx.Query("page"))

	// Only the first page goes through the cache; deeper pages are rare
	// enough to always hit the database.
	if page == 1 && c.pageCache != nil {
		payload, err := c.pageCache.GetOrCompute(ctx, cache.GlobalFeedKey, c.cacheTTL, func(cctx context.Context) ([]byte, error) {
			response, err := c.feedService.ListAll(cctx, 1)
			if err != nil {
				return nil, err
			}
			return json.Marshal(dto.NewSuccessResponse(response))
		})
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.Data(http.StatusOK, "application/json; charset=utf-8", payload)
		return
	}

	response, err := c.feedService.ListAll(ctx, page)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// GetGroupFeed handles a single group's feed
// @Summary Group feed
// @Description Returns the group header plus one page of its posts, newest first
// @Tags feed
// @Produce json
// @Param slug path string true "Group slug"
// @Param page query int false "Page number (1-based)" default(1)
// @Success 200 {object} dto.APIResponse{data=dto.GroupFeedResponse} "Group feed retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /groups/{slug}/posts [get]
func (c *FeedController) GetGroupFeed(ctx *gin.Context) {
	slug := ctx.Param("slug")
	page := pagination.ParsePage(ctx.Query("page"))

	response, err := c.feedService.ListByGroup(ctx, slug, page)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// GetProfile handles an author's profile feed
// @Summary Author profile
// @Description Returns the author's profile, total post count, whether the signed-in viewer follows them, and one page of their posts
// @Tags feed
// @Produce json
// @Param username path string true "Author username"
// @Param page query int false "Page number (1-based)" default(1)
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse} "Profile retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /profiles/{username} [get]
func (c *FeedController) GetProfile(ctx *gin.Context) {
	username := ctx.Param("username")
	page := pagination.ParsePage(ctx.Query("page"))
	viewerID := middleware.ViewerID(ctx)

	response, err := c.feedService.ListByAuthor(ctx, username, viewerID, page)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// GetFollowedFeed handles the personalised feed of followed authors
// @Summary Followed feed
// @Description Returns one page of posts by the authors the signed-in user follows, newest first. Empty when the user follows no one.
// @Tags feed
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)" default(1)
// @Success 200 {object} dto.APIResponse{data=dto.FeedResponse} "Feed page retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /feed/followed [get]
func (c *FeedController) GetFollowedFeed(ctx *gin.Context) {
	page := pagination.ParsePage(ctx.Query("page"))
	viewerID := middleware.ViewerID(ctx)

	response, err := c.feedService.ListFollowed(ctx, viewerID, page)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}
