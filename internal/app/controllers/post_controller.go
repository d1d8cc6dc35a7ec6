package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emre/postova/internal/app/models/dto"
	"github.com/emre/postova/internal/app/services"
	"github.com/emre/postova/internal/middleware"
)

// PostController handles post write operations and post detail
type PostController struct {
	postService services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService services.PostService) *PostController {
	return &PostController{postService: postService}
}

func parsePostID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid post ID")
		errorDetail = errorDetail.WithDetails("Post ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// CreatePost handles creating a new post
// @Summary Create a post
// @Description Creates a post authored by the signed-in user, with an optional group and an optional image
// @Tags posts
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param text formData string true "Post text"
// @Param groupId formData int false "Group ID"
// @Param image formData file false "Image attachment"
// @Success 201 {object} dto.APIResponse{data=dto.PostResponse} "Post created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /posts [post]
func (c *PostController) CreatePost(ctx *gin.Context) {
	var req dto.CreatePostRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())))
		return
	}

	image, fileErr := ctx.FormFile("image")
	if fileErr != nil && fileErr != http.ErrMissingFile {
		image = nil
	}

	response, err := c.postService.Create(ctx, middleware.ViewerID(ctx), &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(response))
}

// GetPost handles retrieving a single post with its comments
// @Summary Get post detail
// @Description Returns a post with its author, group, comments and the author's total post count
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} dto.APIResponse{data=dto.PostDetailResponse} "Post retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid post ID"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /posts/{id} [get]
func (c *PostController) GetPost(ctx *gin.Context) {
	id, ok := parsePostID(ctx)
	if !ok {
		return
	}

	response, err := c.postService.Get(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// UpdatePost handles editing a post
// @Summary Update a post
// @Description Updates a post's text, group or image. Only the author may edit; the publication date never changes.
// @Tags posts
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param text formData string true "Post text"
// @Param groupId formData int false "Group ID"
// @Param image formData file false "Image attachment"
// @Success 200 {object} dto.APIResponse{data=dto.PostResponse} "Post updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 403 {object} dto.ErrorResponse "Only the author may edit a post"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /posts/{id} [put]
func (c *PostController) UpdatePost(ctx *gin.Context) {
	id, ok := parsePostID(ctx)
	if !ok {
		return
	}

	var req dto.UpdatePostRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())))
		return
	}

	image, fileErr := ctx.FormFile("image")
	if fileErr != nil && fileErr != http.ErrMissingFile {
		image = nil
	}

	response, err := c.postService.Update(ctx, middleware.ViewerID(ctx), id, &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// DeletePost handles deleting a post
// @Summary Delete a post
// @Description Deletes a post and its comments. Only the author may delete.
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} dto.APIResponse "Post deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid post ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 403 {object} dto.ErrorResponse "Only the author may delete a post"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /posts/{id} [delete]
func (c *PostController) DeletePost(ctx *gin.Context) {
	id, ok := parsePostID(ctx)
	if !ok {
		return
	}

	if err := c.postService.Delete(ctx, middleware.ViewerID(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"deleted": true}))
}
