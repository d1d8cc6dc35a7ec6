package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/postova/internal/app/models/dto"
	"github.com/emre/postova/internal/app/services"
	"github.com/emre/postova/internal/middleware"
)

// CommentController handles comments on posts
type CommentController struct {
	commentService services.CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// AddComment handles adding a comment to a post
// @Summary Add a comment
// @Description Adds a comment by the signed-in user to an existing post
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body dto.CreateCommentRequest true "Comment text"
// @Success 201 {object} dto.APIResponse{data=dto.CommentResponse} "Comment added successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /posts/{id}/comments [post]
func (c *CommentController) AddComment(ctx *gin.Context) {
	postID, ok := parsePostID(ctx)
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())))
		return
	}

	response, err := c.commentService.Add(ctx, middleware.ViewerID(ctx), postID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(response))
}

// ListComments handles listing a post's comments
// @Summary List comments
// @Description Returns all comments of a post, oldest first
// @Tags comments
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.CommentResponse} "Comments retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid post ID"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /posts/{id}/comments [get]
func (c *CommentController) ListComments(ctx *gin.Context) {
	postID, ok := parsePostID(ctx)
	if !ok {
		return
	}

	response, err := c.commentService.ListByPost(ctx, postID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}
