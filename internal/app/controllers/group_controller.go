package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/postova/internal/app/models/dto"
	"github.com/emre/postova/internal/app/services"
	"github.com/emre/postova/internal/middleware"
)

// GroupController handles group management
type GroupController struct {
	groupService services.GroupService
}

// NewGroupController creates a new GroupController
func NewGroupController(groupService services.GroupService) *GroupController {
	return &GroupController{groupService: groupService}
}

// CreateGroup handles creating a new group
// @Summary Create a group
// @Description Creates a group with a unique slug
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateGroupRequest true "Group details"
// @Success 201 {object} dto.APIResponse{data=dto.GroupResponse} "Group created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 409 {object} dto.ErrorResponse "Group slug already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /groups [post]
func (c *GroupController) CreateGroup(ctx *gin.Context) {
	var req dto.CreateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())))
		return
	}

	response, err := c.groupService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(response))
}

// GetAllGroups handles listing all groups
// @Summary List groups
// @Description Returns all groups ordered by title
// @Tags groups
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.GroupResponse} "Groups retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /groups [get]
func (c *GroupController) GetAllGroups(ctx *gin.Context) {
	response, err := c.groupService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// GetGroup handles retrieving a group by slug
// @Summary Get group
// @Description Returns a single group by its slug
// @Tags groups
// @Produce json
// @Param slug path string true "Group slug"
// @Success 200 {object} dto.APIResponse{data=dto.GroupResponse} "Group retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /groups/{slug} [get]
func (c *GroupController) GetGroup(ctx *gin.Context) {
	response, err := c.groupService.GetBySlug(ctx, ctx.Param("slug"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// UpdateGroup handles updating a group
// @Summary Update a group
// @Description Updates a group's title and description. The slug is immutable.
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Group slug"
// @Param request body dto.UpdateGroupRequest true "Updated group details"
// @Success 200 {object} dto.APIResponse{data=dto.GroupResponse} "Group updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /groups/{slug} [put]
func (c *GroupController) UpdateGroup(ctx *gin.Context) {
	var req dto.UpdateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())))
		return
	}

	group, err := c.groupService.GetBySlug(ctx, ctx.Param("slug"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	response, err := c.groupService.Update(ctx, group.ID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// DeleteGroup handles deleting a group
// @Summary Delete a group
// @Description Deletes a group. Its posts survive and become ungrouped.
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Group slug"
// @Success 200 {object} dto.APIResponse "Group deleted successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /groups/{slug} [delete]
func (c *GroupController) DeleteGroup(ctx *gin.Context) {
	group, err := c.groupService.GetBySlug(ctx, ctx.Param("slug"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.groupService.Delete(ctx, group.ID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"deleted": true}))
}
