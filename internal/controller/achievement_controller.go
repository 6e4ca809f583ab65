package controller

import (
	"kidquest_backend/internal/service"
	"kidquest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AchievementController struct {
	AchievementService *service.AchievementService
	ChildService       *service.ChildService
	StorageService     *service.StorageService
}

func NewAchievementController(
	achievementService *service.AchievementService,
	childService *service.ChildService,
	storageService *service.StorageService,
) *AchievementController {
	return &AchievementController{
		AchievementService: achievementService,
		ChildService:       childService,
		StorageService:     storageService,
	}
}

// ChildBadges godoc
// @Summary Child badge wall
// @Description Achievement metrics of a child plus every active badge with
// @Description earned state and progress toward its threshold.
// @Tags achievements
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Child profile ID"
// @Success 200 {object} util.Response{data=service.ChildBadgesResponse} "Success"
// @Failure 404 {object} util.Response "Child profile not found"
// @Router /api/children/{id}/badges [get]
func (c *AchievementController) ChildBadges(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	childProfileID := util.MustParseUint(ctx.Param("id"))
	if _, err := c.ChildService.EnsureOwnership(claims, childProfileID); err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	resp, err := c.AchievementService.ChildBadges(childProfileID)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, resp)
}

// ListBadges godoc
// @Summary List badge definitions
// @Tags admin-badges
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Badge} "Success"
// @Router /api/admin/badges [get]
func (c *AchievementController) ListBadges(ctx *gin.Context) {
	badges, err := c.AchievementService.ListBadges()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, badges)
}

// CreateBadge godoc
// @Summary Create badge
// @Tags admin-badges
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.BadgeRequest true "Badge data"
// @Success 201 {object} util.Response{data=model.Badge} "Created"
// @Router /api/admin/badges [post]
func (c *AchievementController) CreateBadge(ctx *gin.Context) {
	var req service.BadgeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	badge, err := c.AchievementService.CreateBadge(req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Created(ctx, badge)
}

// UpdateBadge godoc
// @Summary Update badge
// @Tags admin-badges
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Badge ID"
// @Param   body body service.BadgeRequest true "Badge data"
// @Success 200 {object} util.Response{data=model.Badge} "Success"
// @Router /api/admin/badges/{id} [put]
func (c *AchievementController) UpdateBadge(ctx *gin.Context) {
	var req service.BadgeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	badge, err := c.AchievementService.UpdateBadge(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, badge)
}

// DeleteBadge godoc
// @Summary Delete badge
// @Tags admin-badges
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Badge ID"
// @Success 200 {object} util.Response "Success"
// @Router /api/admin/badges/{id} [delete]
func (c *AchievementController) DeleteBadge(ctx *gin.Context) {
	if err := c.AchievementService.DeleteBadge(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// UploadBadgeIcon godoc
// @Summary Upload badge icon
// @Tags admin-badges
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   file formData file true "Icon image"
// @Success 200 {object} util.Response{data=object} "Success"
// @Failure 400 {object} util.Response "Unsupported image format"
// @Router /api/admin/badges/icon/upload [post]
func (c *AchievementController) UploadBadgeIcon(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	url, err := c.StorageService.UploadImage(ctx.Request.Context(), "badges", header)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"url": url})
}
