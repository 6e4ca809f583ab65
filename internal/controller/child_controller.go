package controller

import (
	"kidquest_backend/internal/service"
	"kidquest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ChildController struct {
	ChildService *service.ChildService
}

func NewChildController(childService *service.ChildService) *ChildController {
	return &ChildController{ChildService: childService}
}

// List godoc
// @Summary List child profiles
// @Description Lists the authenticated parent's child profiles
// @Tags children
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.ChildProfile} "Success"
// @Router /api/children [get]
func (c *ChildController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	profiles, err := c.ChildService.ListByParent(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, profiles)
}

// Create godoc
// @Summary Create child profile
// @Tags children
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.ChildProfileRequest true "Profile data"
// @Success 201 {object} util.Response{data=model.ChildProfile} "Created"
// @Failure 400 {object} util.Response "Unknown age group"
// @Router /api/children [post]
func (c *ChildController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ChildProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	profile, err := c.ChildService.Create(claims.UserID, req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Created(ctx, profile)
}

// Update godoc
// @Summary Update child profile
// @Tags children
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Child profile ID"
// @Param   body body service.ChildProfileRequest true "Profile data"
// @Success 200 {object} util.Response{data=model.ChildProfile} "Success"
// @Failure 404 {object} util.Response "Child profile not found"
// @Router /api/children/{id} [put]
func (c *ChildController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ChildProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	profile, err := c.ChildService.Update(claims, util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}

// Delete godoc
// @Summary Delete child profile
// @Tags children
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Child profile ID"
// @Success 200 {object} util.Response "Success"
// @Failure 404 {object} util.Response "Child profile not found"
// @Router /api/children/{id} [delete]
func (c *ChildController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.ChildService.Delete(claims, util.MustParseUint(ctx.Param("id"))); err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
