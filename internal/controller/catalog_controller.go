package controller

import (
	"kidquest_backend/internal/service"
	"kidquest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	CatalogService *service.CatalogService
}

func NewCatalogController(catalogService *service.CatalogService) *CatalogController {
	return &CatalogController{CatalogService: catalogService}
}

// ListAgeGroups godoc
// @Summary List age groups
// @Tags catalog
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.AgeGroup} "Success"
// @Router /api/catalog/age-groups [get]
func (c *CatalogController) ListAgeGroups(ctx *gin.Context) {
	groups, err := c.CatalogService.ListAgeGroups()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, groups)
}

// ListModules godoc
// @Summary List learning modules
// @Description Active modules, optionally filtered by age group
// @Tags catalog
// @Produce  json
// @Security ApiKeyAuth
// @Param   ageGroupId query int false "Age group filter"
// @Success 200 {object} util.Response{data=[]model.LearningModule} "Success"
// @Router /api/catalog/modules [get]
func (c *CatalogController) ListModules(ctx *gin.Context) {
	modules, err := c.CatalogService.ListModules(util.MustParseUint(ctx.Query("ageGroupId")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, modules)
}

// ListGames godoc
// @Summary List games of a module
// @Tags catalog
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Module ID"
// @Success 200 {object} util.Response{data=[]model.Game} "Success"
// @Failure 404 {object} util.Response "Module not found"
// @Router /api/catalog/modules/{id}/games [get]
func (c *CatalogController) ListGames(ctx *gin.Context) {
	games, err := c.CatalogService.ListGamesByModule(ctx.Request.Context(), util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, games)
}

// CreateAgeGroup godoc
// @Summary Create age group
// @Tags admin-catalog
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.AgeGroupRequest true "Age group data"
// @Success 201 {object} util.Response{data=model.AgeGroup} "Created"
// @Router /api/admin/age-groups [post]
func (c *CatalogController) CreateAgeGroup(ctx *gin.Context) {
	var req service.AgeGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	group, err := c.CatalogService.CreateAgeGroup(req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Created(ctx, group)
}

// UpdateAgeGroup godoc
// @Summary Update age group
// @Tags admin-catalog
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Age group ID"
// @Param   body body service.AgeGroupRequest true "Age group data"
// @Success 200 {object} util.Response{data=model.AgeGroup} "Success"
// @Router /api/admin/age-groups/{id} [put]
func (c *CatalogController) UpdateAgeGroup(ctx *gin.Context) {
	var req service.AgeGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	group, err := c.CatalogService.UpdateAgeGroup(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, group)
}

// DeleteAgeGroup godoc
// @Summary Delete age group
// @Tags admin-catalog
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Age group ID"
// @Success 200 {object} util.Response "Success"
// @Router /api/admin/age-groups/{id} [delete]
func (c *CatalogController) DeleteAgeGroup(ctx *gin.Context) {
	if err := c.CatalogService.DeleteAgeGroup(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// CreateModule godoc
// @Summary Create learning module
// @Tags admin-catalog
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.LearningModuleRequest true "Module data"
// @Success 201 {object} util.Response{data=model.LearningModule} "Created"
// @Router /api/admin/modules [post]
func (c *CatalogController) CreateModule(ctx *gin.Context) {
	var req service.LearningModuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	module, err := c.CatalogService.CreateModule(req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Created(ctx, module)
}

// UpdateModule godoc
// @Summary Update learning module
// @Tags admin-catalog
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Module ID"
// @Param   body body service.LearningModuleRequest true "Module data"
// @Success 200 {object} util.Response{data=model.LearningModule} "Success"
// @Router /api/admin/modules/{id} [put]
func (c *CatalogController) UpdateModule(ctx *gin.Context) {
	var req service.LearningModuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	module, err := c.CatalogService.UpdateModule(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, module)
}

// DeleteModule godoc
// @Summary Delete learning module
// @Tags admin-catalog
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Module ID"
// @Success 200 {object} util.Response "Success"
// @Router /api/admin/modules/{id} [delete]
func (c *CatalogController) DeleteModule(ctx *gin.Context) {
	if err := c.CatalogService.DeleteModule(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
