package controller

import (
	"strconv"

	"kidquest_backend/internal/service"
	"kidquest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GameController struct {
	GameService     *service.GameService
	ProgressService *service.ProgressService
	ChildService    *service.ChildService
	StorageService  *service.StorageService
}

func NewGameController(
	gameService *service.GameService,
	progressService *service.ProgressService,
	childService *service.ChildService,
	storageService *service.StorageService,
) *GameController {
	return &GameController{
		GameService:     gameService,
		ProgressService: progressService,
		ChildService:    childService,
		StorageService:  storageService,
	}
}

// ListLevels godoc
// @Summary List a game's levels
// @Description Levels of one difficulty with locked/unlocked/completed states.
// @Description With childProfileId the states reflect that child's progress.
// @Tags games
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Game ID"
// @Param   difficulty query int true "Difficulty"
// @Param   childProfileId query int false "Child profile ID"
// @Success 200 {object} util.Response{data=service.GameLevelsResponse} "Success"
// @Failure 400 {object} util.Response "Invalid difficulty"
// @Failure 404 {object} util.Response "Game not found"
// @Router /api/games/{id}/levels [get]
func (c *GameController) ListLevels(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	difficulty, _ := strconv.Atoi(ctx.Query("difficulty"))
	childProfileID := util.MustParseUint(ctx.Query("childProfileId"))

	if childProfileID > 0 {
		if _, err := c.ChildService.EnsureOwnership(claims, childProfileID); err != nil {
			util.HandleServiceError(ctx, err)
			return
		}
	}

	resp, err := c.ProgressService.GameLevels(util.MustParseUint(ctx.Param("id")), difficulty, childProfileID)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, resp)
}

// GetGame godoc
// @Summary Get one game
// @Tags admin-games
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Game ID"
// @Success 200 {object} util.Response{data=model.Game} "Success"
// @Failure 404 {object} util.Response "Game not found"
// @Router /api/admin/games/{id} [get]
func (c *GameController) GetGame(ctx *gin.Context) {
	game, err := c.GameService.GetGame(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, game)
}

// CreateGame godoc
// @Summary Create game
// @Tags admin-games
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.GameRequest true "Game data"
// @Success 201 {object} util.Response{data=model.Game} "Created"
// @Failure 400 {object} util.Response "Unknown module"
// @Router /api/admin/games [post]
func (c *GameController) CreateGame(ctx *gin.Context) {
	var req service.GameRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	game, err := c.GameService.CreateGame(ctx.Request.Context(), req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Created(ctx, game)
}

// UpdateGame godoc
// @Summary Update game
// @Tags admin-games
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Game ID"
// @Param   body body service.GameRequest true "Game data"
// @Success 200 {object} util.Response{data=model.Game} "Success"
// @Router /api/admin/games/{id} [put]
func (c *GameController) UpdateGame(ctx *gin.Context) {
	var req service.GameRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	game, err := c.GameService.UpdateGame(ctx.Request.Context(), util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, game)
}

// DeleteGame godoc
// @Summary Delete game
// @Tags admin-games
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Game ID"
// @Success 200 {object} util.Response "Success"
// @Router /api/admin/games/{id} [delete]
func (c *GameController) DeleteGame(ctx *gin.Context) {
	if err := c.GameService.DeleteGame(ctx.Request.Context(), util.MustParseUint(ctx.Param("id"))); err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// UploadCover godoc
// @Summary Upload game cover image
// @Tags admin-games
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   file formData file true "Cover image"
// @Success 200 {object} util.Response{data=object} "Success"
// @Failure 400 {object} util.Response "Unsupported image format"
// @Router /api/admin/games/cover/upload [post]
func (c *GameController) UploadCover(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	url, err := c.StorageService.UploadImage(ctx.Request.Context(), "covers", header)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"url": url})
}

// CreateLevel godoc
// @Summary Create game level
// @Tags admin-games
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Game ID"
// @Param   body body service.GameLevelRequest true "Level data"
// @Success 201 {object} util.Response{data=model.GameLevel} "Created"
// @Failure 409 {object} util.Response "Level number already exists"
// @Router /api/admin/games/{id}/levels [post]
func (c *GameController) CreateLevel(ctx *gin.Context) {
	var req service.GameLevelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	level, err := c.GameService.CreateLevel(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Created(ctx, level)
}

// UpdateLevel godoc
// @Summary Update game level
// @Tags admin-games
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Level ID"
// @Param   body body service.GameLevelRequest true "Level data"
// @Success 200 {object} util.Response{data=model.GameLevel} "Success"
// @Router /api/admin/levels/{id} [put]
func (c *GameController) UpdateLevel(ctx *gin.Context) {
	var req service.GameLevelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	level, err := c.GameService.UpdateLevel(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, level)
}

// DeleteLevel godoc
// @Summary Delete game level
// @Tags admin-games
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Level ID"
// @Success 200 {object} util.Response "Success"
// @Router /api/admin/levels/{id} [delete]
func (c *GameController) DeleteLevel(ctx *gin.Context) {
	if err := c.GameService.DeleteLevel(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
