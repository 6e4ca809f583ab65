package controller

import (
	"errors"

	"kidquest_backend/internal/service"
	"kidquest_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AttemptController struct {
	AttemptService *service.AttemptService
	ChildService   *service.ChildService
}

func NewAttemptController(attemptService *service.AttemptService, childService *service.ChildService) *AttemptController {
	return &AttemptController{AttemptService: attemptService, ChildService: childService}
}

// Start godoc
// @Summary Start an attempt
// @Description Opens an attempt on a game level and returns its first task.
// @Description The level may be given by number or id; omitting both picks the
// @Description lowest active level of the difficulty.
// @Tags attempts
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.StartAttemptRequest true "Attempt parameters"
// @Success 201 {object} util.Response{data=service.StartAttemptResponse} "Created"
// @Failure 400 {object} util.Response "Invalid parameters"
// @Failure 404 {object} util.Response "Game, level or tasks not found"
// @Failure 409 {object} util.Response "Level is locked"
// @Router /api/attempts/start [post]
func (c *AttemptController) Start(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.StartAttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if req.ChildProfileID > 0 {
		if _, err := c.ChildService.EnsureOwnership(claims, req.ChildProfileID); err != nil {
			util.HandleServiceError(ctx, err)
			return
		}
	}

	resp, err := c.AttemptService.Start(req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Created(ctx, resp)
}

// Answer godoc
// @Summary Submit an answer
// @Description Judges the submission and returns either the next task or the
// @Description finished summary.
// @Tags attempts
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Attempt ID"
// @Param   body body service.AnswerRequest true "Submitted answer"
// @Success 200 {object} util.Response{data=service.AnswerResponse} "Success"
// @Failure 404 {object} util.Response "Attempt or task version not found"
// @Failure 409 {object} util.Response "Attempt is already finished"
// @Router /api/attempts/{id}/answer [post]
func (c *AttemptController) Answer(ctx *gin.Context) {
	attemptID, ok := c.ownedAttempt(ctx)
	if !ok {
		return
	}

	var req service.AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resp, err := c.AttemptService.Answer(attemptID, req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, resp)
}

// Finish godoc
// @Summary Finish an attempt
// @Description Finalizes the attempt; repeating the call returns the stored
// @Description summary unchanged.
// @Tags attempts
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Attempt ID"
// @Param   body body service.FinishRequest true "Duration"
// @Success 200 {object} util.Response{data=service.FinishResponse} "Success"
// @Failure 404 {object} util.Response "Attempt not found"
// @Router /api/attempts/{id}/finish [post]
func (c *AttemptController) Finish(ctx *gin.Context) {
	attemptID, ok := c.ownedAttempt(ctx)
	if !ok {
		return
	}

	var req service.FinishRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resp, err := c.AttemptService.Finish(attemptID, req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, resp)
}

// ownedAttempt resolves the path attempt and verifies the caller's account
// owns the child profile it belongs to. Writes the error response itself.
func (c *AttemptController) ownedAttempt(ctx *gin.Context) (uint, bool) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return 0, false
	}

	attemptID := util.MustParseUint(ctx.Param("id"))
	if attemptID == 0 {
		util.BadRequest(ctx, "attemptId is required")
		return 0, false
	}

	attempt, err := c.AttemptService.AttemptRepo.FindByID(attemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(ctx, 404, "attempt not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return 0, false
	}

	if _, err := c.ChildService.EnsureOwnership(claims, attempt.ChildProfileID); err != nil {
		util.HandleServiceError(ctx, err)
		return 0, false
	}
	return attemptID, true
}
