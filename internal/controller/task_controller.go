package controller

import (
	"kidquest_backend/internal/service"
	"kidquest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TaskController struct {
	TaskService *service.TaskService
}

func NewTaskController(taskService *service.TaskService) *TaskController {
	return &TaskController{TaskService: taskService}
}

// ListTasks godoc
// @Summary List tasks of a game
// @Description Tasks filtered by level; levelId=0 or absent lists tasks with
// @Description no level binding.
// @Tags admin-tasks
// @Produce  json
// @Security ApiKeyAuth
// @Param   gameId query int true "Game ID"
// @Param   levelId query int false "Level ID"
// @Success 200 {object} util.Response{data=[]model.Task} "Success"
// @Router /api/admin/tasks [get]
func (c *TaskController) ListTasks(ctx *gin.Context) {
	var levelID *uint
	if id := util.MustParseUint(ctx.Query("levelId")); id > 0 {
		levelID = &id
	}

	tasks, err := c.TaskService.ListTasks(util.MustParseUint(ctx.Query("gameId")), levelID)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, tasks)
}

// CreateTask godoc
// @Summary Create task
// @Description A referenced level must belong to the task's game.
// @Tags admin-tasks
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.TaskRequest true "Task data"
// @Success 201 {object} util.Response{data=model.Task} "Created"
// @Failure 400 {object} util.Response "Level does not belong to this game"
// @Router /api/admin/tasks [post]
func (c *TaskController) CreateTask(ctx *gin.Context) {
	var req service.TaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	task, err := c.TaskService.CreateTask(req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Created(ctx, task)
}

// UpdateTask godoc
// @Summary Update task
// @Tags admin-tasks
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Task ID"
// @Param   body body service.TaskRequest true "Task data"
// @Success 200 {object} util.Response{data=model.Task} "Success"
// @Router /api/admin/tasks/{id} [put]
func (c *TaskController) UpdateTask(ctx *gin.Context) {
	var req service.TaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	task, err := c.TaskService.UpdateTask(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, task)
}

// DeleteTask godoc
// @Summary Delete task
// @Tags admin-tasks
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Task ID"
// @Success 200 {object} util.Response "Success"
// @Router /api/admin/tasks/{id} [delete]
func (c *TaskController) DeleteTask(ctx *gin.Context) {
	if err := c.TaskService.DeleteTask(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// ListVersions godoc
// @Summary List task versions
// @Tags admin-tasks
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Task ID"
// @Success 200 {object} util.Response{data=[]model.TaskVersion} "Success"
// @Router /api/admin/tasks/{id}/versions [get]
func (c *TaskController) ListVersions(ctx *gin.Context) {
	versions, err := c.TaskService.ListVersions(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, versions)
}

// CreateVersion godoc
// @Summary Create task version
// @Description Appends a revision; makeCurrent promotes it immediately.
// @Tags admin-tasks
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Task ID"
// @Param   body body service.TaskVersionRequest true "Version content"
// @Success 201 {object} util.Response{data=model.TaskVersion} "Created"
// @Failure 400 {object} util.Response "Invalid JSON payload"
// @Router /api/admin/tasks/{id}/versions [post]
func (c *TaskController) CreateVersion(ctx *gin.Context) {
	var req service.TaskVersionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	version, err := c.TaskService.CreateVersion(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Created(ctx, version)
}

// SetCurrentVersion godoc
// @Summary Promote a task version
// @Description Makes the version current for its (task, difficulty) pair.
// @Tags admin-tasks
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Task ID"
// @Param   versionId path int true "Version ID"
// @Success 200 {object} util.Response{data=model.TaskVersion} "Success"
// @Failure 404 {object} util.Response "Task version not found"
// @Router /api/admin/tasks/{id}/versions/{versionId}/current [put]
func (c *TaskController) SetCurrentVersion(ctx *gin.Context) {
	version, err := c.TaskService.SetCurrentVersion(
		util.MustParseUint(ctx.Param("id")),
		util.MustParseUint(ctx.Param("versionId")),
	)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, version)
}
