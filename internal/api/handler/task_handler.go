package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillshare/skillshare-api/internal/api/metrics"
	"github.com/skillshare/skillshare-api/internal/core/ports"
	"github.com/skillshare/skillshare-api/internal/core/service"
)

// TaskHandler handles HTTP requests for task operations.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// List handles GET /task/get.
//
// @Summary      List the caller's tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listTasksResponse
// @Failure      401  {object}  errorResponse
// @Router       /task/get [get]
func (h *TaskHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	tasks, err := h.service.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	resp := listTasksResponse{Tasks: make([]taskResponse, 0, len(tasks))}
	for _, t := range tasks {
		resp.Tasks = append(resp.Tasks, toTaskResponse(t))
	}
	return c.JSON(http.StatusOK, resp)
}

// Create handles POST /task/create.
//
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      taskRequest  true  "Task details"
// @Success      201   {object}  taskResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /task/create [post]
func (h *TaskHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	task, err := h.service.Create(c.Request().Context(), actor, ports.TaskInput{
		TaskName:             req.TaskName,
		Description:          req.Description,
		ExpectedStartDate:    req.ExpectedStartDate,
		ExpectedWorkingHours: req.ExpectedWorkingHours,
		HourlyRate:           req.HourlyRate,
		RateCurrency:         req.RateCurrency,
		Category:             req.Category,
		ProviderID:           req.ProviderID,
		SkillID:              req.SkillID,
	})
	if err != nil {
		if errors.Is(err, service.ErrDuplicateSubmission) {
			return c.JSON(http.StatusConflict, errorResponse{Error: "duplicate submission"})
		}
		return err
	}

	metrics.TaskMutationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, toTaskResponse(task))
}

// Update handles PUT /task/update.
//
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      taskRequest  true  "Task details (id required)"
// @Success      200   {object}  taskResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /task/update [put]
func (h *TaskHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if req.ID == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "id is required"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	task, err := h.service.Update(c.Request().Context(), actor, ports.TaskInput{
		ID:                   req.ID,
		TaskName:             req.TaskName,
		Description:          req.Description,
		ExpectedStartDate:    req.ExpectedStartDate,
		ExpectedWorkingHours: req.ExpectedWorkingHours,
		HourlyRate:           req.HourlyRate,
		RateCurrency:         req.RateCurrency,
		Category:             req.Category,
		ProviderID:           req.ProviderID,
		SkillID:              req.SkillID,
	})
	if err != nil {
		return err
	}

	metrics.TaskMutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// Delete handles DELETE /task/delete/:id.
//
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task id"
// @Success      204  "no content"
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /task/delete/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}

	metrics.TaskMutationsTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// ToggleComplete handles PATCH (and PUT) /task/mark_task_complete/:id.
//
// @Summary      Toggle a task's completion flag
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task id"
// @Success      200  {object}  toggleCompleteResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /task/mark_task_complete/{id} [patch]
func (h *TaskHandler) ToggleComplete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	completed, err := h.service.ToggleComplete(c.Request().Context(), actor, id)
	if err != nil {
		return err
	}

	metrics.TaskMutationsTotal.WithLabelValues("complete").Inc()
	return c.JSON(http.StatusOK, toggleCompleteResponse{ID: id, TaskCompleted: completed})
}
