package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillshare/skillshare-api/internal/api/metrics"
	"github.com/skillshare/skillshare-api/internal/core/domain"
	"github.com/skillshare/skillshare-api/internal/core/ports"
	"github.com/skillshare/skillshare-api/internal/core/service"
)

// SkillHandler handles HTTP requests for skill operations.
type SkillHandler struct {
	service ports.SkillService
}

func NewSkillHandler(service ports.SkillService) *SkillHandler {
	return &SkillHandler{service: service}
}

// List handles GET /skill/get.
//
// @Summary      List role-appropriate skills
// @Tags         skills
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listSkillsResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /skill/get [get]
func (h *SkillHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	skills, err := h.service.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	resp := listSkillsResponse{Skills: make([]skillResponse, 0, len(skills))}
	for _, s := range skills {
		resp.Skills = append(resp.Skills, toSkillResponse(s))
	}
	return c.JSON(http.StatusOK, resp)
}

// Create handles POST /skill/create.
//
// @Summary      Create a skill listing
// @Tags         skills
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      skillRequest  true  "Skill details"
// @Success      201   {object}  skillResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /skill/create [post]
func (h *SkillHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req skillRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	skill, err := h.service.Create(c.Request().Context(), actor, ports.SkillInput{
		Category:     req.Category,
		Experience:   req.Experience,
		NatureOfWork: req.NatureOfWork,
		HourlyRate:   req.HourlyRate,
	})
	if err != nil {
		if errors.Is(err, service.ErrDuplicateSubmission) {
			return c.JSON(http.StatusConflict, errorResponse{Error: "duplicate submission"})
		}
		return err
	}

	metrics.SkillMutationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, toSkillResponse(skill))
}

// Update handles PUT /skill/update.
//
// @Summary      Update a skill listing
// @Tags         skills
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      skillRequest  true  "Skill details (id required)"
// @Success      200   {object}  skillResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /skill/update [put]
func (h *SkillHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req skillRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if req.ID == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "id is required"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	skill, err := h.service.Update(c.Request().Context(), actor, ports.SkillInput{
		ID:           req.ID,
		Category:     req.Category,
		Experience:   req.Experience,
		NatureOfWork: req.NatureOfWork,
		HourlyRate:   req.HourlyRate,
	})
	if err != nil {
		return err
	}

	metrics.SkillMutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, toSkillResponse(skill))
}

// Delete handles DELETE /skill/delete/:id.
//
// @Summary      Delete a skill listing
// @Tags         skills
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Skill id"
// @Success      204  "no content"
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /skill/delete/{id} [delete]
func (h *SkillHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}

	metrics.SkillMutationsTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// PostOffer handles PATCH /skill/postoffer/:id.
//
// @Summary      Advance a skill's offer status
// @Tags         skills
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true   "Skill id"
// @Param        body  body      postOfferRequest  false  "Target status (optional)"
// @Success      200   {object}  skillResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /skill/postoffer/{id} [patch]
func (h *SkillHandler) PostOffer(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	// Body is optional: an empty body means "advance to the next state".
	var req postOfferRequest
	if err := c.Bind(&req); err != nil {
		req = postOfferRequest{}
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	skill, err := h.service.PostOffer(c.Request().Context(), actor, c.Param("id"), domain.SkillStatus(req.Status))
	if err != nil {
		return err
	}

	metrics.OfferTransitionsTotal.WithLabelValues(string(skill.Status)).Inc()
	return c.JSON(http.StatusOK, toSkillResponse(skill))
}
