package handlers

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/deal-desk/internal/engine"
	"github.com/donaldgifford/deal-desk/internal/store"
	domain "github.com/donaldgifford/deal-desk/pkg/types"
)

// InteractionHandler logs and lists outreach interactions.
type InteractionHandler struct {
	store    store.Store
	engine   *engine.Engine
	validate *Validator
}

// NewInteractionHandler creates a new InteractionHandler.
func NewInteractionHandler(s store.Store, eng *engine.Engine, v *Validator) *InteractionHandler {
	return &InteractionHandler{store: s, engine: eng, validate: v}
}

// Log handles POST /api/v1/interactions.
//
// @Summary Log an interaction
// @Description Appends an interaction, advances the entity's last contact date, increments its weekly touch count, and recomputes its priority score.
// @Tags interactions
// @Accept json
// @Produce json
// @Param interaction body domain.Interaction true "Interaction to log"
// @Success 201 {object} map[string]any
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/interactions [post]
func (h *InteractionHandler) Log(c echo.Context) error {
	var in domain.Interaction
	if err := c.Bind(&in); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request body: "+err.Error())
	}

	if err := h.validate.Validate(&in); err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	newScore, err := h.engine.LogInteraction(c.Request().Context(), &in)
	switch {
	case errors.Is(err, engine.ErrUnknownKind):
		return errorJSON(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, pgx.ErrNoRows):
		return errorJSON(c, http.StatusNotFound, string(in.EntityKind)+" not found")
	case err != nil:
		return errorJSON(c, http.StatusInternalServerError, "logging interaction: "+err.Error())
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"interaction":    in,
		"priority_score": newScore,
	})
}

// List handles GET /api/v1/interactions.
//
// @Summary List interactions
// @Description Returns the most recent interactions, optionally for a single entity.
// @Tags interactions
// @Produce json
// @Param entity_id query string false "Lead or listing UUID"
// @Param limit query int false "Maximum results (default 50)"
// @Success 200 {array} domain.Interaction
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/interactions [get]
func (h *InteractionHandler) List(c echo.Context) error {
	limit, ok := queryInt(c, "limit")
	if !ok {
		return errorJSON(c, http.StatusBadRequest, "invalid limit")
	}

	interactions, err := h.store.ListInteractions(c.Request().Context(), c.QueryParam("entity_id"), limit)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "listing interactions: "+err.Error())
	}

	if interactions == nil {
		interactions = []domain.Interaction{}
	}

	return c.JSON(http.StatusOK, interactions)
}
