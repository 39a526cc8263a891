package handlers

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/deal-desk/internal/engine"
	domain "github.com/donaldgifford/deal-desk/pkg/types"
)

// FeedbackHandler records and lists lead responses to shared listings.
type FeedbackHandler struct {
	engine   *engine.Engine
	validate *Validator
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(eng *engine.Engine, v *Validator) *FeedbackHandler {
	return &FeedbackHandler{engine: eng, validate: v}
}

// Set handles PUT /api/v1/feedback. A new status for the same lead and
// listing replaces the previous one.
//
// @Summary Set match feedback
// @Tags feedback
// @Accept json
// @Produce json
// @Param feedback body domain.MatchFeedback true "Feedback to record"
// @Success 200 {object} domain.FeedbackView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/feedback [put]
func (h *FeedbackHandler) Set(c echo.Context) error {
	var f domain.MatchFeedback
	if err := c.Bind(&f); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request body: "+err.Error())
	}

	if err := h.validate.Validate(&f); err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	view, err := h.engine.RecordFeedback(c.Request().Context(), &f)
	if isForeignKeyViolation(err) {
		return errorJSON(c, http.StatusNotFound, "lead or listing not found")
	}
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "recording feedback: "+err.Error())
	}

	return c.JSON(http.StatusOK, view)
}

// List handles GET /api/v1/feedback.
//
// @Summary List match feedback
// @Description Returns feedback with its effective status. Pending feedback older than the ignored threshold is reported as Ignored.
// @Tags feedback
// @Produce json
// @Param lead_id query string false "Restrict to one lead"
// @Param ignored query string false "Only ignored feedback" Enums(true, false)
// @Success 200 {array} domain.FeedbackView
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/feedback [get]
func (h *FeedbackHandler) List(c echo.Context) error {
	ignoredOnly := c.QueryParam("ignored") == "true"

	views, err := h.engine.ListFeedback(c.Request().Context(), c.QueryParam("lead_id"), ignoredOnly)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "listing feedback: "+err.Error())
	}

	if views == nil {
		views = []domain.FeedbackView{}
	}

	return c.JSON(http.StatusOK, views)
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
