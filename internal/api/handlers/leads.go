package handlers

import (
	"net/http"
	"slices"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/deal-desk/internal/engine"
	"github.com/donaldgifford/deal-desk/internal/store"
	"github.com/donaldgifford/deal-desk/pkg/contact"
	score "github.com/donaldgifford/deal-desk/pkg/scorer"
	domain "github.com/donaldgifford/deal-desk/pkg/types"
)

var leadStatuses = []domain.LeadStatus{
	domain.LeadActive,
	domain.LeadCold,
	domain.LeadDead,
	domain.LeadPaused,
}

// LeadHandler handles Lead CRUD operations.
type LeadHandler struct {
	store    store.Store
	engine   *engine.Engine
	validate *Validator
}

// NewLeadHandler creates a new LeadHandler.
func NewLeadHandler(s store.Store, eng *engine.Engine, v *Validator) *LeadHandler {
	return &LeadHandler{store: s, engine: eng, validate: v}
}

// List handles GET /api/v1/leads.
//
// @Summary List leads
// @Description Returns leads filtered by status, preferred industry, minimum spend, and a free-text search.
// @Tags leads
// @Produce json
// @Param status query string false "Lead status" Enums(Active, Cold, Dead, Paused)
// @Param industry query string false "Preferred industry"
// @Param min_spend query number false "Minimum max_budget"
// @Param q query string false "Search name, email, and notes"
// @Param limit query int false "Page size (default 50)"
// @Param offset query int false "Page offset"
// @Param order_by query string false "Sort field" Enums(priority, budget, date_added, name)
// @Success 200 {object} map[string]any
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/leads [get]
func (h *LeadHandler) List(c echo.Context) error {
	q := &store.LeadQuery{OrderBy: c.QueryParam("order_by")}

	if s := c.QueryParam("status"); s != "" {
		status := domain.LeadStatus(s)
		if !slices.Contains(leadStatuses, status) {
			return errorJSON(c, http.StatusBadRequest, "invalid status")
		}
		q.Status = &status
	}

	if s := c.QueryParam("industry"); s != "" {
		industry := domain.Industry(s)
		if !industry.IsValid() {
			return errorJSON(c, http.StatusBadRequest, "invalid industry")
		}
		q.Industry = &industry
	}

	minSpend, ok := queryFloat(c, "min_spend")
	if !ok {
		return errorJSON(c, http.StatusBadRequest, "invalid min_spend")
	}
	q.MinSpend = minSpend

	if s := strings.TrimSpace(c.QueryParam("q")); s != "" {
		q.Search = &s
	}

	if q.Limit, ok = queryInt(c, "limit"); !ok {
		return errorJSON(c, http.StatusBadRequest, "invalid limit")
	}
	if q.Offset, ok = queryInt(c, "offset"); !ok {
		return errorJSON(c, http.StatusBadRequest, "invalid offset")
	}

	leads, total, err := h.store.ListLeads(c.Request().Context(), q)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "listing leads: "+err.Error())
	}

	if leads == nil {
		leads = []domain.Lead{}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"leads":  leads,
		"total":  total,
		"limit":  q.Limit,
		"offset": q.Offset,
	})
}

// Get handles GET /api/v1/leads/:id.
//
// @Summary Get a lead by ID
// @Tags leads
// @Produce json
// @Param id path string true "Lead UUID"
// @Success 200 {object} domain.Lead
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/leads/{id} [get]
func (h *LeadHandler) Get(c echo.Context) error {
	l, err := h.store.GetLead(c.Request().Context(), c.Param("id"))
	if err != nil {
		return storeError(c, err, "lead not found", "getting lead")
	}

	return c.JSON(http.StatusOK, l)
}

// Create handles POST /api/v1/leads. Contact details are normalized and the
// initial priority score is computed before the lead is stored.
//
// @Summary Create a lead
// @Tags leads
// @Accept json
// @Produce json
// @Param lead body domain.Lead true "Lead to create"
// @Success 201 {object} domain.Lead
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/leads [post]
func (h *LeadHandler) Create(c echo.Context) error {
	var l domain.Lead
	if err := c.Bind(&l); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request body: "+err.Error())
	}

	normalizeLead(&l)
	if err := h.validate.Validate(&l); err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	l.ID = ""
	if l.DateAdded.IsZero() {
		l.DateAdded = h.engine.Now()
	}
	l.PriorityScore = h.engine.Score(score.FromLead(&l)).Total

	if err := h.store.CreateLead(c.Request().Context(), &l); err != nil {
		return errorJSON(c, http.StatusInternalServerError, "creating lead: "+err.Error())
	}

	return c.JSON(http.StatusCreated, l)
}

// Update handles PUT /api/v1/leads/:id. Outreach state (date added, last
// contact, weekly touches) is owned by the interaction log and is carried
// over from the stored lead.
//
// @Summary Update a lead
// @Tags leads
// @Accept json
// @Produce json
// @Param id path string true "Lead UUID"
// @Param lead body domain.Lead true "Updated lead"
// @Success 200 {object} domain.Lead
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/leads/{id} [put]
func (h *LeadHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()

	var l domain.Lead
	if err := c.Bind(&l); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request body: "+err.Error())
	}

	normalizeLead(&l)
	if err := h.validate.Validate(&l); err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	existing, err := h.store.GetLead(ctx, c.Param("id"))
	if err != nil {
		return storeError(c, err, "lead not found", "getting lead")
	}

	l.ID = existing.ID
	l.DateAdded = existing.DateAdded
	l.LastContactAt = existing.LastContactAt
	l.TouchCountWeek = existing.TouchCountWeek
	l.PriorityScore = h.engine.Score(score.FromLead(&l)).Total

	if err := h.store.UpdateLead(ctx, &l); err != nil {
		return storeError(c, err, "lead not found", "updating lead")
	}

	return c.JSON(http.StatusOK, l)
}

// Delete handles DELETE /api/v1/leads/:id.
//
// @Summary Delete a lead
// @Tags leads
// @Param id path string true "Lead UUID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/leads/{id} [delete]
func (h *LeadHandler) Delete(c echo.Context) error {
	if err := h.store.DeleteLead(c.Request().Context(), c.Param("id")); err != nil {
		return storeError(c, err, "lead not found", "deleting lead")
	}

	return c.NoContent(http.StatusNoContent)
}

func normalizeLead(l *domain.Lead) {
	l.Name = strings.TrimSpace(l.Name)
	l.Email = contact.NormalizeEmail(l.Email)
	l.Phone = contact.NormalizePhone(l.Phone)
}
