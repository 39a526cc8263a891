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

var listingTypes = []domain.ListingType{
	domain.ListingSale,
	domain.ListingRent,
	domain.ListingVending,
}

// ListingHandler handles Listing CRUD operations.
type ListingHandler struct {
	store    store.Store
	engine   *engine.Engine
	validate *Validator
}

// NewListingHandler creates a new ListingHandler.
func NewListingHandler(s store.Store, eng *engine.Engine, v *Validator) *ListingHandler {
	return &ListingHandler{store: s, engine: eng, validate: v}
}

// List handles GET /api/v1/listings.
//
// @Summary List listings
// @Description Returns listings filtered by stage, industry, type, price range, and a free-text search.
// @Tags listings
// @Produce json
// @Param stage query string false "Deal stage; repeat or comma-separate for several"
// @Param industry query string false "Industry"
// @Param type query string false "Listing type" Enums(Sale, Rent, Vending)
// @Param min_price query number false "Minimum asking price"
// @Param max_price query number false "Maximum asking price"
// @Param q query string false "Search title, location, and seller"
// @Param limit query int false "Page size (default 50)"
// @Param offset query int false "Page offset"
// @Param order_by query string false "Sort field" Enums(priority, price, date_added, roi)
// @Success 200 {object} map[string]any
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/listings [get]
func (h *ListingHandler) List(c echo.Context) error {
	q := &store.ListingQuery{OrderBy: c.QueryParam("order_by")}

	for _, raw := range c.QueryParams()["stage"] {
		for s := range strings.SplitSeq(raw, ",") {
			stage := domain.DealStage(strings.TrimSpace(s))
			if !slices.Contains(domain.Stages, stage) {
				return errorJSON(c, http.StatusBadRequest, "invalid stage")
			}
			q.Stages = append(q.Stages, stage)
		}
	}

	if s := c.QueryParam("industry"); s != "" {
		industry := domain.Industry(s)
		if !industry.IsValid() {
			return errorJSON(c, http.StatusBadRequest, "invalid industry")
		}
		q.Industry = &industry
	}

	if s := c.QueryParam("type"); s != "" {
		lt := domain.ListingType(s)
		if !slices.Contains(listingTypes, lt) {
			return errorJSON(c, http.StatusBadRequest, "invalid type")
		}
		q.Type = &lt
	}

	var ok bool
	if q.MinPrice, ok = queryFloat(c, "min_price"); !ok {
		return errorJSON(c, http.StatusBadRequest, "invalid min_price")
	}
	if q.MaxPrice, ok = queryFloat(c, "max_price"); !ok {
		return errorJSON(c, http.StatusBadRequest, "invalid max_price")
	}

	if s := strings.TrimSpace(c.QueryParam("q")); s != "" {
		q.Search = &s
	}

	if q.Limit, ok = queryInt(c, "limit"); !ok {
		return errorJSON(c, http.StatusBadRequest, "invalid limit")
	}
	if q.Offset, ok = queryInt(c, "offset"); !ok {
		return errorJSON(c, http.StatusBadRequest, "invalid offset")
	}

	listings, total, err := h.store.ListListings(c.Request().Context(), q)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "listing listings: "+err.Error())
	}

	if listings == nil {
		listings = []domain.Listing{}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"listings": listings,
		"total":    total,
		"limit":    q.Limit,
		"offset":   q.Offset,
	})
}

// Get handles GET /api/v1/listings/:id.
//
// @Summary Get a listing by ID
// @Tags listings
// @Produce json
// @Param id path string true "Listing UUID"
// @Success 200 {object} domain.Listing
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/listings/{id} [get]
func (h *ListingHandler) Get(c echo.Context) error {
	l, err := h.store.GetListing(c.Request().Context(), c.Param("id"))
	if err != nil {
		return storeError(c, err, "listing not found", "getting listing")
	}

	return c.JSON(http.StatusOK, l)
}

// Create handles POST /api/v1/listings.
//
// @Summary Create a listing
// @Tags listings
// @Accept json
// @Produce json
// @Param listing body domain.Listing true "Listing to create"
// @Success 201 {object} domain.Listing
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/listings [post]
func (h *ListingHandler) Create(c echo.Context) error {
	var l domain.Listing
	if err := c.Bind(&l); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request body: "+err.Error())
	}

	normalizeListing(&l)
	if err := h.validate.Validate(&l); err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	l.ID = ""
	if l.Stage == "" {
		l.Stage = domain.StageNew
	}
	if l.DateAdded.IsZero() {
		l.DateAdded = h.engine.Now()
	}
	l.PriorityScore = h.engine.Score(score.FromListing(&l)).Total

	if err := h.store.CreateListing(c.Request().Context(), &l); err != nil {
		return errorJSON(c, http.StatusInternalServerError, "creating listing: "+err.Error())
	}

	return c.JSON(http.StatusCreated, l)
}

// Update handles PUT /api/v1/listings/:id. Stage changes are accepted
// without transition checks; outreach state is carried over.
//
// @Summary Update a listing
// @Tags listings
// @Accept json
// @Produce json
// @Param id path string true "Listing UUID"
// @Param listing body domain.Listing true "Updated listing"
// @Success 200 {object} domain.Listing
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/listings/{id} [put]
func (h *ListingHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()

	var l domain.Listing
	if err := c.Bind(&l); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request body: "+err.Error())
	}

	normalizeListing(&l)
	if err := h.validate.Validate(&l); err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	existing, err := h.store.GetListing(ctx, c.Param("id"))
	if err != nil {
		return storeError(c, err, "listing not found", "getting listing")
	}

	l.ID = existing.ID
	if l.Stage == "" {
		l.Stage = existing.Stage
	}
	l.DateAdded = existing.DateAdded
	l.LastContactAt = existing.LastContactAt
	l.TouchCountWeek = existing.TouchCountWeek
	l.PriorityScore = h.engine.Score(score.FromListing(&l)).Total

	if err := h.store.UpdateListing(ctx, &l); err != nil {
		return storeError(c, err, "listing not found", "updating listing")
	}

	return c.JSON(http.StatusOK, l)
}

// Delete handles DELETE /api/v1/listings/:id. Feedback for the listing is
// removed with it.
//
// @Summary Delete a listing
// @Tags listings
// @Param id path string true "Listing UUID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/listings/{id} [delete]
func (h *ListingHandler) Delete(c echo.Context) error {
	if err := h.store.DeleteListing(c.Request().Context(), c.Param("id")); err != nil {
		return storeError(c, err, "listing not found", "deleting listing")
	}

	return c.NoContent(http.StatusNoContent)
}

func normalizeListing(l *domain.Listing) {
	l.Title = strings.TrimSpace(l.Title)
	l.SellerContact = contact.NormalizePhone(l.SellerContact)
}
