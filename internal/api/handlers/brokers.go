package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/deal-desk/internal/store"
	"github.com/donaldgifford/deal-desk/pkg/contact"
	domain "github.com/donaldgifford/deal-desk/pkg/types"
)

// BrokerHandler handles the partner brokers who refer deals.
type BrokerHandler struct {
	store    store.Store
	validate *Validator
}

// NewBrokerHandler creates a new BrokerHandler.
func NewBrokerHandler(s store.Store, v *Validator) *BrokerHandler {
	return &BrokerHandler{store: s, validate: v}
}

// List handles GET /api/v1/brokers.
//
// @Summary List brokers
// @Description Returns every partner broker, most deals closed first.
// @Tags brokers
// @Produce json
// @Success 200 {array} domain.Broker
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/brokers [get]
func (h *BrokerHandler) List(c echo.Context) error {
	brokers, err := h.store.ListBrokers(c.Request().Context())
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "listing brokers: "+err.Error())
	}

	if brokers == nil {
		brokers = []domain.Broker{}
	}

	return c.JSON(http.StatusOK, brokers)
}

// Get handles GET /api/v1/brokers/:id.
//
// @Summary Get a broker by ID
// @Tags brokers
// @Produce json
// @Param id path string true "Broker UUID"
// @Success 200 {object} domain.Broker
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/brokers/{id} [get]
func (h *BrokerHandler) Get(c echo.Context) error {
	b, err := h.store.GetBroker(c.Request().Context(), c.Param("id"))
	if err != nil {
		return storeError(c, err, "broker not found", "getting broker")
	}

	return c.JSON(http.StatusOK, b)
}

// Create handles POST /api/v1/brokers.
//
// @Summary Create a broker
// @Tags brokers
// @Accept json
// @Produce json
// @Param broker body domain.Broker true "Broker to create"
// @Success 201 {object} domain.Broker
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/brokers [post]
func (h *BrokerHandler) Create(c echo.Context) error {
	var b domain.Broker
	if err := c.Bind(&b); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request body: "+err.Error())
	}

	b.Name = strings.TrimSpace(b.Name)
	b.Firm = strings.TrimSpace(b.Firm)
	b.Email = contact.NormalizeEmail(b.Email)
	if err := h.validate.Validate(&b); err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	b.ID = ""
	if err := h.store.CreateBroker(c.Request().Context(), &b); err != nil {
		return errorJSON(c, http.StatusInternalServerError, "creating broker: "+err.Error())
	}

	return c.JSON(http.StatusCreated, b)
}
