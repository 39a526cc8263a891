package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/deal-desk/internal/engine"
)

// OperationsHandler exposes the scheduled maintenance jobs for manual runs.
type OperationsHandler struct {
	engine *engine.Engine
}

// NewOperationsHandler creates a new OperationsHandler.
func NewOperationsHandler(eng *engine.Engine) *OperationsHandler {
	return &OperationsHandler{engine: eng}
}

// Rescore handles POST /api/v1/rescore.
//
// @Summary Re-score all leads and listings
// @Description Recomputes priority scores from current fields and rewrites the stored score cache.
// @Tags operations
// @Produce json
// @Success 200 {object} map[string]any "rescored count"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/rescore [post]
func (h *OperationsHandler) Rescore(c echo.Context) error {
	n, err := h.engine.RescoreAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{
			"error":    "rescore failed: " + err.Error(),
			"rescored": n,
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"rescored": n,
	})
}

// ResetTouches handles POST /api/v1/touches/reset.
//
// @Summary Reset weekly touch counts
// @Description Zeroes touch_count_week for every lead and listing.
// @Tags operations
// @Produce json
// @Success 200 {object} map[string]any "reset count"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/touches/reset [post]
func (h *OperationsHandler) ResetTouches(c echo.Context) error {
	n, err := h.engine.ResetWeeklyTouches(c.Request().Context())
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "touch reset failed: "+err.Error())
	}

	return c.JSON(http.StatusOK, map[string]any{
		"reset": n,
	})
}

// Digest handles POST /api/v1/digest.
//
// @Summary Send the daily digest
// @Description Builds the digest from current data and sends it through the configured notifier. An empty digest is skipped.
// @Tags operations
// @Produce json
// @Success 200 {object} map[string]any "sent flag"
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/digest [post]
func (h *OperationsHandler) Digest(c echo.Context) error {
	sent, err := h.engine.RunDigest(c.Request().Context())
	if err != nil {
		return errorJSON(c, http.StatusBadGateway, "digest failed: "+err.Error())
	}

	return c.JSON(http.StatusOK, map[string]any{
		"sent": sent,
	})
}
