package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
)

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

func errorJSON(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]string{"error": msg})
}

// storeError maps pgx.ErrNoRows to 404 and everything else to 500. An id
// Postgres cannot parse as a uuid (22P02) cannot name a row, so it is a 404
// as well.
func storeError(c echo.Context, err error, notFound, action string) error {
	if errors.Is(err, pgx.ErrNoRows) || isInvalidTextRepresentation(err) {
		return errorJSON(c, http.StatusNotFound, notFound)
	}
	return errorJSON(c, http.StatusInternalServerError, action+": "+err.Error())
}

func isInvalidTextRepresentation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "22P02"
}

// queryInt parses an optional integer query parameter. ok is false when the
// parameter is present but malformed.
func queryInt(c echo.Context, name string) (v int, ok bool) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	return v, err == nil
}

// queryFloat parses an optional float query parameter into a pointer.
func queryFloat(c echo.Context, name string) (v *float64, ok bool) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, false
	}
	return &f, true
}
