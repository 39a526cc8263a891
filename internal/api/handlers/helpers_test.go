package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/deal-desk/internal/engine"
	notifyMocks "github.com/donaldgifford/deal-desk/internal/notify/mocks"
	storeMocks "github.com/donaldgifford/deal-desk/internal/store/mocks"
	"github.com/donaldgifford/deal-desk/pkg/logger"
)

var refNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func daysAgo(n int) *time.Time {
	t := refNow.Add(-time.Duration(n) * 24 * time.Hour)
	return &t
}

// newTestEngine returns an engine over the mocks with a fixed clock.
func newTestEngine(t *testing.T, ms *storeMocks.MockStore) *engine.Engine {
	t.Helper()
	return engine.NewEngine(ms, notifyMocks.NewMockNotifier(t),
		engine.WithLogger(logger.Discard()),
		engine.WithClock(func() time.Time { return refNow }),
	)
}

// newContext builds an Echo context for a request. pathParams alternate
// name and value.
func newContext(method, target, body string, pathParams ...string) (echo.Context, *httptest.ResponseRecorder) {
	var r io.Reader = http.NoBody
	if body != "" {
		r = strings.NewReader(body)
	}

	e := echo.New()
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if len(pathParams) > 0 {
		var names, values []string
		for i := 0; i+1 < len(pathParams); i += 2 {
			names = append(names, pathParams[i])
			values = append(values, pathParams[i+1])
		}
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	return c, rec
}
