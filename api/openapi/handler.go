// Package openapi configures the OpenAPI 3.1 document served by Huma and
// the Swagger UI routes that render it.
package openapi

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/labstack/echo/v4"
)

const (
	// SpecPath is where Huma serves the generated JSON document.
	SpecPath = "/openapi"
	// DocsPath serves the Swagger UI.
	DocsPath = "/docs"
)

const swaggerUIHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Deal Desk API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: "` + SpecPath + `.json",
      dom_id: "#swagger-ui",
      presets: [SwaggerUIBundle.presets.apis, SwaggerUIBundle.SwaggerUIStandalonePreset],
      layout: "BaseLayout",
    });
  </script>
</body>
</html>`

// Config returns the Huma configuration for the deal-desk API. Huma's
// built-in docs page is disabled in favour of the Swagger UI registered by
// RegisterRoutes.
func Config(version string) huma.Config {
	cfg := huma.DefaultConfig("Deal Desk API", version)
	cfg.Info.Description = "Lead and listing prioritisation, buyer/listing matching, " +
		"and daily focus lists for a business brokerage."
	cfg.OpenAPIPath = SpecPath
	cfg.DocsPath = ""
	return cfg
}

// RegisterRoutes adds the Swagger UI to the Echo instance.
func RegisterRoutes(e *echo.Echo) {
	e.GET(DocsPath, serveUI)
	e.GET(DocsPath+"/", redirectToUI)
}

func serveUI(c echo.Context) error {
	return c.HTML(http.StatusOK, swaggerUIHTML)
}

func redirectToUI(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, DocsPath)
}
