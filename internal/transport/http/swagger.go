package http

import (
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/ghodss/yaml"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/sleepifoxx/timtro-web/internal/util"
)

var (
	swaggerOnce sync.Once
	swaggerJSON []byte
	swaggerErr  error
)

// RegisterSwagger mounts the Swagger UI under /swagger. The YAML spec in
// docs/ is converted to JSON once on first request and reused after that.
func RegisterSwagger(e *echo.Echo) {
	e.GET("/swagger/doc.json", func(c echo.Context) error {
		swaggerOnce.Do(func() {
			data, err := os.ReadFile(filepath.Join("docs", "swagger.yaml"))
			if err != nil {
				swaggerErr = err
				return
			}
			swaggerJSON, swaggerErr = yaml.YAMLToJSON(data)
		})
		if swaggerErr != nil {
			c.Logger().Errorf("swagger spec: %v", swaggerErr)
			return c.JSON(http.StatusInternalServerError, util.Error("unable to load swagger spec"))
		}
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, swaggerJSON)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
