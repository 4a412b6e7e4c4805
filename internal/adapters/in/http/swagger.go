package http

import (
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

var registerDocOnce sync.Once

// apiDoc serves the API document to the swagger UI.
type apiDoc struct {
	json string
}

func (d apiDoc) ReadDoc() string {
	return d.json
}

// registerSwagger serves the UI under /swagger/. The swag registry is process-wide and
// panics on a second Register for the same name.
func registerSwagger(e *echo.Echo, doc *openapi3.T) error {
	data, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal openapi document: %w", err)
	}

	registerDocOnce.Do(func() {
		swag.Register(swag.Name, apiDoc{json: string(data)})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return nil
}
