package http

import (
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// swaggerInstance is the swag registry name the Swagger UI reads doc.json from.
const swaggerInstance = "ordering"

var registerDocOnce sync.Once

type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

// registerSwagger publishes doc to the swag registry and serves the UI under /swagger/.
// swag.Register panics on a second registration, so only the first document wins.
func registerSwagger(e *echo.Echo, doc *openapi3.T) error {
	raw, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode OpenAPI document: %w", err)
	}

	registerDocOnce.Do(func() {
		swag.Register(swaggerInstance, swaggerDoc{json: string(raw)})
	})

	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.InstanceName(swaggerInstance)))
	return nil
}
