package http

import (
	"sync"

	"courierhub/internal/generated/servers"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// openAPIDoc hands the embedded OpenAPI document to swag, which echo-swagger
// reads to serve doc.json.
type openAPIDoc struct {
	doc string
}

func (d openAPIDoc) ReadDoc() string {
	return d.doc
}

var registerDocOnce sync.Once

// RegisterSwagger serves the UI and the document under /swagger/*.
func RegisterSwagger(e *echo.Echo) error {
	spec, err := servers.GetSwagger()
	if err != nil {
		return err
	}
	body, err := spec.MarshalJSON()
	if err != nil {
		return err
	}

	registerDocOnce.Do(func() {
		swag.Register(swag.Name, openAPIDoc{doc: string(body)})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return nil
}
