package http

import (
	"sync"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// openAPIDoc exposes the embedded OpenAPI document to swag, which is where
// echo-swagger reads doc.json from.
type openAPIDoc struct {
	doc string
}

func (d openAPIDoc) ReadDoc() string {
	return d.doc
}

// swag keeps a process-wide registry and panics on duplicate names.
var registerDocOnce sync.Once

func registerSwaggerUI(e *echo.Echo, doc []byte) {
	registerDocOnce.Do(func() {
		swag.Register(swag.Name, openAPIDoc{doc: string(doc)})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
