// Package docs contiene la especificación OpenAPI servida en /docs.
package docs

import (
	_ "embed"

	"github.com/swaggo/swag"
)

// SwaggerJSON documento OpenAPI embebido; lo sirve el middleware de swagger sin depender del
// directorio de trabajo.
//
//go:embed swagger.json
var SwaggerJSON []byte

var docTemplate = string(SwaggerJSON)

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Ronix API",
	Description:      "API de comercio electrónico: cuentas, catálogo de productos y órdenes con pago.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
