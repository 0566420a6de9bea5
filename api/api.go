// Package api embeds the OpenAPI document of the front desk HTTP API.
package api

import _ "embed"

// OpenAPI is the raw YAML document served at /openapi.json after validation.
//
//go:embed openapi.yml
var OpenAPI []byte
