// Package api holds the OpenAPI description of the myheartbeat HTTP API.
package api

import _ "embed"

// Spec is the OpenAPI 3 document served by handlers and used for request validation.
//
//go:embed my-heartbeat.openapi.yaml
var Spec []byte
