package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
)

// NewRequestValidator loads the OpenAPI document and returns an echo middleware
// that validates requests against it. Requests for paths the document does not
// describe (e.g. /metrics) pass through unvalidated. A failed validation is an
// *echo.HTTPError with status 400 whose Internal error is the
// *openapi3filter.RequestError, so service.HTTPErrorHandler reports bad_parameter.
func NewRequestValidator(spec []byte) (echo.MiddlewareFunc, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(spec)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	// match on path only, whatever host the service is reached by
	doc.Servers = nil

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	return newRequestValidator(router), nil
}

func newRequestValidator(router routers.Router) echo.MiddlewareFunc {
	options := &openapi3filter.Options{
		// the write token is checked by auth.Gate
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return &echo.HTTPError{
					Code:     http.StatusBadRequest,
					Message:  "request does not match the API description",
					Internal: err,
				}
			}
			return next(c)
		}
	}
}
