package handlers

import (
	"net/url"

	"myheartbeat/service"

	"github.com/labstack/echo/v4"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Announce that the service is alive.
	// (PUT /health/{name})
	Announce(ctx echo.Context, name string, params AnnounceParams) error
	// Check whether the service is alive.
	// (GET /health/{name})
	Query(ctx echo.Context, name string) error
}

// AnnounceParams defines parameters for Announce.
type AnnounceParams struct {
	// DeadlineSeconds is the raw deadline_seconds query value, nil when absent.
	DeadlineSeconds *string
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// Announce converts echo context to params.
func (w *ServerInterfaceWrapper) Announce(ctx echo.Context) error {
	name, err := nameParam(ctx)
	if err != nil {
		return err
	}

	var params AnnounceParams
	if values, ok := ctx.QueryParams()["deadline_seconds"]; ok && len(values) > 0 {
		params.DeadlineSeconds = service.Ptr(values[0])
	}

	return w.Handler.Announce(ctx, name, params)
}

// Query converts echo context to params.
func (w *ServerInterfaceWrapper) Query(ctx echo.Context) error {
	name, err := nameParam(ctx)
	if err != nil {
		return err
	}

	return w.Handler.Query(ctx, name)
}

// EchoRouter is the subset of echo routing used by RegisterHandlers; *echo.Echo and *echo.Group satisfy it.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter. announceMiddleware
// runs only in front of announcements, which is where the write token is checked.
func RegisterHandlers(router EchoRouter, si ServerInterface, announceMiddleware ...echo.MiddlewareFunc) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.PUT("/health/:name", wrapper.Announce, announceMiddleware...)
	router.GET("/health/:name", wrapper.Query)
}

// nameParam returns the {name} path parameter decoded exactly once. echo matches
// on URL.RawPath when it is set and on the already decoded URL.Path otherwise.
func nameParam(ctx echo.Context) (string, error) {
	name := ctx.Param("name")
	if ctx.Request().URL.RawPath != "" {
		var err error
		if name, err = url.PathUnescape(name); err != nil {
			return "", service.NewBadParameterError("invalid format for parameter name", err)
		}
	}
	if name == "" {
		return "", service.NewBadParameterError("parameter name is required", nil)
	}
	return name, nil
}
