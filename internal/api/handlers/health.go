// Package handlers implements HTTP handlers for the offer-finder API.
package handlers

import (
	"context"
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"
)

// Pinger is anything that can report its own reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

// Ping calls f.
func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthHandler provides health and readiness endpoints.
type HealthHandler struct {
	deps  map[string]Pinger
	names []string
}

// NewHealthHandler creates a HealthHandler that checks every dependency in
// deps on readiness probes.
func NewHealthHandler(deps map[string]Pinger) *HealthHandler {
	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	slices.Sort(names)
	return &HealthHandler{deps: deps, names: names}
}

// ReadyResponse is the readiness response body.
type ReadyResponse struct {
	Status string `json:"status"           example:"unavailable"`
	Failed string `json:"failed,omitempty" example:"redis"`
}

// Healthz returns 200 if the process is running.
//
// @Summary Liveness check
// @Description Returns 200 if the process is running.
// @Tags health
// @Produce json
// @Success 200 {object} StatusResponse
// @Router /healthz [get]
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// Readyz returns 200 if every dependency is reachable, 503 with the first
// failing dependency otherwise.
//
// @Summary Readiness check
// @Description Returns 200 if the database and cache are reachable, 503 otherwise.
// @Tags health
// @Produce json
// @Success 200 {object} ReadyResponse
// @Failure 503 {object} ReadyResponse
// @Router /readyz [get]
func (h *HealthHandler) Readyz(c echo.Context) error {
	ctx := c.Request().Context()
	for _, name := range h.names {
		if err := h.deps[name].Ping(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, ReadyResponse{
				Status: "unavailable",
				Failed: name,
			})
		}
	}
	return c.JSON(http.StatusOK, ReadyResponse{Status: "ready"})
}
