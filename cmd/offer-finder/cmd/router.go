package cmd

import (
	"log/slog"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/donaldgifford/offer-finder/internal/api/handlers"
	"github.com/donaldgifford/offer-finder/internal/api/middleware"
	"github.com/donaldgifford/offer-finder/internal/store"
)

// routerDeps carries everything the HTTP surface needs. invalidator may be
// nil when the profile cache is disabled.
type routerDeps struct {
	store       store.Store
	finder      handlers.OfferFinder
	quota       handlers.QuotaSource
	currencies  handlers.CurrencyChecker
	invalidator handlers.ProfileInvalidator
	health      map[string]handlers.Pinger
}

// newRouter builds the Echo instance with middleware, probes, metrics and
// the Huma API. Huma also serves /openapi.json and /docs.
func newRouter(log *slog.Logger, d *routerDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Recovery(log))
	e.Use(middleware.Metrics())

	health := handlers.NewHealthHandler(d.health)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("Offer Finder API", Version))

	handlers.RegisterItemRoutes(api, handlers.NewItemsHandler(d.store))
	handlers.RegisterFinderRoutes(api, handlers.NewFinderHandler(d.finder))
	handlers.RegisterLocationRoutes(api, handlers.NewLocationHandler(d.store, d.currencies))
	handlers.RegisterStoreRoutes(api, handlers.NewStoresHandler(d.store, d.invalidator))
	handlers.RegisterReasonRoutes(api)
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(d.quota))

	return e
}
