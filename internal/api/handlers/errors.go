package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/offer-finder/internal/engine"
	"github.com/donaldgifford/offer-finder/internal/store"
	"github.com/donaldgifford/offer-finder/pkg/availability"
	"github.com/donaldgifford/offer-finder/pkg/extract"
)

// apiError maps a service error to a huma status error. what names the
// resource for not-found messages, action prefixes everything else.
func apiError(what, action string, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return huma.Error404NotFound(what + " not found")
	case errors.Is(err, availability.ErrStoreNotFound):
		return huma.Error404NotFound("store not found")
	case errors.Is(err, engine.ErrEmptyTitle):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, extract.ErrDailyLimitReached):
		return huma.Error429TooManyRequests("offer search quota exhausted, try again later")
	case errors.Is(err, extract.ErrMalformedResponse):
		return huma.Error502BadGateway(action + ": offer source returned an unusable response")
	case errors.Is(err, context.DeadlineExceeded):
		return huma.Error504GatewayTimeout(action + ": timed out")
	default:
		return huma.Error500InternalServerError(action + ": " + err.Error())
	}
}
