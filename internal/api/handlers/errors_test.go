package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/offer-finder/internal/engine"
	"github.com/donaldgifford/offer-finder/internal/store"
	"github.com/donaldgifford/offer-finder/pkg/availability"
	"github.com/donaldgifford/offer-finder/pkg/extract"
)

func TestAPIError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"not found", fmt.Errorf("x: %w", store.ErrNotFound), http.StatusNotFound, "item not found"},
		{"store not found", availability.ErrStoreNotFound, http.StatusNotFound, "store not found"},
		{"empty title", engine.ErrEmptyTitle, http.StatusBadRequest, "title is required"},
		{"quota", extract.ErrDailyLimitReached, http.StatusTooManyRequests, "quota exhausted"},
		{"malformed", extract.ErrMalformedResponse, http.StatusBadGateway, "searching: offer source"},
		{"deadline", fmt.Errorf("calling llm: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, "searching: timed out"},
		{"other", errors.New("boom"), http.StatusInternalServerError, "searching: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := apiError("item", "searching", tt.err)

			var se huma.StatusError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.wantStatus, se.GetStatus())
			assert.Contains(t, se.Error(), tt.wantMsg)
		})
	}
}
