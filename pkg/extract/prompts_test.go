package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/offer-finder/pkg/extract"
)

func TestRenderOffersPrompt(t *testing.T) {
	t.Parallel()

	price := 24.5

	tests := []struct {
		name        string
		req         extract.OfferRequest
		contains    []string
		notContains []string
	}{
		{
			name: "full request",
			req: extract.OfferRequest{
				Title:       "Moka pot 6 cup",
				OriginalURL: "https://shop.example/moka",
				Price:       &price,
				Currency:    "EUR",
				CountryCode: "IT",
				City:        "Torino",
				Max:         5,
			},
			contains: []string{
				"up to 5 other online stores",
				"Product: Moka pot 6 cup",
				"Currently seen at: https://shop.example/moka",
				"Reference price: 24.50 EUR",
				"Shopper country (ISO 3166-1 alpha-2): IT, city: Torino",
				`"offers"`,
			},
		},
		{
			name: "title only",
			req:  extract.OfferRequest{Title: "Moka pot", Max: 10},
			contains: []string{
				"up to 10 other online stores",
				"Product: Moka pot",
			},
			notContains: []string{"Currently seen at", "Reference price", "Shopper country"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := extract.RenderOffersPrompt(tt.req)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, got, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, got, s)
			}
		})
	}
}
