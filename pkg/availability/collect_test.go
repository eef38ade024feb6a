package availability_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/offer-finder/pkg/availability"
)

func validRaw(store string) availability.RawOffer {
	return availability.RawOffer{
		"storeName": store,
		"domain":    store + ".com",
		"price":     19.99,
		"currency":  "usd",
		"url":       "https://" + store + ".com/p/1",
	}
}

func TestCollect_DropsMalformed(t *testing.T) {
	t.Parallel()

	raw := []availability.RawOffer{
		validRaw("alpha"),
		validRaw("bravo"),
		validRaw("charlie"),
		validRaw("delta"),
		validRaw("echo"),
	}
	delete(raw[1], "url")
	delete(raw[3], "url")

	got := availability.Collect(raw, 0)
	require.Len(t, got, 3)
	assert.Equal(t, "alpha", got[0].StoreName)
	assert.Equal(t, "charlie", got[1].StoreName)
	assert.Equal(t, "echo", got[2].StoreName)
	assert.Equal(t, "USD", got[0].Currency)
}

func TestCollect_FieldValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(availability.RawOffer)
		keep   bool
	}{
		{name: "valid", mutate: func(availability.RawOffer) {}, keep: true},
		{name: "missing store name", mutate: func(r availability.RawOffer) { delete(r, "storeName") }},
		{name: "blank store name", mutate: func(r availability.RawOffer) { r["storeName"] = "  " }},
		{name: "missing domain", mutate: func(r availability.RawOffer) { delete(r, "domain") }},
		{name: "missing currency", mutate: func(r availability.RawOffer) { delete(r, "currency") }},
		{name: "missing price", mutate: func(r availability.RawOffer) { delete(r, "price") }},
		{name: "zero price", mutate: func(r availability.RawOffer) { r["price"] = 0.0 }},
		{name: "negative price", mutate: func(r availability.RawOffer) { r["price"] = -4.0 }},
		{name: "string price", mutate: func(r availability.RawOffer) { r["price"] = "19.99" }},
		{name: "json number price", mutate: func(r availability.RawOffer) { r["price"] = json.Number("12.50") }, keep: true},
		{name: "integer price", mutate: func(r availability.RawOffer) { r["price"] = 12 }, keep: true},
		{name: "non string url", mutate: func(r availability.RawOffer) { r["url"] = 42 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := validRaw("shop")
			tt.mutate(r)
			got := availability.Collect([]availability.RawOffer{r}, 0)
			if tt.keep {
				assert.Len(t, got, 1)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestCollect_Cap(t *testing.T) {
	t.Parallel()

	raw := make([]availability.RawOffer, 0, 12)
	for range 12 {
		raw = append(raw, validRaw("shop"))
	}
	// Malformed entries do not count toward the cap.
	raw = append([]availability.RawOffer{{"storeName": "broken"}}, raw...)

	assert.Len(t, availability.Collect(raw, availability.DefaultSingleItemCap), 5)
	assert.Len(t, availability.Collect(raw, availability.DefaultAlternativesCap), 10)
	assert.Len(t, availability.Collect(raw, 0), 12)
}

func TestCollectCounted(t *testing.T) {
	t.Parallel()

	raw := []availability.RawOffer{
		{"storeName": "broken"},
		validRaw("a"),
		{"domain": "no-name.example"},
		validRaw("b"),
		{"storeName": "after cap"},
		validRaw("c"),
	}

	tests := []struct {
		name        string
		maxCount    int
		wantOffers  int
		wantDropped int
	}{
		{name: "no cap inspects everything", maxCount: 0, wantOffers: 3, wantDropped: 3},
		{name: "cap stops before trailing entries", maxCount: 2, wantOffers: 2, wantDropped: 2},
		{name: "cap of one", maxCount: 1, wantOffers: 1, wantDropped: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			offers, dropped := availability.CollectCounted(raw, tt.maxCount)
			assert.Len(t, offers, tt.wantOffers)
			assert.Equal(t, tt.wantDropped, dropped)
		})
	}
}

func TestCollect_KeepsSameDomainDuplicates(t *testing.T) {
	t.Parallel()

	got := availability.Collect([]availability.RawOffer{validRaw("shop"), validRaw("shop")}, 0)
	assert.Len(t, got, 2)
}

func TestCollect_OptionalFields(t *testing.T) {
	t.Parallel()

	r := validRaw("shop")
	r["title"] = " Blue Kettle "
	r["deliveryTime"] = "2-3 days"
	r["normalizedPrice"] = 14.5
	r["createdAt"] = "2026-01-02T03:04:05Z"

	got := availability.Collect([]availability.RawOffer{r, nil}, 0)
	require.Len(t, got, 1)

	o := got[0]
	assert.Equal(t, "Blue Kettle", o.Title)
	assert.Equal(t, "2-3 days", o.DeliveryTime)
	require.NotNil(t, o.NormalizedPrice)
	assert.InDelta(t, 14.5, *o.NormalizedPrice, 0.0001)
	require.NotNil(t, o.CreatedAt)
	assert.True(t, o.CreatedAt.Equal(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)))
}

func TestCollect_IgnoresBadOptionalFields(t *testing.T) {
	t.Parallel()

	r := validRaw("shop")
	r["normalizedPrice"] = "cheap"
	r["createdAt"] = "yesterday"
	r["deliveryTime"] = 3

	got := availability.Collect([]availability.RawOffer{r}, 0)
	require.Len(t, got, 1)
	assert.Nil(t, got[0].NormalizedPrice)
	assert.Nil(t, got[0].CreatedAt)
	assert.Empty(t, got[0].DeliveryTime)
}
