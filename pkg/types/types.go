// Package domain defines the core business types for the offer finder.
package domain

import (
	"slices"
	"strings"
	"time"
)

// ReasonCode explains why an offer was excluded from the available set.
type ReasonCode string

// Reason code constants. The set is closed.
const (
	ReasonNoCountryMatch ReasonCode = "NO_COUNTRY_MATCH"
	ReasonCityRequired   ReasonCode = "CITY_REQUIRED"
	ReasonNoCityMatch    ReasonCode = "NO_CITY_MATCH"
)

// ReasonCodes returns every reason code in a stable order.
func ReasonCodes() []ReasonCode {
	return []ReasonCode{ReasonNoCountryMatch, ReasonCityRequired, ReasonNoCityMatch}
}

// SortKey selects the ordering of available offers.
type SortKey string

// Sort key constants.
const (
	SortLowestPrice     SortKey = "lowest_price"
	SortFastestShipping SortKey = "fastest_shipping"
	SortNewest          SortKey = "newest"
)

// ParseSortKey maps a user-supplied value to a SortKey. Unknown or empty
// values fall back to SortLowestPrice.
func ParseSortKey(s string) SortKey {
	switch SortKey(strings.ToLower(strings.TrimSpace(s))) {
	case SortFastestShipping:
		return SortFastestShipping
	case SortNewest:
		return SortNewest
	default:
		return SortLowestPrice
	}
}

// Availability labels an annotated offer.
type Availability string

// Availability constants.
const (
	AvailabilityAvailable   Availability = "available"
	AvailabilityUnavailable Availability = "unavailable"
)

// Location is the user's shipping location. CountryCode is ISO-3166 alpha-2.
type Location struct {
	CountryCode string `json:"countryCode"    db:"country_code"`
	City        string `json:"city,omitempty" db:"city"`
}

// HasCity reports whether a non-blank city is set.
func (l *Location) HasCity() bool {
	return strings.TrimSpace(l.City) != ""
}

// User is the subset of a user profile the finder reads.
type User struct {
	ID                string    `json:"id"                          db:"id"`
	Location          *Location `json:"location,omitempty"          db:"-"`
	PreferredCurrency string    `json:"preferredCurrency,omitempty" db:"preferred_currency"`
	UpdatedAt         time.Time `json:"updatedAt"                   db:"updated_at"`
}

// Item is a wishlist item saved by a user.
type Item struct {
	ID        string    `json:"id"                  db:"id"`
	UserID    string    `json:"userId"              db:"user_id"`
	Title     string    `json:"title"               db:"title"`
	Price     *float64  `json:"price,omitempty"     db:"price"`
	Currency  string    `json:"currency,omitempty"  db:"currency"`
	URL       string    `json:"url,omitempty"       db:"url"`
	StoreName string    `json:"storeName,omitempty" db:"store_name"`
	Domain    string    `json:"domain,omitempty"    db:"domain"`
	CreatedAt time.Time `json:"createdAt"           db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt"           db:"updated_at"`
}

// OriginalOffer returns the item's own store as an offer, if the item carries
// enough data to form one.
func (i *Item) OriginalOffer() (CandidateOffer, bool) {
	if i.StoreName == "" || i.Domain == "" || i.URL == "" || i.Currency == "" ||
		i.Price == nil || *i.Price <= 0 {
		return CandidateOffer{}, false
	}
	created := i.CreatedAt
	return CandidateOffer{
		StoreName: i.StoreName,
		Domain:    i.Domain,
		Price:     *i.Price,
		Currency:  i.Currency,
		URL:       i.URL,
		Title:     i.Title,
		CreatedAt: &created,
	}, true
}

// Store is an online store known to the shipping-rules table.
type Store struct {
	Domain             string    `json:"domain"             db:"domain"`
	Name               string    `json:"name"               db:"name"`
	CountriesSupported []string  `json:"countriesSupported" db:"countries_supported"`
	RequiresCity       bool      `json:"requiresCity"       db:"requires_city"`
	CreatedAt          time.Time `json:"createdAt"          db:"created_at"`
	UpdatedAt          time.Time `json:"updatedAt"          db:"updated_at"`
}

// SupportsCountry reports whether code is in CountriesSupported.
func (s *Store) SupportsCountry(code string) bool {
	code = NormalizeCountry(code)
	if code == "" {
		return false
	}
	return slices.ContainsFunc(s.CountriesSupported, func(c string) bool {
		return NormalizeCountry(c) == code
	})
}

// ShippingRule is the per-store, per-country shipping policy. City lists are
// plain strings; they are decoded from storage before reaching this type.
type ShippingRule struct {
	StoreDomain    string    `json:"storeDomain"             db:"store_domain"`
	CountryCode    string    `json:"countryCode"             db:"country_code"`
	ShipsToCountry bool      `json:"shipsToCountry"          db:"ships_to_country"`
	ShipsToCity    bool      `json:"shipsToCity"             db:"ships_to_city"`
	CityWhitelist  []string  `json:"cityWhitelist,omitempty" db:"city_whitelist"`
	CityBlacklist  []string  `json:"cityBlacklist,omitempty" db:"city_blacklist"`
	UpdatedAt      time.Time `json:"updatedAt"               db:"updated_at"`
}

// StoreProfile is a store together with all of its shipping rules.
type StoreProfile struct {
	Store Store          `json:"store"`
	Rules []ShippingRule `json:"rules"`
}

// RuleFor returns the shipping rule for a country, if one exists.
func (p *StoreProfile) RuleFor(country string) (*ShippingRule, bool) {
	country = NormalizeCountry(country)
	for i := range p.Rules {
		if NormalizeCountry(p.Rules[i].CountryCode) == country {
			return &p.Rules[i], true
		}
	}
	return nil, false
}

// CandidateOffer is a price/store tuple proposed by an offer source. Values of
// this type have passed shape validation.
type CandidateOffer struct {
	StoreName       string     `json:"storeName"`
	Domain          string     `json:"domain"`
	Price           float64    `json:"price"`
	Currency        string     `json:"currency"`
	URL             string     `json:"url"`
	Title           string     `json:"title,omitempty"`
	DeliveryTime    string     `json:"deliveryTime,omitempty"`
	NormalizedPrice *float64   `json:"normalizedPrice,omitempty"`
	CreatedAt       *time.Time `json:"createdAt,omitempty"`
}

// EffectivePrice returns the normalized price when present, else the raw price.
func (o *CandidateOffer) EffectivePrice() float64 {
	if o.NormalizedPrice != nil {
		return *o.NormalizedPrice
	}
	return o.Price
}

// UnavailableOffer identifies an excluded offer and why it was excluded.
type UnavailableOffer struct {
	StoreName     string     `json:"storeName"`
	Domain        string     `json:"domain"`
	ReasonCode    ReasonCode `json:"reasonCode"`
	ReasonMessage string     `json:"reasonMessage"`
}

// AvailabilityResult is the partitioned, ranked output of the filter.
type AvailabilityResult struct {
	Available    []CandidateOffer   `json:"available"`
	Unavailable  []UnavailableOffer `json:"unavailable"`
	CityRequired bool               `json:"cityRequired"`
}

// AnnotatedOffer is an offer tagged with its availability, used by the
// inline-location search.
type AnnotatedOffer struct {
	CandidateOffer
	Availability Availability `json:"availability"`
	Reason       string       `json:"reason,omitempty"`
	ReasonCode   ReasonCode   `json:"reasonCode,omitempty"`
}

// NormalizeCountry upper-cases and trims an ISO country code.
func NormalizeCountry(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// NormalizeDomain lower-cases a store domain and strips a leading "www.".
func NormalizeDomain(d string) string {
	d = strings.ToLower(strings.TrimSpace(d))
	return strings.TrimPrefix(d, "www.")
}
