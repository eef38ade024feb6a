// Package currency converts offer prices between currencies using a static
// rate table loaded from configuration.
package currency

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnsupportedCurrency is returned for a currency with no configured rate.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// DefaultBase is the base currency of DefaultRates.
const DefaultBase = "USD"

// DefaultRates are the value of one unit of each currency in USD.
// Updated periodically via manual commit.
var DefaultRates = map[string]float64{
	"USD": 1.0,
	"EUR": 1.09,
	"GBP": 1.27,
	"CAD": 0.74,
	"AUD": 0.66,
	"JPY": 0.0067,
	"CHF": 1.13,
	"SEK": 0.095,
	"AED": 0.2723,
	"SAR": 0.2666,
	"JOD": 1.41,
	"EGP": 0.0205,
	"TRY": 0.029,
	"INR": 0.012,
	"BRL": 0.18,
	"MXN": 0.055,
}

// Converter converts amounts using rates relative to a base currency.
// It is safe for concurrent use.
type Converter struct {
	base  string
	rates map[string]float64
}

// NewConverter copies rates, keyed by upper-cased currency code. Rates must
// be positive. The base currency always has rate 1.
func NewConverter(base string, rates map[string]float64) (*Converter, error) {
	base = normalize(base)
	if base == "" {
		return nil, errors.New("base currency is required")
	}

	c := &Converter{base: base, rates: make(map[string]float64, len(rates)+1)}
	for code, rate := range rates {
		if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
			return nil, fmt.Errorf("invalid rate %v for %s", rate, code)
		}
		c.rates[normalize(code)] = rate
	}
	c.rates[base] = 1
	return c, nil
}

// Base returns the base currency.
func (c *Converter) Base() string {
	return c.base
}

// Supports reports whether code has a configured rate.
func (c *Converter) Supports(code string) bool {
	_, ok := c.rates[normalize(code)]
	return ok
}

// Convert converts amount from one currency to another. An empty from is
// treated as the base currency.
func (c *Converter) Convert(amount float64, from, to string) (float64, error) {
	from, to = normalize(from), normalize(to)
	if from == "" {
		from = c.base
	}
	if from == to {
		return amount, nil
	}

	fromRate, ok := c.rates[from]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, from)
	}
	toRate, ok := c.rates[to]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, to)
	}

	return round2(amount * fromRate / toRate), nil
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
