package availability

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	domain "github.com/donaldgifford/offer-finder/pkg/types"
)

// Result caps used by the two search paths.
const (
	DefaultSingleItemCap   = 5
	DefaultAlternativesCap = 10
)

// RawOffer is an unvalidated offer as decoded from JSON.
type RawOffer map[string]any

var validate = validator.New()

// offerShape holds the required fields of a raw offer for validation.
type offerShape struct {
	StoreName string  `validate:"required"`
	Domain    string  `validate:"required"`
	Price     float64 `validate:"gt=0"`
	Currency  string  `validate:"required"`
	URL       string  `validate:"required"`
}

// Collect keeps the well-formed offers from raw, in order, and truncates the
// result to maxCount (maxCount <= 0 means no cap). Malformed entries are
// dropped silently. Offers from the same domain are not merged.
func Collect(raw []RawOffer, maxCount int) []domain.CandidateOffer {
	out, _ := CollectCounted(raw, maxCount)
	return out
}

// CollectCounted is Collect that also reports how many malformed entries
// were skipped. Entries past the point where the cap filled are not
// inspected and are not counted.
func CollectCounted(raw []RawOffer, maxCount int) (offers []domain.CandidateOffer, dropped int) {
	offers = make([]domain.CandidateOffer, 0, len(raw))
	for _, r := range raw {
		if maxCount > 0 && len(offers) >= maxCount {
			break
		}
		o, ok := toCandidate(r)
		if !ok {
			dropped++
			continue
		}
		offers = append(offers, o)
	}
	return offers, dropped
}

func toCandidate(r RawOffer) (domain.CandidateOffer, bool) {
	if r == nil {
		return domain.CandidateOffer{}, false
	}

	price, ok := number(r["price"])
	if !ok {
		return domain.CandidateOffer{}, false
	}

	shape := offerShape{
		StoreName: str(r["storeName"]),
		Domain:    str(r["domain"]),
		Price:     price,
		Currency:  strings.ToUpper(str(r["currency"])),
		URL:       str(r["url"]),
	}
	if err := validate.Struct(shape); err != nil {
		return domain.CandidateOffer{}, false
	}

	o := domain.CandidateOffer{
		StoreName:    shape.StoreName,
		Domain:       shape.Domain,
		Price:        shape.Price,
		Currency:     shape.Currency,
		URL:          shape.URL,
		Title:        str(r["title"]),
		DeliveryTime: str(r["deliveryTime"]),
	}

	if np, ok := number(r["normalizedPrice"]); ok && np > 0 {
		o.NormalizedPrice = &np
	}

	if s := str(r["createdAt"]); s != "" {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			o.CreatedAt = &t
		}
	}

	return o, true
}

// str returns a trimmed string value, or "" for anything that is not a string.
func str(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// number accepts JSON numbers only. Numeric strings are rejected.
func number(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
