package availability

import (
	"cmp"
	"slices"

	domain "github.com/donaldgifford/offer-finder/pkg/types"
)

// Profiles maps a normalized store domain to its profile. Domains missing
// from the map are treated as not onboarded.
type Profiles map[string]domain.StoreProfile

// rejection pairs an excluded offer with its reason.
type rejection struct {
	offer  domain.CandidateOffer
	reason domain.ReasonCode
}

type partition struct {
	available    []domain.CandidateOffer
	rejected     []rejection
	cityRequired bool
}

// FilterAndRank partitions offers into available and unavailable for the
// given location and sorts the available ones by sortKey.
//
// A nil location, or one without a country code, disables filtering. Offers
// whose domain has no profile are available.
func FilterAndRank(
	offers []domain.CandidateOffer,
	loc *domain.Location,
	profiles Profiles,
	sortKey domain.SortKey,
) domain.AvailabilityResult {
	p := partitionOffers(offers, loc, profiles)
	Sort(p.available, sortKey)

	res := domain.AvailabilityResult{
		Available:    p.available,
		Unavailable:  make([]domain.UnavailableOffer, 0, len(p.rejected)),
		CityRequired: p.cityRequired,
	}
	for _, r := range p.rejected {
		res.Unavailable = append(res.Unavailable, domain.UnavailableOffer{
			StoreName:     r.offer.StoreName,
			Domain:        r.offer.Domain,
			ReasonCode:    r.reason,
			ReasonMessage: ReasonMessage(r.reason),
		})
	}
	return res
}

// Annotate applies the same policy as FilterAndRank but returns a single
// list: ranked available offers first, then unavailable offers in input
// order, each tagged with its availability and reason.
func Annotate(
	offers []domain.CandidateOffer,
	loc *domain.Location,
	profiles Profiles,
	sortKey domain.SortKey,
) []domain.AnnotatedOffer {
	p := partitionOffers(offers, loc, profiles)
	Sort(p.available, sortKey)

	out := make([]domain.AnnotatedOffer, 0, len(offers))
	for _, o := range p.available {
		out = append(out, domain.AnnotatedOffer{
			CandidateOffer: o,
			Availability:   domain.AvailabilityAvailable,
		})
	}
	for _, r := range p.rejected {
		out = append(out, domain.AnnotatedOffer{
			CandidateOffer: r.offer,
			Availability:   domain.AvailabilityUnavailable,
			Reason:         ReasonMessage(r.reason),
			ReasonCode:     r.reason,
		})
	}
	return out
}

func partitionOffers(
	offers []domain.CandidateOffer,
	loc *domain.Location,
	profiles Profiles,
) partition {
	p := partition{
		available: make([]domain.CandidateOffer, 0, len(offers)),
	}

	if !filteringEnabled(loc) {
		p.available = append(p.available, offers...)
		return p
	}

	for _, o := range offers {
		profile, ok := profiles[domain.NormalizeDomain(o.Domain)]
		if !ok {
			p.available = append(p.available, o)
			continue
		}

		v := Evaluate(&profile, loc)
		if v.OK() {
			p.available = append(p.available, o)
			continue
		}

		if v.Reason() == domain.ReasonCityRequired {
			p.cityRequired = true
		}
		p.rejected = append(p.rejected, rejection{offer: o, reason: v.Reason()})
	}
	return p
}

func filteringEnabled(loc *domain.Location) bool {
	return loc != nil && domain.NormalizeCountry(loc.CountryCode) != ""
}

// Sort orders offers in place by key. All orderings are stable.
func Sort(offers []domain.CandidateOffer, key domain.SortKey) {
	switch key {
	case domain.SortFastestShipping:
		slices.SortStableFunc(offers, byDeliveryTime)
	case domain.SortNewest:
		slices.SortStableFunc(offers, byNewest)
	default:
		slices.SortStableFunc(offers, byPrice)
	}
}

func byPrice(a, b domain.CandidateOffer) int {
	return cmp.Compare(a.EffectivePrice(), b.EffectivePrice())
}

// byDeliveryTime compares delivery-time strings lexically; missing values
// sort last.
func byDeliveryTime(a, b domain.CandidateOffer) int {
	switch {
	case a.DeliveryTime == "" && b.DeliveryTime == "":
		return 0
	case a.DeliveryTime == "":
		return 1
	case b.DeliveryTime == "":
		return -1
	}
	return cmp.Compare(a.DeliveryTime, b.DeliveryTime)
}

// byNewest orders by creation time descending; missing timestamps sort last.
func byNewest(a, b domain.CandidateOffer) int {
	switch {
	case a.CreatedAt == nil && b.CreatedAt == nil:
		return 0
	case a.CreatedAt == nil:
		return 1
	case b.CreatedAt == nil:
		return -1
	}
	return b.CreatedAt.Compare(*a.CreatedAt)
}
