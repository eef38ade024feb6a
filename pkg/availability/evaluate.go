// Package availability decides which store offers a user can actually buy
// from, given the user's location and each store's shipping rules, and ranks
// the offers that remain.
//
// The evaluation and ranking functions are pure. The only I/O step is
// ResolveProfiles, which the caller runs first to fetch store profiles.
package availability

import (
	domain "github.com/donaldgifford/offer-finder/pkg/types"
)

// Verdict is the outcome of evaluating one store for one location. The zero
// value is an available verdict.
type Verdict struct {
	reason domain.ReasonCode
}

// Available returns a verdict that allows the offer.
func Available() Verdict {
	return Verdict{}
}

// Unavailable returns a verdict that rejects the offer with the given reason.
func Unavailable(reason domain.ReasonCode) Verdict {
	return Verdict{reason: reason}
}

// OK reports whether the offer is available.
func (v Verdict) OK() bool {
	return v.reason == ""
}

// Reason returns the rejection reason, or "" when available.
func (v Verdict) Reason() domain.ReasonCode {
	return v.reason
}

// evalInput carries the state the checks share. rule is nil when the store
// has no rule for the user's country.
type evalInput struct {
	store *domain.Store
	rule  *domain.ShippingRule
	loc   *domain.Location
}

// check is a named predicate. It returns a non-empty reason to reject, or
// done=true to stop evaluating and allow.
type check struct {
	name string
	fn   func(in *evalInput) (reason domain.ReasonCode, done bool)
}

// checks run in order; the first rejection wins.
var checks = []check{
	{name: "country_supported", fn: checkCountrySupported},
	{name: "rule_exists", fn: checkRuleExists},
	{name: "ships_to_country", fn: checkShipsToCountry},
	{name: "city_present", fn: checkCityPresent},
	{name: "city_blacklist", fn: checkCityBlacklist},
	{name: "city_whitelist", fn: checkCityWhitelist},
	{name: "ships_to_city", fn: checkShipsToCity},
}

// Evaluate applies the shipping policy of a store profile to a location.
func Evaluate(profile *domain.StoreProfile, loc *domain.Location) Verdict {
	in := &evalInput{store: &profile.Store, loc: loc}
	if rule, ok := profile.RuleFor(loc.CountryCode); ok {
		in.rule = rule
	}

	for _, c := range checks {
		reason, done := c.fn(in)
		if reason != "" {
			return Unavailable(reason)
		}
		if done {
			return Available()
		}
	}
	return Available()
}

func checkCountrySupported(in *evalInput) (domain.ReasonCode, bool) {
	if !in.store.SupportsCountry(in.loc.CountryCode) {
		return domain.ReasonNoCountryMatch, false
	}
	return "", false
}

// checkRuleExists allows the offer outright when the store has no rule for
// the country: country support alone is enough.
func checkRuleExists(in *evalInput) (domain.ReasonCode, bool) {
	return "", in.rule == nil
}

func checkShipsToCountry(in *evalInput) (domain.ReasonCode, bool) {
	if !in.rule.ShipsToCountry {
		return domain.ReasonNoCountryMatch, false
	}
	// City rules only apply to stores that require a city.
	return "", !in.store.RequiresCity
}

func checkCityPresent(in *evalInput) (domain.ReasonCode, bool) {
	if !in.loc.HasCity() {
		return domain.ReasonCityRequired, false
	}
	return "", false
}

func checkCityBlacklist(in *evalInput) (domain.ReasonCode, bool) {
	if nonBlank(in.rule.CityBlacklist) && MatchesAny(in.loc.City, in.rule.CityBlacklist) {
		return domain.ReasonNoCityMatch, false
	}
	return "", false
}

func checkCityWhitelist(in *evalInput) (domain.ReasonCode, bool) {
	if !nonBlank(in.rule.CityWhitelist) {
		return "", false
	}
	if !MatchesAny(in.loc.City, in.rule.CityWhitelist) {
		return domain.ReasonNoCityMatch, false
	}
	// A whitelisted city is allowed regardless of ShipsToCity.
	return "", true
}

func checkShipsToCity(in *evalInput) (domain.ReasonCode, bool) {
	if !in.rule.ShipsToCity {
		return domain.ReasonNoCityMatch, false
	}
	return "", true
}
