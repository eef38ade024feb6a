package availability

import (
	domain "github.com/donaldgifford/offer-finder/pkg/types"
)

var reasonMessages = map[domain.ReasonCode]string{
	domain.ReasonNoCountryMatch: "This store does not ship to your country.",
	domain.ReasonCityRequired:   "Set your city to check whether this store delivers to you.",
	domain.ReasonNoCityMatch:    "This store does not deliver to your city.",
}

// ReasonMessage returns the user-facing text for a reason code.
func ReasonMessage(code domain.ReasonCode) string {
	if msg, ok := reasonMessages[code]; ok {
		return msg
	}
	return "This store is not available for your location."
}

// NoLocationMessage prompts the user to set a location before stores can
// be filtered.
const NoLocationMessage = "Set your country and city to see stores that deliver to you."
