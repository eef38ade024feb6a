package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/offer-finder/pkg/availability"
	domain "github.com/donaldgifford/offer-finder/pkg/types"
)

// ReasonCode pairs an exclusion code with its user-facing message.
type ReasonCode struct {
	Code    domain.ReasonCode `json:"code"    example:"NO_COUNTRY_MATCH"`
	Message string            `json:"message" example:"This store does not ship to your country."`
}

// ReasonCodesOutput lists every reason code.
type ReasonCodesOutput struct {
	Body struct {
		Reasons           []ReasonCode `json:"reasons"`
		NoLocationMessage string       `json:"noLocationMessage"`
	}
}

// ListReasonCodes returns the closed set of reason codes so clients can
// localize them.
func ListReasonCodes(_ context.Context, _ *struct{}) (*ReasonCodesOutput, error) {
	resp := &ReasonCodesOutput{}
	for _, code := range domain.ReasonCodes() {
		resp.Body.Reasons = append(resp.Body.Reasons, ReasonCode{
			Code:    code,
			Message: availability.ReasonMessage(code),
		})
	}
	resp.Body.NoLocationMessage = availability.NoLocationMessage
	return resp, nil
}

// RegisterReasonRoutes registers the reason code endpoint with the Huma API.
func RegisterReasonRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-reason-codes",
		Method:      http.MethodGet,
		Path:        "/api/v1/reason-codes",
		Summary:     "List reason codes",
		Description: "Returns every code that can explain why a store was filtered out, with its message.",
		Tags:        []string{"finder"},
	}, ListReasonCodes)
}
