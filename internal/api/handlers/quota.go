package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

// QuotaSource reports the LLM call quota. Satisfied by
// extract.RateLimitedBackend.
type QuotaSource interface {
	MaxDaily() int64
	DailyCount() int64
	Remaining() int64
	ResetAt() time.Time
}

// QuotaHandler provides the LLM quota status endpoint.
type QuotaHandler struct {
	src QuotaSource
}

// NewQuotaHandler creates a new QuotaHandler. A nil source reports zeroes.
func NewQuotaHandler(src QuotaSource) *QuotaHandler {
	return &QuotaHandler{src: src}
}

// QuotaOutput is the response body for the quota endpoint.
type QuotaOutput struct {
	Body struct {
		DailyLimit int64     `json:"daily_limit" example:"500"                  doc:"Configured daily LLM call limit, 0 when unlimited"`
		DailyUsed  int64     `json:"daily_used"  example:"42"                   doc:"LLM calls used in the current 24-hour window"`
		Remaining  int64     `json:"remaining"   example:"458"                  doc:"Calls remaining in the current window, -1 when unlimited"`
		ResetAt    time.Time `json:"reset_at"    example:"2026-06-16T14:30:00Z" doc:"When the current 24-hour window expires"`
	}
}

// GetQuota returns the current LLM quota status.
func (h *QuotaHandler) GetQuota(_ context.Context, _ *struct{}) (*QuotaOutput, error) {
	resp := &QuotaOutput{}
	if h.src == nil {
		return resp, nil
	}

	resp.Body.DailyLimit = max(h.src.MaxDaily(), 0)
	resp.Body.DailyUsed = h.src.DailyCount()
	resp.Body.Remaining = h.src.Remaining()
	resp.Body.ResetAt = h.src.ResetAt()

	return resp, nil
}

// RegisterQuotaRoutes registers the quota endpoint with the Huma API.
func RegisterQuotaRoutes(api huma.API, h *QuotaHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-quota",
		Method:      http.MethodGet,
		Path:        "/api/v1/quota",
		Summary:     "Get LLM quota status",
		Description: "Returns the daily LLM call usage, remaining quota, and window reset time.",
		Tags:        []string{"system"},
	}, h.GetQuota)
}
