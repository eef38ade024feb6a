// Package extract generates candidate store offers for a wishlist item with
// an LLM, abstracted behind interfaces for testability.
package extract

import (
	"context"

	"github.com/donaldgifford/offer-finder/pkg/availability"
)

// FormatJSON is the format string for requesting JSON mode from LLM backends.
const FormatJSON = "json"

// GenerateRequest defines the input for an LLM generation call.
type GenerateRequest struct {
	Prompt      string
	SystemMsg   string
	Format      string // FormatJSON for JSON mode
	Temperature float64
	MaxTokens   int
}

// TokenUsage tracks LLM token consumption.
type TokenUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// GenerateResponse holds the result of an LLM generation call.
type GenerateResponse struct {
	Content string
	Model   string
	Usage   TokenUsage
}

// LLMBackend defines the interface for LLM text generation.
type LLMBackend interface {
	Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error)
	Name() string
}

// OfferRequest describes the item to find other stores for.
type OfferRequest struct {
	Title       string
	OriginalURL string
	Price       *float64
	Currency    string
	CountryCode string
	City        string
	Max         int
}

// OfferSource produces raw candidate offers for an item. The result is
// unvalidated; callers pass it through availability.Collect.
type OfferSource interface {
	GenerateCandidates(ctx context.Context, req OfferRequest) ([]availability.RawOffer, error)
}
