package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/donaldgifford/offer-finder/pkg/availability"
)

// ErrMalformedResponse is returned when the LLM output is not an offer list.
var ErrMalformedResponse = errors.New("malformed offer response")

const defaultOfferCount = availability.DefaultAlternativesCap

// LLMOfferSource implements OfferSource using an LLM backend.
type LLMOfferSource struct {
	backend     LLMBackend
	temperature float64
	maxTokens   int
}

// LLMOfferSourceOption configures the LLMOfferSource.
type LLMOfferSourceOption func(*LLMOfferSource)

// WithTemperature sets the LLM temperature for offer generation.
func WithTemperature(t float64) LLMOfferSourceOption {
	return func(s *LLMOfferSource) {
		s.temperature = t
	}
}

// WithMaxTokens sets the max tokens for LLM responses.
func WithMaxTokens(n int) LLMOfferSourceOption {
	return func(s *LLMOfferSource) {
		if n > 0 {
			s.maxTokens = n
		}
	}
}

// NewLLMOfferSource creates a new LLMOfferSource.
func NewLLMOfferSource(backend LLMBackend, opts ...LLMOfferSourceOption) *LLMOfferSource {
	s := &LLMOfferSource{
		backend:     backend,
		temperature: 0.2,
		maxTokens:   defaultMaxTokens,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateCandidates asks the backend for offers and decodes its reply.
func (s *LLMOfferSource) GenerateCandidates(
	ctx context.Context,
	req OfferRequest,
) ([]availability.RawOffer, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, errors.New("offer request has no title")
	}
	if req.Max <= 0 {
		req.Max = defaultOfferCount
	}

	prompt, err := RenderOffersPrompt(req)
	if err != nil {
		return nil, err
	}

	resp, err := s.backend.Generate(ctx, GenerateRequest{
		Prompt:      prompt,
		SystemMsg:   offerSystemMsg,
		Format:      FormatJSON,
		Temperature: s.temperature,
		MaxTokens:   s.maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("calling %s for offers: %w", s.backend.Name(), err)
	}

	offers, err := ParseOffers(resp.Content)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", s.backend.Name(), err)
	}
	return offers, nil
}

// ParseOffers decodes an LLM reply into raw offers. It accepts a bare JSON
// array or an object with an "offers" array, optionally wrapped in a
// markdown code fence. Numbers are kept as float64.
func ParseOffers(content string) ([]availability.RawOffer, error) {
	payload := bytes.TrimSpace([]byte(stripCodeFence(content)))
	if len(payload) == 0 {
		return nil, fmt.Errorf("%w: empty content", ErrMalformedResponse)
	}

	var offers []availability.RawOffer
	switch payload[0] {
	case '[':
		if err := json.Unmarshal(payload, &offers); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
		}
	case '{':
		var wrapped struct {
			Offers *[]availability.RawOffer `json:"offers"`
		}
		if err := json.Unmarshal(payload, &wrapped); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
		}
		if wrapped.Offers == nil {
			return nil, fmt.Errorf("%w: missing offers array", ErrMalformedResponse)
		}
		offers = *wrapped.Offers
	default:
		return nil, fmt.Errorf("%w: expected JSON array or object", ErrMalformedResponse)
	}

	if offers == nil {
		offers = []availability.RawOffer{}
	}
	return offers, nil
}

// stripCodeFence removes a surrounding ``` or ```json fence.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	} else {
		s = strings.TrimPrefix(s, "json")
	}
	return strings.TrimSuffix(strings.TrimSpace(s), "```")
}
