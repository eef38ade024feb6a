package extract

import (
	"bytes"
	"fmt"
	"strconv"
	"text/template"
)

// offerSystemMsg frames every offer generation call.
const offerSystemMsg = `You are a shopping assistant that finds where a product can be bought online.
Only list real online stores that sell the product. Never invent URLs you are not confident exist.`

const offersTmpl = `Find up to {{.Max}} other online stores that sell this product.

Product: {{.Title}}
{{- if .OriginalURL}}
Currently seen at: {{.OriginalURL}}
{{- end}}
{{- if .Price}}
Reference price: {{.Price}}{{if .Currency}} {{.Currency}}{{end}}
{{- end}}
{{- if .CountryCode}}
Shopper country (ISO 3166-1 alpha-2): {{.CountryCode}}{{if .City}}, city: {{.City}}{{end}}
Prefer stores that ship to this country.
{{- end}}

Respond ONLY with a JSON object matching the schema below. Omit stores you cannot price.

Schema:
{
  "offers": [
    {
      "storeName": string,
      "domain": string (e.g. "example.com"),
      "price": number,
      "currency": string (ISO 4217),
      "url": string (product page),
      "title": string | null,
      "deliveryTime": string | null (e.g. "2-4 days")
    }
  ]
}`

// PromptData holds the template variables for the offer prompt.
type PromptData struct {
	Title       string
	OriginalURL string
	Price       string
	Currency    string
	CountryCode string
	City        string
	Max         int
}

var offersTemplate = template.Must(template.New("offers").Parse(offersTmpl))

// RenderOffersPrompt renders the candidate offer prompt for req.
func RenderOffersPrompt(req OfferRequest) (string, error) {
	data := PromptData{
		Title:       req.Title,
		OriginalURL: req.OriginalURL,
		Currency:    req.Currency,
		CountryCode: req.CountryCode,
		City:        req.City,
		Max:         req.Max,
	}
	if req.Price != nil {
		data.Price = strconv.FormatFloat(*req.Price, 'f', 2, 64)
	}

	var buf bytes.Buffer
	if err := offersTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering offers prompt: %w", err)
	}
	return buf.String(), nil
}
