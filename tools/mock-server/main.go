// Package main implements a mock Ollama server for local development.
// It answers /api/generate with canned offers from a JSON fixture so the
// offer finder can run end to end without a model.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// fixtureOffer is one canned store offer. Title "{{title}}" is replaced
// with the product from the prompt.
type fixtureOffer struct {
	StoreName    string  `json:"storeName"`
	Domain       string  `json:"domain"`
	Price        float64 `json:"price"`
	Currency     string  `json:"currency"`
	URL          string  `json:"url"`
	Title        string  `json:"title,omitempty"`
	DeliveryTime string  `json:"deliveryTime,omitempty"`
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Format string `json:"format"`
}

type generateResponse struct {
	Model           string `json:"model"`
	Response        string `json:"response"`
	Done            bool   `json:"done"`
	PromptEvalCount int    `json:"prompt_eval_count"`
	EvalCount       int    `json:"eval_count"`
}

var maxOffersRe = regexp.MustCompile(`up to (\d+) other`)

func main() {
	port := flag.Int("port", 11434, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/offers.json", "path to offers fixture")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fixture, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "offers", len(fixture))

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/generate", generateHandler(logger, fixture))
	mux.HandleFunc("GET /api/tags", tagsHandler)

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock Ollama server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadFixture(path string) ([]fixtureOffer, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var offers []fixtureOffer
	if err := json.Unmarshal(data, &offers); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return offers, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func tagsHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(map[string]any{
		"models": []map[string]string{{"name": "mock"}},
	})
}

func generateHandler(logger *slog.Logger, fixture []fixtureOffer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		product := productFromPrompt(req.Prompt)
		if product == "" {
			writeError(w, http.StatusBadRequest, "prompt has no Product line")
			return
		}

		offers := renderOffers(fixture, product, maxOffers(req.Prompt, len(fixture)))
		content, err := json.Marshal(map[string]any{"offers": offers})
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(generateResponse{
			Model:           req.Model,
			Response:        string(content),
			Done:            true,
			PromptEvalCount: len(strings.Fields(req.Prompt)),
			EvalCount:       len(content) / 4,
		})
		logger.Info("generate", "product", product, "offers", len(offers))
	}
}

// productFromPrompt returns the value of the "Product:" line.
func productFromPrompt(prompt string) string {
	sc := bufio.NewScanner(strings.NewReader(prompt))
	for sc.Scan() {
		if v, ok := strings.CutPrefix(strings.TrimSpace(sc.Text()), "Product:"); ok {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// maxOffers reads the "up to N" bound from the prompt, falling back to def.
func maxOffers(prompt string, def int) int {
	m := maxOffersRe.FindStringSubmatch(prompt)
	if m == nil {
		return def
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func renderOffers(fixture []fixtureOffer, product string, limit int) []fixtureOffer {
	limit = min(limit, len(fixture))
	out := make([]fixtureOffer, 0, limit)
	for _, o := range fixture[:limit] {
		o.Title = strings.ReplaceAll(o.Title, "{{title}}", product)
		out = append(out, o)
	}
	return out
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
