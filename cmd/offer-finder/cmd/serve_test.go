package cmd

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/offer-finder/internal/config"
	"github.com/donaldgifford/offer-finder/internal/notify"
	"github.com/donaldgifford/offer-finder/pkg/logger"
)

func TestNewLLMBackend(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cfg      config.LLMConfig
		wantName string
		wantErr  bool
	}{
		{
			name: "ollama",
			cfg: config.LLMConfig{
				Backend: "ollama",
				Ollama:  config.OllamaConfig{Endpoint: "http://localhost:11434", Model: "llama3"},
			},
			wantName: "ollama",
		},
		{
			name: "anthropic",
			cfg: config.LLMConfig{
				Backend:   "anthropic",
				Anthropic: config.AnthropicConfig{APIKey: "sk-test"},
			},
			wantName: "anthropic",
		},
		{
			name: "openai compatible",
			cfg: config.LLMConfig{
				Backend:      "openai_compat",
				OpenAICompat: config.OpenAICompatConfig{Endpoint: "http://localhost:8000", Model: "m"},
			},
			wantName: "openai_compat",
		},
		{
			name:    "unknown",
			cfg:     config.LLMConfig{Backend: "gpt-on-a-napkin"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			backend, err := newLLMBackend(&tt.cfg, http.DefaultClient)
			if tt.wantErr {
				require.ErrorContains(t, err, "unknown llm backend")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, backend.Name())
		})
	}
}

func TestNewNotifier_AlwaysAppliesCooldown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  config.NotificationsConfig
	}{
		{name: "discord disabled"},
		{
			name: "discord enabled",
			cfg: config.NotificationsConfig{
				Discord: config.DiscordConfig{Enabled: true, WebhookURL: "http://localhost/hook"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			n := newNotifier(&tt.cfg, http.DefaultClient, logger.Discard())
			assert.IsType(t, &notify.CooldownNotifier{}, n)
		})
	}
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cmd := versionCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "offer-finder "+Version+"\n", out.String())
}
