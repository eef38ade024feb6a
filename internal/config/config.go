// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/offer-finder/pkg/availability"
	"github.com/donaldgifford/offer-finder/pkg/currency"
	domain "github.com/donaldgifford/offer-finder/pkg/types"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Redis         RedisConfig         `yaml:"redis"`
	LLM           LLMConfig           `yaml:"llm"`
	Offers        OffersConfig        `yaml:"offers"`
	Currency      CurrencyConfig      `yaml:"currency"`
	Schedule      ScheduleConfig      `yaml:"schedule"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Tracing       TracingConfig       `yaml:"tracing"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// RedisConfig defines the store profile cache. The cache is skipped when
// disabled.
type RedisConfig struct {
	Enabled     bool          `yaml:"enabled"`
	Addr        string        `yaml:"addr"`
	Password    string        `yaml:"password"`
	DB          int           `yaml:"db"`
	ProfileTTL  time.Duration `yaml:"profile_ttl"`
	NegativeTTL time.Duration `yaml:"negative_ttl"`
}

// LLMConfig defines LLM backend settings.
type LLMConfig struct {
	Backend      string             `yaml:"backend"` // ollama, anthropic, openai_compat
	Ollama       OllamaConfig       `yaml:"ollama"`
	Anthropic    AnthropicConfig    `yaml:"anthropic"`
	OpenAICompat OpenAICompatConfig `yaml:"openai_compat"`
	Temperature  float64            `yaml:"temperature"`
	MaxTokens    int                `yaml:"max_tokens"`
	Timeout      time.Duration      `yaml:"timeout"`
	RateLimit    RateLimitConfig    `yaml:"rate_limit"`
}

// OllamaConfig defines Ollama-specific settings.
type OllamaConfig struct {
	Endpoint string `yaml:"endpoint"`
	Model    string `yaml:"model"`
}

// AnthropicConfig defines Anthropic API settings. An empty APIKey falls
// back to ANTHROPIC_API_KEY.
type AnthropicConfig struct {
	Model  string `yaml:"model"`
	APIKey string `yaml:"api_key"`
}

// OpenAICompatConfig defines OpenAI-compatible endpoint settings.
type OpenAICompatConfig struct {
	Endpoint string `yaml:"endpoint"`
	Model    string `yaml:"model"`
	APIKey   string `yaml:"api_key"`
}

// RateLimitConfig defines LLM call rate limiting. DailyLimit 0 disables the
// daily quota.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// OffersConfig defines candidate offer handling.
type OffersConfig struct {
	SingleItemCap     int    `yaml:"single_item_cap"`
	AlternativesCap   int    `yaml:"alternatives_cap"`
	LookupConcurrency int    `yaml:"lookup_concurrency"`
	DefaultSort       string `yaml:"default_sort"`
}

// CurrencyConfig defines the static conversion table. Rates are the value
// of one unit of each currency in Base. Empty Rates uses the built-in table.
type CurrencyConfig struct {
	Base  string             `yaml:"base"`
	Rates map[string]float64 `yaml:"rates"`
}

// ScheduleConfig defines cron intervals.
type ScheduleConfig struct {
	CacheWarmInterval time.Duration `yaml:"cache_warm_interval"`
}

// NotificationsConfig defines notification targets.
type NotificationsConfig struct {
	Discord              DiscordConfig `yaml:"discord"`
	UnknownStoreCooldown time.Duration `yaml:"unknown_store_cooldown"`
}

// DiscordConfig defines Discord webhook settings.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// TracingConfig defines OpenTelemetry export. Nothing is exported when
// Endpoint is empty.
type TracingConfig struct {
	Endpoint       string        `yaml:"endpoint"`
	Insecure       bool          `yaml:"insecure"`
	ServiceName    string        `yaml:"service_name"`
	SampleRatio    float64       `yaml:"sample_ratio"`
	MetricInterval time.Duration `yaml:"metric_interval"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyRedisDefaults(&cfg.Redis)
	applyLLMDefaults(&cfg.LLM)
	applyOffersDefaults(&cfg.Offers)
	applyCurrencyDefaults(&cfg.Currency)
	applyScheduleDefaults(&cfg.Schedule)
	applyNotificationsDefaults(&cfg.Notifications)
	applyTracingDefaults(&cfg.Tracing)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	// Offer generation waits on the LLM.
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 120 * time.Second
	}
	if s.ShutdownTimeout == 0 {
		s.ShutdownTimeout = 15 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyRedisDefaults(r *RedisConfig) {
	if r.Addr == "" {
		r.Addr = "localhost:6379"
	}
	if r.ProfileTTL == 0 {
		r.ProfileTTL = time.Hour
	}
	if r.NegativeTTL == 0 {
		r.NegativeTTL = 10 * time.Minute
	}
}

func applyLLMDefaults(l *LLMConfig) {
	if l.Backend == "" {
		l.Backend = "ollama"
	}
	if l.Temperature == 0 {
		l.Temperature = 0.2
	}
	if l.MaxTokens == 0 {
		l.MaxTokens = 2048
	}
	if l.Timeout == 0 {
		l.Timeout = 90 * time.Second
	}
	applyRateLimitDefaults(&l.RateLimit)
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 2.0
	}
	if r.Burst == 0 {
		r.Burst = 4
	}
}

func applyOffersDefaults(o *OffersConfig) {
	if o.SingleItemCap == 0 {
		o.SingleItemCap = availability.DefaultSingleItemCap
	}
	if o.AlternativesCap == 0 {
		o.AlternativesCap = availability.DefaultAlternativesCap
	}
	if o.LookupConcurrency == 0 {
		o.LookupConcurrency = 8
	}
	if o.DefaultSort == "" {
		o.DefaultSort = string(domain.SortLowestPrice)
	}
}

func applyCurrencyDefaults(c *CurrencyConfig) {
	if c.Base == "" {
		c.Base = currency.DefaultBase
	}
	if len(c.Rates) == 0 && c.Base == currency.DefaultBase {
		c.Rates = maps.Clone(currency.DefaultRates)
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.CacheWarmInterval == 0 {
		s.CacheWarmInterval = 30 * time.Minute
	}
}

func applyNotificationsDefaults(n *NotificationsConfig) {
	if n.UnknownStoreCooldown == 0 {
		n.UnknownStoreCooldown = 24 * time.Hour
	}
}

func applyTracingDefaults(t *TracingConfig) {
	if t.ServiceName == "" {
		t.ServiceName = "offer-finder"
	}
	if t.SampleRatio == 0 {
		t.SampleRatio = 1.0
	}
	if t.MetricInterval == 0 {
		t.MetricInterval = time.Minute
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, errors.New("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, errors.New("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, errors.New("database.user is required"))
	}

	errs = append(errs, validateLLM(&cfg.LLM)...)

	if cfg.Offers.SingleItemCap < 0 || cfg.Offers.AlternativesCap < 0 {
		errs = append(errs, errors.New("offers caps must not be negative"))
	}
	if cfg.Offers.LookupConcurrency < 0 {
		errs = append(errs, errors.New("offers.lookup_concurrency must not be negative"))
	}
	if string(domain.ParseSortKey(cfg.Offers.DefaultSort)) != cfg.Offers.DefaultSort {
		errs = append(errs, fmt.Errorf(
			"offers.default_sort must be one of: lowest_price, fastest_shipping, newest (got %q)",
			cfg.Offers.DefaultSort,
		))
	}

	if _, err := currency.NewConverter(cfg.Currency.Base, cfg.Currency.Rates); err != nil {
		errs = append(errs, fmt.Errorf("currency: %w", err))
	}

	if cfg.Redis.Enabled && cfg.Redis.Addr == "" {
		errs = append(errs, errors.New("redis.addr is required when redis is enabled"))
	}

	if cfg.Notifications.Discord.Enabled && cfg.Notifications.Discord.WebhookURL == "" {
		errs = append(errs, errors.New(
			"notifications.discord.webhook_url is required when discord is enabled",
		))
	}

	if cfg.Tracing.SampleRatio < 0 || cfg.Tracing.SampleRatio > 1 {
		errs = append(errs, fmt.Errorf(
			"tracing.sample_ratio must be between 0 and 1 (got %v)", cfg.Tracing.SampleRatio,
		))
	}

	return errors.Join(errs...)
}

func validateLLM(l *LLMConfig) []error {
	var errs []error

	switch l.Backend {
	case "ollama":
		if l.Ollama.Endpoint == "" {
			errs = append(errs, errors.New("llm.ollama.endpoint is required when backend is ollama"))
		}
		if l.Ollama.Model == "" {
			errs = append(errs, errors.New("llm.ollama.model is required when backend is ollama"))
		}
	case "anthropic":
	case "openai_compat":
		if l.OpenAICompat.Endpoint == "" {
			errs = append(
				errs,
				errors.New("llm.openai_compat.endpoint is required when backend is openai_compat"),
			)
		}
	default:
		errs = append(errs, fmt.Errorf(
			"llm.backend must be one of: ollama, anthropic, openai_compat (got %q)",
			l.Backend,
		))
	}

	if l.RateLimit.PerSecond < 0 || l.RateLimit.DailyLimit < 0 {
		errs = append(errs, errors.New("llm.rate_limit values must not be negative"))
	}

	return errs
}
