package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/offer-finder/internal/api/handlers"
	"github.com/donaldgifford/offer-finder/internal/cache"
	"github.com/donaldgifford/offer-finder/internal/config"
	"github.com/donaldgifford/offer-finder/internal/engine"
	"github.com/donaldgifford/offer-finder/internal/notify"
	"github.com/donaldgifford/offer-finder/internal/store"
	"github.com/donaldgifford/offer-finder/internal/telemetry"
	"github.com/donaldgifford/offer-finder/pkg/availability"
	"github.com/donaldgifford/offer-finder/pkg/currency"
	"github.com/donaldgifford/offer-finder/pkg/extract"
	"github.com/donaldgifford/offer-finder/pkg/logger"
	domain "github.com/donaldgifford/offer-finder/pkg/types"
)

const startupTimeout = 30 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and cache warmer",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Setup(ctx, cfg.Tracing, Version)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTelemetry(flushCtx); err != nil {
			log.Warn("telemetry shutdown failed", "error", err)
		}
	}()

	startCtx, cancelStart := context.WithTimeout(ctx, startupTimeout)
	defer cancelStart()

	pg, err := store.NewPostgresStore(startCtx, cfg.Database.DSN(), int32(cfg.Database.PoolSize)) //nolint:gosec // pool size is small
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer pg.Close()

	health := map[string]handlers.Pinger{"database": pg}
	var (
		lookup      availability.StoreLookup = pg
		invalidator handlers.ProfileInvalidator
	)

	if cfg.Redis.Enabled {
		rdb, err := cache.Dial(startCtx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		defer func() { _ = rdb.Close() }()

		profiles := cache.NewProfileCache(rdb, pg,
			cache.WithTTL(cfg.Redis.ProfileTTL),
			cache.WithNegativeTTL(cfg.Redis.NegativeTTL),
			cache.WithLogger(log),
		)
		lookup, invalidator = profiles, profiles
		health["redis"] = handlers.PingFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})

		sched, err := engine.NewScheduler(profiles, cfg.Schedule.CacheWarmInterval, log)
		if err != nil {
			return fmt.Errorf("creating scheduler: %w", err)
		}
		sched.WarmNow(startCtx)
		sched.Start()
		defer func() { <-sched.Stop().Done() }()
	}

	httpClient := &http.Client{
		Timeout:   cfg.LLM.Timeout,
		Transport: telemetry.HTTPTransport(nil),
	}

	backend, err := newLLMBackend(&cfg.LLM, httpClient)
	if err != nil {
		return err
	}
	limited := extract.NewRateLimitedBackend(
		backend,
		cfg.LLM.RateLimit.PerSecond,
		cfg.LLM.RateLimit.Burst,
		cfg.LLM.RateLimit.DailyLimit,
	)
	source := extract.NewLLMOfferSource(limited,
		extract.WithTemperature(cfg.LLM.Temperature),
		extract.WithMaxTokens(cfg.LLM.MaxTokens),
	)

	conv, err := currency.NewConverter(cfg.Currency.Base, cfg.Currency.Rates)
	if err != nil {
		return fmt.Errorf("building currency table: %w", err)
	}

	finder := engine.NewFinder(pg, source,
		engine.WithLogger(log),
		engine.WithStoreLookup(lookup),
		engine.WithNotifier(newNotifier(&cfg.Notifications, httpClient, log)),
		engine.WithConverter(conv),
		engine.WithQuotaReporter(limited),
		engine.WithCaps(cfg.Offers.SingleItemCap, cfg.Offers.AlternativesCap),
		engine.WithLookupConcurrency(cfg.Offers.LookupConcurrency),
		engine.WithDefaultSort(domain.ParseSortKey(cfg.Offers.DefaultSort)),
	)

	e := newRouter(log, &routerDeps{
		store:       pg,
		finder:      finder,
		quota:       limited,
		currencies:  conv,
		invalidator: invalidator,
		health:      health,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      telemetry.HTTPHandler(e, "offer-finder"),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server",
			"addr", srv.Addr,
			"version", Version,
			"llm_backend", backend.Name(),
			"redis", cfg.Redis.Enabled,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

// newLLMBackend builds the configured backend. Every backend shares client
// so outbound calls are traced and bounded by llm.timeout.
func newLLMBackend(cfg *config.LLMConfig, client *http.Client) (extract.LLMBackend, error) {
	switch cfg.Backend {
	case "ollama":
		return extract.NewOllamaBackend(
			cfg.Ollama.Endpoint,
			cfg.Ollama.Model,
			extract.WithOllamaHTTPClient(client),
		), nil
	case "anthropic":
		opts := []extract.AnthropicOption{
			extract.WithAnthropicModel(cfg.Anthropic.Model),
			extract.WithAnthropicHTTPClient(client),
		}
		if cfg.Anthropic.APIKey != "" {
			opts = append(opts, extract.WithAnthropicAPIKey(cfg.Anthropic.APIKey))
		}
		return extract.NewAnthropicBackend(opts...), nil
	case "openai_compat":
		return extract.NewOpenAICompatBackend(
			cfg.OpenAICompat.Endpoint,
			cfg.OpenAICompat.Model,
			extract.WithOpenAICompatAPIKey(cfg.OpenAICompat.APIKey),
			extract.WithOpenAICompatHTTPClient(client),
		), nil
	default:
		return nil, fmt.Errorf("unknown llm backend %q", cfg.Backend)
	}
}

// newNotifier returns the unknown-store notifier, deduplicated per domain
// for the configured cooldown.
func newNotifier(cfg *config.NotificationsConfig, client *http.Client, log *slog.Logger) notify.Notifier {
	var next notify.Notifier
	if cfg.Discord.Enabled {
		next = notify.NewDiscordNotifier(cfg.Discord.WebhookURL, notify.WithHTTPClient(client))
	} else {
		next = notify.NewNoOpNotifier(log)
	}
	return notify.NewCooldownNotifier(next, cfg.UnknownStoreCooldown)
}
