package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/fantasy-cricket/internal/config"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/leaderboard"
	"github.com/riskibarqy/fantasy-cricket/internal/infrastructure/account/anubis"
	"github.com/riskibarqy/fantasy-cricket/internal/infrastructure/account/jwtauth"
	"github.com/riskibarqy/fantasy-cricket/internal/interfaces/httpapi"
	"github.com/riskibarqy/fantasy-cricket/internal/observability"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/cache"
	idgen "github.com/riskibarqy/fantasy-cricket/internal/platform/id"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/resilience"
	"github.com/riskibarqy/fantasy-cricket/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const redisCacheNamespace = "fantasy-cricket:"

// App is the assembled API: the HTTP server plus the resources it owns.
type App struct {
	Server  *http.Server
	closers []func() error
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	a := &App{}

	repos, err := openStorage(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, repos.close)

	if cfg.SeedDemoData {
		if err := seedDemoData(ctx, repos, time.Now().UTC(), logger); err != nil {
			_ = a.Close()
			return nil, fmt.Errorf("seed demo data: %w", err)
		}
	}

	cacheStore, closeCache := newCache(cfg, logger)
	a.closers = append(a.closers, closeCache)

	verifier, err := newVerifier(cfg, logger)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	ids := idgen.NewUUIDGenerator()
	h2hService := usecase.NewH2HService(repos.tx, repos.matchups, repos.accounts, repos.rounds, repos.holdings, repos.stats, ids, cfg.H2HWorkers, logger)
	services := httpapi.Services{
		Accounts:    usecase.NewAccountService(repos.tx, repos.accounts, cfg.Rules, cacheStore, logger),
		Players:     usecase.NewPlayerService(repos.tx, repos.players, repos.holdings, repos.stats, cfg.Pricing, ids, logger),
		Rounds:      usecase.NewRoundService(repos.tx, repos.rounds, repos.players, cacheStore, ids, logger),
		Teams:       usecase.NewTeamService(repos.tx, repos.accounts, repos.players, repos.holdings, repos.rounds, cfg.Rules, cacheStore, logger),
		Stats:       usecase.NewStatService(repos.tx, repos.stats, repos.players, repos.rounds, repos.bonusRules, repos.multipliers, cfg.Pricing, h2hService, cacheStore, ids, logger),
		Bonuses:     usecase.NewBonusService(repos.tx, repos.bonusRules, repos.multipliers, repos.rounds, repos.players, ids, logger),
		Leaderboard: usecase.NewLeaderboardService(repos.accounts, repos.holdings, repos.players, cacheStore, logger),
		H2H:         h2hService,
	}

	var metrics *observability.Metrics
	if cfg.MetricsEnabled {
		metrics = observability.NewMetrics()
	}

	handler := httpapi.NewHandler(services, metrics, logger)
	router := httpapi.NewRouter(handler, verifier, services.Accounts, httpapi.RouterOptions{
		Logger:             logger,
		Metrics:            metrics,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	a.Server = &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.WriteTimeout,
	}

	logger.Info("app assembled",
		"storage", cfg.StorageDriver,
		"cache_enabled", cfg.CacheEnabled,
		"cache_backend", cfg.CacheBackend,
		"auth_mode", cfg.AuthMode,
		"metrics_enabled", cfg.MetricsEnabled,
		"rules_version", cfg.Rules.Version,
	)

	return a, nil
}

// Close releases storage and cache connections in reverse order of acquisition.
func (a *App) Close() error {
	var firstErr error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.closers = nil
	return firstErr
}

func newCache(cfg config.Config, logger *logging.Logger) (cache.Loader, func() error) {
	noClose := func() error { return nil }

	if !cfg.CacheEnabled {
		return cache.Nop{}, noClose
	}

	if cfg.CacheBackend == config.CacheBackendRedis {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		store := cache.NewRedisStore[[]leaderboard.Entry](
			client,
			redisCacheNamespace,
			cfg.CacheTTL,
			resilience.DefaultCircuitBreakerConfig(),
			logger,
		)
		return store, client.Close
	}

	return cache.NewStore(cfg.CacheTTL), noClose
}

func newVerifier(cfg config.Config, logger *logging.Logger) (httpapi.TokenVerifier, error) {
	switch cfg.AuthMode {
	case config.AuthModeAnubis:
		httpClient := &http.Client{
			Timeout:   cfg.AnubisTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
		return anubis.NewClient(httpClient, anubis.Options{
			BaseURL:        cfg.AnubisBaseURL,
			IntrospectPath: cfg.AnubisIntrospectURL,
			AdminKey:       cfg.AnubisAdminKey,
			Timeout:        cfg.AnubisTimeout,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.AnubisCircuitEnabled,
				FailureThreshold: cfg.AnubisCircuitFailureCount,
				OpenTimeout:      cfg.AnubisCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.AnubisCircuitHalfOpenMaxReq,
			},
		}, logger), nil
	case config.AuthModeJWT:
		verifier, err := jwtauth.NewVerifier(cfg.AuthJWTSecret, cfg.AuthJWTIssuer)
		if err != nil {
			return nil, fmt.Errorf("build jwt verifier: %w", err)
		}
		return verifier, nil
	default:
		return nil, fmt.Errorf("unsupported auth mode %q", cfg.AuthMode)
	}
}
