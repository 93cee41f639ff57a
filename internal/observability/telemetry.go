package observability

import (
	"context"
	"net/http"
	"net/http/pprof"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/grafana/pyroscope-go"
	"github.com/riskibarqy/fantasy-cricket/internal/config"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
	"github.com/uptrace/uptrace-go/uptrace"
)

// Telemetry owns the optional out-of-band exporters: Uptrace tracing,
// Pyroscope profiling and a pprof listener. Each is started only when its
// config flag is set.
type Telemetry struct {
	logger *logging.Logger
	stops  map[string]func(context.Context) error
}

func StartTelemetry(cfg config.Config, logger *logging.Logger) (*Telemetry, error) {
	if logger == nil {
		logger = logging.Default()
	}
	t := &Telemetry{logger: logger, stops: make(map[string]func(context.Context) error)}

	t.startTracing(cfg)
	if err := t.startProfiling(cfg); err != nil {
		_ = t.Shutdown(context.Background())
		return nil, err
	}
	t.startPprof(cfg)

	return t, nil
}

// Enabled reports which exporters are running.
func (t *Telemetry) Enabled(name string) bool {
	_, ok := t.stops[name]
	return ok
}

// Shutdown flushes and stops every running exporter concurrently.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	p := pool.New().WithErrors()
	for name, stop := range t.stops {
		p.Go(func() error {
			if err := stop(ctx); err != nil {
				return err
			}
			t.logger.Info("telemetry stopped", "exporter", name)
			return nil
		})
	}
	t.stops = map[string]func(context.Context) error{}
	return p.Wait()
}

func (t *Telemetry) startTracing(cfg config.Config) {
	if !cfg.UptraceEnabled || strings.TrimSpace(cfg.UptraceDSN) == "" {
		t.logger.Info("uptrace disabled", "enabled", cfg.UptraceEnabled)
		return
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(cfg.UptraceDSN),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
	)
	t.stops["uptrace"] = uptrace.Shutdown
	t.logger.Info("uptrace enabled", "environment", cfg.AppEnv)
}

func (t *Telemetry) startProfiling(cfg config.Config) error {
	if !cfg.PyroscopeEnabled {
		return nil
	}

	profiler, err := pyroscope.Start(pyroscope.Config{
		ApplicationName:   cfg.PyroscopeAppName,
		ServerAddress:     cfg.PyroscopeServerAddress,
		AuthToken:         cfg.PyroscopeAuthToken,
		BasicAuthUser:     cfg.PyroscopeBasicAuthUser,
		BasicAuthPassword: cfg.PyroscopeBasicAuthPassword,
		UploadRate:        cfg.PyroscopeUploadRate,
		Tags: map[string]string{
			"env":     cfg.AppEnv,
			"storage": cfg.StorageDriver,
		},
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileInuseSpace,
			pyroscope.ProfileGoroutines,
			pyroscope.ProfileMutexDuration,
		},
	})
	if err != nil {
		return err
	}

	t.stops["pyroscope"] = func(context.Context) error { return profiler.Stop() }
	t.logger.Info("pyroscope enabled", "application", cfg.PyroscopeAppName)
	return nil
}

func (t *Telemetry) startPprof(cfg config.Config) {
	if !cfg.PprofEnabled {
		return
	}

	srv := &http.Server{
		Addr:              cfg.PprofAddr,
		Handler:           pprofMux(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			t.logger.Error("pprof listener failed", "addr", cfg.PprofAddr, "error", err)
		}
	}()

	t.stops["pprof"] = srv.Shutdown
	t.logger.Info("pprof listening", "addr", cfg.PprofAddr)
}

func pprofMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /debug/pprof/", pprof.Index)
	mux.HandleFunc("GET /debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("GET /debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("GET /debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("GET /debug/pprof/trace", pprof.Trace)
	return mux
}
