package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fantasy-cricket/internal/observability"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
)

type RouterOptions struct {
	Logger             *logging.Logger
	Metrics            *observability.Metrics
	CORSAllowedOrigins []string
}

func NewRouter(handler *Handler, verifier TokenVerifier, accounts AccountEnsurer, opts RouterOptions) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, opts.Metrics)
	registerPublicRoutes(mux, handler)
	registerAuthorizedRoutes(mux, handler, verifier, accounts)
	registerAdminRoutes(mux, handler, verifier, accounts)

	return RequestTracing(
		RequestMetrics(opts.Metrics, mux,
			RequestLogging(logger,
				CORS(opts.CORSAllowedOrigins, recoverPanic(logger, mux)),
			),
		),
	)
}
