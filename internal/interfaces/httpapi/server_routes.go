package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fantasy-cricket/internal/observability"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metrics *observability.Metrics) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if metrics == nil {
		return
	}

	mux.Handle("GET /metrics", metrics.Handler())
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/players/{playerID}/stats", handler.ListPlayerStats)
	mux.HandleFunc("GET /v1/rounds", handler.ListRounds)
	mux.HandleFunc("GET /v1/rounds/current", handler.CurrentRound)
	mux.HandleFunc("GET /v1/leaderboard", handler.GetLeaderboard)
	mux.HandleFunc("GET /v1/h2h-matchups", handler.ListMatchups)
	mux.HandleFunc("GET /v1/h2h-matchups/{matchupID}", handler.GetMatchup)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier, accounts AccountEnsurer) {
	auth := func(fn http.HandlerFunc) http.Handler {
		return RequireAuth(verifier, accounts, fn)
	}

	mux.Handle("GET /v1/me", auth(handler.GetMe))
	mux.Handle("PUT /v1/me", auth(handler.UpdateMe))
	mux.Handle("GET /v1/me/team", auth(handler.GetMyTeam))
	mux.Handle("POST /v1/me/team/buy", auth(handler.BuyPlayer))
	mux.Handle("POST /v1/me/team/sell", auth(handler.SellPlayer))
	mux.Handle("POST /v1/me/team/captain", auth(handler.SetCaptain))
	mux.Handle("POST /v1/me/team/substitute", auth(handler.Substitute))
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier, accounts AccountEnsurer) {
	admin := func(fn http.HandlerFunc) http.Handler {
		return RequireAuth(verifier, accounts, RequireAdmin(fn))
	}

	mux.Handle("POST /v1/admin/players", admin(handler.CreatePlayer))
	mux.Handle("DELETE /v1/admin/players/{playerID}", admin(handler.DeletePlayer))
	mux.Handle("POST /v1/admin/rounds", admin(handler.CreateRound))
	mux.Handle("POST /v1/admin/rounds/{roundID}/start", admin(handler.StartRound))
	mux.Handle("POST /v1/admin/stats", admin(handler.RecordStats))
	mux.Handle("GET /v1/admin/rounds/{roundID}/bonus-rules", admin(handler.ListBonusRules))
	mux.Handle("POST /v1/admin/rounds/{roundID}/bonus-rules", admin(handler.CreateBonusRule))
	mux.Handle("DELETE /v1/admin/bonus-rules/{ruleID}", admin(handler.DeleteBonusRule))
	mux.Handle("GET /v1/admin/rounds/{roundID}/multipliers", admin(handler.ListMultipliers))
	mux.Handle("PUT /v1/admin/rounds/{roundID}/multipliers/{playerID}", admin(handler.UpsertMultiplier))
	mux.Handle("DELETE /v1/admin/rounds/{roundID}/multipliers/{playerID}", admin(handler.DeleteMultiplier))
	mux.Handle("POST /v1/admin/rounds/{roundID}/h2h-recompute", admin(handler.RecomputeMatchups))
	mux.Handle("POST /v1/admin/h2h-matchups", admin(handler.CreateMatchup))
	mux.Handle("GET /v1/admin/users", admin(handler.ListAccounts))
}
