package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jei-ifri/showdown/internal/bracket"
	"github.com/jei-ifri/showdown/internal/config"
	"github.com/jei-ifri/showdown/internal/httputil"
	"github.com/jei-ifri/showdown/internal/middleware"
	"github.com/jei-ifri/showdown/internal/service"
	"github.com/jei-ifri/showdown/internal/store"
	"github.com/jei-ifri/showdown/internal/ws"
	"github.com/jmoiron/sqlx"
)

func newRouter(cfg *config.Config, database *sqlx.DB, hub *ws.Hub) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	teamStore := store.NewTeamStore(database)
	winnerStore := store.NewWinnerStore(database)
	registrations := service.NewRegistrationService(teamStore)
	brackets := service.NewBracketService(teamStore, winnerStore)
	auth := service.NewAuthService(cfg.AdminPasswordHash, cfg.JWTSecret)

	// Serve the SPA and its assets
	fileServer := http.FileServer(http.Dir("./static"))
	r.Handle("/static/*", http.StripPrefix("/static/", fileServer))

	r.Get("/ws", hub.ServeWS)

	r.Post("/api/register", func(w http.ResponseWriter, r *http.Request) {
		var in service.RegistrationInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			httputil.BadRequest(w, "Invalid JSON body", err)
			return
		}

		team, err := registrations.Register(r.Context(), in)
		if err != nil {
			switch {
			case errors.Is(err, bracket.ErrTournamentFull):
				httputil.BadRequest(w, "Tournament is full! (Max 16 teams)", err)
			case errors.Is(err, bracket.ErrValidation):
				httputil.BadRequest(w, err.Error(), err)
			default:
				httputil.InternalServerError(w, "Failed to register team", err)
			}
			return
		}

		hub.Broadcast(ws.EventRegistrations)
		httputil.JSON(w, http.StatusOK, team)
	})

	r.Get("/api/registrations", func(w http.ResponseWriter, r *http.Request) {
		teams, err := registrations.ListTeams(r.Context())
		if err != nil {
			httputil.InternalServerError(w, "Failed to list teams", err)
			return
		}
		if teams == nil {
			teams = []bracket.Team{}
		}
		httputil.JSON(w, http.StatusOK, teams)
	})

	r.Get("/api/pools", func(w http.ResponseWriter, r *http.Request) {
		pools, err := brackets.GetPools(r.Context())
		if err != nil {
			httputil.InternalServerError(w, "Failed to compute pools", err)
			return
		}

		type poolView struct {
			Label string         `json:"label"`
			Teams []bracket.Team `json:"teams"`
		}
		out := make([]poolView, 0, bracket.PoolCount)
		for i, pool := range pools {
			if pool == nil {
				pool = []bracket.Team{}
			}
			out = append(out, poolView{Label: bracket.PoolLabels[i], Teams: pool})
		}
		httputil.JSON(w, http.StatusOK, out)
	})

	r.Get("/api/matches", func(w http.ResponseWriter, r *http.Request) {
		winners, err := brackets.ListWinners(r.Context())
		if err != nil {
			httputil.InternalServerError(w, "Failed to list match winners", err)
			return
		}
		httputil.JSON(w, http.StatusOK, winners)
	})

	r.Get("/api/bracket/{matchID}", func(w http.ResponseWriter, r *http.Request) {
		matchID := chi.URLParam(r, "matchID")
		slots, err := brackets.ResolveMatch(r.Context(), matchID)
		if err != nil {
			if errors.Is(err, bracket.ErrNotFound) {
				httputil.NotFound(w, "Unknown match", err)
				return
			}
			httputil.InternalServerError(w, "Failed to resolve match", err)
			return
		}
		httputil.JSON(w, http.StatusOK, slots)
	})

	r.Get("/api/champion", func(w http.ResponseWriter, r *http.Request) {
		champion, err := brackets.GetChampion(r.Context())
		if err != nil {
			httputil.InternalServerError(w, "Failed to resolve champion", err)
			return
		}
		httputil.JSON(w, http.StatusOK, map[string]*bracket.Team{"champion": champion})
	})

	r.Post("/api/admin/login", func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			httputil.BadRequest(w, "Invalid JSON body", err)
			return
		}

		token, err := auth.Login(in.Password)
		if err != nil {
			if errors.Is(err, bracket.ErrUnauthorized) {
				httputil.Unauthorized(w, "Unauthorized", err)
				return
			}
			httputil.InternalServerError(w, "Failed to issue token", err)
			return
		}
		httputil.JSON(w, http.StatusOK, map[string]string{"token": token})
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin(cfg.JWTSecret))

		r.Patch("/api/admin/teams/{id}/paid", func(w http.ResponseWriter, r *http.Request) {
			teamID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
			if err != nil {
				httputil.BadRequest(w, "Invalid team ID", err)
				return
			}

			var in struct {
				IsPaid bool `json:"isPaid"`
			}
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				httputil.BadRequest(w, "Invalid JSON body", err)
				return
			}

			if err := registrations.SetPaid(r.Context(), teamID, in.IsPaid); err != nil {
				writeServiceError(w, "Failed to update payment status", err)
				return
			}

			hub.Broadcast(ws.EventRegistrations)
			httputil.JSON(w, http.StatusOK, map[string]bool{"success": true})
		})

		r.Delete("/api/admin/teams/{id}", func(w http.ResponseWriter, r *http.Request) {
			teamID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
			if err != nil {
				httputil.BadRequest(w, "Invalid team ID", err)
				return
			}

			if err := registrations.DeleteTeam(r.Context(), teamID); err != nil {
				writeServiceError(w, "Failed to delete team", err)
				return
			}

			hub.Broadcast(ws.EventRegistrations)
			httputil.JSON(w, http.StatusOK, map[string]bool{"success": true})
		})

		r.Post("/api/admin/matches", func(w http.ResponseWriter, r *http.Request) {
			var in struct {
				MatchID  string `json:"matchId"`
				WinnerID int64  `json:"winnerId"`
			}
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				httputil.BadRequest(w, "Invalid JSON body", err)
				return
			}

			if err := brackets.RecordWinner(r.Context(), in.MatchID, in.WinnerID); err != nil {
				writeServiceError(w, "Failed to record winner", err)
				return
			}

			hub.Broadcast(ws.EventMatches)
			httputil.JSON(w, http.StatusOK, map[string]bool{"success": true})
		})

		r.Delete("/api/admin/matches", func(w http.ResponseWriter, r *http.Request) {
			if err := brackets.ResetBracket(r.Context()); err != nil {
				writeServiceError(w, "Failed to reset bracket", err)
				return
			}

			hub.Broadcast(ws.EventMatches)
			httputil.JSON(w, http.StatusOK, map[string]bool{"success": true})
		})
	})

	return r
}

// writeServiceError maps business errors onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, msg string, err error) {
	switch {
	case errors.Is(err, bracket.ErrUnauthorized):
		httputil.Unauthorized(w, "Unauthorized", err)
	case errors.Is(err, bracket.ErrNotFound):
		httputil.NotFound(w, err.Error(), err)
	case errors.Is(err, bracket.ErrValidation):
		httputil.BadRequest(w, err.Error(), err)
	default:
		httputil.InternalServerError(w, msg, err)
	}
}
