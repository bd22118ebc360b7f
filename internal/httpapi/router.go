// Package httpapi serves the game service over HTTP and pushes game updates
// to websocket spectators.
package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-rules-go/internal/service"
)

// SessionCookie holds the player id of a client.
const SessionCookie = "chess_session"

const maxJSONBodyBytes int64 = 1 << 16

type ctxKey struct{}

// Handler serves the game API.
type Handler struct {
	svc *service.GameService
	hub *Hub
	log zerolog.Logger
}

// NewRouter creates the HTTP handler for the game API. Requests are access
// logged, recovered from panics and answered with CORS headers for origins.
func NewRouter(log zerolog.Logger, svc *service.GameService, hub *Hub, origins []string) http.Handler {
	h := &Handler{svc: svc, hub: hub, log: log}

	r := mux.NewRouter()
	r.HandleFunc("/healthz", h.health).Methods(http.MethodGet)

	api := r.PathPrefix("/games").Subrouter()
	api.Use(withSession)
	api.HandleFunc("", h.start).Methods(http.MethodPost)
	api.HandleFunc("/{id}", h.load).Methods(http.MethodGet)
	api.HandleFunc("/{id}/join", h.join).Methods(http.MethodPost)
	api.HandleFunc("/{id}/move", h.move).Methods(http.MethodPost)
	api.HandleFunc("/{id}/undo", h.undo).Methods(http.MethodPost)
	api.HandleFunc("/{id}/resign", h.resign).Methods(http.MethodPost)
	api.HandleFunc("/{id}/draw", h.draw).Methods(http.MethodPost)
	api.HandleFunc("/{id}/moves", h.moves).Methods(http.MethodGet)
	api.HandleFunc("/{id}/ws", h.spectate).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody{Message: "no such route"})
	})

	cors := handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)
	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{log}),
		handlers.PrintRecoveryStack(true),
	)
	access := log.With().Str("component", "access").Logger()
	return handlers.CombinedLoggingHandler(access, recovery(cors(r)))
}

// withSession makes sure every request carries a player id, issuing a new
// session cookie when the client has none.
func withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var player string
		if c, err := r.Cookie(SessionCookie); err == nil {
			if _, err := uuid.Parse(c.Value); err == nil {
				player = c.Value
			}
		}
		if player == "" {
			player = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    player,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, player)))
	})
}

func playerID(r *http.Request) string {
	id, _ := r.Context().Value(ctxKey{}).(string)
	return id
}

// recoveryLogger adapts zerolog to handlers.RecoveryHandlerLogger.
type recoveryLogger struct {
	log zerolog.Logger
}

func (l recoveryLogger) Println(v ...interface{}) {
	l.log.Error().Msg(fmt.Sprint(v...))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}
