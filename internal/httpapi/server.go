package httpapi

import (
	"context"
	stderrors "errors"
	"net"
	"net/http"
	"sync"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/service"
)

// Server is the HTTP server for the game API.
type Server struct {
	cfg     *config.ServerConfig
	handler http.Handler
	hub     *Hub
	log     zerolog.Logger

	srvMu sync.Mutex
	srv   *http.Server
}

// NewServer builds a Server. hub must be the notifier svc publishes to.
func NewServer(cfg *config.ServerConfig, log zerolog.Logger, svc *service.GameService, hub *Hub) *Server {
	return &Server{
		cfg:     cfg,
		handler: NewRouter(log, svc, hub, cfg.AllowedOrigins),
		hub:     hub,
		log:     log,
	}
}

// Handler returns the HTTP handler, for use without a listener.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Listen listens on the configured address and serves until Close.
func (s *Server) Listen() error {
	l, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	return s.Serve(l)
}

// Serve accepts connections on l until Close.
func (s *Server) Serve(l net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		ReadTimeout:       s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		IdleTimeout:       s.cfg.IdleTimeout,
		MaxHeaderBytes:    1 << 16,
	}

	s.srvMu.Lock()
	s.srv = srv
	s.srvMu.Unlock()
	defer func() {
		s.srvMu.Lock()
		s.srv = nil
		s.srvMu.Unlock()
	}()

	s.log.Info().Str("addr", l.Addr().String()).Msg("http listening")
	err := srv.Serve(l)
	if err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close shuts the server down gracefully and disconnects spectators, whose
// hijacked connections Shutdown does not track.
func (s *Server) Close(ctx context.Context) error {
	s.hub.Close()

	s.srvMu.Lock()
	srv := s.srv
	s.srvMu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}
