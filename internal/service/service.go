// Package service hosts many games for remote players. It binds players to
// colours, enforces whose turn it is, and publishes every change to
// spectators.
package service

import (
	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/store"
)

// Notifier receives the new view of a game after every change. Publish is
// called with the game locked, so it must not block.
type Notifier interface {
	Publish(gameID string, v *output.GameView)
}

type nopNotifier struct{}

func (nopNotifier) Publish(string, *output.GameView) {}

// GameService runs game operations against a store.
type GameService struct {
	store     *store.MemoryStore
	log       zerolog.Logger
	notifier  Notifier
	allowUndo bool
}

// Option configures a GameService.
type Option func(*GameService)

// WithLogger sets the service logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(s *GameService) {
		s.log = log
	}
}

// WithNotifier sets where game updates are published.
func WithNotifier(n Notifier) Option {
	return func(s *GameService) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithUndo enables or disables taking back moves. Undo is allowed by default.
func WithUndo(enabled bool) Option {
	return func(s *GameService) {
		s.allowUndo = enabled
	}
}

// New creates a GameService over st.
func New(st *store.MemoryStore, opts ...Option) *GameService {
	s := &GameService{
		store:     st,
		log:       zerolog.Nop(),
		notifier:  nopNotifier{},
		allowUndo: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start creates a game with playerID bound to white.
func (s *GameService) Start(playerID string) (*output.GameView, error) {
	id, err := s.store.Create(playerID)
	if err != nil {
		s.log.Warn().Err(err).Msg("game not created")
		return nil, err
	}
	s.log.Info().Str("game_id", id).Str("player", playerID).Msg("game started")
	return s.Load(id)
}

// Join binds playerID to black. Joining a game one already plays is a no-op.
func (s *GameService) Join(gameID, playerID string) (*output.GameView, error) {
	return s.update(gameID, func(e *store.Entry) error {
		if _, ok := e.ColorOf(playerID); ok {
			return nil
		}
		if e.Black != "" {
			return errors.Wrapf(errors.ErrGameFull, "game %s", gameID)
		}
		e.Black = playerID
		s.log.Info().Str("game_id", gameID).Str("player", playerID).Msg("player joined")
		return nil
	})
}

// Load returns the current view of a game.
func (s *GameService) Load(gameID string) (*output.GameView, error) {
	var v *output.GameView
	err := s.store.View(gameID, func(e store.Entry) error {
		v = view(&e)
		return nil
	})
	return v, err
}

// Move plays from -> to, given in algebraic notation, for playerID.
func (s *GameService) Move(gameID, playerID, from, to string) (*output.GameView, error) {
	src, err := chess.ParsePosition(from)
	if err != nil {
		return nil, err
	}
	dst, err := chess.ParsePosition(to)
	if err != nil {
		return nil, err
	}

	return s.update(gameID, func(e *store.Entry) error {
		color, err := s.player(e, gameID, playerID)
		if err != nil {
			return err
		}
		g := e.Game
		if !g.Status().IsFinished() && color != g.Turn() {
			return errors.Wrapf(errors.ErrNotYourTurn, "%s to move", g.Turn())
		}
		if err := g.Move(src, dst); err != nil {
			s.log.Debug().Err(err).Str("game_id", gameID).Str("from", from).Str("to", to).Msg("move rejected")
			return err
		}
		e.DrawOffer = 0
		s.log.Info().Str("game_id", gameID).Str("from", from).Str("to", to).
			Str("status", g.Status().String()).Msg("move played")
		return nil
	})
}

// Undo takes back the last move. Either player may undo.
func (s *GameService) Undo(gameID, playerID string) (*output.GameView, error) {
	if !s.allowUndo {
		return nil, errors.ErrUndoDisabled
	}
	return s.update(gameID, func(e *store.Entry) error {
		if _, err := s.player(e, gameID, playerID); err != nil {
			return err
		}
		if err := e.Game.Undo(); err != nil {
			return err
		}
		e.DrawOffer = 0
		s.log.Info().Str("game_id", gameID).Str("player", playerID).Msg("move undone")
		return nil
	})
}

// Resign ends the game with a win for playerID's opponent.
func (s *GameService) Resign(gameID, playerID string) (*output.GameView, error) {
	return s.update(gameID, func(e *store.Entry) error {
		color, err := s.player(e, gameID, playerID)
		if err != nil {
			return err
		}
		if err := e.Game.Resign(color); err != nil {
			return err
		}
		s.log.Info().Str("game_id", gameID).Str("status", e.Game.Status().String()).Msg("player resigned")
		return nil
	})
}

// OfferDraw records a draw offer from playerID. The game is drawn when the
// opponent has an offer pending. Any move or undo withdraws the offer.
func (s *GameService) OfferDraw(gameID, playerID string) (*output.GameView, error) {
	return s.update(gameID, func(e *store.Entry) error {
		color, err := s.player(e, gameID, playerID)
		if err != nil {
			return err
		}
		if e.Game.Status().IsFinished() {
			return e.Game.AgreeDraw()
		}
		if e.DrawOffer != color.Opposite() {
			e.DrawOffer = color
			s.log.Info().Str("game_id", gameID).Str("color", color.String()).Msg("draw offered")
			return nil
		}
		if err := e.Game.AgreeDraw(); err != nil {
			return err
		}
		e.DrawOffer = 0
		s.log.Info().Str("game_id", gameID).Msg("draw agreed")
		return nil
	})
}

// LegalMoves lists the legal moves of the side to move.
func (s *GameService) LegalMoves(gameID string) (*output.MovesView, error) {
	var v *output.MovesView
	err := s.store.View(gameID, func(e store.Entry) error {
		v = output.NewMovesView(e.Game)
		return nil
	})
	return v, err
}

// Watch calls fn with the current view of a game while holding its lock.
// Updates to the game wait until fn returns.
func (s *GameService) Watch(gameID string, fn func(v *output.GameView)) error {
	return s.store.View(gameID, func(e store.Entry) error {
		fn(view(&e))
		return nil
	})
}

// update runs fn on the locked entry and, if fn succeeds, publishes and
// returns the new view.
func (s *GameService) update(gameID string, fn func(e *store.Entry) error) (*output.GameView, error) {
	var v *output.GameView
	err := s.store.Update(gameID, func(e *store.Entry) error {
		if err := fn(e); err != nil {
			return err
		}
		v = view(e)
		s.notifier.Publish(gameID, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (s *GameService) player(e *store.Entry, gameID, playerID string) (chess.Color, error) {
	color, ok := e.ColorOf(playerID)
	if !ok {
		return 0, errors.Wrapf(errors.ErrNotAPlayer, "game %s", gameID)
	}
	return color, nil
}

func view(e *store.Entry) *output.GameView {
	v := output.NewGameView(e.Game)
	v.WhiteJoined = e.White != ""
	v.BlackJoined = e.Black != ""
	if e.DrawOffer.Valid() {
		v.DrawOffer = e.DrawOffer.String()
	}
	return v
}
