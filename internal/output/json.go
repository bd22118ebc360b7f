package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// GameView is the serialized state of a game returned to clients.
type GameView struct {
	GameID      string            `json:"gameId"`
	CurrentTurn string            `json:"currentTurn"`
	Status      string            `json:"status"`
	Description string            `json:"description"`
	Winner      string            `json:"winner,omitempty"`
	Board       map[string]string `json:"board"` // square -> piece symbol, empty squares omitted
	Check       bool              `json:"check"`

	MoveCount      int `json:"moveCount"`
	FiftyMoveCount int `json:"fiftyMoveCount"`

	WhiteJoined bool   `json:"whiteJoined"`
	BlackJoined bool   `json:"blackJoined"`
	DrawOffer   string `json:"drawOffer,omitempty"` // colour with a pending draw offer
}

// MoveView is one legal move in algebraic notation.
type MoveView struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// MovesView lists the legal moves of the side to move.
type MovesView struct {
	GameID string     `json:"gameId"`
	Turn   string     `json:"turn"`
	Moves  []MoveView `json:"moves"`
}

// NewGameView converts a game to its view. Player fields are left to the
// caller, which knows who is bound to the game.
func NewGameView(g *game.Game) *GameView {
	status := g.Status()
	v := &GameView{
		GameID:         g.ID(),
		CurrentTurn:    g.Turn().String(),
		Status:         status.String(),
		Description:    status.Description(),
		Board:          g.Board().Symbols(),
		Check:          g.InCheck(),
		MoveCount:      g.MoveCount(),
		FiftyMoveCount: g.FiftyMoveCount(),
	}
	if winner, ok := status.Winner(); ok {
		v.Winner = winner.String()
	}
	return v
}

// NewMovesView converts the legal moves of a game to their view.
func NewMovesView(g *game.Game) *MovesView {
	return &MovesView{
		GameID: g.ID(),
		Turn:   g.Turn().String(),
		Moves:  convertMoves(g.LegalMoves()),
	}
}

func convertMoves(moves []engine.Move) []MoveView {
	out := make([]MoveView, len(moves))
	for i, m := range moves {
		out[i] = MoveView{From: m.From.String(), To: m.To.String()}
	}
	return out
}

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
