package chess

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Position is an immutable board coordinate. X is the file (0 = A),
// Y is the rank (0 = rank 1).
type Position struct {
	x, y int8
}

// NewPosition returns the position at file x and rank y, both in [0,7].
func NewPosition(x, y int) (Position, error) {
	if !onBoard(x, y) {
		return Position{}, errors.Newf(errors.ErrInvalidPosition, errors.ErrPositionRange, "%d, %d", x, y)
	}
	return Position{x: int8(x), y: int8(y)}, nil
}

// ParsePosition parses two-character algebraic notation such as "E2".
// The file letter is upper case, matching what the board serializes.
func ParsePosition(s string) (Position, error) {
	if strings.TrimSpace(s) == "" {
		return Position{}, errors.New(errors.ErrInvalidPosition, errors.ErrPositionEmpty)
	}
	if len(s) != 2 {
		return Position{}, errors.Newf(errors.ErrInvalidPosition, errors.ErrPositionLength, "%q", s)
	}
	file, rank := s[0], s[1]
	if file < 'A' || file > 'H' {
		return Position{}, errors.Newf(errors.ErrInvalidPosition, errors.ErrPositionFile, "%q", s)
	}
	if rank < '1' || rank > '8' {
		return Position{}, errors.Newf(errors.ErrInvalidPosition, errors.ErrPositionRank, "%q", s)
	}
	return Position{x: int8(file - 'A'), y: int8(rank - '1')}, nil
}

// positionAt builds a position from a square index without validation.
func positionAt(index int) Position {
	return Position{x: int8(index % BoardSize), y: int8(index / BoardSize)}
}

// onBoard reports whether the coordinates are inside the board.
func onBoard(x, y int) bool {
	return x >= 0 && x < BoardSize && y >= 0 && y < BoardSize
}

// X returns the file index (0-7).
func (p Position) X() int { return int(p.x) }

// Y returns the rank index (0-7).
func (p Position) Y() int { return int(p.y) }

// Index returns the square index y*8+x.
func (p Position) Index() int {
	return int(p.y)*BoardSize + int(p.x)
}

// Offset returns the position moved by (dx, dy) and whether it is on the board.
func (p Position) Offset(dx, dy int) (Position, bool) {
	x, y := int(p.x)+dx, int(p.y)+dy
	if !onBoard(x, y) {
		return Position{}, false
	}
	return Position{x: int8(x), y: int8(y)}, true
}

// String returns the algebraic notation of the position, e.g. "E2".
func (p Position) String() string {
	return string([]byte{'A' + byte(p.x), '1' + byte(p.y)})
}

// Equal reports whether p and o are the same square.
func (p Position) Equal(o Position) bool { return p == o }

// AllPositions returns the 64 squares from A1 to H8, rank by rank.
func AllPositions() []Position {
	all := make([]Position, NumSquares)
	for i := range all {
		all[i] = positionAt(i)
	}
	return all
}

// MustParsePosition is like ParsePosition but panics on malformed input.
// It is intended for tables and tests.
func MustParsePosition(s string) Position {
	p, err := ParsePosition(s)
	if err != nil {
		panic(err)
	}
	return p
}
