// Package chess provides core chess types: squares, pieces, the board,
// board snapshots and the per-game history used for undo and draw rules.
package chess

// Color represents the colour of a piece or player.
// The zero value is not a colour.
type Color int

const (
	White Color = iota + 1
	Black
)

// Board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize
)

// String returns the name used in serialized game state.
func (c Color) String() string {
	switch c {
	case White:
		return "WHITE"
	case Black:
		return "BLACK"
	}
	return "NONE"
}

// Valid reports whether c is White or Black.
func (c Color) Valid() bool {
	return c == White || c == Black
}

// Opposite returns the opposite colour.
func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

// Direction returns +1 for White, -1 for Black (pawn direction).
func (c Color) Direction() int {
	if c == White {
		return 1
	}
	return -1
}

// PawnStartRank returns the rank index pawns start on.
func (c Color) PawnStartRank() int {
	if c == White {
		return 1
	}
	return 6
}

// BackRank returns the rank index the pieces start on.
func (c Color) BackRank() int {
	if c == White {
		return 0
	}
	return 7
}

// PromotionRank returns the rank index on which a pawn of this colour promotes.
func (c Color) PromotionRank() int {
	return c.Opposite().BackRank()
}

// Type represents a chess piece type. The zero value is not a type.
type Type int

const (
	NoType Type = iota
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
	NumTypes
)

// String returns the string representation of a piece type.
func (t Type) String() string {
	names := []string{"NONE", "KING", "QUEEN", "ROOK", "BISHOP", "KNIGHT", "PAWN"}
	if t >= 0 && int(t) < len(names) {
		return names[t]
	}
	return "UNKNOWN"
}

// Valid reports whether t is one of the six piece types.
func (t Type) Valid() bool {
	return t > NoType && t < NumTypes
}

// Letter returns the single letter representation of a piece type (uppercase).
func (t Type) Letter() byte {
	letters := []byte{' ', 'K', 'Q', 'R', 'B', 'N', 'P'}
	if t >= 0 && int(t) < len(letters) {
		return letters[t]
	}
	return '?'
}

// IsMajor reports whether t is a queen or rook.
func (t Type) IsMajor() bool {
	return t == Queen || t == Rook
}

// IsMinor reports whether t is a bishop or knight.
func (t Type) IsMinor() bool {
	return t == Bishop || t == Knight
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
