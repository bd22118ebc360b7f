package chess

// GameStatus is the state of a game. Only Ongoing accepts moves.
type GameStatus int

const (
	Ongoing GameStatus = iota
	CheckmateWhiteWin
	CheckmateBlackWin
	ResignationWhiteWin
	ResignationBlackWin
	StalemateDraw
	InsufficientMaterialDraw
	FiftyMoveRuleDraw
	RepetitionDraw
	AgreementDraw
)

var statusNames = []string{
	"ONGOING",
	"CHECKMATE_WHITE_WIN",
	"CHECKMATE_BLACK_WIN",
	"RESIGNATION_WHITE_WIN",
	"RESIGNATION_BLACK_WIN",
	"STALEMATE_DRAW",
	"INSUFFICIENT_MATERIAL_DRAW",
	"FIFTY_MOVE_RULE_DRAW",
	"REPETITION_DRAW",
	"AGREEMENT_DRAW",
}

var statusDescriptions = []string{
	"in progress",
	"white wins by checkmate",
	"black wins by checkmate",
	"white wins by resignation",
	"black wins by resignation",
	"draw by stalemate",
	"draw by insufficient material",
	"draw by the fifty-move rule",
	"draw by threefold repetition",
	"draw by agreement",
}

// String returns the status name used in serialized game state.
func (s GameStatus) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "UNKNOWN"
}

// Description returns a human readable description of the status.
func (s GameStatus) Description() string {
	if s >= 0 && int(s) < len(statusDescriptions) {
		return statusDescriptions[s]
	}
	return "unknown"
}

// IsFinished reports whether the game has ended.
func (s GameStatus) IsFinished() bool {
	return s != Ongoing
}

// Winner returns the winning colour, or false for draws and ongoing games.
func (s GameStatus) Winner() (Color, bool) {
	switch s {
	case CheckmateWhiteWin, ResignationWhiteWin:
		return White, true
	case CheckmateBlackWin, ResignationBlackWin:
		return Black, true
	}
	return 0, false
}

// CheckmateWin returns the checkmate status won by color.
func CheckmateWin(color Color) GameStatus {
	if color == White {
		return CheckmateWhiteWin
	}
	return CheckmateBlackWin
}

// ResignationWin returns the resignation status won by color.
func ResignationWin(color Color) GameStatus {
	if color == White {
		return ResignationWhiteWin
	}
	return ResignationBlackWin
}
