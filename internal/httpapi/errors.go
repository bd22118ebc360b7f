package httpapi

import (
	stderrors "errors"
	"net/http"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// errBadRequest marks request bodies that cannot be decoded.
var errBadRequest = stderrors.New("bad request")

var statusByKind = []struct {
	kind   error
	status int
}{
	{errors.ErrGameNotFound, http.StatusNotFound},
	{errors.ErrNotAPlayer, http.StatusForbidden},
	{errors.ErrNotYourTurn, http.StatusForbidden},
	{errors.ErrGameFull, http.StatusForbidden},
	{errors.ErrUndoDisabled, http.StatusForbidden},
	{errors.ErrStoreFull, http.StatusServiceUnavailable},
	{errors.ErrInvalidPosition, http.StatusBadRequest},
	{errors.ErrPieceNotFound, http.StatusBadRequest},
	{errors.ErrInvalidPieceCreation, http.StatusBadRequest},
	{errors.ErrRuleViolation, http.StatusBadRequest},
	{errors.ErrIllegalMove, http.StatusBadRequest},
	{errors.ErrGameFinished, http.StatusBadRequest},
	{errors.ErrEmptyHistory, http.StatusBadRequest},
	{errBadRequest, http.StatusBadRequest},
}

// statusFor maps an error to its HTTP status. Unknown errors are 500.
func statusFor(err error) int {
	for _, m := range statusByKind {
		if stderrors.Is(err, m.kind) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// errorBody is the JSON error response. Kind and Reason are set for rule
// errors so clients can tell failures apart without parsing Message.
type errorBody struct {
	Message string `json:"message"`
	Kind    string `json:"kind,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

func newErrorBody(err error) errorBody {
	body := errorBody{Message: err.Error()}
	if k := errors.Kind(err); k != nil {
		body.Kind = k.Error()
	}
	if r := errors.Reason(err); r != nil {
		body.Reason = r.Error()
	}
	return body
}
