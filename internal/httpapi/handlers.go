package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

type moveRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) start(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.Start(playerID(r))
	h.respond(w, r, http.StatusCreated, v, err)
}

// load answers with the game view, or a board diagram for ?format=text.
func (h *Handler) load(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.Load(mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, r, err)
		return
	}

	format := r.URL.Query().Get("format")
	if format != "text" {
		writeJSON(w, http.StatusOK, v)
		return
	}
	ow, _ := output.NewWriter(w, format)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := ow.WriteView(v); err != nil {
		h.log.Error().Err(err).Str("game_id", v.GameID).Msg("rendering board")
	}
}

func (h *Handler) join(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.Join(mux.Vars(r)["id"], playerID(r))
	h.respond(w, r, http.StatusOK, v, err)
}

func (h *Handler) move(w http.ResponseWriter, r *http.Request) {
	var body moveRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.fail(w, r, errors.Wrapf(errBadRequest, "invalid json: %v", err))
		return
	}
	v, err := h.svc.Move(mux.Vars(r)["id"], playerID(r), body.From, body.To)
	h.respond(w, r, http.StatusOK, v, err)
}

func (h *Handler) undo(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.Undo(mux.Vars(r)["id"], playerID(r))
	h.respond(w, r, http.StatusOK, v, err)
}

func (h *Handler) resign(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.Resign(mux.Vars(r)["id"], playerID(r))
	h.respond(w, r, http.StatusOK, v, err)
}

func (h *Handler) draw(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.OfferDraw(mux.Vars(r)["id"], playerID(r))
	h.respond(w, r, http.StatusOK, v, err)
}

func (h *Handler) moves(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.LegalMoves(mux.Vars(r)["id"])
	h.respond(w, r, http.StatusOK, v, err)
}

// spectate answers 404 for unknown games before upgrading.
func (h *Handler) spectate(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, err := h.svc.Load(id); err != nil {
		h.fail(w, r, err)
		return
	}
	h.hub.Serve(w, r, id, h.svc)
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, status int, v interface{}, err error) {
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, status, v)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.log.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Int("status", status).Msg("request failed")
	}
	writeJSON(w, status, newErrorBody(err))
}
