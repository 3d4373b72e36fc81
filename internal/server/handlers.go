package server

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/renato-design/poker-player-the-better-donkey-killers/internal/protocol"
	"github.com/renato-design/poker-player-the-better-donkey-killers/internal/table"
)

// maxBodySize caps request bodies; a full game state is a few kilobytes.
const maxBodySize = 1 << 20

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, "OK")
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, s.version)
}

// handleBet answers with the bet as decimal text. Bodies that do not decode
// get a 400 with "0" so the dealer still sees a fold.
func (s *Server) handleBet(w http.ResponseWriter, r *http.Request) {
	gs, err := protocol.DecodeGameState(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		s.logger.Warn("Rejecting bet request", "id", middleware.GetReqID(r.Context()), "error", err)
		writeText(w, http.StatusBadRequest, "0")
		return
	}
	writeText(w, http.StatusOK, s.bet(r, gs))
}

func (s *Server) handleShowdown(w http.ResponseWriter, r *http.Request) {
	_, _ = io.Copy(io.Discard, http.MaxBytesReader(w, r.Body, maxBodySize))
	writeText(w, http.StatusOK, "OK")
}

// handleAction is the form-encoded dispatcher older runners post to /.
func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := r.ParseForm(); err != nil {
		writeText(w, http.StatusBadRequest, "0")
		return
	}

	action := r.PostForm.Get("action")
	switch action {
	case "bet_request":
		if !r.PostForm.Has("game_state") {
			writeText(w, http.StatusOK, "Missing game_state!")
			return
		}
		gs, err := protocol.DecodeGameState(strings.NewReader(r.PostForm.Get("game_state")))
		if err != nil {
			s.logger.Warn("Rejecting bet request", "id", middleware.GetReqID(r.Context()), "error", err)
			writeText(w, http.StatusBadRequest, "0")
			return
		}
		writeText(w, http.StatusOK, s.bet(r, gs))
	case "showdown":
		writeText(w, http.StatusOK, "OK")
	case "version":
		writeText(w, http.StatusOK, s.version)
	default:
		writeText(w, http.StatusOK, "Unknown action '"+action+"'!")
	}
}

func (s *Server) bet(r *http.Request, gs table.GameState) string {
	amount := s.decider.Decide(r.Context(), gs)
	s.logger.Info("Bet",
		"id", middleware.GetReqID(r.Context()),
		"game", gs.GameID,
		"round", gs.Round,
		"amount", amount)
	return strconv.Itoa(amount)
}
