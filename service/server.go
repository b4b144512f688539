// Package service exposes the move codec over an HTTP JSON API.
package service

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"notation/move"
)

// ActionJSON is the wire shape of one action. Piece is omitted for
// inferred actions.
type ActionJSON struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Piece       string `json:"piece,omitempty"`
	Drop        bool   `json:"drop"`
	Capture     bool   `json:"capture"`
	BoardMove   bool   `json:"boardMove"`
}

// MoveJSON is the wire shape of one decoded move.
type MoveJSON struct {
	Tokens   []string     `json:"tokens"`
	Actions  []ActionJSON `json:"actions"`
	Compound bool         `json:"compound"`
	Inferred bool         `json:"inferred"`
}

type ParseRequest struct {
	Tokens []string `json:"tokens"`
}

type ValidateResponse struct {
	Valid bool `json:"valid"`
}

type LoadRequest struct {
	Text string `json:"text"`
}

type LoadResponse struct {
	Moves []MoveJSON `json:"moves"`
}

type DumpRequest struct {
	Moves [][]string `json:"moves"` // flat token form, one sequence per move
}

type DumpResponse struct {
	Text string `json:"text"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// Server serves codec operations over HTTP.
type Server struct {
	codec *move.Codec
	mux   *http.ServeMux
}

func NewServer(c *move.Codec) *Server {
	s := &Server{codec: c, mux: http.NewServeMux()}
	s.mux.HandleFunc("/healthz", s.handleHealth)
	s.mux.HandleFunc("/parse", s.handleParse)
	s.mux.HandleFunc("/validate", s.handleValidate)
	s.mux.HandleFunc("/load", s.handleLoad)
	s.mux.HandleFunc("/dump", s.handleDump)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Start runs the HTTP server on addr until it fails.
func (s *Server) Start(addr string) error {
	log.Info().Str("addr", addr).Msg("notation service listening")
	return http.ListenAndServe(addr, s)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	var req ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "request body must be a JSON token array", "request")
		return
	}
	m, err := s.codec.Parse(req.Tokens)
	if err != nil {
		log.Debug().Str("request_id", requestID).Strs("tokens", req.Tokens).Err(err).Msg("parse rejected")
		writeCodecError(w, err)
		return
	}
	log.Debug().Str("request_id", requestID).Int("actions", m.Size()).Msg("parsed move")
	writeJSON(w, moveJSON(m))
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "request body must be a JSON token array", "request")
		return
	}
	writeJSON(w, ValidateResponse{Valid: s.codec.IsValid(req.Tokens)})
}

func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	var req LoadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "request body must be a JSON object with a text field", "request")
		return
	}
	moves, err := s.codec.Load(req.Text)
	if err != nil {
		log.Debug().Str("request_id", requestID).Str("text", req.Text).Err(err).Msg("load rejected")
		writeCodecError(w, err)
		return
	}
	resp := LoadResponse{Moves: make([]MoveJSON, len(moves))}
	for i, m := range moves {
		resp.Moves[i] = moveJSON(m)
	}
	writeJSON(w, resp)
}

func (s *Server) handleDump(w http.ResponseWriter, r *http.Request) {
	var req DumpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "request body must be a JSON object with a moves field", "request")
		return
	}
	moves := make([]move.Move, len(req.Moves))
	for i, tokens := range req.Moves {
		m, err := s.codec.Parse(tokens)
		if err != nil {
			writeCodecError(w, err)
			return
		}
		moves[i] = m
	}
	writeJSON(w, DumpResponse{Text: s.codec.Dump(moves)})
}

func moveJSON(m move.Move) MoveJSON {
	out := MoveJSON{
		Tokens:   m.Tokens(),
		Actions:  make([]ActionJSON, 0, m.Size()),
		Compound: m.IsCompound(),
		Inferred: m.HasInferred(),
	}
	for _, a := range m.Actions() {
		piece, _ := a.Piece()
		out.Actions = append(out.Actions, ActionJSON{
			Source:      a.Source(),
			Destination: a.Destination(),
			Piece:       piece,
			Drop:        a.IsDrop(),
			Capture:     a.IsCapture(),
			BoardMove:   a.IsBoardMove(),
		})
	}
	return out
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg, kind string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: msg, Kind: kind})
}

func writeCodecError(w http.ResponseWriter, err error) {
	kind := "move"
	if k, ok := move.KindOf(err); ok {
		kind = k.String()
	}
	writeError(w, http.StatusUnprocessableEntity, err.Error(), kind)
}
