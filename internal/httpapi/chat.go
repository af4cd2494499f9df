package httpapi

import (
	"net/http"
	"strings"

	"github.com/abhisek/gurukul/internal/pipeline"
	"github.com/abhisek/gurukul/internal/tutor"
)

type chatRequest struct {
	Grade        int          `json:"grade"`
	Concept      string       `json:"concept"`
	MasteryLevel float64      `json:"masteryLevel"`
	Style        string       `json:"learningStyle"`
	Question     string       `json:"question"`
	History      []tutor.Turn `json:"conversationHistory"`
}

type chatResponse struct {
	Success bool   `json:"success"`
	Text    string `json:"text,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if strings.TrimSpace(req.Question) == "" {
		writeError(w, http.StatusBadRequest, "question is required")
		return
	}
	if strings.TrimSpace(req.Concept) == "" {
		writeError(w, http.StatusBadRequest, "concept is required")
		return
	}
	if req.Grade < 1 {
		writeError(w, http.StatusBadRequest, "grade is required")
		return
	}
	style, err := tutor.ParseStyle(req.Style)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	reply, err := s.orch.Chat(r.Context(), pipeline.ChatRequest{
		Grade:        req.Grade,
		Concept:      req.Concept,
		MasteryLevel: req.MasteryLevel,
		Style:        style,
		Question:     req.Question,
		History:      req.History,
	})
	if err != nil {
		// Stage failures are well-formed results, not transport errors.
		writeJSON(w, http.StatusOK, chatResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Success: true, Text: reply})
}
