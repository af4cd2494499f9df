package httpapi

import (
	"net/http"

	"github.com/abhisek/gurukul/internal/provider"
	"github.com/abhisek/gurukul/internal/tts"
	"github.com/abhisek/gurukul/internal/tutor"
)

// Named voices exposed to callers. Both languages share the same bilingual
// ElevenLabs voices.
var voiceCatalog = map[string]string{
	"english_female": "pFZP5JQG7iQjIQuC4Bku",
	"english_male":   "onwK4e9ZLuTAKqWW03F9",
	"hindi_female":   "pFZP5JQG7iQjIQuC4Bku",
	"hindi_male":     "onwK4e9ZLuTAKqWW03F9",
}

type ttsRequest struct {
	Text     string `json:"text"`
	VoiceID  string `json:"voiceId"`
	Language string `json:"language"`
}

type ttsResponse struct {
	Success  bool   `json:"success"`
	Text     string `json:"text"`
	Audio    string `json:"audio,omitempty"`
	Duration int    `json:"duration,omitempty"`
	Error    string `json:"error,omitempty"`
}

func (s *Server) handleTTS(w http.ResponseWriter, r *http.Request) {
	var req ttsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "missing required field: text")
		return
	}

	if !s.registry.Available(provider.CapabilityTTS) {
		// Text-only degradation rather than a hard failure.
		writeJSON(w, http.StatusOK, ttsResponse{
			Success: false,
			Text:    req.Text,
			Error:   "no speech provider configured",
		})
		return
	}

	speech, err := s.orch.SynthesizeText(r.Context(), req.Text, tts.SpeechOptions{
		VoiceID:  req.VoiceID,
		Language: tutor.NormalizeLanguage(req.Language),
	})
	if err != nil {
		s.logger.Warn("tts failed", "error", err)
		writeJSON(w, http.StatusOK, ttsResponse{
			Success: false,
			Text:    req.Text,
			Error:   "failed to generate speech",
		})
		return
	}

	writeJSON(w, http.StatusOK, ttsResponse{
		Success:  true,
		Text:     req.Text,
		Audio:    audioDataURI(speech.Audio, speech.MimeType),
		Duration: estimateSpeechSeconds(req.Text),
	})
}

func (s *Server) handleTTSAvailability(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"available": s.registry.Available(provider.CapabilityTTS),
		"voices":    voiceCatalog,
	})
}

// estimateSpeechSeconds roughly maps word count to duration at conversational
// pace (~2.5 words per second).
func estimateSpeechSeconds(text string) int {
	words := 0
	inWord := false
	for _, r := range text {
		switch {
		case r == ' ' || r == '\n' || r == '\t':
			inWord = false
		case !inWord:
			words++
			inWord = true
		}
	}
	return (words*2 + 4) / 5
}
