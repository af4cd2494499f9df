package httpapi

import (
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/abhisek/gurukul/internal/pipeline"
	"github.com/abhisek/gurukul/internal/provider"
	"github.com/abhisek/gurukul/internal/tutor"
)

type voiceRequest struct {
	Action  string        `json:"action"`
	Audio   string        `json:"audio"`
	Text    string        `json:"text"`
	Context tutor.Context `json:"context"`
}

type voiceResponse struct {
	Success    bool   `json:"success"`
	Transcript string `json:"transcript,omitempty"`
	Text       string `json:"text,omitempty"`
	Audio      string `json:"audio,omitempty"`
	Error      string `json:"error,omitempty"`
}

func (s *Server) handleVoiceProcess(w http.ResponseWriter, r *http.Request) {
	var req voiceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	action, err := pipeline.ParseAction(req.Action)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	preq := pipeline.Request{
		Action:  action,
		Text:    req.Text,
		Context: req.Context,
	}
	if req.Audio != "" {
		audio, mime, err := decodeAudioPayload(req.Audio)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		preq.Audio = audio
		preq.AudioMime = mime
	}

	result, err := s.orch.Run(r.Context(), preq)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := voiceResponse{
		Success:    result.Succeeded,
		Transcript: result.Transcript,
		Text:       result.ReplyText,
	}
	if !result.Succeeded {
		resp.Error = result.ErrorMessage
	}
	if len(result.Audio) > 0 {
		resp.Audio = audioDataURI(result.Audio, result.AudioMime)
	}
	if result.SpeechError != "" {
		s.logger.Warn("speech synthesis degraded", "error", result.SpeechError)
	}

	// Pipeline failures are well-formed results, not transport errors.
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleVoiceAvailability(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{
		"sttAvailable":    s.registry.Available(provider.CapabilitySTT),
		"llmAvailable":    s.registry.Available(provider.CapabilityLLM),
		"ttsAvailable":    s.registry.Available(provider.CapabilityTTS),
		"renderAvailable": s.registry.Available(provider.CapabilityRender),
	})
}

func audioDataURI(audio []byte, mime string) string {
	if mime == "" {
		mime = "audio/mpeg"
	}
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(audio))
}
