package httpapi

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

// decodeAudioPayload strips an optional data-URI prefix and base64-decodes
// the audio. It returns the raw bytes and the declared mime type, if any.
func decodeAudioPayload(audio string) ([]byte, string, error) {
	mime := ""
	if strings.HasPrefix(audio, "data:") {
		rest, ok := strings.CutPrefix(audio, "data:")
		if !ok {
			return nil, "", fmt.Errorf("malformed data URI")
		}
		header, payload, ok := strings.Cut(rest, ",")
		if !ok {
			return nil, "", fmt.Errorf("malformed data URI")
		}
		mime = strings.TrimSuffix(header, ";base64")
		audio = payload
	}

	raw, err := base64.StdEncoding.DecodeString(audio)
	if err != nil {
		return nil, "", fmt.Errorf("decode audio: %w", err)
	}
	return raw, mime, nil
}
