package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/abhisek/gurukul/internal/renderjobs"
)

type renderGenerateRequest struct {
	Prompt  string `json:"prompt"`
	Quality string `json:"quality"`
}

type renderStatusWrite struct {
	Status      string `json:"status"`
	ResultURL   string `json:"resultUrl"`
	ErrorDetail string `json:"errorDetail"`
}

type renderJobView struct {
	JobID       string         `json:"jobId"`
	Prompt      string         `json:"prompt"`
	Quality     string         `json:"quality"`
	Status      string         `json:"status"`
	SceneParams map[string]any `json:"sceneParams,omitempty"`
	ResultURL   string         `json:"resultUrl,omitempty"`
	ErrorDetail string         `json:"errorDetail,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func (s *Server) handleRenderGenerate(w http.ResponseWriter, r *http.Request) {
	if !s.limiter.Allow(clientKey(r)) {
		writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
		return
	}

	var req renderGenerateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Prompt == "" {
		writeError(w, http.StatusBadRequest, "missing prompt")
		return
	}

	quality, err := renderjobs.ParseQuality(req.Quality)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	job, err := s.jobs.Submit(r.Context(), req.Prompt, quality)
	if err != nil {
		var rej *renderjobs.ErrPromptRejected
		if errors.As(err, &rej) {
			writeError(w, http.StatusBadRequest, rej.Error())
			return
		}
		s.logger.Error("render submit failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to queue render job")
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]any{
		"jobId":     job.ID,
		"status":    string(job.Status),
		"message":   "Your request has been queued for rendering.",
		"sceneType": job.SceneParams["sceneType"],
	})
}

func (s *Server) handleRenderStatus(w http.ResponseWriter, r *http.Request) {
	job, err := s.jobs.Get(r.Context(), r.PathValue("jobId"))
	if err != nil {
		var nf *renderjobs.ErrJobNotFound
		if errors.As(err, &nf) {
			writeError(w, http.StatusNotFound, "job not found")
			return
		}
		s.logger.Error("render status read failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to read job")
		return
	}
	writeJSON(w, http.StatusOK, jobView(job))
}

// handleRenderStatusWrite is the callback the external renderer uses to
// report progress and completion.
func (s *Server) handleRenderStatusWrite(w http.ResponseWriter, r *http.Request) {
	var req renderStatusWrite
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	job, err := s.jobs.UpdateStatus(r.Context(), r.PathValue("jobId"), renderjobs.Status(req.Status), req.ResultURL, req.ErrorDetail)
	if err != nil {
		var nf *renderjobs.ErrJobNotFound
		if errors.As(err, &nf) {
			writeError(w, http.StatusNotFound, "job not found")
			return
		}
		var term *renderjobs.ErrJobTerminal
		if errors.As(err, &term) {
			writeError(w, http.StatusConflict, term.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, jobView(job))
}

func jobView(job *renderjobs.Job) renderJobView {
	return renderJobView{
		JobID:       job.ID,
		Prompt:      job.Prompt,
		Quality:     string(job.Quality),
		Status:      string(job.Status),
		SceneParams: job.SceneParams,
		ResultURL:   job.ResultURL,
		ErrorDetail: job.ErrorDetail,
		CreatedAt:   job.CreatedAt,
		UpdatedAt:   job.UpdatedAt,
	}
}
