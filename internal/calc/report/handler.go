package report

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"LCA/internal/calc/impact"
	"LCA/internal/metrics"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// LinkVerifier resolves a signed download token into the request it encodes.
type LinkVerifier interface {
	Verify(token string) (impact.Input, string, error)
}

type Handler struct {
	Calc    *impact.Handler
	Links   LinkVerifier
	Log     zerolog.Logger
	Metrics *metrics.Metrics
	Now     func() time.Time
}

func (h *Handler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// Generate renders the report for a JSON calculation request.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input impact.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	h.serve(w, input, uuid.NewString())
}

// Download renders the report behind a signed link.
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	if h.Links == nil {
		http.NotFound(w, r)
		return
	}
	input, ref, err := h.Links.Verify(mux.Vars(r)["token"])
	if err != nil {
		h.Log.Info().Err(err).Msg("report link rejected")
		http.NotFound(w, r)
		return
	}
	h.serve(w, input, ref)
}

func (h *Handler) serve(w http.ResponseWriter, input impact.Input, ref string) {
	res, err := h.Calc.Compute(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	err = Render(&buf, Input{Request: input, Result: res, Reference: ref, GeneratedAt: h.now()})
	h.Metrics.Report(err == nil)
	if err != nil {
		h.Log.Error().Err(err).Str("reference", ref).Msg("report generation failed")
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\""+FileName+"\"")
	buf.WriteTo(w)
}
