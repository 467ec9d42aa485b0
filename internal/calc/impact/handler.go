package impact

import (
	"encoding/json"
	"errors"
	"net/http"

	"LCA/internal/metrics"

	"github.com/rs/zerolog"
)

type Handler struct {
	MaxAmount float64
	Log       zerolog.Logger
	Metrics   *metrics.Metrics
}

type Response struct {
	Input   Input   `json:"input"`
	Result  Result  `json:"result"`
	Entries []Entry `json:"entries"`
}

type CatalogItem struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Unit   string `json:"unit"`
	Factor Vector `json:"factor"`
}

type Catalog struct {
	Materials     []CatalogItem `json:"materials"`
	EnergySources []CatalogItem `json:"energy_sources"`
	MaxAmount     float64       `json:"max_amount"`
}

// Limit is the configured amount bound, DefaultMaxAmount when unset.
func (h *Handler) Limit() float64 {
	if h.MaxAmount > 0 {
		return h.MaxAmount
	}
	return DefaultMaxAmount
}

// Compute runs the aggregator with the handler's bound and records the outcome.
func (h *Handler) Compute(in Input) (Result, error) {
	in = in.Normalize()
	res, err := CalculateWithLimit(in, h.Limit())
	if err != nil {
		h.Metrics.CalculationError(ErrorKind(err))
		h.Log.Debug().Err(err).Msg("calculation rejected")
		return Result{}, err
	}
	h.Metrics.Calculation(in.Material.String(), in.EnergySource.String())
	return res, nil
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	input = input.Normalize()
	res, err := h.Compute(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Response{Input: input, Result: res, Entries: res.Entries()})
}

func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(BuildCatalog(h.Limit()))
}

func BuildCatalog(limit float64) Catalog {
	c := Catalog{MaxAmount: limit}
	for _, m := range materialOrder {
		c.Materials = append(c.Materials, CatalogItem{ID: m.String(), Label: m.Label(), Unit: "kg", Factor: materialFactors[m]})
	}
	for _, e := range energyOrder {
		c.EnergySources = append(c.EnergySources, CatalogItem{ID: e.String(), Label: e.Label(), Unit: "kWh", Factor: energyFactors[e]})
	}
	return c
}

// ErrorKind maps an aggregator error to a short metric label.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidIdentifier):
		return "invalid_identifier"
	case errors.Is(err, ErrInvalidAmount):
		return "invalid_amount"
	default:
		return "other"
	}
}
