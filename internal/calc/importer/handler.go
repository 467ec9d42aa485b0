package importer

import (
	"bytes"
	"encoding/json"
	"net/http"

	"LCA/internal/calc/impact"

	"github.com/rs/zerolog"
)

const maxUploadSize = 10 << 20 // 10MB

type Handler struct {
	Calc *impact.Handler
	Log  zerolog.Logger
}

type ImportResult struct {
	Count   int            `json:"count"`
	Results []ImportedItem `json:"results"`
	Skipped []Skipped      `json:"skipped"`
}

type ImportedItem struct {
	Line   int           `json:"line"`
	Input  impact.Input  `json:"input"`
	Result impact.Result `json:"result"`
}

// Upload calculates every row of an uploaded xlsx sheet. With ?format=xlsx
// the results come back as a workbook instead of JSON.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, skipped, err := ReadWorkbook(file)
	if err != nil {
		http.Error(w, "Invalid file: "+err.Error(), http.StatusBadRequest)
		return
	}

	out := ImportResult{Results: []ImportedItem{}, Skipped: skipped}
	if out.Skipped == nil {
		out.Skipped = []Skipped{}
	}
	var sheetRows []ResultRow
	for _, row := range rows {
		res, err := h.Calc.Compute(row.Input)
		if err != nil {
			out.Skipped = append(out.Skipped, Skipped{Line: row.Line, Reason: err.Error()})
			continue
		}
		out.Results = append(out.Results, ImportedItem{Line: row.Line, Input: row.Input, Result: res})
		sheetRows = append(sheetRows, ResultRow{Input: row.Input, Result: res})
	}
	out.Count = len(out.Results)

	if r.URL.Query().Get("format") == "xlsx" {
		var buf bytes.Buffer
		if err := WriteWorkbook(&buf, sheetRows); err != nil {
			h.Log.Error().Err(err).Msg("write results workbook")
			http.Error(w, "Workbook generation error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename=\""+ResultsFileName+"\"")
		buf.WriteTo(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}
