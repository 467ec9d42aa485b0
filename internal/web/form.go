package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"LCA/internal/calc/equivalency"
	"LCA/internal/calc/impact"

	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templateFS embed.FS

// LinkSigner issues download tokens for a calculation request.
type LinkSigner interface {
	Sign(in impact.Input) (token string, ref string, err error)
}

type Handler struct {
	Calc  *impact.Handler
	Links LinkSigner
	Log   zerolog.Logger
	tmpl  *template.Template
}

type option struct {
	ID, Label string
}

type formValues struct {
	Material, MaterialKg, EnergySource, EnergyKWh string
}

type resultLine struct {
	Label, Value string
}

type pageData struct {
	Materials     []option
	EnergySources []option
	MaxAmount     float64
	Values        formValues
	ErrorMessage  string
	Results       []resultLine
	Equivalency   string
	DownloadURL   string
	ReportError   string
}

func New(calc *impact.Handler, links LinkSigner, log zerolog.Logger) (*Handler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Handler{Calc: calc, Links: links, Log: log, tmpl: tmpl}, nil
}

func (h *Handler) page(values formValues) pageData {
	d := pageData{MaxAmount: h.Calc.Limit(), Values: values}
	for _, m := range impact.Materials() {
		d.Materials = append(d.Materials, option{ID: m.String(), Label: m.Label()})
	}
	for _, e := range impact.EnergySources() {
		d.EnergySources = append(d.EnergySources, option{ID: e.String(), Label: e.Label()})
	}
	return d
}

func (h *Handler) Form(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, h.page(formValues{
		Material:     impact.Materials()[0].String(),
		MaterialKg:   "0",
		EnergySource: impact.EnergySources()[0].String(),
		EnergyKWh:    "0",
	}))
}

// Submit validates the form, shows the four results and, independently, a
// link to the PDF report.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	values := formValues{
		Material:     r.FormValue("material"),
		MaterialKg:   r.FormValue("material_kg"),
		EnergySource: r.FormValue("energy_source"),
		EnergyKWh:    r.FormValue("energy_kwh"),
	}
	data := h.page(values)

	input, err := ParseCalcForm(r, data.MaxAmount)
	if err != nil {
		data.ErrorMessage = err.Error()
		h.render(w, http.StatusBadRequest, data)
		return
	}
	res, err := h.Calc.Compute(input)
	if err != nil {
		data.ErrorMessage = err.Error()
		h.render(w, http.StatusBadRequest, data)
		return
	}

	for _, e := range res.Entries() {
		data.Results = append(data.Results, resultLine{Label: e.Label, Value: equivalency.FormatFloat(e.Value, 2)})
	}
	if eq, err := equivalency.Calculate(res.CO2Kg); err == nil && !eq.IsEmpty {
		data.Equivalency = eq.DisplayText
	}

	if h.Links == nil {
		data.ReportError = "The PDF report could not be produced."
	} else if token, _, err := h.Links.Sign(input); err != nil {
		h.Log.Error().Err(err).Msg("sign report link")
		data.ReportError = "The PDF report could not be produced."
	} else {
		data.DownloadURL = "/api/report/" + token
	}
	h.render(w, http.StatusOK, data)
}

// ParseCalcForm reads the four form fields. Amounts must be numbers in
// [0, limit]; ids must come from the catalog.
func ParseCalcForm(r *http.Request, limit float64) (impact.Input, error) {
	material, err := impact.ParseMaterial(r.FormValue("material"))
	if err != nil {
		return impact.Input{}, fmt.Errorf("choose a material from the list")
	}
	energy, err := impact.ParseEnergySource(r.FormValue("energy_source"))
	if err != nil {
		return impact.Input{}, fmt.Errorf("choose an energy source from the list")
	}
	materialKg, err := parseAmount(r.FormValue("material_kg"), "material amount", limit)
	if err != nil {
		return impact.Input{}, err
	}
	energyKWh, err := parseAmount(r.FormValue("energy_kwh"), "energy amount", limit)
	if err != nil {
		return impact.Input{}, err
	}
	return impact.Input{
		Material:         material,
		MaterialAmountKg: materialKg,
		EnergySource:     energy,
		EnergyAmountKWh:  energyKWh,
	}, nil
}

func parseAmount(raw, field string, limit float64) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", field)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", field)
	}
	if err := impact.CheckAmount(field, v, limit); err != nil {
		return 0, fmt.Errorf("%s must be between 0 and %g", field, limit)
	}
	return v, nil
}

func (h *Handler) render(w http.ResponseWriter, status int, data pageData) {
	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, "index.html", data); err != nil {
		h.Log.Error().Err(err).Msg("render page")
		http.Error(w, "failed to render template", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
