package report

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"time"

	"LCA/internal/calc/equivalency"
	"LCA/internal/calc/impact"

	"github.com/phpdave11/gofpdf"
)

const (
	FileName = "LCA_Report.pdf"
	Title    = "LCA Calculator Report"
)

type Input struct {
	Request     impact.Input
	Result      impact.Result
	Reference   string
	GeneratedAt time.Time
}

type Style int

const (
	StyleTitle Style = iota
	StyleBody
	StyleNote
	StyleSpacer
)

type Line struct {
	Style Style
	Text  string
}

// Lines lays out the report: title, the two input lines, the four results
// and a footer.
func Lines(in Input) []Line {
	lines := []Line{
		{StyleTitle, Title},
		{StyleBody, fmt.Sprintf("Material: %s (%s kg)", in.Request.Material, formatAmount(in.Request.MaterialAmountKg))},
		{StyleBody, fmt.Sprintf("Energy: %s (%s kWh)", in.Request.EnergySource, formatAmount(in.Request.EnergyAmountKWh))},
		{StyleSpacer, ""},
	}
	for _, e := range in.Result.Entries() {
		lines = append(lines, Line{StyleBody, fmt.Sprintf("%s: %s", e.Label, equivalency.FormatFloat(e.Value, 2))})
	}

	lines = append(lines, Line{StyleSpacer, ""})
	if eq, err := equivalency.Calculate(in.Result.CO2Kg); err == nil && !eq.IsEmpty {
		lines = append(lines, Line{StyleNote, eq.DisplayText + "."})
	}
	if in.Reference != "" {
		lines = append(lines, Line{StyleNote, "Reference: " + in.Reference})
	}
	if !in.GeneratedAt.IsZero() {
		lines = append(lines, Line{StyleNote, "Generated: " + in.GeneratedAt.UTC().Format("2006-01-02 15:04 MST")})
	}
	return lines
}

// Render writes the PDF to w. Nothing is written unless the whole document
// was produced.
func Render(w io.Writer, in Input) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(Title, true)
	pdf.SetCreator("lca", true)
	if !in.GeneratedAt.IsZero() {
		pdf.SetCreationDate(in.GeneratedAt)
	}
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	for _, l := range Lines(in) {
		switch l.Style {
		case StyleTitle:
			pdf.SetFont("Helvetica", "B", 16)
			pdf.CellFormat(0, 10, tr(l.Text), "", 1, "L", false, 0, "")
		case StyleBody:
			pdf.SetFont("Helvetica", "", 12)
			pdf.CellFormat(0, 10, tr(l.Text), "", 1, "L", false, 0, "")
		case StyleNote:
			pdf.SetFont("Helvetica", "I", 9)
			pdf.MultiCell(0, 5, tr(l.Text), "", "L", false)
		case StyleSpacer:
			pdf.Ln(5)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
