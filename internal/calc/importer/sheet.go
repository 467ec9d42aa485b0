package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"LCA/internal/calc/impact"

	"github.com/xuri/excelize/v2"
)

const (
	ResultsFileName = "LCA_Results.xlsx"
	resultsSheet    = "Results"
)

var inputHeader = []string{"material", "material_kg", "energy_source", "energy_kwh"}

type Row struct {
	Line  int          `json:"line"`
	Input impact.Input `json:"input"`
}

type Skipped struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// ReadWorkbook parses the first sheet. The first row is a header; rows with
// fewer than four cells or unparseable values are reported as skipped.
func ReadWorkbook(r io.Reader) ([]Row, []Skipped, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("empty sheet")
	}

	var out []Row
	var skipped []Skipped
	for i := 1; i < len(rows); i++ {
		line := i + 1
		if blank(rows[i]) {
			continue
		}
		in, err := parseRow(rows[i])
		if err != nil {
			skipped = append(skipped, Skipped{Line: line, Reason: err.Error()})
			continue
		}
		out = append(out, Row{Line: line, Input: in})
	}
	return out, skipped, nil
}

func parseRow(row []string) (impact.Input, error) {
	if len(row) < 4 {
		return impact.Input{}, fmt.Errorf("expected 4 columns, got %d", len(row))
	}
	material, err := impact.ParseMaterial(row[0])
	if err != nil {
		return impact.Input{}, err
	}
	materialKg, err := toFloat(row[1])
	if err != nil {
		return impact.Input{}, fmt.Errorf("material_kg: %w", err)
	}
	energy, err := impact.ParseEnergySource(row[2])
	if err != nil {
		return impact.Input{}, err
	}
	energyKWh, err := toFloat(row[3])
	if err != nil {
		return impact.Input{}, fmt.Errorf("energy_kwh: %w", err)
	}
	return impact.Input{
		Material:         material,
		MaterialAmountKg: materialKg,
		EnergySource:     energy,
		EnergyAmountKWh:  energyKWh,
	}, nil
}

func toFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

type ResultRow struct {
	Input  impact.Input
	Result impact.Result
}

// WriteWorkbook writes the inputs followed by the four result columns.
func WriteWorkbook(w io.Writer, rows []ResultRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), resultsSheet); err != nil {
		return err
	}
	header := make([]interface{}, 0, 8)
	for _, h := range inputHeader {
		header = append(header, h)
	}
	for _, e := range (impact.Result{}).Entries() {
		header = append(header, e.Label)
	}
	if err := f.SetSheetRow(resultsSheet, "A1", &header); err != nil {
		return err
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{
			r.Input.Material.String(),
			r.Input.MaterialAmountKg,
			r.Input.EnergySource.String(),
			r.Input.EnergyAmountKWh,
		}
		for _, e := range r.Result.Entries() {
			values = append(values, e.Value)
		}
		if err := f.SetSheetRow(resultsSheet, cell, &values); err != nil {
			return err
		}
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
