package batch

import (
	"errors"
	"fmt"

	"LCA/internal/calc/impact"
)

// MaxItems caps a single batch request.
const MaxItems = 500

var ErrEmpty = errors.New("no items")

type Input struct {
	Items []impact.Input `json:"items"`
}

type Item struct {
	Input   impact.Input   `json:"input"`
	Result  impact.Result  `json:"result"`
	Entries []impact.Entry `json:"entries"`
}

type Result struct {
	Results []Item        `json:"results"`
	Total   impact.Result `json:"total"`
}

// Calculate runs every item through calc and stops at the first failure.
// Total sums the rounded per-item results.
func Calculate(in Input, calc func(impact.Input) (impact.Result, error)) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, ErrEmpty
	}
	if len(in.Items) > MaxItems {
		return Result{}, fmt.Errorf("too many items: %d > %d", len(in.Items), MaxItems)
	}
	out := Result{Results: make([]Item, 0, len(in.Items))}
	for i, item := range in.Items {
		item = item.Normalize()
		res, err := calc(item)
		if err != nil {
			return Result{}, fmt.Errorf("item %d: %w", i, err)
		}
		out.Results = append(out.Results, Item{Input: item, Result: res, Entries: res.Entries()})
		out.Total.CO2Kg += res.CO2Kg
		out.Total.WaterM3 += res.WaterM3
		out.Total.EnergyMJ += res.EnergyMJ
		out.Total.AcidKgSO2 += res.AcidKgSO2
	}
	out.Total = impact.Result{
		CO2Kg:     impact.Round2(out.Total.CO2Kg),
		WaterM3:   impact.Round2(out.Total.WaterM3),
		EnergyMJ:  impact.Round2(out.Total.EnergyMJ),
		AcidKgSO2: impact.Round2(out.Total.AcidKgSO2),
	}
	return out, nil
}
