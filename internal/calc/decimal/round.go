package decimal

import (
	"math"
	"strconv"
	"strings"
)

// noiseDigits is the number of decimals a value is first printed with.
// Binary error in products like 0.7*1.75 (1.2249999999999999) sits far
// below it and disappears.
const noiseDigits = 9

// Round rounds v to places decimals, half away from zero, on its decimal
// value: Round(1.005, 2) = 1.01, Round(2.675, 2) = 2.68, Round(-0.125, 2) = -0.13.
func Round(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	if places < 0 {
		places = 0
	}
	if places >= noiseDigits {
		return v
	}

	s := strconv.FormatFloat(math.Abs(v), 'f', noiseDigits, 64)
	intPart, frac, _ := strings.Cut(s, ".")
	n, err := strconv.ParseUint(intPart+frac[:places], 10, 64)
	if err != nil {
		scale := math.Pow(10, float64(places))
		return math.Round(v*scale) / scale
	}
	if frac[places] >= '5' {
		n++
	}
	if n == 0 {
		return 0
	}

	r := float64(n) / math.Pow(10, float64(places))
	if v < 0 {
		return -r
	}
	return r
}
