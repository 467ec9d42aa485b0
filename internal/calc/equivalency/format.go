package equivalency

import (
	"fmt"
	"strconv"
	"strings"

	"LCA/internal/calc/decimal"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	LargeNumberThreshold = 1_000_000
	BillionThreshold     = 1_000_000_000
)

var printer = message.NewPrinter(language.English)

// FormatNumber formats n with thousand separators: 18248 -> "18,248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat rounds like decimal.Round and prints with separators:
// FormatFloat(7980, 2) -> "7,980.00", FormatFloat(1.005, 2) -> "1.01".
func FormatFloat(f float64, precision int) string {
	rounded := decimal.Round(f, precision)
	if precision <= 0 {
		return FormatNumber(int64(rounded))
	}

	formatted := strconv.FormatFloat(rounded, 'f', precision, 64)
	intPart, frac, _ := strings.Cut(formatted, ".")
	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return formatted
	}
	grouped := FormatNumber(n)
	if n == 0 && strings.HasPrefix(intPart, "-") {
		grouped = "-" + grouped
	}
	return grouped + "." + frac
}

func FormatLarge(n float64) string {
	if n >= BillionThreshold {
		return fmt.Sprintf("~%.1f billion", n/BillionThreshold)
	}
	if n >= LargeNumberThreshold {
		return fmt.Sprintf("~%.1f million", n/LargeNumberThreshold)
	}
	return FormatNumber(int64(decimal.Round(n, 0)))
}
