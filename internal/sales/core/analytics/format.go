package analytics

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

const (
	DisplayTimeLayout = "2006-01-02 15:04"
	ExportTimeLayout  = "2006-01-02 15:04:05"
)

// FormatCurrency renders d as "$1,234.56".
func FormatCurrency(d decimal.Decimal) string {
	d = d.Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	fixed := d.StringFixed(2)
	return sign + "$" + humanize.Comma(d.IntPart()) + fixed[strings.IndexByte(fixed, '.'):]
}

// FormatCount renders d as "1,234", dropping any fraction.
func FormatCount(d decimal.Decimal) string {
	return humanize.Comma(d.IntPart())
}

func formatNullCurrency(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return FormatCurrency(d.Decimal)
}

func formatNullNumber(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}
