// Package format renders quote amounts for people.
package format

import (
	"math"

	"github.com/dustin/go-humanize"
)

// Money formats a dollar amount with thousands separators and cents: "$1,234.56".
func Money(v float64) string {
	if v < 0 {
		return "-$" + humanize.FormatFloat("#,###.##", math.Abs(v))
	}
	return "$" + humanize.FormatFloat("#,###.##", v)
}

// Miles formats a mile count with thousands separators: "1,200".
func Miles(n int) string {
	return humanize.Comma(int64(n))
}
