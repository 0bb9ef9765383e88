// Package format renders monetary amounts and prices as strings.
package format

import (
	"fmt"
	"math"
	"strings"
)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	formatted := groupThousands(math.Abs(amount), 2)
	if amount < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// Price returns a per-MMBtu price with four decimals (e.g., "$9.8000/MMBtu").
func Price(value float64) string {
	formatted := groupThousands(math.Abs(value), 4)
	if value < 0 {
		return "-$" + formatted + "/MMBtu"
	}
	return "$" + formatted + "/MMBtu"
}

// Quantity returns an energy quantity with separators and the MMBtu unit (e.g., "2,865,000.00 MMBtu").
func Quantity(mmbtu float64) string {
	sign := ""
	if mmbtu < 0 {
		sign = "-"
	}
	return sign + groupThousands(math.Abs(mmbtu), 2) + " MMBtu"
}

func groupThousands(value float64, decimals int) string {
	formatted := fmt.Sprintf("%.*f", decimals, value)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := ""
	if len(parts) == 2 {
		decPart = "." + parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + decPart
}
