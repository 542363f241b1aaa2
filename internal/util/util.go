// Package util holds small shared helpers.
package util

import (
	"fmt"
	"math"
)

// RoundCents rounds a dollar amount to two decimal places.
func RoundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// FormatPrice formats a dollar amount for display.
func FormatPrice(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
