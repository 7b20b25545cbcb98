package models

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// FormatPrice renders a quote with the shortest exact decimal form, so 120
// prints as "120" and 100.01 as "100.01".
func FormatPrice(price float64) string {
	if !finite(price) {
		return strconv.FormatFloat(price, 'f', -1, 64)
	}
	return decimal.NewFromFloat(price).String()
}

// FormatCost renders an amount of money with two decimal places. Overflowed
// or NaN amounts print as "+Inf", "-Inf" or "NaN".
func FormatCost(cost float64) string {
	if !finite(cost) {
		return strconv.FormatFloat(cost, 'f', -1, 64)
	}
	return decimal.NewFromFloat(cost).StringFixed(2)
}

// decimal cannot represent infinities or NaN
func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
