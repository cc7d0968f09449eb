package utils

import "math"

// Children pay half the adult price. This mirrors the rate the public
// booking form shows next to the child-count field.
const childRate = 0.5

// ComputeTotal returns the reservation total for the given head counts,
// rounded to cents. Negative counts are treated as zero.
func ComputeTotal(pricePerAdult float64, adults, children int) float64 {
	if adults < 0 {
		adults = 0
	}
	if children < 0 {
		children = 0
	}
	total := pricePerAdult*float64(adults) + pricePerAdult*childRate*float64(children)
	return math.Round(total*100) / 100
}
