// Package catalog contains the pure, single-pass transformations the
// public site and dashboard derive from store data: filtering, display
// ordering, calendar grouping and the offer countdown. Nothing here
// touches the network or mutates its inputs.
package catalog

import (
	"strings"

	"backoffice/internal/domain/models"
)

// Filter narrows the excursion catalog for the public grid. Zero values
// mean "no constraint"; PriceMax of 0 is treated as unbounded.
type Filter struct {
	PriceMin     float64
	PriceMax     float64
	Category     string
	Location     string
	Duration     string
	Search       string
	FeaturedOnly bool
	ActiveOnly   bool
}

// Apply returns the excursions matching every set constraint, in input
// order.
func (f Filter) Apply(items []models.Excursion) []models.Excursion {
	out := make([]models.Excursion, 0, len(items))
	for _, e := range items {
		if f.matches(e) {
			out = append(out, e)
		}
	}
	return out
}

func (f Filter) matches(e models.Excursion) bool {
	if f.ActiveOnly && e.Status != models.ExcursionActive {
		return false
	}
	if f.FeaturedOnly && !e.Featured {
		return false
	}
	if e.Price < f.PriceMin {
		return false
	}
	if f.PriceMax > 0 && e.Price > f.PriceMax {
		return false
	}
	if f.Category != "" && !strings.EqualFold(e.Category, f.Category) {
		return false
	}
	if f.Location != "" && !strings.EqualFold(e.Location, f.Location) {
		return false
	}
	if f.Duration != "" && !strings.EqualFold(e.Duration, f.Duration) {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		haystack := strings.ToLower(e.Name + " " + e.ShortDescription + " " + e.Location)
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}
