package utils

import (
	"reflect"
	"testing"
)

func TestFormatEuro(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0,00 €"},
		{45, "45,00 €"},
		{1250.5, "1.250,50 €"},
		{999999.99, "999.999,99 €"},
		{-80.25, "-80,25 €"},
		// Cents just under the next euro must carry into the whole part.
		{1.999, "2,00 €"},
		{99.995, "100,00 €"},
	}
	for _, tc := range cases {
		if got := FormatEuro(tc.in); got != tc.want {
			t.Errorf("FormatEuro(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseEuroToFloat(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1.250,50 €", 1250.50},
		{"45,00 €", 45},
		{"1250.50", 1250.50},
		{"  80 € ", 80},
	}
	for _, tc := range cases {
		got, err := ParseEuroToFloat(tc.in)
		if err != nil {
			t.Fatalf("ParseEuroToFloat(%q) error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseEuroToFloat(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	if _, err := ParseEuroToFloat("  €  "); err == nil {
		t.Error("expected error for blank amount")
	}
}

func TestComputeTotal(t *testing.T) {
	cases := []struct {
		price            float64
		adults, children int
		want             float64
	}{
		{40, 2, 1, 100},  // children pay half
		{40, 0, 2, 40},   // children-only booking
		{35.5, 1, 0, 35.5},
		{40, -3, -1, 0},  // negatives clamp to zero
	}
	for _, tc := range cases {
		if got := ComputeTotal(tc.price, tc.adults, tc.children); got != tc.want {
			t.Errorf("ComputeTotal(%v, %d, %d) = %v, want %v", tc.price, tc.adults, tc.children, got, tc.want)
		}
	}
}

func TestSplitAndCoalesceLines(t *testing.T) {
	got := SplitLines("Guía oficial\n\n  Picnic  \nSeguro\n")
	want := []string{"Guía oficial", "Picnic", "Seguro"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitLines = %v, want %v", got, want)
	}

	coalesced := CoalesceLines([]string{" Guía oficial ", "", "Picnic"})
	if !reflect.DeepEqual(coalesced, []string{"Guía oficial", "Picnic"}) {
		t.Errorf("CoalesceLines = %v", coalesced)
	}
}

func TestDateHelpers(t *testing.T) {
	d, err := ParseDate("2026-09-01")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if got := FormatDate(d); got != "2026-09-01" {
		t.Errorf("FormatDate = %q", got)
	}
	if got := FormatLongDate(d); got != "01/09/2026" {
		t.Errorf("FormatLongDate = %q", got)
	}

	if _, err := ParseDate("01-09-2026"); err == nil {
		t.Error("expected error for non-ISO date")
	}
}
