package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatEuro renders an amount for reports, e.g. "1.250,50 €".
func FormatEuro(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	// Round once on the cent total; deriving cents separately can
	// produce 100 and render "1,100 €" for amounts just under a euro.
	total := int64(math.Round(amount * 100))
	return fmt.Sprintf("%s%s,%02d €", sign, formatThousand(total/100), total%100)
}

// ParseEuroToFloat parses "1.250,50 €" or "1250.50" into a float amount.
func ParseEuroToFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "€")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("invalid amount")
	}
	if strings.Contains(s, ",") {
		// European grouping: dots group thousands, comma separates cents.
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	return strconv.ParseFloat(s, 64)
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte('.')
		}
		out.WriteRune(c)
	}
	return out.String()
}
