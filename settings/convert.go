package settings

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// The two factors are kept separately and are not exact reciprocals;
// stored goal values were produced with these.
var (
	lbsToKg = decimal.RequireFromString("2.2046")
	kgToLbs = decimal.RequireFromString("0.4536")
)

// ConvertMultiplierToLbsValue converts a per-kg multiplier to per-lb,
// rounded to two places, without a leading zero (".54").
func (n *Normalizer) ConvertMultiplierToLbsValue(kg float64) string {
	return convertFloat(kg, kgToLbs)
}

// ConvertMultiplierToKgValue converts a per-lb multiplier to per-kg,
// rounded to two places, without a leading zero.
func (n *Normalizer) ConvertMultiplierToKgValue(lbs float64) string {
	return convertFloat(lbs, lbsToKg)
}

func convertFloat(v float64, factor decimal.Decimal) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return dropLeadingZero(convert(decimal.NewFromFloat(v), factor).String())
}

func convert(d, factor decimal.Decimal) decimal.Decimal {
	return d.Mul(factor).Round(2)
}

// deriveValue converts a stored decimal string. Empty or malformed values
// derive an empty string.
func deriveValue(stored string, factor decimal.Decimal) string {
	stored = strings.TrimSpace(stored)
	if stored == "" {
		return ""
	}
	d, err := decimal.NewFromString(stored)
	if err != nil {
		return ""
	}
	return convert(d, factor).String()
}

func dropLeadingZero(s string) string {
	switch {
	case strings.HasPrefix(s, "0."):
		return s[1:]
	case strings.HasPrefix(s, "-0."):
		return "-" + s[2:]
	}
	return s
}
