package model

import (
	"strconv"
	"strings"
)

// Money is a monetary amount normalized at ingestion. Upstream records carry
// these fields either as plain numbers or as formatted strings such as
// "$500,000"; all cleaning happens here, once, so range filtering only ever
// compares Value.
//
// Known is false when the raw text could not be parsed. Range filters treat
// an unknown amount as unconstrained (the item passes) — recall over
// precision.
type Money struct {
	Raw   string `json:"raw,omitempty"`
	Value int64  `json:"value"`
	Known bool   `json:"known"`
}

// ParseMoney normalizes a formatted amount string. Currency symbols,
// thousands separators and surrounding text like "USD" are stripped before
// parsing; a fractional part is truncated.
func ParseMoney(raw string) Money {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Money{}
	}

	var digits strings.Builder
scan:
	for _, r := range trimmed {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
		case r == '.':
			// Fractional part is ignored.
			break scan
		}
	}
	if digits.Len() == 0 {
		return Money{Raw: raw}
	}

	v, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return Money{Raw: raw}
	}
	return Money{Raw: raw, Value: v, Known: true}
}

// MoneyFromFloat wraps an already-numeric amount, as stored in numeric
// database columns.
func MoneyFromFloat(v float64) Money {
	if v < 0 {
		return Money{}
	}
	return Money{Value: int64(v), Known: true}
}

// InRange reports whether the amount lies within [min, max] inclusive.
// Nil bounds are unconstrained; an unknown amount always passes.
func (m Money) InRange(min, max *int64) bool {
	if !m.Known {
		return true
	}
	if min != nil && m.Value < *min {
		return false
	}
	if max != nil && m.Value > *max {
		return false
	}
	return true
}
