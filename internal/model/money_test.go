package model_test

import (
	"testing"

	"opphub/match-service/internal/model"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		raw   string
		value int64
		known bool
	}{
		{"$500,000", 500000, true},
		{"75000", 75000, true},
		{"€1,200", 1200, true},
		{"USD 10,000", 10000, true},
		{"1500.75", 1500, true}, // fractional part truncated
		{"$0", 0, true},
		{"", 0, false},
		{"TBD", 0, false},
		{"not yet announced", 0, false},
	}
	for _, tc := range tests {
		got := model.ParseMoney(tc.raw)
		if got.Known != tc.known {
			t.Errorf("ParseMoney(%q).Known = %v, want %v", tc.raw, got.Known, tc.known)
			continue
		}
		if got.Known && got.Value != tc.value {
			t.Errorf("ParseMoney(%q).Value = %d, want %d", tc.raw, got.Value, tc.value)
		}
	}
}

func TestMoneyInRange(t *testing.T) {
	min, max := int64(50000), int64(100000)

	inside := model.ParseMoney("75,000")
	if !inside.InRange(&min, &max) {
		t.Error("75000 should be inside [50000, 100000]")
	}

	above := model.ParseMoney("$500,000")
	if above.InRange(&min, &max) {
		t.Error("500000 should be outside [50000, 100000]")
	}

	// Bounds are inclusive.
	if !model.ParseMoney("50000").InRange(&min, &max) {
		t.Error("min bound should be inclusive")
	}
	if !model.ParseMoney("100000").InRange(&min, &max) {
		t.Error("max bound should be inclusive")
	}

	// Unparseable and absent amounts pass any range.
	if !model.ParseMoney("TBD").InRange(&min, &max) {
		t.Error("unknown amount should pass any range")
	}
	if !(model.Money{}).InRange(&min, &max) {
		t.Error("zero-value Money should pass any range")
	}

	// Nil bounds are unconstrained.
	if !above.InRange(nil, nil) {
		t.Error("nil bounds should pass everything")
	}
}

func TestMoneyFromFloat(t *testing.T) {
	m := model.MoneyFromFloat(2500)
	if !m.Known || m.Value != 2500 {
		t.Errorf("MoneyFromFloat(2500) = %+v", m)
	}
	if model.MoneyFromFloat(-1).Known {
		t.Error("negative amounts should be treated as absent")
	}
}
