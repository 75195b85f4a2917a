package pets

import "testing"

func TestQuote_FixedScheduleAllDiscounts(t *testing.T) {
	totals := map[DurationCode]int64{
		DurationNone:        10000,
		DurationOneMonth:    20000,
		DurationThreeMonths: 60000,
		DurationSixMonths:   100000,
		DurationOneYear:     60000,
		DurationTwoYears:    100000,
	}

	for code, wantTotal := range totals {
		for _, d := range Discounts() {
			got := Quote(code, d)
			if got.Total != wantTotal {
				t.Fatalf("Quote(%v, %v).Total = %d, want %d", code, d, got.Total, wantTotal)
			}
			wantNet := wantTotal * (100 - int64(d)) / 100
			if got.Net != wantNet {
				t.Fatalf("Quote(%v, %v).Net = %d, want %d", code, d, got.Net, wantNet)
			}
		}
	}
}

func TestQuote_KnownValues(t *testing.T) {
	cases := []struct {
		name     string
		code     DurationCode
		discount float64
		want     Cost
	}{
		{"none no discount", DurationNone, 0, Cost{Total: 10000, Net: 10000}},
		{"six months 15%", DurationSixMonths, 15, Cost{Total: 100000, Net: 85000}},
		{"one year is cheaper than six months", DurationOneYear, 0, Cost{Total: 60000, Net: 60000}},
		{"out of range falls back", DurationCode(9), 5, Cost{Total: 10000, Net: 9500}},
		{"negative falls back", DurationCode(-1), 0, Cost{Total: 10000, Net: 10000}},
		{"discount applied as given", DurationOneMonth, 150, Cost{Total: 20000, Net: -10000}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Quote(tc.code, tc.discount); got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestQuote_IsPure(t *testing.T) {
	a := Quote(DurationThreeMonths, 10)
	b := Quote(DurationThreeMonths, 10)
	if a != b {
		t.Fatalf("expected identical results, got %+v and %+v", a, b)
	}
}

func TestParseDurationCode(t *testing.T) {
	cases := map[string]DurationCode{
		"":    DurationNone,
		"abc": DurationNone,
		"3":   DurationSixMonths,
		" 4 ": DurationOneYear,
		"2.7": DurationThreeMonths,
		"-2":  DurationCode(-2),
		"1e0": DurationOneMonth,
		"Inf": DurationNone,
		"NaN": DurationNone,
		"0x4": DurationNone,
	}
	for in, want := range cases {
		if got := ParseDurationCode(in); got != want {
			t.Fatalf("ParseDurationCode(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestParseDurationCode_NonDecimalSpellingsPriceAsDefault(t *testing.T) {
	for _, raw := range []string{"Inf", "-infinity", "NaN", "0x1p2", "1_0"} {
		p := Pet{FosterDuration: raw}
		if c := p.ApplyPricing(DiscountNone); c.Total != DefaultBaseCost {
			t.Fatalf("duration %q: total=%d, want %d", raw, c.Total, DefaultBaseCost)
		}
	}
}

func TestApplyPricing_WritesBothCosts(t *testing.T) {
	p := Pet{FosterDuration: "3"}
	p.ApplyPricing(DiscountFifteen)

	if p.TotalCost != 100000 || p.NetCost != 85000 || p.Discount != 15 {
		t.Fatalf("unexpected costs: total=%d net=%d discount=%v", p.TotalCost, p.NetCost, p.Discount)
	}

	// duración no numérica => tarifa por defecto
	p.FosterDuration = "soon"
	p.ApplyPricing(DiscountNone)
	if p.TotalCost != DefaultBaseCost || p.NetCost != DefaultBaseCost {
		t.Fatalf("expected default base cost, got total=%d net=%d", p.TotalCost, p.NetCost)
	}
}
