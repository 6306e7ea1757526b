package chart

import (
	"math"
	"testing"
)

// ---------- NormalizeLongitude ----------

func TestNormalizeLongitude_Idempotent(t *testing.T) {
	for _, deg := range []float64{0, 10.5, 180, 359.999} {
		if got := NormalizeLongitude(deg); got != deg {
			t.Errorf("NormalizeLongitude(%v) = %v, want unchanged", deg, got)
		}
	}
}

func TestNormalizeLongitude_Wraps(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"negative", -10, 350},
		{"over_full_turn", 370, 10},
		{"exactly_360", 360, 0},
		{"multiple_turns", 725, 5},
		{"deep_negative", -370, 350},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeLongitude(tc.in); math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("NormalizeLongitude(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

// ---------- CanonicalLabel ----------

func TestCanonicalLabel_Aliases(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"asc", "Ascendant"},
		{"RISING", "Ascendant"},
		{"mc", "Midheaven"},
		{"sun", "Sun"},
		{"MOON", "Moon"},
		{" pluto ", "Pluto"},
		{"true node", "North Node"},
		{"Vesta", "Vesta"}, // unknown bodies keep their own name
	}
	for _, tc := range cases {
		if got := CanonicalLabel(tc.in); got != tc.want {
			t.Errorf("CanonicalLabel(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// ---------- ExtractBody ----------

func TestExtractBody_FieldProbePriority(t *testing.T) {
	// "longitude" outranks "absoluteDegree" when both are present.
	body, ok := ExtractBody("Sun", map[string]any{
		"longitude":      120.0,
		"absoluteDegree": 5.0,
	})
	if !ok {
		t.Fatal("expected body")
	}
	if body.Longitude != 120 {
		t.Errorf("Longitude = %v, want 120 (first probe wins)", body.Longitude)
	}
}

func TestExtractBody_AliasedFields(t *testing.T) {
	cases := []struct {
		name string
		rec  map[string]any
		want float64
	}{
		{"absoluteDegree", map[string]any{"absoluteDegree": 33.0}, 33},
		{"absolute_degree", map[string]any{"absolute_degree": 44.0}, 44},
		{"fullDegree", map[string]any{"fullDegree": 55.0}, 55},
		{"lon", map[string]any{"lon": 66.0}, 66},
		{"nested_position", map[string]any{"position": map[string]any{"longitude": 77.0}}, 77},
		{"int_value", map[string]any{"longitude": 90}, 90},
		{"string_value", map[string]any{"longitude": "123.5"}, 123.5},
		{"wrapped_negative", map[string]any{"longitude": -10.0}, 350},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body, ok := ExtractBody("Sun", tc.rec)
			if !ok {
				t.Fatal("expected body")
			}
			if math.Abs(body.Longitude-tc.want) > 1e-9 {
				t.Errorf("Longitude = %v, want %v", body.Longitude, tc.want)
			}
		})
	}
}

func TestExtractBody_NoUsableLongitude(t *testing.T) {
	cases := []struct {
		name string
		rec  map[string]any
	}{
		{"nil_record", nil},
		{"empty_record", map[string]any{}},
		{"nan", map[string]any{"longitude": math.NaN()}},
		{"infinity", map[string]any{"longitude": math.Inf(1)}},
		{"garbage_string", map[string]any{"longitude": "twelve"}},
		{"wrong_type", map[string]any{"longitude": true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := ExtractBody("Sun", tc.rec); ok {
				t.Error("expected no body, got one")
			}
		})
	}
}

func TestExtractBody_RetrogradeAliases(t *testing.T) {
	cases := []struct {
		name string
		rec  map[string]any
		want bool
	}{
		{"isRetrograde", map[string]any{"longitude": 1.0, "isRetrograde": true}, true},
		{"retrograde", map[string]any{"longitude": 1.0, "retrograde": true}, true},
		{"is_retrograde", map[string]any{"longitude": 1.0, "is_retrograde": true}, true},
		{"nested_motion", map[string]any{"longitude": 1.0, "motion": map[string]any{"retrograde": true}}, true},
		{"absent_defaults_false", map[string]any{"longitude": 1.0}, false},
		{"non_bool_ignored", map[string]any{"longitude": 1.0, "retrograde": "yes"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body, ok := ExtractBody("Mercury", tc.rec)
			if !ok {
				t.Fatal("expected body")
			}
			if body.Retrograde != tc.want {
				t.Errorf("Retrograde = %v, want %v", body.Retrograde, tc.want)
			}
		})
	}
}

func TestExtractBody_CanonicalizesLabel(t *testing.T) {
	body, ok := ExtractBody("asc", map[string]any{"longitude": 102.5})
	if !ok {
		t.Fatal("expected body")
	}
	if body.Label != "Ascendant" {
		t.Errorf("Label = %q, want Ascendant", body.Label)
	}
}

// ---------- Dataset ----------

func TestDataset_AscendantFallback(t *testing.T) {
	ds := &Dataset{}
	if got := ds.AscendantLongitude(); got != 0 {
		t.Errorf("AscendantLongitude() = %v, want 0 fallback", got)
	}

	asc := 465.0 // wraps to 105
	ds = &Dataset{Ascendant: &asc}
	if got := ds.AscendantLongitude(); math.Abs(got-105) > 1e-9 {
		t.Errorf("AscendantLongitude() = %v, want 105", got)
	}
}
