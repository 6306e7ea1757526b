package chart

import (
	"math"
	"strconv"
	"strings"
)

// NormalizeLongitude wraps an ecliptic longitude into [0, 360).
// Negative and >360 inputs are wrapped, never rejected: -10 becomes
// 350, 370 becomes 10. Values already in range pass through unchanged.
func NormalizeLongitude(deg float64) float64 {
	wrapped := math.Mod(deg, 360)
	if wrapped < 0 {
		wrapped += 360
	}
	return wrapped
}

// labelAliases maps lowercase calculator spellings to canonical labels.
var labelAliases = map[string]string{
	"asc":        "Ascendant",
	"ascendant":  "Ascendant",
	"rising":     "Ascendant",
	"mc":         "Midheaven",
	"midheaven":  "Midheaven",
	"sun":        "Sun",
	"moon":       "Moon",
	"mercury":    "Mercury",
	"venus":      "Venus",
	"mars":       "Mars",
	"jupiter":    "Jupiter",
	"saturn":     "Saturn",
	"uranus":     "Uranus",
	"neptune":    "Neptune",
	"pluto":      "Pluto",
	"north node": "North Node",
	"northnode":  "North Node",
	"true node":  "North Node",
	"chiron":     "Chiron",
}

// CanonicalLabel resolves calculator-specific body names ("asc",
// "RISING", "mc") to the canonical labels used everywhere else in the
// engine. Unknown labels are returned trimmed but otherwise as-is so
// unrecognized bodies still render under their own name.
func CanonicalLabel(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if canonical, ok := labelAliases[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// longitudeProbes are tried in order; the first one yielding a finite
// number wins. The list covers the field spellings of the calculators
// this engine has been fed from.
var longitudeProbes = []func(rec map[string]any) (float64, bool){
	func(rec map[string]any) (float64, bool) { return finiteNumber(rec["longitude"]) },
	func(rec map[string]any) (float64, bool) { return finiteNumber(rec["absoluteDegree"]) },
	func(rec map[string]any) (float64, bool) { return finiteNumber(rec["absolute_degree"]) },
	func(rec map[string]any) (float64, bool) { return finiteNumber(rec["fullDegree"]) },
	func(rec map[string]any) (float64, bool) { return finiteNumber(rec["lon"]) },
	func(rec map[string]any) (float64, bool) {
		pos, ok := rec["position"].(map[string]any)
		if !ok {
			return 0, false
		}
		return finiteNumber(pos["longitude"])
	},
}

// retrogradeKeys are the boolean field spellings probed for the
// retrograde flag. Absent or non-boolean values default to false.
var retrogradeKeys = []string{"isRetrograde", "retrograde", "is_retrograde"}

// ExtractBody pulls a canonical Body out of an arbitrary calculator
// record. It returns ok=false when no usable longitude field is present;
// a chart with partial data still renders the bodies it has, so callers
// skip rather than fail.
func ExtractBody(label string, rec map[string]any) (Body, bool) {
	if rec == nil {
		return Body{}, false
	}

	var longitude float64
	found := false
	for _, probe := range longitudeProbes {
		if v, ok := probe(rec); ok {
			longitude = v
			found = true
			break
		}
	}
	if !found {
		return Body{}, false
	}

	retrograde := false
	for _, key := range retrogradeKeys {
		if b, ok := rec[key].(bool); ok {
			retrograde = b
			break
		}
	}
	if !retrograde {
		// Some ephemeris wrappers nest the flag under "motion".
		if motion, ok := rec["motion"].(map[string]any); ok {
			if b, ok := motion["retrograde"].(bool); ok {
				retrograde = b
			}
		}
	}

	return Body{
		Label:      CanonicalLabel(label),
		Longitude:  NormalizeLongitude(longitude),
		Retrograde: retrograde,
	}, true
}

// finiteNumber coerces the numeric shapes YAML and JSON decoders
// produce (float64, int, numeric string) into a finite float64.
func finiteNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}
