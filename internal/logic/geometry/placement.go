package geometry

import (
	"sort"

	"github.com/cvasseur/astrowheel/internal/chart"
)

// Placement solver defaults. Ten to twelve bodies on a ring separate
// comfortably at 8 degrees; five passes are enough for the relaxation
// to settle at that density.
const (
	DefaultMinSeparationDeg = 8.0
	DefaultRelaxationPasses = 5
)

// PlacedBody is a body resolved to drawing angles. TrueAngle marks the
// body's real position (used for the radial tick line); DisplayAngle is
// where the glyph is drawn after collision avoidance. Both always refer
// to the same body; only the drawn position differs.
type PlacedBody struct {
	Body         chart.Body `json:"body"`
	TrueAngle    float64    `json:"trueAngle"`
	DisplayAngle float64    `json:"displayAngle"`
}

// Solver nudges glyphs apart so bodies at close longitudes stay
// readable. It is a local, symmetric, bounded-iteration relaxation, not
// a global optimizer: O(n²·passes) over n ≈ 10-12 bodies, deterministic
// for a fixed input.
type Solver struct {
	minSeparationDeg float64
	passes           int
}

// NewSolver creates a placement solver. Non-positive arguments fall
// back to the defaults (8°, 5 passes).
func NewSolver(minSeparationDeg float64, passes int) *Solver {
	if minSeparationDeg <= 0 {
		minSeparationDeg = DefaultMinSeparationDeg
	}
	if passes <= 0 {
		passes = DefaultRelaxationPasses
	}
	return &Solver{minSeparationDeg: minSeparationDeg, passes: passes}
}

// MinSeparationDeg returns the configured minimum glyph separation.
func (s *Solver) MinSeparationDeg() float64 {
	return s.minSeparationDeg
}

// Place maps every body to its true angle in the given Ascendant frame
// and relaxes display angles until crowded neighbors separate. The
// result is sorted ascending by true angle. True angles are never
// touched by the relaxation.
func (s *Solver) Place(bodies []chart.Body, ascendant float64) []PlacedBody {
	placed := make([]PlacedBody, 0, len(bodies))
	for _, body := range bodies {
		angle := MapToAngle(body.Longitude, ascendant)
		placed = append(placed, PlacedBody{
			Body:         body,
			TrueAngle:    angle,
			DisplayAngle: angle,
		})
	}

	sort.Slice(placed, func(i, j int) bool {
		if placed[i].TrueAngle != placed[j].TrueAngle {
			return placed[i].TrueAngle < placed[j].TrueAngle
		}
		return placed[i].Body.Label < placed[j].Body.Label
	})

	minSep := DegToRad(s.minSeparationDeg)
	for pass := 0; pass < s.passes; pass++ {
		for i := 0; i < len(placed); i++ {
			for j := i + 1; j < len(placed); j++ {
				// Wrapped difference, so the pair straddling the
				// 0°/360° seam is pushed apart like any other.
				diff := ShortestAngle(placed[j].DisplayAngle - placed[i].DisplayAngle)
				dist := diff
				if dist < 0 {
					dist = -dist
				}
				if dist >= minSep {
					continue
				}
				// Push both away from each other by half the deficit,
				// preserving their average angle.
				shift := (minSep - dist) / 2
				if diff >= 0 {
					placed[i].DisplayAngle -= shift
					placed[j].DisplayAngle += shift
				} else {
					placed[i].DisplayAngle += shift
					placed[j].DisplayAngle -= shift
				}
			}
		}
	}

	return placed
}
