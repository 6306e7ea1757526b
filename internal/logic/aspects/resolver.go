package aspects

import (
	"sort"

	"github.com/cvasseur/astrowheel/internal/chart"
)

// Display policy defaults: natal aspects keep only the tightest
// 20 under an 8° orb, synastry lines cap at 25.
const (
	DefaultNatalOrbLimit = 8.0
	DefaultNatalCap      = 20
	DefaultSynastryCap   = 25
)

// ResolvedAspect is one qualifying pair within a context (natal or
// synastry). ActualOrb is the deviation from the definition's exact
// angle; the renderer branches on it for line weight.
type ResolvedAspect struct {
	BodyA      string     `json:"bodyA"`
	BodyB      string     `json:"bodyB"`
	Definition Definition `json:"definition"`
	ActualOrb  float64    `json:"actualOrb"`
}

// Resolver applies display policy to precomputed natal aspects and
// performs full pairwise matching for cross-chart synastry.
type Resolver struct {
	defs          []Definition
	natalOrbLimit float64
	natalCap      int
	synastryCap   int
}

// NewResolver creates a resolver over the standard definition table
// with the default display policy.
func NewResolver() *Resolver {
	return &Resolver{
		defs:          Definitions,
		natalOrbLimit: DefaultNatalOrbLimit,
		natalCap:      DefaultNatalCap,
		synastryCap:   DefaultSynastryCap,
	}
}

// SetPolicy overrides the display-policy knobs. Non-positive values
// keep the current setting.
func (r *Resolver) SetPolicy(natalOrbLimit float64, natalCap, synastryCap int) {
	if natalOrbLimit > 0 {
		r.natalOrbLimit = natalOrbLimit
	}
	if natalCap > 0 {
		r.natalCap = natalCap
	}
	if synastryCap > 0 {
		r.synastryCap = synastryCap
	}
}

// SelectNatal applies display policy to the calculator's precomputed
// aspect list: keep only the five major aspect types, drop malformed
// records and orbs at or beyond the limit, dedupe unordered pairs,
// sort tightest-first, and cap the result. Nothing is recomputed.
func (r *Resolver) SelectNatal(records []chart.AspectRecord) []ResolvedAspect {
	selected := make([]ResolvedAspect, 0, len(records))
	for _, rec := range records {
		if rec.Planet1 == "" || rec.Planet2 == "" || rec.Orb < 0 {
			continue
		}
		def, ok := DefinitionByName(rec.Type.Name)
		if !ok {
			continue // minor or unknown aspect type, not drawn
		}
		if rec.Orb >= r.natalOrbLimit {
			continue
		}
		selected = append(selected, ResolvedAspect{
			BodyA:      chart.CanonicalLabel(rec.Planet1),
			BodyB:      chart.CanonicalLabel(rec.Planet2),
			Definition: def,
			ActualOrb:  rec.Orb,
		})
	}

	sortByOrb(selected)
	selected = dedupePairs(selected)
	if len(selected) > r.natalCap {
		selected = selected[:r.natalCap]
	}
	return selected
}

// ResolveSynastry matches every body of chart A against every body of
// chart B. A pair is assigned to the first definition in priority
// order it satisfies, then no further definitions are checked for that
// pair. Results are sorted tightest-first and capped.
func (r *Resolver) ResolveSynastry(a, b []chart.Body) []ResolvedAspect {
	var matched []ResolvedAspect
	for _, bodyA := range a {
		for _, bodyB := range b {
			def, orb, ok := r.matchPair(bodyA.Longitude, bodyB.Longitude)
			if !ok {
				continue
			}
			matched = append(matched, ResolvedAspect{
				BodyA:      bodyA.Label,
				BodyB:      bodyB.Label,
				Definition: def,
				ActualOrb:  orb,
			})
		}
	}

	sortByOrb(matched)
	if len(matched) > r.synastryCap {
		matched = matched[:r.synastryCap]
	}
	return matched
}

// matchPair reduces the longitude difference to [0, 180] and returns
// the first definition whose orb tolerance contains it.
func (r *Resolver) matchPair(lonA, lonB float64) (Definition, float64, bool) {
	diff := lonA - lonB
	if diff < 0 {
		diff = -diff
	}
	if diff > 180 {
		diff = 360 - diff
	}
	for _, def := range r.defs {
		orb := diff - def.TargetAngle
		if orb < 0 {
			orb = -orb
		}
		if orb <= def.OrbTolerance {
			return def, orb, true
		}
	}
	return Definition{}, 0, false
}

// sortByOrb orders ascending by orb (tightest, strongest lines first),
// breaking ties on labels so output is deterministic.
func sortByOrb(list []ResolvedAspect) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].ActualOrb != list[j].ActualOrb {
			return list[i].ActualOrb < list[j].ActualOrb
		}
		if list[i].BodyA != list[j].BodyA {
			return list[i].BodyA < list[j].BodyA
		}
		return list[i].BodyB < list[j].BodyB
	})
}

// dedupePairs keeps the first entry per unordered label pair. The
// input is already sorted by orb, so the tightest record wins.
func dedupePairs(list []ResolvedAspect) []ResolvedAspect {
	seen := make(map[[2]string]bool, len(list))
	out := list[:0]
	for _, asp := range list {
		key := [2]string{asp.BodyA, asp.BodyB}
		if key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, asp)
	}
	return out
}
