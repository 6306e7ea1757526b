// Package compose assembles the per-chart placement and aspect results
// into one render plan for the drawing surface.
package compose

import (
	"fmt"

	"github.com/cvasseur/astrowheel/internal/chart"
	"github.com/cvasseur/astrowheel/internal/logic/aspects"
	"github.com/cvasseur/astrowheel/internal/logic/geometry"
)

// HouseAngle is a house cusp mapped into the drawing frame.
type HouseAngle struct {
	House     int     `json:"house"`
	Longitude float64 `json:"longitude"`
	Angle     float64 `json:"angle"`
}

// ChartPlacement is the placement output for one chart on the wheel.
type ChartPlacement struct {
	Bodies []geometry.PlacedBody `json:"bodies"`
	Houses []HouseAngle          `json:"houses"`
}

// RenderPlan is the full instruction payload handed to the rendering
// surface: where everything goes and which pairs are related. Synastry
// is nil (not empty) when no overlay chart was supplied.
type RenderPlan struct {
	Ascendant       float64                  `json:"ascendant"`
	Primary         ChartPlacement           `json:"primary"`
	Overlay         *ChartPlacement          `json:"overlay,omitempty"`
	NatalAspects    []aspects.ResolvedAspect `json:"natalAspects"`
	SynastryAspects []aspects.ResolvedAspect `json:"synastryAspects,omitempty"`
}

// Composer runs the placement solver and aspect resolver over one or
// two charts sharing the primary chart's Ascendant frame.
type Composer struct {
	solver   *geometry.Solver
	resolver *aspects.Resolver
}

// NewComposer wires a composer from its two collaborators. Nil
// arguments fall back to default-configured instances.
func NewComposer(solver *geometry.Solver, resolver *aspects.Resolver) *Composer {
	if solver == nil {
		solver = geometry.NewSolver(0, 0)
	}
	if resolver == nil {
		resolver = aspects.NewResolver()
	}
	return &Composer{solver: solver, resolver: resolver}
}

// Compose builds the render plan for a primary chart and an optional
// overlay chart. The overlay's angles are computed against the
// primary's Ascendant, not its own, so both charts share one wheel.
// When no overlay is supplied, synastry resolution is skipped entirely
// rather than run against an empty set.
func (c *Composer) Compose(primary, overlay *chart.Dataset) (*RenderPlan, error) {
	if primary == nil {
		return nil, fmt.Errorf("compose: primary dataset is required")
	}

	ascendant := primary.AscendantLongitude()
	plan := &RenderPlan{
		Ascendant:    ascendant,
		Primary:      c.placeChart(primary, ascendant),
		NatalAspects: c.resolver.SelectNatal(primary.Aspects),
	}

	if overlay != nil {
		overlayPlacement := c.placeChart(overlay, ascendant)
		plan.Overlay = &overlayPlacement
		plan.SynastryAspects = c.resolver.ResolveSynastry(primary.Bodies, overlay.Bodies)
	}

	return plan, nil
}

// placeChart runs the placement solver over a dataset's bodies and
// maps its house cusps into the shared frame.
func (c *Composer) placeChart(ds *chart.Dataset, ascendant float64) ChartPlacement {
	placement := ChartPlacement{
		Bodies: c.solver.Place(ds.Bodies, ascendant),
	}
	for _, cusp := range ds.Houses {
		placement.Houses = append(placement.Houses, HouseAngle{
			House:     cusp.House,
			Longitude: cusp.Longitude,
			Angle:     geometry.MapToAngle(cusp.Longitude, ascendant),
		})
	}
	return placement
}
