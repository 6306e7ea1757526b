// Package svg draws a render plan as a standalone SVG wheel. It is a
// thin demonstration surface: all placement decisions are already made
// by the geometry and aspect layers.
package svg

import (
	"fmt"
	"strings"

	"github.com/cvasseur/astrowheel/internal/config"
	"github.com/cvasseur/astrowheel/internal/logic/aspects"
	"github.com/cvasseur/astrowheel/internal/logic/compose"
	"github.com/cvasseur/astrowheel/internal/logic/geometry"
)

// Line styling for aspect chords by nature.
const (
	harmoniousColor  = "#4a7fd9"
	challengingColor = "#d94a4a"
	neutralColor     = "#8a8a8a"
	primaryColor     = "#222222"
	overlayColor     = "#7a4ad9"
	ringColor        = "#bbbbbb"
)

// glyphs maps canonical body labels to their astrological symbols.
// Unknown bodies fall back to their first letter.
var glyphs = map[string]string{
	"Sun":        "☉",
	"Moon":       "☽",
	"Mercury":    "☿",
	"Venus":      "♀",
	"Mars":       "♂",
	"Jupiter":    "♃",
	"Saturn":     "♄",
	"Uranus":     "♅",
	"Neptune":    "♆",
	"Pluto":      "♇",
	"Ascendant":  "Asc",
	"Midheaven":  "MC",
	"North Node": "☊",
	"Chiron":     "⚷",
}

// Renderer draws render plans with a fixed wheel geometry.
type Renderer struct {
	wheel    config.WheelConfig
	tightOrb float64
}

// NewRenderer creates a renderer. tightOrb is the orb below which an
// aspect chord is drawn solid instead of dashed.
func NewRenderer(wheel config.WheelConfig, tightOrb float64) *Renderer {
	return &Renderer{wheel: wheel, tightOrb: tightOrb}
}

// Render produces a complete SVG document for the plan.
func (r *Renderer) Render(plan *compose.RenderPlan) string {
	size := r.wheel.CanvasSize
	center := geometry.Point{X: float64(size) / 2, Y: float64(size) / 2}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		size, size, size, size)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="#ffffff"/>`+"\n", size, size)

	r.drawRings(&b, center)
	r.drawSignBoundaries(&b, center, plan.Ascendant)
	r.drawHouses(&b, center, plan.Primary.Houses)
	r.drawAspects(&b, center, plan)
	r.drawBodies(&b, center, plan.Primary.Bodies, r.wheel.BodyRadius, primaryColor)
	if plan.Overlay != nil {
		r.drawBodies(&b, center, plan.Overlay.Bodies, r.wheel.OverlayRadius, overlayColor)
	}

	b.WriteString("</svg>\n")
	return b.String()
}

func (r *Renderer) drawRings(b *strings.Builder, center geometry.Point) {
	for _, radius := range []float64{r.wheel.ZodiacRadius, r.wheel.BodyRadius + 18, r.wheel.AspectRadius} {
		fmt.Fprintf(b, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="%s" stroke-width="1"/>`+"\n",
			center.X, center.Y, radius, ringColor)
	}
}

// drawSignBoundaries draws the twelve 30° zodiac divisions between the
// outer ring and the body ring.
func (r *Renderer) drawSignBoundaries(b *strings.Builder, center geometry.Point, ascendant float64) {
	for sign := 0; sign < 12; sign++ {
		angle := geometry.MapToAngle(float64(sign*30), ascendant)
		outer := geometry.PolarToXY(angle, r.wheel.ZodiacRadius, center)
		inner := geometry.PolarToXY(angle, r.wheel.BodyRadius+18, center)
		fmt.Fprintf(b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="0.5"/>`+"\n",
			outer.X, outer.Y, inner.X, inner.Y, ringColor)
	}
}

func (r *Renderer) drawHouses(b *strings.Builder, center geometry.Point, houses []compose.HouseAngle) {
	for _, house := range houses {
		edge := geometry.PolarToXY(house.Angle, r.wheel.BodyRadius+18, center)
		inner := geometry.PolarToXY(house.Angle, r.wheel.AspectRadius, center)
		fmt.Fprintf(b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="0.75"/>`+"\n",
			edge.X, edge.Y, inner.X, inner.Y, primaryColor)

		// House number label just inside its cusp.
		labelPos := geometry.PolarToXY(house.Angle-geometry.DegToRad(12), r.wheel.AspectRadius-14, center)
		fmt.Fprintf(b, `<text x="%.1f" y="%.1f" font-size="10" fill="%s" text-anchor="middle">%d</text>`+"\n",
			labelPos.X, labelPos.Y, neutralColor, house.House)
	}
}

// drawAspects draws natal then synastry chords between the aspect-ring
// projections of each pair's true angles.
func (r *Renderer) drawAspects(b *strings.Builder, center geometry.Point, plan *compose.RenderPlan) {
	primaryAngles := bodyAngles(plan.Primary.Bodies)
	r.drawAspectSet(b, center, plan.NatalAspects, primaryAngles, primaryAngles)
	if plan.Overlay != nil {
		r.drawAspectSet(b, center, plan.SynastryAspects, primaryAngles, bodyAngles(plan.Overlay.Bodies))
	}
}

func (r *Renderer) drawAspectSet(b *strings.Builder, center geometry.Point, list []aspects.ResolvedAspect, anglesA, anglesB map[string]float64) {
	for _, asp := range list {
		angleA, okA := anglesA[asp.BodyA]
		angleB, okB := anglesB[asp.BodyB]
		if !okA || !okB {
			continue // endpoint not on the wheel (e.g. filtered body)
		}
		from := geometry.PolarToXY(angleA, r.wheel.AspectRadius, center)
		to := geometry.PolarToXY(angleB, r.wheel.AspectRadius, center)

		dash := ""
		if asp.ActualOrb >= r.tightOrb {
			dash = ` stroke-dasharray="4,3"`
		}
		fmt.Fprintf(b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1"%s/>`+"\n",
			from.X, from.Y, to.X, to.Y, natureColor(asp.Definition.Nature), dash)
	}
}

func (r *Renderer) drawBodies(b *strings.Builder, center geometry.Point, bodies []geometry.PlacedBody, radius float64, color string) {
	for _, placed := range bodies {
		// Tick line from the ring to the body's true position; the
		// glyph itself sits at the nudged display angle.
		tickOuter := geometry.PolarToXY(placed.TrueAngle, r.wheel.BodyRadius+18, center)
		tickInner := geometry.PolarToXY(placed.TrueAngle, radius+8, center)
		fmt.Fprintf(b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="0.5"/>`+"\n",
			tickOuter.X, tickOuter.Y, tickInner.X, tickInner.Y, color)

		pos := geometry.PolarToXY(placed.DisplayAngle, radius, center)
		label := glyphFor(placed.Body.Label)
		if placed.Body.Retrograde {
			label += " ℞"
		}
		fmt.Fprintf(b, `<text x="%.1f" y="%.1f" font-size="14" fill="%s" text-anchor="middle" dominant-baseline="middle">%s</text>`+"\n",
			pos.X, pos.Y, color, escapeXML(label))
	}
}

func bodyAngles(bodies []geometry.PlacedBody) map[string]float64 {
	angles := make(map[string]float64, len(bodies))
	for _, placed := range bodies {
		angles[placed.Body.Label] = placed.TrueAngle
	}
	return angles
}

func glyphFor(label string) string {
	if glyph, ok := glyphs[label]; ok {
		return glyph
	}
	if label == "" {
		return "?"
	}
	return string([]rune(label)[:1])
}

func natureColor(nature aspects.Nature) string {
	switch nature {
	case aspects.Harmonious:
		return harmoniousColor
	case aspects.Challenging:
		return challengingColor
	default:
		return neutralColor
	}
}

// escapeXML escapes the characters that would break SVG text nodes.
func escapeXML(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return replacer.Replace(s)
}
