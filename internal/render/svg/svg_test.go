package svg

import (
	"strings"
	"testing"

	"github.com/cvasseur/astrowheel/internal/chart"
	"github.com/cvasseur/astrowheel/internal/config"
	"github.com/cvasseur/astrowheel/internal/logic/compose"
)

func testWheel() config.WheelConfig {
	return config.WheelConfig{
		CanvasSize:    600,
		ZodiacRadius:  270,
		BodyRadius:    210,
		OverlayRadius: 160,
		AspectRadius:  140,
	}
}

func floatPtr(v float64) *float64 { return &v }

func renderPlan(t *testing.T, primary, overlay *chart.Dataset) *compose.RenderPlan {
	t.Helper()
	plan, err := compose.NewComposer(nil, nil).Compose(primary, overlay)
	if err != nil {
		t.Fatal(err)
	}
	return plan
}

func TestRender_WellFormedDocument(t *testing.T) {
	plan := renderPlan(t, &chart.Dataset{
		Ascendant: floatPtr(100),
		Bodies: []chart.Body{
			{Label: "Sun", Longitude: 10},
			{Label: "Moon", Longitude: 190},
		},
		Houses: []chart.HouseCusp{{House: 1, Longitude: 100}},
	}, nil)

	out := NewRenderer(testWheel(), 3).Render(plan)

	if !strings.HasPrefix(out, "<svg") || !strings.HasSuffix(strings.TrimSpace(out), "</svg>") {
		t.Error("output is not a complete SVG document")
	}
	if !strings.Contains(out, "☉") || !strings.Contains(out, "☽") {
		t.Error("expected Sun and Moon glyphs in output")
	}
	if !strings.Contains(out, ">1</text>") {
		t.Error("expected house 1 label in output")
	}
}

func TestRender_AspectLineStyles(t *testing.T) {
	// Opposition at orb 0 draws solid; a loose Trine at orb 5 draws
	// dashed.
	plan := renderPlan(t, &chart.Dataset{
		Ascendant: floatPtr(0),
		Bodies: []chart.Body{
			{Label: "Sun", Longitude: 10},
			{Label: "Moon", Longitude: 190},
			{Label: "Mars", Longitude: 135},
		},
		Aspects: []chart.AspectRecord{
			{Planet1: "Sun", Planet2: "Moon", Type: chart.AspectTypeInfo{Name: "Opposition"}, Orb: 0},
			{Planet1: "Sun", Planet2: "Mars", Type: chart.AspectTypeInfo{Name: "Trine"}, Orb: 5},
		},
	}, nil)

	out := NewRenderer(testWheel(), 3).Render(plan)

	if !strings.Contains(out, challengingColor) {
		t.Error("expected challenging-colored opposition line")
	}
	if !strings.Contains(out, harmoniousColor) {
		t.Error("expected harmonious-colored trine line")
	}
	if strings.Count(out, "stroke-dasharray") != 1 {
		t.Errorf("expected exactly one dashed line, got %d", strings.Count(out, "stroke-dasharray"))
	}
}

func TestRender_OverlayBodiesOnInnerRing(t *testing.T) {
	plan := renderPlan(t,
		&chart.Dataset{
			Ascendant: floatPtr(0),
			Bodies:    []chart.Body{{Label: "Sun", Longitude: 10}},
		},
		&chart.Dataset{
			Bodies: []chart.Body{{Label: "Venus", Longitude: 70}},
		})

	out := NewRenderer(testWheel(), 3).Render(plan)

	if !strings.Contains(out, overlayColor) {
		t.Error("expected overlay-colored elements for the secondary chart")
	}
	if !strings.Contains(out, "♀") {
		t.Error("expected Venus glyph from the overlay chart")
	}
}

func TestRender_RetrogradeMarker(t *testing.T) {
	plan := renderPlan(t, &chart.Dataset{
		Bodies: []chart.Body{{Label: "Mercury", Longitude: 50, Retrograde: true}},
	}, nil)

	out := NewRenderer(testWheel(), 3).Render(plan)
	if !strings.Contains(out, "℞") {
		t.Error("expected retrograde marker in output")
	}
}

func TestEscapeXML(t *testing.T) {
	got := escapeXML(`<a & "b">`)
	want := "&lt;a &amp; &quot;b&quot;&gt;"
	if got != want {
		t.Errorf("escapeXML = %q, want %q", got, want)
	}
}

func TestGlyphFor_Fallback(t *testing.T) {
	if got := glyphFor("Vesta"); got != "V" {
		t.Errorf("glyphFor(Vesta) = %q, want V", got)
	}
	if got := glyphFor(""); got != "?" {
		t.Errorf("glyphFor(\"\") = %q, want ?", got)
	}
}
