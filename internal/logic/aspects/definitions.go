package aspects

// Nature classifies how an aspect is traditionally read. The engine
// only carries it through for the renderer's color choice.
type Nature string

const (
	Harmonious  Nature = "Harmonious"
	Challenging Nature = "Challenging"
	Neutral     Nature = "Neutral"
)

// Definition is one entry of the static aspect table: an exact target
// angle and the orb tolerance within which a pair still counts.
type Definition struct {
	Name         string  `json:"name"`
	TargetAngle  float64 `json:"targetAngle"`
	OrbTolerance float64 `json:"orbTolerance"`
	Nature       Nature  `json:"nature"`
	Symbol       string  `json:"symbol"`
}

// Definitions is the priority-ordered aspect table. Order matters:
// synastry matching assigns a pair to the first definition it
// satisfies, so Conjunction outranks Opposition outranks Trine, and so
// on down the list.
var Definitions = []Definition{
	{Name: "Conjunction", TargetAngle: 0, OrbTolerance: 8, Nature: Neutral, Symbol: "☌"},
	{Name: "Opposition", TargetAngle: 180, OrbTolerance: 8, Nature: Challenging, Symbol: "☍"},
	{Name: "Trine", TargetAngle: 120, OrbTolerance: 8, Nature: Harmonious, Symbol: "△"},
	{Name: "Square", TargetAngle: 90, OrbTolerance: 7, Nature: Challenging, Symbol: "□"},
	{Name: "Sextile", TargetAngle: 60, OrbTolerance: 6, Nature: Harmonious, Symbol: "⚹"},
}

// DefinitionByName finds a table entry by its display name.
func DefinitionByName(name string) (Definition, bool) {
	for _, def := range Definitions {
		if def.Name == name {
			return def, true
		}
	}
	return Definition{}, false
}
