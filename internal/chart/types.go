package chart

// Body is a celestial body pinned to an ecliptic longitude.
// Identity is the label (e.g. "Sun", "Ascendant"); the longitude is
// always normalized into [0, 360).
type Body struct {
	Label      string  `yaml:"label" json:"label"`
	Longitude  float64 `yaml:"longitude" json:"longitude"`
	Retrograde bool    `yaml:"retrograde" json:"retrograde"`
}

// HouseCusp marks the longitude where one of the twelve houses begins.
// Houses wrap circularly: house 12's next boundary is house 1.
type HouseCusp struct {
	House     int     `yaml:"house" json:"house"`
	Longitude float64 `yaml:"longitude" json:"longitude"`
}

// AspectTypeInfo describes an aspect type as reported by the external
// astrology calculator.
type AspectTypeInfo struct {
	Name   string `yaml:"name" json:"name"`
	Nature string `yaml:"nature" json:"nature"`
	Symbol string `yaml:"symbol" json:"symbol"`
}

// AspectRecord is one precomputed natal aspect from the external
// calculator. Records may be partial; malformed ones are filtered out
// during display-policy selection rather than rejected at load time.
type AspectRecord struct {
	Planet1    string         `yaml:"planet1" json:"planet1"`
	Planet2    string         `yaml:"planet2" json:"planet2"`
	Type       AspectTypeInfo `yaml:"type" json:"type"`
	Orb        float64        `yaml:"orb" json:"orb"`
	IsApplying bool           `yaml:"applying" json:"applying"`
}

// Dataset is one person's chart at one instant: read-only input to the
// engine, produced fresh each time the calculator runs.
type Dataset struct {
	Ascendant *float64       `yaml:"ascendant" json:"ascendant,omitempty"`
	Midheaven *float64       `yaml:"midheaven" json:"midheaven,omitempty"`
	Bodies    []Body         `yaml:"bodies" json:"bodies"`
	Houses    []HouseCusp    `yaml:"houses" json:"houses"`
	Aspects   []AspectRecord `yaml:"aspects" json:"aspects"`
}

// AscendantLongitude returns the chart's Ascendant, or 0 when the
// calculator could not supply one. A chart without an Ascendant still
// renders; it is simply anchored at 0°.
func (d *Dataset) AscendantLongitude() float64 {
	if d.Ascendant == nil {
		return 0
	}
	return NormalizeLongitude(*d.Ascendant)
}

// Normalize canonicalizes labels, wraps longitudes, and drops
// out-of-range houses on a dataset decoded from a typed source (e.g.
// a JSON request body) that bypassed the field-probing loader.
func (d *Dataset) Normalize() {
	for i := range d.Bodies {
		d.Bodies[i].Label = CanonicalLabel(d.Bodies[i].Label)
		d.Bodies[i].Longitude = NormalizeLongitude(d.Bodies[i].Longitude)
	}
	houses := d.Houses[:0]
	for _, cusp := range d.Houses {
		if cusp.House < 1 || cusp.House > 12 {
			continue
		}
		cusp.Longitude = NormalizeLongitude(cusp.Longitude)
		houses = append(houses, cusp)
	}
	d.Houses = houses
}
