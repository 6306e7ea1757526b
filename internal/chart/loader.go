package chart

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// labelKeys are the record fields probed for a body's name when the
// calculator does not key bodies by label.
var labelKeys = []string{"label", "name", "planet", "body"}

// rawDataset mirrors the on-disk YAML shape. Bodies stay untyped maps
// because calculator exports disagree on field names; ExtractBody
// resolves them.
type rawDataset struct {
	Ascendant *float64         `yaml:"ascendant"`
	Midheaven *float64         `yaml:"midheaven"`
	Bodies    []map[string]any `yaml:"bodies"`
	Houses    []HouseCusp      `yaml:"houses"`
	Aspects   []AspectRecord   `yaml:"aspects"`
}

// Load reads a chart dataset YAML file and returns the normalized
// dataset. Bodies with no usable longitude are dropped rather than
// rejected; a partially filled file still yields a renderable chart.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset file: %w", err)
	}

	var raw rawDataset
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}

	return fromRaw(&raw), nil
}

// fromRaw normalizes a decoded raw dataset: body extraction via the
// field probes, longitude wrapping, and house ordering.
func fromRaw(raw *rawDataset) *Dataset {
	ds := &Dataset{
		Ascendant: raw.Ascendant,
		Midheaven: raw.Midheaven,
		Aspects:   raw.Aspects,
	}

	for _, rec := range raw.Bodies {
		label := ""
		for _, key := range labelKeys {
			if s, ok := rec[key].(string); ok && s != "" {
				label = s
				break
			}
		}
		body, ok := ExtractBody(label, rec)
		if !ok {
			continue
		}
		ds.Bodies = append(ds.Bodies, body)
	}

	for _, cusp := range raw.Houses {
		if cusp.House < 1 || cusp.House > 12 {
			continue
		}
		cusp.Longitude = NormalizeLongitude(cusp.Longitude)
		ds.Houses = append(ds.Houses, cusp)
	}
	sort.Slice(ds.Houses, func(i, j int) bool {
		return ds.Houses[i].House < ds.Houses[j].House
	})

	return ds
}
