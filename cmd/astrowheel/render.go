package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cvasseur/astrowheel/internal/chart"
	"github.com/cvasseur/astrowheel/internal/config"
	"github.com/cvasseur/astrowheel/internal/debug"
	"github.com/cvasseur/astrowheel/internal/logic/compose"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a chart dataset to an SVG wheel",
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().String("chart", "", "primary chart dataset YAML (required)")
	renderCmd.Flags().String("overlay", "", "secondary chart dataset YAML for synastry")
	renderCmd.Flags().StringP("out", "o", "chart.svg", "output SVG file")
	renderCmd.MarkFlagRequired("chart")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	chartPath, _ := cmd.Flags().GetString("chart")
	overlayPath, _ := cmd.Flags().GetString("overlay")
	outPath, _ := cmd.Flags().GetString("out")

	plan, err := composeFromFiles(cfg, chartPath, overlayPath)
	if err != nil {
		return err
	}

	_, renderer := buildEngine(cfg)
	doc := renderer.Render(plan)
	if err := os.WriteFile(outPath, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	debug.Render(outPath)
	fmt.Printf("wrote %s\n", outPath)
	return nil
}

// composeFromFiles loads the dataset file(s) and runs the composer.
func composeFromFiles(cfg config.Config, chartPath, overlayPath string) (*compose.RenderPlan, error) {
	primary, err := chart.Load(chartPath)
	if err != nil {
		return nil, fmt.Errorf("load primary chart: %w", err)
	}
	debug.Placements("primary", len(primary.Bodies), len(primary.Houses))

	var overlay *chart.Dataset
	if overlayPath != "" {
		overlay, err = chart.Load(overlayPath)
		if err != nil {
			return nil, fmt.Errorf("load overlay chart: %w", err)
		}
		debug.Placements("overlay", len(overlay.Bodies), len(overlay.Houses))
	}

	composer, _ := buildEngine(cfg)
	plan, err := composer.Compose(primary, overlay)
	if err != nil {
		return nil, err
	}
	debug.Aspects(len(plan.NatalAspects), len(plan.SynastryAspects))
	return plan, nil
}
