package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cvasseur/astrowheel/internal/logic/aspects"
	"github.com/cvasseur/astrowheel/internal/logic/geometry"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print placements and aspects for a chart as text",
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().String("chart", "", "primary chart dataset YAML (required)")
	inspectCmd.Flags().String("overlay", "", "secondary chart dataset YAML for synastry")
	inspectCmd.MarkFlagRequired("chart")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	chartPath, _ := cmd.Flags().GetString("chart")
	overlayPath, _ := cmd.Flags().GetString("overlay")

	plan, err := composeFromFiles(cfg, chartPath, overlayPath)
	if err != nil {
		return err
	}

	fmt.Printf("Ascendant: %.2f°\n\n", plan.Ascendant)

	fmt.Println("Primary placements:")
	printPlacements(plan.Primary.Bodies)
	if plan.Overlay != nil {
		fmt.Println("\nOverlay placements:")
		printPlacements(plan.Overlay.Bodies)
	}

	fmt.Println("\nNatal aspects:")
	printAspects(plan.NatalAspects)
	if plan.Overlay != nil {
		fmt.Println("\nSynastry aspects:")
		printAspects(plan.SynastryAspects)
	}
	return nil
}

func printPlacements(bodies []geometry.PlacedBody) {
	for _, placed := range bodies {
		marker := ""
		if placed.Body.Retrograde {
			marker = " ℞"
		}
		nudge := geometry.RadToDeg(placed.DisplayAngle - placed.TrueAngle)
		fmt.Printf("  %-12s lon %7.2f°  angle %8.2f°  nudge %+.2f°%s\n",
			placed.Body.Label, placed.Body.Longitude,
			geometry.RadToDeg(placed.TrueAngle), nudge, marker)
	}
}

func printAspects(list []aspects.ResolvedAspect) {
	if len(list) == 0 {
		fmt.Println("  (none)")
		return
	}
	for _, asp := range list {
		fmt.Printf("  %-11s %s %s %s (orb %.2f°)\n",
			asp.Definition.Name, asp.BodyA, asp.Definition.Symbol, asp.BodyB, asp.ActualOrb)
	}
}
