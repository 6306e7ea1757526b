package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cvasseur/astrowheel/internal/config"
	"github.com/cvasseur/astrowheel/internal/debug"
	"github.com/cvasseur/astrowheel/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-render the wheel whenever a dataset file changes",
	Long: "Watches the chart dataset file(s) and recomputes placement, aspects, and\n" +
		"the SVG output on every save. The engine keeps no state between renders.",
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().String("chart", "", "primary chart dataset YAML (required)")
	watchCmd.Flags().String("overlay", "", "secondary chart dataset YAML for synastry")
	watchCmd.Flags().StringP("out", "o", "chart.svg", "output SVG file")
	watchCmd.MarkFlagRequired("chart")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	chartPath, _ := cmd.Flags().GetString("chart")
	overlayPath, _ := cmd.Flags().GetString("overlay")
	outPath, _ := cmd.Flags().GetString("out")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Initial render so the output exists before the first save.
	if err := renderOnce(cfg, chartPath, overlayPath, outPath); err != nil {
		return err
	}

	files := []string{chartPath}
	if overlayPath != "" {
		files = append(files, overlayPath)
	}
	watcher, err := watch.NewWatcher(files...)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Start(); err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Stop()

	fmt.Printf("watching %d file(s), writing %s (ctrl-c to stop)\n", len(files), outPath)
	for {
		select {
		case change := <-watcher.Changes:
			debug.Watch(change.File)
			// A re-render failure (e.g. half-saved YAML) keeps the
			// previous output and waits for the next save.
			if err := renderOnce(cfg, chartPath, overlayPath, outPath); err != nil {
				fmt.Fprintf(os.Stderr, "re-render failed: %v\n", err)
			}
		case <-ctx.Done():
			return nil
		}
	}
}

func renderOnce(cfg config.Config, chartPath, overlayPath, outPath string) error {
	plan, err := composeFromFiles(cfg, chartPath, overlayPath)
	if err != nil {
		return err
	}
	_, renderer := buildEngine(cfg)
	if err := os.WriteFile(outPath, []byte(renderer.Render(plan)), 0o644); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	debug.Render(outPath)
	return nil
}
