package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cvasseur/astrowheel/internal/config"
	"github.com/cvasseur/astrowheel/internal/debug"
	"github.com/cvasseur/astrowheel/internal/logic/aspects"
	"github.com/cvasseur/astrowheel/internal/logic/compose"
	"github.com/cvasseur/astrowheel/internal/logic/geometry"
	"github.com/cvasseur/astrowheel/internal/render/svg"
)

var rootCmd = &cobra.Command{
	Use:   "astrowheel",
	Short: "Astrological chart wheel geometry engine",
	Long: "Astrowheel places celestial bodies and house cusps on a circular chart,\n" +
		"resolves aspects within and across charts, and draws the result as SVG.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .astrowheel.yaml)")
	rootCmd.PersistentFlags().IntP("debug", "d", 0, "debug level 0-4")
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".astrowheel")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("ASTROWHEEL")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// loadConfig resolves the effective configuration and initializes the
// debug logger. The -d flag overrides the configured debug level.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if level, _ := cmd.Flags().GetInt("debug"); level > 0 {
		cfg.DebugLevel = level
	}
	debug.Init(cfg.DebugLevel)
	return cfg, nil
}

// buildEngine wires the composer and renderer from configuration.
func buildEngine(cfg config.Config) (*compose.Composer, *svg.Renderer) {
	solver := geometry.NewSolver(cfg.Solver.MinSeparationDeg, cfg.Solver.RelaxationPasses)
	resolver := aspects.NewResolver()
	resolver.SetPolicy(cfg.Aspects.NatalOrbLimit, cfg.Aspects.NatalCap, cfg.Aspects.SynastryCap)
	return compose.NewComposer(solver, resolver), svg.NewRenderer(cfg.Wheel, cfg.Aspects.TightOrb)
}
