// flingdemo exercises the fling swipe controller.
//
// Usage:
//
//	flingdemo run                 - Open a window with a deck of swipeable cards
//	flingdemo replay <script>     - Replay a JSON gesture script headlessly
//	flingdemo history             - List recorded swipe outcomes
//
// Global flags:
//
//	--config <path> - Tuning file (default: search ~/.fling and ./configs)
//	--db <path>     - Journal database path (default: ~/.fling/journal.db)
//	--axes <mode>   - Override exit axes: all or horizontal
//	--debug         - Log controller transitions to stderr
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/phanxgames/fling"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
	flagAxes   string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flingdemo",
	Short: "Swipeable card deck demo",
	Long: `flingdemo drives the fling swipe controller with real input, scripted
gestures, or shows what was swiped so far.

Available commands:
  run      - Interactive deck (mouse or touch)
  replay   - Headless gesture script replay
  history  - Recorded outcomes

Examples:
  flingdemo run --axes horizontal
  flingdemo replay testdata/swipe_left.json
  flingdemo history --limit 50`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.fling/journal.db", "Path to journal database (empty to disable)")
	rootCmd.PersistentFlags().StringVar(&flagAxes, "axes", "", "Exit axes override: all or horizontal")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log controller transitions")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(historyCmd)
}

// loadConfig resolves the tuning and applies the --axes override.
func loadConfig() (fling.Config, error) {
	cfg, err := fling.LoadConfig(flagConfig)
	if err != nil {
		return fling.Config{}, err
	}
	if flagAxes != "" {
		axes, err := fling.ParseAxes(flagAxes)
		if err != nil {
			return fling.Config{}, err
		}
		cfg.Axes = axes
	}
	return cfg, nil
}

// newLogger returns the program logger. --debug lowers it to debug level.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "flingdemo",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// cardSize is the size of every demo card relative to the container.
func cardSize(cfg fling.Config) (w, h float64) {
	return cfg.ContainerWidth / 2, cfg.ContainerHeight / 2
}

// newCenteredCard places a card in the middle of the container.
func newCenteredCard(cfg fling.Config, name string) *fling.Card {
	w, h := cardSize(cfg)
	return fling.NewCard(name, (cfg.ContainerWidth-w)/2, (cfg.ContainerHeight-h)/2, w, h)
}
