package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/fling"
	"github.com/phanxgames/fling/journal"
)

var flagMaxFrames int

var replayCmd = &cobra.Command{
	Use:   "replay <script.json>",
	Short: "Replay a JSON gesture script headlessly",
	Long: `Replay a gesture script against a single centered card and print every
outcome. Coordinates in the script are screen coordinates; the container
sits at the screen origin.

Example script:
  {"steps": [
    {"action": "drag", "fromX": 240, "fromY": 360, "toX": 20, "toY": 360, "frames": 8},
    {"action": "wait", "frames": 30}
  ]}`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().IntVar(&flagMaxFrames, "max-frames", 600, "Give up after this many frames")
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read script %s: %w", args[0], err)
	}
	runner, err := fling.LoadGestureScript(data)
	if err != nil {
		return err
	}

	card := newCenteredCard(cfg, "replay")
	anim := fling.NewTweenAnimator(cfg.OvershootTension)
	c, err := fling.NewController(card, anim, card.Name, cfg)
	if err != nil {
		return err
	}
	if flagDebug {
		c.SetLogger(fling.NewDebugLogger(os.Stderr))
	}

	out := cmd.OutOrStdout()
	c.SetListener(fling.Callbacks{
		Exited: func(origin fling.Vec2, data any, edge fling.Edge) {
			fmt.Fprintf(out, "exit    %-6s from (%.0f, %.0f)\n", edge, origin.X, origin.Y)
		},
		ZoneClicked: func(data any, zone fling.Zone) {
			fmt.Fprintf(out, "click   %s\n", zone)
		},
	})

	if flagDBPath != "" {
		jr, err := journal.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer jr.Close()
		jr.SetLogger(logger)
		c.SetEventStore(jr)
	}

	runner.Attach(fling.NewInjector(c, card), anim)
	if err := runner.Run(flagMaxFrames); err != nil {
		return err
	}

	pos := card.Position()
	fmt.Fprintf(out, "done after %d frames, card at (%.1f, %.1f) rotated %.1f°, state %s\n",
		runner.Frames(), pos.X, pos.Y, card.Rotation(), c.State())
	return nil
}
