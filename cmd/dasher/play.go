package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkurnosov/dasher/internal/audio"
	"github.com/mkurnosov/dasher/internal/config"
	"github.com/mkurnosov/dasher/internal/platform/tui"
	"github.com/mkurnosov/dasher/internal/sim"
	"github.com/mkurnosov/dasher/internal/storage"
)

var (
	flagConfig string
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a run in the current terminal.

Controls:
  Space/Up   - Jump (also starts and restarts a run)
  Down       - Duck (hold)
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Examples:
  dasher play
  dasher play --seed 42
  dasher play --mute
  dasher play --config ./my-dasher.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid config: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Sound is best-effort; a machine without an audio device still plays.
	var notifier sim.Notifier
	if !flagMute {
		player := audio.NewPlayer()
		if audioErr := player.Initialize(); audioErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", audioErr)
		}
		defer player.Close()
		notifier = player
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the run still works
		store = nil
	}

	runErr := tui.Run(tui.ModelOptions{
		Config: cfg,
		Store:  store,
		Audio:  notifier,
		FPS:    flagFPS,
		Seed:   flagSeed,
		Width:  width,
		Height: height,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
