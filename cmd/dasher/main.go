// dasher is an endless runner for the terminal, in the spirit of the
// browser dinosaur game.
//
// Usage:
//
//	dasher play              - Play in the current terminal
//	dasher serve             - Start SSH server for remote play
//	dasher scores            - Show the best recorded runs
//	dasher config            - Print the default config YAML
//
// Global flags:
//
//	--fps <rate>    - Set frame rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.dasher/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dasher",
	Short: "Dasher - an endless runner in your terminal",
	Long: `Dasher is a terminal endless runner. Jump over cacti, duck under
birds, and survive as the track speeds up.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View the best recorded runs
  config   - Print the default config YAML for customization

Examples:
  dasher play
  dasher play --seed 42 --mute
  dasher serve --ssh :2222
  dasher scores
  dasher config > my-dasher.yaml`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dasher/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
