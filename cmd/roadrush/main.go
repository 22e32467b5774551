// roadrush is a terminal arcade driving game: steer through oncoming
// traffic, grab power-ups, and chase the high score.
//
// Usage:
//
//	roadrush play            - Start the game
//	roadrush scores          - Browse the run history
//	roadrush serve           - Serve the game over SSH
//
// Global flags:
//
//	--fps <rate>          - Simulation tick rate (default: 60)
//	--seed <value>        - RNG seed for reproducible traffic
//	--db <path>           - Run history database path
//	--high-score <path>   - High score file path
//	--log-file <path>     - Write debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagHighScore string
	flagLogFile   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "roadrush",
	Short: "Road Rush - dodge traffic in your terminal",
	Long: `Road Rush is a terminal driving game. Traffic pours down the road;
steer left and right to dodge it, pick up power-ups, and survive as long
as you can. Speed ramps up as your score grows.

Examples:
  roadrush play
  roadrush play --difficulty hard
  roadrush scores
  roadrush serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Simulation tick rate")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.roadrush/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagHighScore, "high-score", "~/.roadrush/highscore", "Path to high score file")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the application logger. Interactive play logs to a file
// or nowhere; logging to the terminal would corrupt the game screen.
func newLogger() *log.Logger {
	if flagLogFile == "" {
		return log.New(io.Discard)
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return log.New(io.Discard)
	}
	return log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
	})
}
