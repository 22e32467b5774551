package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/roadrush/roadrush/internal/audio"
	"github.com/roadrush/roadrush/internal/config"
	"github.com/roadrush/roadrush/internal/core"
	"github.com/roadrush/roadrush/internal/platform/tui"
	"github.com/roadrush/roadrush/internal/race"
	"github.com/roadrush/roadrush/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the game",
	Long: `Start Road Rush in the current terminal.

Controls:
  A/D or arrows - Steer left/right
  P             - Pause
  Enter         - Confirm / play again
  Esc           - Back
  Q/Ctrl+C      - Quit

Difficulty presets (pick one in the menu or with --difficulty):
  easy   - Slow traffic, gentle ramp-up
  normal - The classic pace
  hard   - Fast traffic, denser spawns

Examples:
  roadrush play
  roadrush play --difficulty hard
  roadrush play --config ./my-roadrush.yaml
  roadrush play --seed 42 --mute`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Skip the menu and race this preset")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := newLogger()

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		if _, derr := race.NewDifficulty(&gameCfg, flagDifficulty); derr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", derr)
			os.Exit(1)
		}
		gameCfg.Default = flagDifficulty
	}

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rt.Seed = seed

	hiscore, err := storage.NewFileStore(flagHighScore)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runs, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without history - the game still works
		runs = nil
	}

	var sound audio.Player = audio.Null{}
	if !flagMute {
		synth := audio.NewSynth()
		if err := synth.Initialize(); err != nil {
			logger.Warn("audio unavailable", "err", err)
		} else {
			sound = synth
			defer synth.Cleanup()
		}
	}

	machine := race.NewMachine(&gameCfg, hiscore,
		race.WithRand(rand.New(rand.NewSource(seed))),
		race.WithAudio(sound),
		race.WithLogger(logger),
	)

	runErr := tui.Run(machine, &gameCfg, runs, rt, logger)

	if runs != nil {
		runs.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
