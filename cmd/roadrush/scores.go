package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/roadrush/roadrush/internal/config"
	"github.com/roadrush/roadrush/internal/platform/tui"
	"github.com/roadrush/roadrush/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Browse the run history",
	Long: `Show the best runs recorded on this machine, filterable by
difficulty with Tab.

Examples:
  roadrush scores
  roadrush scores --db ./runs.db
  roadrush scores --clear`,
	Run: runScores,
}

var flagClearRuns bool

func init() {
	scoresCmd.Flags().BoolVar(&flagClearRuns, "clear", false, "delete the entire run history and exit")
}

func runScores(cmd *cobra.Command, args []string) {
	gameCfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearRuns {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing run history: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	names := make([]string, len(gameCfg.Difficulties))
	for i, d := range gameCfg.Difficulties {
		names[i] = d.Name
	}

	model := tui.NewScoreboardModel(store, names, width, height)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing scores: %v\n", err)
		os.Exit(1)
	}
}
