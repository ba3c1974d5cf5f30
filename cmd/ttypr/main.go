// Package main provides the CLI entrypoint for ttypr.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/ttypr/internal/config"
	"github.com/verte-zerg/ttypr/internal/model"
	"github.com/verte-zerg/ttypr/internal/session"
	"github.com/verte-zerg/ttypr/internal/stats"
	"github.com/verte-zerg/ttypr/internal/store"
	"github.com/verte-zerg/ttypr/internal/tui"
	"github.com/verte-zerg/ttypr/internal/wordlist"
)

// reportTop is the number of mistyped characters printed on exit.
const reportTop = 10

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "ttypr",
		Short:         "Terminal typing practice",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("ttypr needs an interactive terminal")
	}

	dir := config.DefaultDir()
	statePath := config.StatePath(dir)
	state := loadState(statePath)

	words := loadCorpus(config.WordsPath(dir))
	textPath := config.TextPath(dir)
	text := loadCorpus(textPath)
	textHash, err := config.FileHash(textPath)
	if err != nil {
		logErrf("%v\n", err)
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		logErrf("failed to open db: %v\n", err)
	}
	defer func() {
		if st == nil {
			return
		}
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	sess := session.New(&state, session.Options{
		Words:    words,
		Text:     text,
		TextHash: textHash,
	})
	ui := tui.NewModel(sess, tui.Options{
		StatePath: statePath,
		WordsPath: config.WordsPath(dir),
		TextPath:  textPath,
		Store:     st,
	})
	program := tea.NewProgram(ui, tea.WithAltScreen())
	_, runErr := program.Run()

	run, chars, typed := sess.Finish()
	if err := config.SaveState(statePath, state); err != nil {
		logErrf("failed to save config: %v\n", err)
	}
	if typed && st != nil {
		if _, err := st.InsertSession(context.Background(), run, chars); err != nil {
			logErrf("failed to save session: %v\n", err)
		}
	}
	if runErr != nil {
		return fmt.Errorf("failed to run TUI: %w", runErr)
	}
	return printReport(cmd.OutOrStdout(), run, state.Mistyped, typed)
}

// loadState falls back to defaults when the state file cannot be read.
func loadState(path string) config.State {
	state, err := config.LoadState(path)
	if err != nil {
		logErrf("failed to load config, using defaults: %v\n", err)
		return config.DefaultState()
	}
	return state
}

func loadCorpus(path string) []string {
	tokens, err := wordlist.LoadTokens(path)
	if err != nil {
		logErrf("%v\n", err)
		return nil
	}
	return tokens
}

func printReport(w io.Writer, run model.SessionStats, ledger map[string]int, typed bool) error {
	if typed {
		if err := stats.RenderSummary(w, run); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if len(ledger) == 0 {
		return nil
	}
	if err := stats.RenderMistakeTable(w, ledger, reportTop); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
