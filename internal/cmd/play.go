package cmd

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/blockfall/blockfall-cli/internal"
	"github.com/blockfall/blockfall-cli/internal/flags"
	"github.com/blockfall/blockfall-cli/internal/ranking"
	"github.com/blockfall/blockfall-cli/internal/settings"
	"github.com/blockfall/blockfall-cli/internal/tetris"
	"github.com/blockfall/blockfall-cli/internal/view"
)

const logFileName = ".blockfall.log"

func init() {
	rootCmd.AddCommand(playCmd)
	flags.AddThemeFlag(playCmd)
	flags.AddLevelFlag(playCmd)
	flags.AddSeedFlag(playCmd)
}

var playCmd = &cobra.Command{
	Use:               "play",
	Short:             "Play a game in the terminal",
	Args:              cobra.ExactArgs(0),
	ValidArgsFunction: noFilesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		config, err := settings.ReadSettings()
		if err != nil {
			return fmt.Errorf("could not read local config: %w", err)
		}

		logFile, err := os.OpenFile(logFileName, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("could not open %s: %w", logFileName, err)
		}
		defer logFile.Close()
		logger := log.New(logFile, "", log.Ldate|log.Ltime|log.LUTC|log.Lshortfile)

		opts := sessionOptions(config)
		session := tetris.NewSession(opts...)
		board := ranking.NewBoard(ranking.DefaultSize)

		gameID := uuid.New()
		logger.Printf("game %s starting", gameID)

		model := view.NewModel(session, config.GetKeyBindings(), board, logger)
		program := tea.NewProgram(model, tea.WithAltScreen())

		done := make(chan struct{})
		var g errgroup.Group
		g.Go(func() error {
			defer close(done)
			_, err := program.Run()
			return err
		})
		g.Go(func() error {
			for {
				select {
				case <-done:
					return nil
				case u := <-session.Updates():
					program.Send(view.UpdateMsg(u))
				}
			}
		})
		if err := g.Wait(); err != nil {
			return err
		}

		final := session.Snapshot()
		logger.Printf("game %s finished: score=%d level=%d state=%s", gameID, final.Score, final.Level, final.State)

		if final.Score > 0 {
			entry, err := board.Record(final.Score, final.Level)
			if err != nil {
				return err
			}
			fmt.Printf("%s scored %s points at level %d.\n\n",
				internal.Emph(entry.Player), humanize.Comma(int64(final.Score)), final.Level)
		}
		if len(board.Entries()) > 0 {
			board.Print(os.Stdout)
		}
		return nil
	},
}

// sessionOptions resolves theme, start level and seed from flags over
// saved settings.
func sessionOptions(config *settings.Settings) []tetris.Option {
	var opts []tetris.Option

	theme := config.GetTheme()
	if flags.Theme() != "" {
		theme = flags.Theme()
	}
	if theme != "" {
		if _, ok := tetris.PaletteByName(theme); !ok {
			fmt.Printf("%s unknown theme %s, falling back to %s\n",
				internal.Warn("Warning:"), theme, tetris.Palettes[0].Name())
		}
		opts = append(opts, tetris.WithPalette(theme))
	}

	startLevel := config.GetStartLevel()
	if level, ok := flags.Level(); ok {
		startLevel = level
	}
	if startLevel > 0 {
		opts = append(opts, tetris.WithStartLevel(startLevel))
	}

	if seed, ok := flags.Seed(); ok {
		opts = append(opts, tetris.WithSeed(seed))
	}
	return opts
}
