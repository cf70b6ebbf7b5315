package cmd

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/they4kman/termsweep/director/constraint"
	"github.com/they4kman/termsweep/director/random"
	"github.com/they4kman/termsweep/game"
	"github.com/they4kman/termsweep/term"
)

const exitMessage = "Thanks for playing!"

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "termsweep",
		Short: "Play manual or computer-driven Minesweeper in the terminal",
		Long: `termsweep is a Minesweeper game for the terminal, which supports
human- or computer-driven playing.

Run with no arguments to pick a level from the menu
	termsweep

Pick a level, or a custom board, up front
	termsweep --level intermediate
	termsweep -w 30 -h 16 -m 99

Let the computer play, one step per press of n
	termsweep --director constraint
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, watcher, err := loadSettings(cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd, settings, watcher)
		},
	}

	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	cmd.Flags().Bool("help", false, "Help for this command")

	cmd.Flags().IntP("width", "w", game.Beginner.Width, "Width of game board, in cells")
	cmd.Flags().IntP("height", "h", game.Beginner.Height, "Height of game board, in cells")
	cmd.Flags().IntP("mines", "m", game.Beginner.NumMines, "Number of mines to place in the game board")
	cmd.Flags().VarP(new(levelValue), "level", "l", `Level preset, overriding width, height and mines:
1 or beginner: 9x9 board with 10 mines
2 or intermediate: 16x16 board with 40 mines
3 or advanced: 24x24 board with 99 mines`)
	cmd.Flags().Int64("seed", 0, "Seed for mine placement (0 picks one from the clock)")
	cmd.Flags().VarP(newDirectorValue("none"), "director", "d", fmt.Sprintf(
		"Computer player stepped with the n key: %s", strings.Join(directorNames(), ", ")))

	cmd.Flags().String("config", "", "Config file (default $HOME/.config/termsweep/config.yaml)")
	cmd.Flags().String("log-file", "", "Append logs to this file")
	cmd.Flags().String("log-level", "info", "Log level: trace, debug, info, warn, error")
	cmd.Flags().String("snapshots-dir", "", "Save a snapshot of every finished game to this directory")
	cmd.Flags().String("layout", "", "Play on the board stored in this snapshot file")

	return cmd
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, settings Settings, watcher *themeWatcher) error {
	log, closeLog, err := newLogger(settings)
	if err != nil {
		return err
	}
	defer closeLog()

	config, err := settings.gameConfig(log)
	if err != nil {
		return err
	}

	screen, err := term.Open()
	if err != nil {
		return err
	}
	watcher.watch(screen, log)

	err = play(screen, settings, config, log)
	screen.Fini()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), exitMessage)
	return nil
}

func play(screen tcell.Screen, settings Settings, config game.Config, log logrus.FieldLogger) error {
	if settings.pickLevel {
		level, ok := term.ChooseLevel(screen)
		if !ok {
			return nil
		}
		config.Width, config.Height, config.NumMines = level.Width, level.Height, level.NumMines
	}

	session, err := game.NewSession(config)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"width":    session.Board().Width(),
		"height":   session.Board().Height(),
		"mines":    session.NumMines(),
		"seed":     session.Seed(),
		"director": settings.Director,
	}).Info("Starting game")

	term.NewGame(screen, session, settings.Theme, log).Run()
	return nil
}

// gameConfig builds the session config described by settings.
func (settings Settings) gameConfig(log logrus.FieldLogger) (game.Config, error) {
	config := game.NewConfig()
	config.Width, config.Height, config.NumMines = settings.Width, settings.Height, settings.Mines
	config.Seed = settings.Seed
	config.Logger = log

	if settings.Level != "" {
		level, err := game.ParseLevel(settings.Level)
		if err != nil {
			return config, err
		}
		config.Width, config.Height, config.NumMines = level.Width, level.Height, level.NumMines
	}

	if settings.Layout != "" {
		layout, err := game.LoadSnapshotFile(settings.Layout)
		if err != nil {
			return config, fmt.Errorf("loading layout: %w", err)
		}
		config.Layout = layout
	}

	directorSeed := settings.Seed
	if directorSeed == 0 {
		directorSeed = time.Now().UnixNano()
	}
	director, err := newDirector(settings.Director, directorSeed)
	if err != nil {
		return config, err
	}
	config.Director = director

	if settings.SnapshotsDir != "" {
		dir := settings.SnapshotsDir
		config.OnGameEnd = func(session *game.Session) {
			path, err := game.SaveSnapshot(dir, session, time.Now())
			if err != nil {
				log.WithError(err).Warn("Could not save snapshot")
				return
			}
			log.WithField("path", path).Info("Saved snapshot")
		}
	}

	return config, nil
}

type levelValue game.Level

func (levelVal *levelValue) String() string {
	return levelVal.Name
}

func (levelVal *levelValue) Set(value string) error {
	level, err := game.ParseLevel(value)
	if err != nil {
		return err
	}
	*levelVal = levelValue(level)
	return nil
}

func (levelVal *levelValue) Type() string {
	return "game.Level"
}

var directors = map[string]func(seed int64) game.Director{
	"none": func(int64) game.Director {
		return nil
	},
	"random": func(seed int64) game.Director {
		return random.New(seed)
	},
	"constraint": func(seed int64) game.Director {
		return constraint.New(seed)
	},
}

func directorNames() []string {
	names := make([]string, 0, len(directors))
	for name := range directors {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func newDirector(name string, seed int64) (game.Director, error) {
	if name == "" {
		return nil, nil
	}
	newFunc, isValid := directors[name]
	if !isValid {
		return nil, fmt.Errorf("invalid director %q", name)
	}
	return newFunc(seed), nil
}

type directorValue string

func newDirectorValue(val string) *directorValue {
	directorVal := directorValue(val)
	return &directorVal
}

func (directorVal *directorValue) String() string {
	return string(*directorVal)
}

func (directorVal *directorValue) Set(value string) error {
	if _, isValid := directors[value]; !isValid {
		return fmt.Errorf("invalid director, expected one of %s", strings.Join(directorNames(), ", "))
	}
	*directorVal = directorValue(value)
	return nil
}

func (directorVal *directorValue) Type() string {
	return "director"
}
