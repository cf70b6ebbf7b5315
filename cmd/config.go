package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/they4kman/termsweep/term"
)

// Settings merges the command-line flags with the config file. Flags given on the
// command line win over the file.
type Settings struct {
	Width    int    `mapstructure:"width"`
	Height   int    `mapstructure:"height"`
	Mines    int    `mapstructure:"mines"`
	Level    string `mapstructure:"level"`
	Seed     int64  `mapstructure:"seed"`
	Director string `mapstructure:"director"`

	LogFile      string `mapstructure:"log-file"`
	LogLevel     string `mapstructure:"log-level"`
	SnapshotsDir string `mapstructure:"snapshots-dir"`
	Layout       string `mapstructure:"layout"`

	Theme term.Theme `mapstructure:"theme"`

	// Set when no board size was asked for, so the level menu is shown
	pickLevel bool
}

// Any of these picks the board without the menu
var boardKeys = []string{"level", "width", "height", "mines", "layout"}

func loadSettings(flags *pflag.FlagSet) (Settings, *themeWatcher, error) {
	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return Settings{}, nil, fmt.Errorf("binding flags: %w", err)
	}

	configPath, err := flags.GetString("config")
	if err != nil {
		return Settings{}, nil, err
	}
	if configPath == "" {
		configPath = defaultConfigPath()
	}

	var watcher *themeWatcher
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, nil, fmt.Errorf("reading config file %s: %w", configPath, err)
		}
		watcher = &themeWatcher{v: v}
	}

	settings := Settings{Theme: term.DefaultTheme()}
	if err := v.Unmarshal(&settings); err != nil {
		return Settings{}, nil, fmt.Errorf("decoding config: %w", err)
	}
	settings.pickLevel = !slices.ContainsFunc(boardKeys, v.IsSet)

	return settings, watcher, nil
}

// defaultConfigPath returns $HOME/.config/termsweep/config.yaml if it exists.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(home, ".config", "termsweep", "config.yaml")
	if !fileExist(path) {
		return ""
	}
	return path
}

func fileExist(fileName string) bool {
	_, err := os.Stat(fileName)
	return err == nil
}

// themeWatcher redraws a running game when the theme in its config file changes.
type themeWatcher struct {
	v *viper.Viper
}

func (watcher *themeWatcher) watch(screen tcell.Screen, log logrus.FieldLogger) {
	if watcher == nil {
		return
	}

	watcher.v.OnConfigChange(func(e fsnotify.Event) {
		theme, err := watcher.theme()
		if err != nil {
			log.WithError(err).Warn("Could not reload theme")
			return
		}
		if err := term.ReloadTheme(screen, theme); err != nil {
			log.WithError(err).Warn("Could not apply theme")
			return
		}
		log.WithField("file", e.Name).Info("Reloaded theme")
	})
	watcher.v.WatchConfig()
}

func (watcher *themeWatcher) theme() (term.Theme, error) {
	theme := term.DefaultTheme()
	if err := watcher.v.UnmarshalKey("theme", &theme); err != nil {
		return theme, fmt.Errorf("decoding theme: %w", err)
	}
	return theme, nil
}
