package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// newLogger builds the logger described by settings. The terminal belongs to the game,
// so entries go to the log file, or nowhere without one.
func newLogger(settings Settings) (*logrus.Logger, func(), error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	level, err := logrus.ParseLevel(settings.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level: %w", err)
	}
	log.SetLevel(level)

	if settings.LogFile == "" {
		log.SetOutput(io.Discard)
		return log, func() {}, nil
	}

	file, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	log.SetOutput(file)

	return log, func() {
		file.Close()
	}, nil
}
