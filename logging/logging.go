package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

var (
	L              zerolog.Logger
	logFile        io.Closer
	consoleEnabled bool = true
	fileOutput     io.Writer
)

func init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	updateLogger()
}

func SetLogLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}

// SetLogOutput redirects logs into a file, creating the directory if needed.
// Console logging stays on unless disabled via SetConsoleLogging.
func SetLogOutput(path string, filename string) error {
	if logFile != nil {
		logFile.Close()
	}

	logFilePath := filepath.Join(path, filename)

	if err := os.MkdirAll(path, 0750); err != nil {
		return err
	}

	file, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}

	logFile = file
	fileOutput = file
	updateLogger()
	L.Info().Msgf("writing logs to %s", logFilePath)

	return nil
}

func SetConsoleLogging(enabled bool) {
	consoleEnabled = enabled
	updateLogger()
}

func updateLogger() {
	var out io.Writer
	switch {
	case fileOutput != nil && consoleEnabled:
		out = io.MultiWriter(fileOutput, os.Stdout)
	case fileOutput != nil:
		out = fileOutput
	default:
		out = os.Stdout
	}

	writer := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "2006-01-02T15:04:05.000000Z07:00",
	}

	L = zerolog.New(writer).With().Caller().Timestamp().Logger()
}

func Close() error {
	if logFile != nil {
		return logFile.Close()
	}
	return nil
}
