package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Config holds configuration for the logger
type Config struct {
	// ServiceName is attached to every entry as the "service" field
	ServiceName string

	// Level is one of debug, info, warn or error. Anything else means info.
	Level string

	// Output defaults to stderr so stdout stays free for the console UI
	Output io.Writer
}

// New creates a JSON logrus logger scoped to a service
func New(cfg *Config) *logrus.Entry {
	if cfg == nil {
		cfg = &Config{}
	}

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	if cfg.Output != nil {
		log.SetOutput(cfg.Output)
	} else {
		log.SetOutput(os.Stderr)
	}

	log.SetLevel(ParseLevel(cfg.Level))

	return log.WithField("service", cfg.ServiceName)
}

// ParseLevel maps a level name onto a logrus level
func ParseLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
