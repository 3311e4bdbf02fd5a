// Package log routes diagnostics to a daily logrus file when logs.write is enabled.
package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/malq-cli/malq/filesystem"
	"github.com/malq-cli/malq/key"
	"github.com/malq-cli/malq/where"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// enabled gates every emission. Disabled logging discards silently.
var enabled bool

// Fields is an alias so callers don't import logrus directly.
type Fields = logrus.Fields

// Setup opens today's log file and applies the configured format and level.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		return nil
	}

	dir := where.Logs()
	if dir == "" {
		return errors.New("log directory path is empty")
	}

	path := filepath.Join(dir, time.Now().Format("2006-01-02")+".log")
	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	configure(f)
	return nil
}

// SetOutput enables logging to w regardless of configuration.
func SetOutput(w io.Writer) {
	enabled = true
	configure(w)
}

func configure(w io.Writer) {
	logrus.SetOutput(w)

	if viper.GetBool(key.LogsJson) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	}

	level, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// Entry is a log line under construction carrying structured fields.
type Entry struct {
	entry *logrus.Entry
}

// WithField starts an entry with one structured field.
func WithField(name string, value any) *Entry {
	return &Entry{entry: logrus.WithField(name, value)}
}

// WithFields starts an entry with several structured fields.
func WithFields(fields Fields) *Entry {
	return &Entry{entry: logrus.WithFields(fields)}
}

func (e *Entry) WithField(name string, value any) *Entry {
	return &Entry{entry: e.entry.WithField(name, value)}
}

func (e *Entry) Debug(args ...any) {
	if enabled {
		e.entry.Debug(args...)
	}
}

func (e *Entry) Info(args ...any) {
	if enabled {
		e.entry.Info(args...)
	}
}

func (e *Entry) Warn(args ...any) {
	if enabled {
		e.entry.Warn(args...)
	}
}

func (e *Entry) Error(args ...any) {
	if enabled {
		e.entry.Error(args...)
	}
}

func Error(args ...any) {
	if enabled {
		logrus.Error(args...)
	}
}

func Errorf(format string, args ...any) {
	if enabled {
		logrus.Errorf(format, args...)
	}
}

func Warn(args ...any) {
	if enabled {
		logrus.Warn(args...)
	}
}

func Warnf(format string, args ...any) {
	if enabled {
		logrus.Warnf(format, args...)
	}
}

func Info(args ...any) {
	if enabled {
		logrus.Info(args...)
	}
}

func Infof(format string, args ...any) {
	if enabled {
		logrus.Infof(format, args...)
	}
}

func Debug(args ...any) {
	if enabled {
		logrus.Debug(args...)
	}
}

func Debugf(format string, args ...any) {
	if enabled {
		logrus.Debugf(format, args...)
	}
}
