// Package logging builds the file-backed log sink the calculator writes to.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config describes the sink: a target file, an enable switch, a size
// threshold in megabytes at which the file is rotated and the number of
// rotated files kept around.
type Config struct {
	File       string
	Enabled    bool
	MaxSize    int
	MaxHistory int
}

// New returns a logger honoring cfg. A disabled config still yields a usable
// logger that discards everything, so callers never branch on the switch.
// An empty file name falls back to stderr without rotation.
func New(cfg Config) *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.InfoLevel)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	switch {
	case !cfg.Enabled:
		log.SetOutput(io.Discard)
	case cfg.File == "":
		log.SetOutput(os.Stderr)
	default:
		log.SetOutput(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxHistory,
		})
	}
	return log
}
