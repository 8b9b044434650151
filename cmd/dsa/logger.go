package main

import (
	"io"

	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/tychoish/dsa/ers"
)

// InitLogger builds a logger writing to out at the named level. An
// unparseable level is an ers.ErrInvalidInput error.
func InitLogger(out io.Writer, level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, ers.InvalidInput("log level %q", level)
	}

	return &logrus.Logger{
		Out:   out,
		Level: lvl,
		Hooks: make(logrus.LevelHooks),
		Formatter: &prefixed.TextFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			FullTimestamp:   true,
			ForceFormatting: true,
		},
	}, nil
}
