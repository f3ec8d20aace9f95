// Package logger builds the logrus logger the rest of the program is handed.
// The terminal belongs to the renderer, so everything goes to a file.
package logger

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New opens file for appending. An empty file discards everything.
func New(file string, debug bool) (*logrus.Logger, io.Closer, error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}

	if file == "" {
		log.SetOutput(io.Discard)
		return log, nopCloser{}, nil
	}

	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if nil != err {
		return nil, nil, errors.Wrapf(err, "unable to open log file %v", file)
	}
	log.SetOutput(f)
	return log, f, nil
}
