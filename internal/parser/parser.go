package parser

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"git.lost.host/meutraa/encore/internal/game"
	"github.com/pkg/errors"
)

var (
	ErrVariableTempo    = errors.New("songs with tempo changes are not supported")
	ErrUnsupportedLanes = errors.New("only four lane charts are supported")
	ErrNoChart          = errors.New("unable to find a chart in the song directory")
	ErrNoteBeforeStart  = errors.New("note due before the song starts")
)

type Parser interface {
	Parse(file string) ([]*game.Song, error)
}

// ForFile picks a parser by extension
func ForFile(file string) (Parser, error) {
	switch strings.ToLower(path.Ext(file)) {
	case ".sm":
		return &StepManiaParser{}, nil
	case ".yaml", ".yml":
		return &YAMLParser{}, nil
	}
	return nil, errors.Errorf("no parser for %v", file)
}

// Find walks a song directory for its chart and audio files. Audio is
// optional; a chart is not.
func Find(dir string) (chart, audio string, err error) {
	if err := filepath.Walk(dir, func(p string, info os.FileInfo, err error) error {
		if nil != err {
			return err
		}
		switch strings.ToLower(path.Ext(info.Name())) {
		case ".ogg", ".mp3", ".wav":
			audio = p
		case ".sm":
			chart = p
		case ".yaml", ".yml":
			if chart == "" {
				chart = p
			}
		}
		return nil
	}); nil != err {
		return "", "", errors.Wrap(err, "unable to walk song directory")
	}
	if chart == "" {
		return "", "", ErrNoChart
	}
	return chart, audio, nil
}
