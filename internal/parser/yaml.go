package parser

import (
	"os"
	"time"

	"git.lost.host/meutraa/encore/internal/game"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// YAMLParser reads hand-written song files:
//
//	title: Highway Riff
//	artist: The Roadies
//	bpm: 120
//	charts:
//	  - name: Easy
//	    notes:
//	      - {at: 1000, lane: 0}
//	      - {at: 1500, lane: 2, hold: 500}
type YAMLParser struct{}

type yamlNote struct {
	At   int64 `yaml:"at"`
	Lane int   `yaml:"lane"`
	Hold int64 `yaml:"hold"`
}

type yamlChart struct {
	Name  string     `yaml:"name"`
	Meter string     `yaml:"meter"`
	Notes []yamlNote `yaml:"notes"`
}

type yamlSong struct {
	Title  string      `yaml:"title"`
	Artist string      `yaml:"artist"`
	BPM    float64     `yaml:"bpm"`
	Charts []yamlChart `yaml:"charts"`
}

func (p *YAMLParser) Parse(file string) ([]*game.Song, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return nil, errors.Wrapf(err, "unable to read %v", file)
	}
	songs, err := p.parse(data)
	if nil != err {
		return nil, errors.Wrapf(err, "unable to parse %v", file)
	}
	return songs, nil
}

func (p *YAMLParser) parse(data []byte) ([]*game.Song, error) {
	var s yamlSong
	if err := yaml.Unmarshal(data, &s); nil != err {
		return nil, err
	}

	songs := make([]*game.Song, 0, len(s.Charts))
	for _, c := range s.Charts {
		notes := make([]game.Note, 0, len(c.Notes))
		holds := 0
		for _, n := range c.Notes {
			if n.Lane < 0 || n.Lane >= game.NLanes {
				return nil, errors.Wrapf(ErrUnsupportedLanes, "lane %v in %v", n.Lane, c.Name)
			}
			if n.At < 0 {
				return nil, errors.Wrapf(ErrNoteBeforeStart, "%v at %vms in %v", n.Lane, n.At, c.Name)
			}
			if n.Hold < 0 {
				return nil, errors.Errorf("negative hold in %v", c.Name)
			}
			if n.Hold > 0 {
				holds++
			}
			notes = append(notes, game.Note{
				Lane:     game.Lane(n.Lane),
				Denom:    1,
				Time:     time.Duration(n.At) * time.Millisecond,
				Duration: time.Duration(n.Hold) * time.Millisecond,
			})
		}
		songs = append(songs, &game.Song{
			Title:  s.Title,
			Artist: s.Artist,
			BPM:    s.BPM,
			Difficulty: game.Difficulty{
				Name:  c.Name,
				Msd:   c.Meter,
				NKeys: game.NLanes,
			},
			Notes:     notes,
			HoldCount: int64(holds),
		})
	}
	return songs, nil
}
