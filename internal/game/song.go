package game

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// Song is the read-only chart handed to a session. Title and BPM are only
// used by the audio and display collaborators.
type Song struct {
	Title      string
	Artist     string
	BPM        float64
	Difficulty Difficulty
	Notes      []Note
	HoldCount  int64
}

// Templates returns a fresh runtime copy of the chart with every note active
func (s *Song) Templates() []Note {
	notes := make([]Note, len(s.Notes))
	for i, n := range s.Notes {
		notes[i] = Note{
			Lane:     n.Lane,
			Denom:    n.Denom,
			Time:     n.Time,
			Duration: n.Duration,
			Active:   true,
		}
	}
	return notes
}

// Sum identifies a chart in the session ledger
func (s *Song) Sum() string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%s|%s|", s.Title, s.Artist, s.Difficulty.Name)
	for _, n := range s.Notes {
		fmt.Fprintf(h, "%d:%d:%d;", n.Lane, n.Time, n.Duration)
	}
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

func (s *Song) String() string {
	if s.Artist == "" {
		return fmt.Sprintf("%s [%s] (%d notes)", s.Title, s.Difficulty.Name, len(s.Notes))
	}
	return fmt.Sprintf("%s - %s [%s] (%d notes)", s.Artist, s.Title, s.Difficulty.Name, len(s.Notes))
}
