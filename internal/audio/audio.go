// Package audio plays the song behind a session
package audio

import (
	"io"
	"os"
	"path"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Player starts the song when the countdown ends and stops it with the
// session
type Player struct {
	file     string
	streamer beep.StreamSeekCloser
	format   beep.Format
	log      logrus.FieldLogger

	ready   bool
	playing bool
}

func decoder(file string) (func(io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error), error) {
	switch strings.ToLower(path.Ext(file)) {
	case ".mp3":
		return mp3.Decode, nil
	case ".ogg":
		return vorbis.Decode, nil
	case ".wav":
		return func(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
			return wav.Decode(rc)
		}, nil
	}
	return nil, errors.Errorf("unsupported audio file %v", file)
}

// Open decodes file; the speaker is only claimed when playback starts
func Open(file string, log logrus.FieldLogger) (*Player, error) {
	decode, err := decoder(file)
	if nil != err {
		return nil, err
	}
	f, err := os.Open(file)
	if nil != err {
		return nil, errors.Wrapf(err, "unable to open %v", file)
	}
	streamer, format, err := decode(f)
	if nil != err {
		f.Close()
		return nil, errors.Wrapf(err, "unable to decode %v", file)
	}
	if nil == log {
		log = logrus.StandardLogger()
	}
	return &Player{
		file:     file,
		streamer: streamer,
		format:   format,
		log:      log.WithField("audio", path.Base(file)),
	}, nil
}

// Length is the duration of the decoded song
func (p *Player) Length() time.Duration {
	return p.format.SampleRate.D(p.streamer.Len())
}

func (p *Player) OnCountdownElapsed() error {
	if p.playing {
		return nil
	}
	if !p.ready {
		if err := speaker.Init(p.format.SampleRate, p.format.SampleRate.N(time.Second/60)); nil != err {
			return errors.Wrap(err, "unable to initialise speaker")
		}
		p.ready = true
	}
	speaker.Play(p.streamer)
	p.playing = true
	p.log.Info("playback started")
	return nil
}

func (p *Player) OnSessionEnd() error {
	if p.ready {
		speaker.Clear()
	}
	p.playing = false
	p.log.Info("playback stopped")
	return p.Close()
}

func (p *Player) Close() error {
	if nil == p.streamer {
		return nil
	}
	err := p.streamer.Close()
	p.streamer = nil
	return err
}

// Silent stands in when audio is disabled or the song has none
type Silent struct{}

func (Silent) OnCountdownElapsed() error { return nil }
func (Silent) OnSessionEnd() error       { return nil }
