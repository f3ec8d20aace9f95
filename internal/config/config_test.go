package config

import (
	"os"
	"testing"
	"time"

	"git.lost.host/meutraa/encore/internal/engine"
)

func TestParseDefaults(t *testing.T) {
	dir := t.TempDir()
	c, err := Parse([]string{dir})
	if nil != err {
		t.Fatal(err)
	}
	if c.Directory != dir || c.Mode != engine.Concert {
		t.Errorf("unexpected %+v", c)
	}
	if c.Countdown != 5*time.Second || c.MissWindow != 250*time.Millisecond || c.PassThreshold != 200*time.Millisecond {
		t.Errorf("unexpected timing %v %v %v", c.Countdown, c.MissWindow, c.PassThreshold)
	}
	if !c.Audio || c.History || string(c.Keys) != "dfjk" {
		t.Errorf("unexpected %v %q", c.Audio, string(c.Keys))
	}

	e := c.Engine()
	if e.Countdown != c.Countdown || e.FeedbackTicks == 0 {
		t.Errorf("engine config not carried over: %+v", e)
	}
}

func TestParseFlags(t *testing.T) {
	dir := t.TempDir()
	c, err := Parse([]string{
		dir,
		"--mode", "combat",
		"--offset", "25ms",
		"--keys", "asdf",
		"--drunkenness", "130",
		"--no-audio",
		"--history",
	})
	if nil != err {
		t.Fatal(err)
	}
	if c.Mode != engine.Combat || c.Offset != 25*time.Millisecond || c.Audio || !c.History {
		t.Errorf("unexpected %+v", c)
	}
	if c.Drunkenness != 100 {
		t.Errorf("drunkenness should clamp to 100, got %v", c.Drunkenness)
	}
	if lane, ok := c.KeyLane('f'); !ok || lane != 3 {
		t.Errorf("expected f on lane 3, got %v %v", lane, ok)
	}
	if _, ok := c.KeyLane('x'); ok {
		t.Error("x is not a lane key")
	}
}

func TestParseEnv(t *testing.T) {
	dir := t.TempDir()
	os.Setenv("ENCORE_MODE", "combat")
	os.Setenv("ENCORE_LEVEL", "3")
	defer os.Unsetenv("ENCORE_MODE")
	defer os.Unsetenv("ENCORE_LEVEL")

	c, err := Parse([]string{dir})
	if nil != err {
		t.Fatal(err)
	}
	if c.Mode != engine.Combat || c.Level != 3 {
		t.Errorf("environment ignored: %v %v", c.Mode, c.Level)
	}
}

func TestParseRejects(t *testing.T) {
	dir := t.TempDir()
	tests := map[string][]string{
		"missing directory": {},
		"unknown mode":      {dir, "--mode", "karaoke"},
		"too few keys":      {dir, "--keys", "ab"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse(args); nil == err {
				t.Error("expected an error")
			}
		})
	}
}
