package game_test

import (
	"testing"
	"time"

	"git.lost.host/meutraa/encore/internal/game"
	"git.lost.host/meutraa/encore/internal/testdata"
)

func TestTemplatesAreFresh(t *testing.T) {
	song, err := testdata.GetSong()
	if nil != err {
		t.Fatal(err)
	}
	song.Notes[0].Verdict = game.Hit
	song.Notes[0].HitTime = time.Second

	notes := song.Templates()
	if len(notes) != len(song.Notes) {
		t.Fatalf("expected %v notes, got %v", len(song.Notes), len(notes))
	}
	for i, n := range notes {
		if !n.Active || n.Verdict != game.Pending || n.HitTime != 0 {
			t.Errorf("note %v is not fresh: %+v", i, n)
		}
	}

	notes[1].Active = false
	if again := song.Templates(); !again[1].Active {
		t.Error("templates share state between calls")
	}
}

func TestSum(t *testing.T) {
	a, err := testdata.GetSong()
	if nil != err {
		t.Fatal(err)
	}
	b, _ := testdata.GetSong()
	if a.Sum() != b.Sum() {
		t.Error("the same chart should have the same sum")
	}
	b.Notes[0].Time += time.Millisecond
	if a.Sum() == b.Sum() {
		t.Error("moving a note should change the sum")
	}
}

func TestPlayable(t *testing.T) {
	for chart, n := range game.LaneCounts {
		d := game.Difficulty{NKeys: n}
		if d.Playable() != (chart == "dance-single") {
			t.Errorf("%v with %v lanes: playable %v", chart, n, d.Playable())
		}
	}
}
