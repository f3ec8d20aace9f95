package audio

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// writeWav writes one second of 16 bit mono silence
func writeWav(t *testing.T, file string, rate int) {
	t.Helper()
	samples := make([]int16, rate)
	var buf bytes.Buffer
	dataLen := uint32(len(samples) * 2)
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, 36+dataLen)
	buf.WriteString("WAVEfmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // mono
	binary.Write(&buf, binary.LittleEndian, uint32(rate))
	binary.Write(&buf, binary.LittleEndian, uint32(rate*2))
	binary.Write(&buf, binary.LittleEndian, uint16(2))
	binary.Write(&buf, binary.LittleEndian, uint16(16))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, dataLen)
	binary.Write(&buf, binary.LittleEndian, samples)
	if err := os.WriteFile(file, buf.Bytes(), 0o644); nil != err {
		t.Fatal(err)
	}
}

func TestOpenWav(t *testing.T) {
	file := filepath.Join(t.TempDir(), "riff.wav")
	writeWav(t, file, 8000)

	p, err := Open(file, nil)
	if nil != err {
		t.Fatal(err)
	}
	if p.Length() != time.Second {
		t.Errorf("expected 1s of audio, got %v", p.Length())
	}
	if err := p.Close(); nil != err {
		t.Error(err)
	}
	if err := p.Close(); nil != err {
		t.Error("closing twice should be harmless")
	}
}

func TestOpenRejects(t *testing.T) {
	dir := t.TempDir()
	if _, err := Open(filepath.Join(dir, "riff.flac"), nil); nil == err {
		t.Error("flac is not supported")
	}
	if _, err := Open(filepath.Join(dir, "missing.ogg"), nil); nil == err {
		t.Error("expected an error for a missing file")
	}
	garbage := filepath.Join(dir, "garbage.wav")
	os.WriteFile(garbage, []byte("not a wav"), 0o644)
	if _, err := Open(garbage, nil); nil == err {
		t.Error("expected a decode error")
	}
}

func TestSilent(t *testing.T) {
	var s Silent
	if s.OnCountdownElapsed() != nil || s.OnSessionEnd() != nil {
		t.Error("silent controller never fails")
	}
}
