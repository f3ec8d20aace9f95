package parser

import (
	"math"
	"math/big"
	"os"
	"strconv"
	"strings"
	"time"

	"git.lost.host/meutraa/encore/internal/game"
	"github.com/pkg/errors"
)

// StepManiaParser reads dance-single charts from .sm files
type StepManiaParser struct{}

// 0 – No note
// 1 – Normal note
// 2 – Hold head
// 3 – Hold/Roll tail
// 4 – Roll head
// M – Mine (or other negative note)
// K – Automatic keysound
// L – Lift note
// F – Fake note

func (p *StepManiaParser) isHead(ch byte) bool {
	return ch == '1' || ch == '2' || ch == '4'
}

func seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}

func (p *StepManiaParser) Parse(file string) ([]*game.Song, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return nil, errors.Wrapf(err, "unable to read %v", file)
	}
	songs, err := p.parse(string(data))
	if nil != err {
		return nil, errors.Wrapf(err, "unable to parse %v", file)
	}
	return songs, nil
}

func (p *StepManiaParser) parse(str string) ([]*game.Song, error) {
	str = strings.ReplaceAll(str, "\r", "")
	sections := strings.Split(str, "#NOTES:")
	meta := sections[0]
	difficulties := []game.Difficulty{}
	unsupported := 0
	for _, section := range sections[1:] {
		lines := strings.SplitN(section, "\n", 7)
		if len(lines) < 7 {
			continue
		}
		chartType := strings.TrimSpace(lines[1])
		chartType = strings.TrimSuffix(chartType, ":")
		nKeys, ok := game.LaneCounts[chartType]
		if !ok {
			continue
		}
		d := game.Difficulty{
			Name:    strings.TrimSuffix(strings.TrimSpace(lines[3]), ":"),
			Msd:     strings.TrimSuffix(strings.TrimSpace(lines[4]), ":"),
			Section: lines[6],
			NKeys:   nKeys,
		}
		if !d.Playable() {
			unsupported++
			continue
		}
		difficulties = append(difficulties, d)
	}
	if len(difficulties) == 0 && unsupported > 0 {
		return nil, ErrUnsupportedLanes
	}

	offset := 0.0
	bpms := []game.BPM{}
	var title, artist string

	for _, mdl := range strings.Split(meta, "\n#") {
		mdl = strings.TrimPrefix(strings.TrimSpace(mdl), "#")
		value := func(key string) string {
			v := strings.TrimPrefix(mdl, key)
			return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(v), ";"))
		}
		switch {
		case strings.HasPrefix(mdl, "TITLE:"):
			title = value("TITLE:")
		case strings.HasPrefix(mdl, "ARTIST:"):
			artist = value("ARTIST:")
		case strings.HasPrefix(mdl, "OFFSET:"):
			offs, err := strconv.ParseFloat(value("OFFSET:"), 64)
			if nil != err {
				return nil, errors.Wrap(err, "bad offset")
			}
			offset = -offs
		case strings.HasPrefix(mdl, "BPMS:"):
			bbs := strings.Split(strings.ReplaceAll(value("BPMS:"), "\n", ""), ",")
			for _, bpm := range bbs {
				as := strings.Split(strings.TrimSpace(bpm), "=")
				if len(as) != 2 {
					return nil, errors.Errorf("bad bpm %q", bpm)
				}
				sb, err := strconv.ParseFloat(as[0], 64)
				if nil != err {
					return nil, errors.Wrap(err, "bad bpm beat")
				}
				v, err := strconv.ParseFloat(as[1], 64)
				if nil != err {
					return nil, errors.Wrap(err, "bad bpm value")
				}
				bpms = append(bpms, game.BPM{
					StartingBeat: sb,
					Value:        v,
				})
			}
		}
	}

	if len(bpms) == 0 || bpms[0].Value <= 0 {
		return nil, errors.New("missing bpm")
	}
	for _, bpm := range bpms[1:] {
		if bpm.Value != bpms[0].Value {
			return nil, ErrVariableTempo
		}
	}
	secondsPerBeat := 60.0 / bpms[0].Value

	songs := []*game.Song{}
	for _, difficulty := range difficulties {
		// Start time of first note
		at := offset
		notes := []game.Note{}
		holdCount := 0

		for _, block := range strings.Split(difficulty.Section, "\n,") {
			lines := []string{}
			for _, l := range strings.Split(block, "\n") {
				l = strings.TrimSpace(l)
				if strings.HasPrefix(l, "//") {
					continue
				}
				l = strings.TrimSuffix(l, ";")
				if len(l) == int(difficulty.NKeys) {
					lines = append(lines, l)
				}
			}
			if len(lines) == 0 {
				continue
			}

			// Beat count is 4 per block
			lineCount := int64(len(lines))
			beatsPerNote := 4.0 / float64(lineCount) // 1/4, 1/8, 1/16, 1/24 etc
			secondsPerNote := beatsPerNote * secondsPerBeat

			// for each note line in a block
			for i, line := range lines {
				denom := big.NewRat(int64(i*4), lineCount).Denom().Int64()
				t := seconds(at)

				for col, c := range []byte(line) {
					lane := game.Lane(col)
					if p.isHead(c) {
						if t < 0 {
							return nil, errors.Wrapf(ErrNoteBeforeStart, "%v at %v in %v", lane, t, difficulty.Name)
						}
						if c != '1' {
							holdCount++
						}
						notes = append(notes, game.Note{
							Lane:  lane,
							Denom: int(denom),
							Time:  t,
						})
					} else if c == '3' {
						// This is a release note of a previous head
						for j := len(notes) - 1; j >= 0; j-- {
							if notes[j].Lane != lane {
								continue
							}
							notes[j].Duration = t - notes[j].Time
							break
						}
					}
				}

				at += secondsPerNote
			}
		}

		songs = append(songs, &game.Song{
			Title:      title,
			Artist:     artist,
			BPM:        bpms[0].Value,
			Difficulty: difficulty,
			Notes:      notes,
			HoldCount:  int64(holdCount),
		})
	}

	return songs, nil
}
