// Package testdata holds fixture songs shared by tests
package testdata

import (
	"encoding/json"

	"git.lost.host/meutraa/encore/internal/game"
)

// GetSong is a short four lane chart, one note every half second
func GetSong() (*game.Song, error) {
	var song game.Song
	if err := json.Unmarshal([]byte(data), &song); nil != err {
		return nil, err
	}
	return &song, nil
}

const data = `{
	"Title": "Highway Riff",
	"Artist": "The Roadies",
	"BPM": 120,
	"Difficulty": {"Name": "Easy", "Msd": "2", "NKeys": 4},
	"Notes": [
		{"Lane": 0, "Denom": 1, "Time": 1000000000},
		{"Lane": 1, "Denom": 1, "Time": 1500000000},
		{"Lane": 2, "Denom": 1, "Time": 2000000000},
		{"Lane": 3, "Denom": 1, "Time": 2500000000},
		{"Lane": 0, "Denom": 2, "Time": 3000000000, "Duration": 500000000},
		{"Lane": 3, "Denom": 2, "Time": 3000000000}
	]
}`

// StepMania is the same riff as an .sm file with an extra Hard chart
const StepMania = `#TITLE:Highway Riff;
#ARTIST:The Roadies;
#OFFSET:-0.100;
#BPMS:0.000=120.000;
#NOTES:
     dance-single:
     :
     Easy:
     2:
     0,0,0,0,0:
1000
0100
0010
0001
,
2000
0000
3000
0000
;
#NOTES:
     dance-single:
     :
     Hard:
     7:
     0,0,0,0,0:
// measure 1
1001
0110
1001
0110
0110
1001
0110
1001
;
`

// StepManiaDouble only has an eight lane chart
const StepManiaDouble = `#TITLE:Twin Necks;
#BPMS:0.000=140.000;
#NOTES:
     dance-double:
     :
     Hard:
     7:
     0,0,0,0,0:
10000001
;
`

// StepManiaTempo speeds up half way
const StepManiaTempo = `#TITLE:Accelerando;
#BPMS:0.000=120.000,16.000=180.000;
#NOTES:
     dance-single:
     :
     Easy:
     2:
     0,0,0,0,0:
1000
;
`

// StepManiaEarly starts its audio half a second before beat zero and has a
// note on beat zero
const StepManiaEarly = `#TITLE:Jump Start;
#OFFSET:0.500;
#BPMS:0.000=120.000;
#NOTES:
     dance-single:
     :
     Easy:
     2:
     0,0,0,0,0:
1000
0100
0010
0001
;
`

// StepManiaLeadIn has the same offset but leaves beat zero empty
const StepManiaLeadIn = `#TITLE:Slow Start;
#OFFSET:0.500;
#BPMS:0.000=120.000;
#NOTES:
     dance-single:
     :
     Easy:
     2:
     0,0,0,0,0:
0000
1000
0100
0000
;
`

const YAML = `title: Highway Riff
artist: The Roadies
bpm: 120
charts:
  - name: Easy
    meter: "2"
    notes:
      - {at: 1000, lane: 0}
      - {at: 1500, lane: 1}
      - {at: 2000, lane: 2, hold: 500}
  - name: Hard
    notes:
      - {at: 500, lane: 3}
`
