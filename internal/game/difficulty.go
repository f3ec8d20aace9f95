package game

// Difficulty is one chart of a song. Msd is the chart's meter as written.
type Difficulty struct {
	Name    string
	Msd     string
	Section string
	NKeys   uint8
}

// Playable reports whether the chart fits the four lanes
func (d Difficulty) Playable() bool {
	return d.NKeys == NLanes
}

// LaneCounts maps StepMania chart types to their lane count
var LaneCounts = map[string]uint8{
	"dance-single": 4,
	"dance-solo":   6,
	"dance-double": 8,
	"pump-single":  5,
	"pump-double":  10,
}
