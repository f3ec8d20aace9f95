package render

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"git.lost.host/meutraa/encore/internal/clock"
	"git.lost.host/meutraa/encore/internal/theme"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// DefaultRenderer draws straight to a raw mode terminal with ANSI escapes
type DefaultRenderer struct {
	Theme theme.Theme
	Time  clock.TimeProvider

	buffer       strings.Builder
	restoreState *term.State
	decorations  []*decoration
}

type decoration struct {
	X, Y    int
	Content string
	Frames  int // remaining frames until removed
}

func NewDefaultRenderer(th theme.Theme, tp clock.TimeProvider) *DefaultRenderer {
	return &DefaultRenderer{Theme: th, Time: tp}
}

func (r *DefaultRenderer) Init() error {
	state, err := term.MakeRaw(int(os.Stdout.Fd()))
	if nil != err {
		return errors.Wrap(err, "unable to enter raw mode")
	}
	r.restoreState = state

	fmt.Printf("%s%s%s",
		"\033[?1049h", // Enable alternate buffer
		"\033[?25l",   // Make the cursor invisible
		"\033[2J",     // Clear the screen
	)
	return nil
}

func (r *DefaultRenderer) Deinit() error {
	fmt.Printf("%s%s",
		"\033[?1049l", // Disable alternate buffer
		"\033[?25h",   // Make the cursor visible
	)
	if nil == r.restoreState {
		return nil
	}
	return term.Restore(int(os.Stdout.Fd()), r.restoreState)
}

func (r *DefaultRenderer) Size() (rows, cols int) {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if nil != err {
		return 24, 80
	}
	return rows, cols
}

func (r *DefaultRenderer) AddDecoration(col, row int, content string, frames int) {
	r.decorations = append(r.decorations, &decoration{
		X:       col,
		Y:       row,
		Content: content,
		Frames:  frames,
	})
}

func (r *DefaultRenderer) tickDecorations() {
	nd := make([]*decoration, 0, len(r.decorations))
	for _, d := range r.decorations {
		if d.Frames == 0 {
			continue
		}
		r.Fill(d.Y, d.X, d.Content)
		nd = append(nd, d)
		d.Frames--
	}
	r.decorations = nd
}

// RenderLoop calls render once per frame period until it returns false
func (r *DefaultRenderer) RenderLoop(framePeriod time.Duration, render func(now time.Duration) bool) {
	cont := true
	for cont {
		start := time.Now()

		r.Clear()
		cont = render(r.Time.Now())

		r.tickDecorations()
		r.flush()

		time.Sleep(framePeriod - time.Since(start))
	}
}

func (r *DefaultRenderer) Clear() {
	r.buffer.WriteString("\033[2J")
}

func (r *DefaultRenderer) Fill(row, column int, message string) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.Itoa(row))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.Itoa(column))
	r.buffer.WriteString("H")
	r.buffer.WriteString(message)
}

func (r *DefaultRenderer) flush() {
	os.Stdout.Write([]byte(r.buffer.String()))
	r.buffer.Reset()
}
