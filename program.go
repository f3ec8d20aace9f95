package main

import (
	"fmt"
	"io"
	"time"

	"git.lost.host/meutraa/encore/internal/audio"
	"git.lost.host/meutraa/encore/internal/clock"
	"git.lost.host/meutraa/encore/internal/config"
	"git.lost.host/meutraa/encore/internal/engine"
	"git.lost.host/meutraa/encore/internal/game"
	"git.lost.host/meutraa/encore/internal/input"
	"git.lost.host/meutraa/encore/internal/parser"
	"git.lost.host/meutraa/encore/internal/render"
	"git.lost.host/meutraa/encore/internal/stats"
	"git.lost.host/meutraa/encore/internal/store"
	"git.lost.host/meutraa/encore/internal/theme"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Program is the host: it owns the terminal, the keyboard and the speaker,
// and feeds the session wall-clock readings.
type Program struct {
	cfg *config.Config
	log logrus.FieldLogger

	time     clock.TimeProvider
	store    *store.Store
	song     *game.Song
	audio    engine.AudioController
	session  *engine.Session
	keyboard *input.Keyboard
	renderer render.Renderer
	layout   render.Layout
	balance  int

	closers []io.Closer
}

func NewProgram(cfg *config.Config, log logrus.FieldLogger) *Program {
	tp := clock.NewWallProvider()
	return &Program{
		cfg:      cfg,
		log:      log,
		time:     tp,
		balance:  -1,
		renderer: render.NewDefaultRenderer(&theme.DefaultTheme{}, tp),
	}
}

func chooseSong(songs []*game.Song, index int) (*game.Song, error) {
	if index < 0 || index >= len(songs) {
		msg := fmt.Sprintf("difficulty %v does not exist, pick one of:", index)
		for i, s := range songs {
			msg += fmt.Sprintf("\n%2v) %3v  %5v  %v", i, s.Difficulty.Msd, len(s.Notes), s.Difficulty.Name)
		}
		return nil, errors.New(msg)
	}
	return songs[index], nil
}

func (p *Program) rules() (engine.Rules, error) {
	if p.cfg.Mode == engine.Concert {
		return engine.NewConcertRules(), nil
	}

	boss := stats.DefaultBoss()
	if p.cfg.Boss != "" {
		var err error
		if boss, err = stats.LoadBoss(p.cfg.Boss); nil != err {
			return nil, err
		}
	}
	fight := stats.NewFight(&stats.Player{
		Health:      p.cfg.Health,
		Drunkenness: p.cfg.Drunkenness,
		Level:       p.cfg.Level,
	}, boss)
	p.log.WithFields(logrus.Fields{"boss": boss.Name, "health": boss.Health}).Info("fight")
	return engine.NewCombatRules(fight), nil
}

// overrun is how far the chart runs past the end of its audio
func overrun(song *game.Song, length time.Duration) time.Duration {
	var end time.Duration
	for _, n := range song.Notes {
		if e := n.End(); e > end {
			end = e
		}
	}
	if end <= length {
		return 0
	}
	return end - length
}

// load finds and parses the chart and opens the ledger. It returns the
// audio file, which may be empty.
func (p *Program) load() (string, error) {
	chartFile, audioFile, err := parser.Find(p.cfg.Directory)
	if nil != err {
		return "", err
	}
	psr, err := parser.ForFile(chartFile)
	if nil != err {
		return "", err
	}
	songs, err := psr.Parse(chartFile)
	if nil != err {
		return "", errors.Wrapf(err, "unable to parse %v", chartFile)
	}
	if p.song, err = chooseSong(songs, p.cfg.Difficulty); nil != err {
		return "", err
	}
	p.log.WithField("chart", chartFile).Infof("loaded %v", p.song)

	if p.store, err = store.Open(p.cfg.Database, p.log); nil != err {
		return "", err
	}
	p.closers = append(p.closers, p.store)
	return audioFile, nil
}

// Init loads the chart and audio and builds the session. The terminal is
// left alone until Run.
func (p *Program) Init() error {
	audioFile, err := p.load()
	if nil != err {
		return err
	}

	p.audio = audio.Silent{}
	if p.cfg.Audio && audioFile != "" {
		player, err := audio.Open(audioFile, p.log)
		if nil != err {
			return err
		}
		p.audio = player
		p.closers = append(p.closers, player)
		if d := overrun(p.song, player.Length()); d > 0 {
			p.log.WithField("overrun", d).Warn("chart runs past the end of the audio")
		}
	}

	rules, err := p.rules()
	if nil != err {
		return err
	}
	p.session, err = engine.NewSession(p.cfg.Engine(), rules, p.song, p.audio, p.store, p.log)
	return err
}

// update feeds pending key presses and then the frame tick to the session.
// It returns false once the session is over.
func (p *Program) update(now time.Duration) bool {
	for _, ev := range p.keyboard.Poll() {
		switch {
		case nil != ev.Err:
			p.log.WithError(ev.Err).Warn("keyboard")
		case ev.Quit:
			p.session.Abort(now)
		case ev.IsLane:
			p.session.HandleInput(ev.Lane, now)
		}
	}
	p.session.Tick(now)

	if p.session.Events().Has(engine.EventNoteMissed) {
		col, row := (p.layout.Columns[1]+p.layout.Columns[2])>>1, p.layout.Rows>>1
		p.renderer.AddDecoration(col-1, row-1, "\033[1;31m╭", 240)
		p.renderer.AddDecoration(col+1, row-1, "\033[1;31m╮", 240)
		p.renderer.AddDecoration(col-1, row, "\033[1;31m╰", 240)
		p.renderer.AddDecoration(col+1, row, "\033[1;31m╯", 240)
	}
	return !p.session.IsFinished()
}

func (p *Program) draw() {
	p.renderer.Draw(p.layout, p.session.Snapshot(), p.session.Notes(), p.balance)
}

// Run plays the session to the end, then holds the result screen until a
// key is pressed.
func (p *Program) Run() error {
	kb, err := input.Open(p.cfg.KeyLane)
	if nil != err {
		return err
	}
	p.keyboard = kb
	defer func() {
		if err := kb.Close(); nil != err {
			p.log.WithError(err).Error("unable to close keyboard")
		}
	}()

	if err := p.renderer.Init(); nil != err {
		return err
	}
	defer func() {
		if err := p.renderer.Deinit(); nil != err {
			p.log.WithError(err).Error("unable to restore terminal")
		}
	}()

	rows, cols := p.renderer.Size()
	p.layout = render.NewLayout(rows, cols, p.cfg.BarRow, p.cfg.ColumnSpacing, p.cfg.ScrollSpeed)

	p.renderer.RenderLoop(p.cfg.FramePeriod, func(now time.Duration) bool {
		cont := p.update(now)
		p.draw()
		return cont
	})

	// The session has paid out by now
	if balance, err := p.store.Balance(); nil != err {
		p.log.WithError(err).Warn("unable to read the wallet")
	} else {
		p.balance = balance
	}

	// One last frame for the result screen
	p.renderer.RenderLoop(p.cfg.FramePeriod, func(now time.Duration) bool {
		p.draw()
		return false
	})
	kb.Wait()
	return nil
}

// Finish records the session in the ledger and releases everything Init
// opened
func (p *Program) Finish() error {
	defer p.close()
	if nil == p.session || !p.session.IsFinished() {
		return nil
	}
	for _, w := range p.session.Warnings() {
		p.log.WithError(w).Warn("session warning")
	}

	snap := p.session.Snapshot()
	return p.store.Save(&store.Record{
		Sum:          p.song.Sum(),
		Title:        p.song.Title,
		Mode:         snap.Mode.String(),
		Outcome:      snap.Outcome.String(),
		Reason:       snap.Reason.String(),
		Score:        snap.Score,
		Hype:         snap.Hype,
		PlayerHealth: snap.PlayerHealth,
		TargetHealth: snap.TargetHealth,
		Hits:         snap.TotalHits,
		Misses:       snap.TotalMisses,
		EmptyPresses: snap.EmptyPresses,
		MaxCombo:     snap.MaxCombo,
		Cash:         snap.CashEarned,
		Inputs:       p.session.Inputs(),
	})
}

// History prints the wallet and every session recorded for the chart
func (p *Program) History(w io.Writer) error {
	defer p.close()
	if _, err := p.load(); nil != err {
		return err
	}
	balance, err := p.store.Balance()
	if nil != err {
		return err
	}
	records, err := p.store.Sessions(p.song.Sum())
	if nil != err {
		return err
	}
	printHistory(w, p.song, balance, records)
	return nil
}

func printHistory(w io.Writer, song *game.Song, balance int, records []store.Record) {
	fmt.Fprintf(w, "%v\n", song)
	fmt.Fprintf(w, "Wallet: %v\n", balance)
	if len(records) == 0 {
		fmt.Fprintln(w, "No sessions played")
		return
	}
	for _, r := range records {
		result := fmt.Sprintf("score %6v  hype %3v", r.Score, r.Hype)
		if r.Mode == engine.Combat.String() {
			result = fmt.Sprintf("hp %4v  boss %4v", r.PlayerHealth, r.TargetHealth)
		}
		fmt.Fprintf(w, "%v  %-7v  %-9v  %v  combo %4v  misses %4v  cash %5v\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Mode, r.Outcome, result, r.MaxCombo, r.Misses, r.Cash)
	}
}

func (p *Program) close() {
	for i := len(p.closers) - 1; i >= 0; i-- {
		if err := p.closers[i].Close(); nil != err {
			p.log.WithError(err).Error("close")
		}
	}
	p.closers = nil
}
