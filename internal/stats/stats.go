// Package stats holds the fighters of a rhythm-combat session
package stats

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var ErrInvalidBoss = errors.New("invalid boss sheet")

type Player struct {
	Health      int
	Drunkenness int // 0-100
	Level       int
}

type Boss struct {
	Name      string `yaml:"name"`
	Title     string `yaml:"title"`
	Health    int    `yaml:"health"`
	MaxHealth int    `yaml:"max_health"`
}

// DefaultBoss is fought when no sheet is given
func DefaultBoss() *Boss {
	return &Boss{Name: "The Critic", Title: "Destroyer of Demos", Health: 100, MaxHealth: 100}
}

// LoadBoss reads a boss sheet. Health defaults to full.
func LoadBoss(file string) (*Boss, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return nil, errors.Wrapf(err, "unable to read %v", file)
	}
	var b Boss
	if err := yaml.Unmarshal(data, &b); nil != err {
		return nil, errors.Wrapf(err, "unable to parse %v", file)
	}
	if b.MaxHealth <= 0 {
		return nil, errors.Wrapf(ErrInvalidBoss, "%v: max_health must be positive", file)
	}
	if b.Health == 0 {
		b.Health = b.MaxHealth
	}
	if b.Health < 0 || b.Health > b.MaxHealth {
		return nil, errors.Wrapf(ErrInvalidBoss, "%v: health out of range", file)
	}
	if b.Name == "" {
		b.Name = "Boss"
	}
	return &b, nil
}

// Fight exposes a player and a boss to the engine
type Fight struct {
	Player *Player
	Boss   *Boss
}

func NewFight(p *Player, b *Boss) *Fight {
	if nil == b {
		b = DefaultBoss()
	}
	return &Fight{Player: p, Boss: b}
}

func (f *Fight) PlayerHealth() int      { return f.Player.Health }
func (f *Fight) TargetHealth() int      { return f.Boss.Health }
func (f *Fight) TargetMaxHealth() int   { return f.Boss.MaxHealth }
func (f *Fight) PlayerDrunkenness() int { return f.Player.Drunkenness }
func (f *Fight) PlayerLevel() int       { return f.Player.Level }

func (f *Fight) SetPlayerHealth(v int) { f.Player.Health = v }
func (f *Fight) SetTargetHealth(v int) { f.Boss.Health = v }
