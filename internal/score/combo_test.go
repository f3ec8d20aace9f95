package score

import "testing"

func TestComboTracksMax(t *testing.T) {
	var c Combo
	for i := 0; i < 7; i++ {
		c.Hit()
	}
	c.Break()
	if c.Count != 0 {
		t.Fatalf("combo should reset, got %v", c.Count)
	}
	c.Hit()
	if c.Count != 1 || c.Max != 7 {
		t.Errorf("expected count 1 max 7, got %v %v", c.Count, c.Max)
	}
}

func TestConcertPoints(t *testing.T) {
	tests := []struct {
		tenths   int64
		combo    int
		expected int64
	}{
		{3000, 1, 300},
		{3000, 9, 300},
		{3000, 10, 450},
		{3000, 12, 450},
		{3000, 20, 600},
		{170, 10, 25}, // floor(17 * 1.5)
		{2100, 35, 525},
	}
	for _, test := range tests {
		if p := ConcertPoints(test.tenths, test.combo); p != test.expected {
			t.Errorf("ConcertPoints(%v, %v) = %v, expected %v", test.tenths, test.combo, p, test.expected)
		}
	}
	if m := ConcertMultiplier(12); m != 1.5 {
		t.Errorf("expected 1.5, got %v", m)
	}
}

func TestCombatDamage(t *testing.T) {
	tests := []struct {
		base, combo, drunk int
		expected           int
	}{
		{15, 1, 0, 7},   // 15 / 2
		{15, 5, 0, 9},   // floor(15 * 1.2) = 18, / 2
		{15, 10, 0, 10}, // floor(15 * 1.4) = 21, / 2
		{15, 1, 20, 5},  // 15 - 4 = 11, / 2
		{15, 1, 50, 3},  // 15 - 10 = 5, * 1.2 = 6, / 2
		{2, 1, 100, 0},  // 2 - 20 floored at 1, * 1.2 = 1, / 2
		{12, 5, 60, 1},  // 14 - 12 = 2, * 1.2 = 2, / 2
		{8, 1, -10, 4},
	}
	for _, test := range tests {
		if d := CombatDamage(test.base, test.combo, test.drunk); d != test.expected {
			t.Errorf("CombatDamage(%v, %v, %v) = %v, expected %v",
				test.base, test.combo, test.drunk, d, test.expected)
		}
	}
	if m := CombatMultiplier(5); m != 1.2 {
		t.Errorf("expected 1.2, got %v", m)
	}
}
