package score

import (
	"testing"
	"time"
)

var result time.Duration

func BenchmarkDistance(b *testing.B) {
	total := time.Millisecond * 0
	p, q := time.Millisecond*12456, time.Millisecond*13456
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		total += Distance(p, q)
	}

	result = total
}

func TestDistance(t *testing.T) {
	for i := -500; i < 500; i++ {
		note := 10 * time.Second
		hit := note + time.Duration(i)*time.Millisecond
		d := Distance(note, hit)
		if d != time.Duration(i)*time.Millisecond {
			t.Log("  Note:", note)
			t.Log("   Hit:", hit)
			t.Log("Error:", d)
			t.Fail()
		}
		if Millis(d) < 0 {
			t.Errorf("Millis(%v) should never be negative", d)
		}
	}
}

func TestMillisTruncates(t *testing.T) {
	tests := map[time.Duration]int64{
		0:                           0,
		999 * time.Microsecond:      0,
		50*time.Millisecond + 900:   50,
		-120 * time.Millisecond:     120,
		-(250*time.Millisecond - 1): 249,
	}
	for in, expected := range tests {
		if out := Millis(in); out != expected {
			t.Errorf("Millis(%v) = %v, expected %v", in, out, expected)
		}
	}
}
