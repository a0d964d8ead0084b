package clock

import "testing"

func TestTickCountsCycles(t *testing.T) {
	c := New(1_000_000)
	const want = 100
	var got uint64
	for i := 0; i < want; i++ {
		got = c.Tick()
	}
	if got != want {
		t.Errorf("Cycles after %d ticks: got %d want %d", want, got, want)
	}
	if c.Cycles() != want {
		t.Errorf("Cycles(): got %d want %d", c.Cycles(), want)
	}
}

func TestResetZeroesCounters(t *testing.T) {
	c := New(1_000_000)
	for i := 0; i < 10; i++ {
		c.Tick()
	}
	c.Reset()
	if c.Cycles() != 0 {
		t.Errorf("Cycles() after Reset: got %d want 0", c.Cycles())
	}
	if c.Misses() != 0 {
		t.Errorf("Misses() after Reset: got %d want 0", c.Misses())
	}
}

func TestMissIsCountedOnOverrun(t *testing.T) {
	// An extremely high frequency guarantees the deadline is already in
	// the past by the time the next Tick is observed, exercising the
	// half-period catch-up path.
	c := New(1_000_000_000)
	for i := 0; i < 1000; i++ {
		c.Tick()
	}
	if c.Misses() == 0 {
		t.Errorf("expected at least one miss at an unreachable frequency, got 0")
	}
}
