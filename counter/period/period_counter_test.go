package period

import (
	"testing"
	"time"
)

func TestPeriodCounter(t *testing.T) {
	clock := time.Unix(1000, 0)
	c := newPeriodCounter(time.Second, func() time.Time { return clock })

	c.Add(100)
	if c.Value() != 100 || c.RatePerSec() != 0 {
		t.Fatalf("value %d rate %d before the first period", c.Value(), c.RatePerSec())
	}

	clock = clock.Add(2 * time.Second)
	c.Add(300)
	if c.Value() != 400 {
		t.Fatalf("value = %d, want 400", c.Value())
	}
	if c.RatePerSec() != 200 {
		t.Fatalf("rate = %d, want 200", c.RatePerSec())
	}

	clock = clock.Add(500 * time.Millisecond)
	c.Add(1000)
	if c.RatePerSec() != 200 {
		t.Fatalf("rate refreshed inside the period: %d", c.RatePerSec())
	}
}
