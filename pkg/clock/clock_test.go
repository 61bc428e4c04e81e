package clock

import (
	"testing"
	"time"
)

func TestSystemNow(t *testing.T) {
	c := System()

	before := time.Now()
	got := c.Now()
	after := time.Now()

	if got.Before(before) || got.After(after) {
		t.Errorf("System().Now() = %v, want between %v and %v", got, before, after)
	}
}

func TestManualAdvance(t *testing.T) {
	base := time.Unix(0, 0)
	c := NewManual(base)

	// 未推进时保持不变
	if !c.Now().Equal(base) {
		t.Errorf("Now() = %v, want %v", c.Now(), base)
	}
	if !c.Now().Equal(base) {
		t.Errorf("Now() should be stable without Advance")
	}

	c.Advance(500 * time.Millisecond)
	want := base.Add(500 * time.Millisecond)
	if !c.Now().Equal(want) {
		t.Errorf("Now() = %v, want %v", c.Now(), want)
	}

	// 负数回退
	c.Advance(-100 * time.Millisecond)
	want = base.Add(400 * time.Millisecond)
	if !c.Now().Equal(want) {
		t.Errorf("Now() = %v, want %v", c.Now(), want)
	}
}

func TestManualSet(t *testing.T) {
	c := NewManual(time.Unix(0, 0))

	target := time.Unix(100, 0)
	c.Set(target)
	if !c.Now().Equal(target) {
		t.Errorf("Now() = %v, want %v", c.Now(), target)
	}
}
