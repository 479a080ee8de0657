package observ

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestTimerReport(t *testing.T) {
	timer := NewTimer()
	done := timer.Track("tokenize")
	time.Sleep(time.Millisecond)
	done("42 tokens")
	idx := timer.Begin("lint")
	timer.End(idx, "")

	r := timer.Report()
	if len(r.Phases) != 2 {
		t.Fatalf("phases = %+v", r.Phases)
	}
	if r.Phases[0].Name != "tokenize" || r.Phases[0].Note != "42 tokens" || r.Phases[0].DurationMS <= 0 {
		t.Errorf("first phase = %+v", r.Phases[0])
	}
	if r.TotalMS < r.Phases[0].DurationMS {
		t.Errorf("total %.3f smaller than a phase %.3f", r.TotalMS, r.Phases[0].DurationMS)
	}
	if s := timer.Summary(); !strings.Contains(s, "tokenize") || !strings.Contains(s, "// 42 tokens") || !strings.Contains(s, "total") {
		t.Errorf("summary:\n%s", s)
	}
}

func TestTimerIgnoresBadIndex(t *testing.T) {
	timer := NewTimer()
	timer.End(-1, "x")
	timer.End(3, "x")
	if r := timer.Report(); len(r.Phases) != 0 {
		t.Errorf("unexpected phases %+v", r.Phases)
	}
}

func TestNilTimer(t *testing.T) {
	var timer *Timer
	timer.Track("load")("")
	if r := timer.Report(); r.TotalMS != 0 || r.Phases != nil {
		t.Errorf("nil timer report = %+v", r)
	}
}

func TestTimerConcurrentUse(t *testing.T) {
	timer := NewTimer()
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			timer.Track("lint")("")
		}()
	}
	wg.Wait()
	if got := len(timer.Report().Phases); got != 16 {
		t.Errorf("phases = %d, want 16", got)
	}
}

func TestMerge(t *testing.T) {
	a := Report{TotalMS: 3, Phases: []PhaseReport{{Name: "load", DurationMS: 1, Count: 1}, {Name: "lint", DurationMS: 2, Count: 1}}}
	b := Report{TotalMS: 4, Phases: []PhaseReport{{Name: "lint", DurationMS: 3}, {Name: "tokenize", DurationMS: 1, Count: 1}}}

	m := Merge(a, b)
	if m.TotalMS != 7 {
		t.Errorf("TotalMS = %v", m.TotalMS)
	}
	want := []PhaseReport{
		{Name: "load", DurationMS: 1, Count: 1},
		{Name: "lint", DurationMS: 5, Count: 2},
		{Name: "tokenize", DurationMS: 1, Count: 1},
	}
	if len(m.Phases) != len(want) {
		t.Fatalf("phases = %+v", m.Phases)
	}
	for i := range want {
		if m.Phases[i] != want[i] {
			t.Errorf("phase %d = %+v, want %+v", i, m.Phases[i], want[i])
		}
	}
	if !strings.Contains(m.Summary(), "x2") {
		t.Errorf("summary should show counts:\n%s", m.Summary())
	}
}
