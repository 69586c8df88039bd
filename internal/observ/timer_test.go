package observ

import (
	"strings"
	"testing"
	"time"
)

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	if got := tm.Report(); len(got.Phases) != 0 || got.TotalMS != 0 {
		t.Fatalf("empty timer report = %+v", got)
	}

	tm.Add("read", 2*time.Millisecond, "")
	tm.Add("decode", 3500*time.Microsecond, "cached")
	if tm.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tm.Len())
	}

	rep := tm.Report()
	if rep.TotalMS != 5.5 {
		t.Fatalf("TotalMS = %v, want 5.5", rep.TotalMS)
	}
	if rep.Phases[1].Name != "decode" || rep.Phases[1].DurationMS != 3.5 || rep.Phases[1].Note != "cached" {
		t.Fatalf("phase[1] = %+v", rep.Phases[1])
	}
}

func TestTimerSummary(t *testing.T) {
	tm := NewTimer()
	long := strings.Repeat("p", 30)
	tm.Add(long, time.Millisecond, "")
	tm.Add("write", 250*time.Microsecond, "gzip")

	lines := strings.Split(strings.TrimRight(tm.Summary(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("summary has %d lines:\n%s", len(lines), tm.Summary())
	}
	if lines[0] != "timings:" {
		t.Fatalf("first line = %q", lines[0])
	}
	if !strings.HasSuffix(lines[2], "0.25 ms  // gzip") {
		t.Fatalf("write line = %q", lines[2])
	}
	// колонка имени растягивается под самое длинное имя
	if !strings.HasPrefix(lines[3], "  total"+strings.Repeat(" ", len(long)-len("total"))+" ") {
		t.Fatalf("total line = %q", lines[3])
	}
}
