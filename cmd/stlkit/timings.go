package main

import (
	"fmt"
	"io"

	"stlkit/internal/driver"
	"stlkit/internal/observ"
)

var pipelineStages = []driver.Stage{driver.StageRead, driver.StageDecode, driver.StageEncode, driver.StageWrite}

// stageTimer turns the timings of a single pipeline run into phases.
func stageTimer(t driver.Timings) *observ.Timer {
	tm := observ.NewTimer()
	for _, stage := range pipelineStages {
		if t.Has(stage) {
			tm.Add(string(stage), t.Duration(stage), "")
		}
	}
	return tm
}

// fileTimer reports one phase per file, noting cache hits and failures.
func fileTimer(sums []driver.Summary) *observ.Timer {
	tm := observ.NewTimer()
	for _, sum := range sums {
		note := ""
		switch {
		case sum.Err != nil:
			note = "failed"
		case sum.Cached:
			note = "cached"
		}
		tm.Add(sum.Path, sum.Elapsed, note)
	}
	return tm
}

func (s *settings) printTimings(w io.Writer, tm *observ.Timer) {
	if !s.timings || tm.Len() == 0 {
		return
	}
	fmt.Fprint(w, tm.Summary())
}
