package main

import (
	"fmt"
	"io"
	"time"

	"lint381/internal/driver"
)

// printTimings writes per-phase totals summed over files, the wall time of
// the whole run and the slowest file. Phase totals exceed wall time when
// files are linted in parallel.
func printTimings(out io.Writer, results []*driver.FileResult, wall time.Duration) {
	if out == nil {
		return
	}
	report := driver.Timings(results)
	if len(report.Phases) > 0 {
		fmt.Fprint(out, report.Summary())
	}
	fmt.Fprintf(out, "  %-20s %9.2f ms\n", "wall", toMillis(wall))

	var (
		slowest *driver.FileResult
		worst   float64
	)
	for _, r := range results {
		if r == nil || r.Timing == nil {
			continue
		}
		if r.Timing.TotalMS > worst {
			slowest, worst = r, r.Timing.TotalMS
		}
	}
	if slowest != nil {
		fmt.Fprintf(out, "slowest: %s %.2f ms\n", slowest.Path, worst)
	}
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
