package driver

import (
	"lint381/internal/observ"
)

// Timings merges the per-file phase reports of a run. Files served from
// the cache only contribute their load phase.
func Timings(results []*FileResult) observ.Report {
	reports := make([]observ.Report, 0, len(results))
	for _, r := range results {
		if r == nil || r.Timing == nil {
			continue
		}
		reports = append(reports, *r.Timing)
	}
	return observ.Merge(reports...)
}
