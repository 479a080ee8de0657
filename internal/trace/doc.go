// Package trace is lint381's structured event log.
//
// Spans mark the lint pipeline: the driver run, passes (load, tokenize,
// lint) and individual files and rules. Events go to a stream (stderr or a
// file, text or NDJSON), an in-memory ring for post-mortem dumps, or both.
//
//	lint381 check --trace=- --trace-level=phase src/
//
// Levels:
//
//   - off: nothing
//   - error: driver-level points only (file failures)
//   - phase: driver and pass boundaries
//   - detail: plus one span per file
//   - debug: plus one span per rule evaluation
//
// Tracers travel in a context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "tokenize", parentID)
//	defer span.End("")
package trace
