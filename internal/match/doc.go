// Package match finds bounded, minimal token windows in a token sequence.
//
// A Matcher is configured with a start predicate, an optional end predicate
// (defaulting to start), and either a lookahead or an exact window length.
// It knows nothing about C; all language knowledge lives in predicates.
//
// General search:
//
//	SCANNING --start--> IN_SPAN --start--> IN_SPAN (span start moves forward)
//	IN_SPAN --end--> SCANNING (emit [spanStart, end+lookahead] if it fits)
//
// A token that satisfies both predicates opens and closes a span at once.
// Matches never share a token: after an emitted match the scan resumes
// after its last token, lookahead included. A candidate whose lookahead runs
// past the sequence ends the scan, since every later end token would run
// short as well.
//
// Exact length N: for each start token at i only tokens[i+N-1] is tested
// against end; no re-arming. Emitted windows are skipped over as above.
package match
