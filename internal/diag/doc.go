// Package diag defines the diagnostic record produced by lint rules and the
// small utilities used to collect it.
//
// # Data model
//
// Diagnostic carries a message and the contiguous token run that triggered it.
// Its location is derived from the first token's start and the last token's
// end; there is no separate span field that could drift from the tokens.
//
//   - Rule: ID of the emitting rule, stamped by the registry.
//   - Severity: Info, Warning or Error; rules emit Error unless configured.
//   - Hint: optional replacement text shown under the underline.
//   - File: path of the analysed file, set by the driver.
//
// # Collection
//
// Rules return plain slices. The driver funnels them through a BagReporter
// into a per-file Bag; the Bag caps the count and drops duplicates. Callers
// can pass their own Reporter to see what each file kept.
//
// Package diag does not format for humans beyond the one-line short form;
// rendering lives in internal/diagfmt.
package diag
