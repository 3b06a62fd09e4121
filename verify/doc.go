// Package verify checks each line of a proof.Proof against its stated
// Justification, independent of how the line was produced. It never
// mutates a proof's content, only (when asked to verify the whole thing)
// each line's IsValid/ValidationMessage fields.
package verify
