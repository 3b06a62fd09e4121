// Package theorem defines the Theorem record — a set of premises, a
// conclusion, and the difficulty metadata that produced it — plus its JSON
// wire representation (spec §6).
package theorem
