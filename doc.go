// Package pitfalls holds the error classes shared by the demonstrations.
//
// Each leaf package declares the error kinds that belong only to it (for
// example decimal.ParseError). The kinds that more than one demonstration
// raises live here so that a single Has check recognizes them regardless of
// which package produced the error.
//
// Recoverable failures are returned as errors and must be acknowledged by
// the caller. Programming errors are panics; see integer.Recover for the
// boundary that converts them back into errors.
package pitfalls
