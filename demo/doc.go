// Package demo prints the demonstrations.
//
// Each demonstration writes a fixed sequence of labeled lines. Expected
// failures are reported on the error writer and never stop the sequence.
package demo
