// Package decimal provides an immutable fixed point base 10 number.
//
// The equation for a decimal number is:
//
//  number = value * 10 ^ -scale
//
// Where number is the fixed point number, value is an unscaled integer of
// arbitrary size, and scale is the count of digits to the right of the
// decimal point. For example:
//
//  1.23 = 123 * 10^-2
//
// Representation
//
// A value and a scale together are a representation. The same number has
// many representations:
//
//  | Text  | Value | Scale |
//  |-------|-------|-------|
//  | 2.5   |    25 |     1 |
//  | 2.50  |   250 |     2 |
//  | 2.500 |  2500 |     3 |
//  |-------|-------|-------|
//
// Equal reports whether two decimals share a representation. Cmp compares
// the numbers. 2.50 and 2.5 are therefore not Equal, but Cmp returns 0.
// StripTrailingZeros reduces a decimal to its shortest representation, after
// which Equal and Cmp agree.
//
// Scale may be negative, for example after StripTrailingZeros removes zeros
// from the integer part (100 becomes value 1, scale -2) or after parsing an
// exponent ("1.5e3" is value 15, scale -2). String always prints plain
// notation.
//
// Construction
//
// Parse keeps the literal exactly: "0.10" has scale 2. FromFloat64 first
// formats the float as the shortest text that round trips and then parses
// that text, so FromFloat64(0.2) is exactly 0.2 and not the binary fraction
// nearest to it.
//
// Arithmetic
//
// Add and Sub produce the larger of the two scales. Mul produces the sum of
// the two scales. Quo produces the exact quotient and fails with
// NonTerminatingError when the quotient has no finite decimal expansion
// (1/3). QuoRound and SetScale round to a requested scale with a
// RoundingMode:
//
//  | Input | UP | DOWN | CEILING | FLOOR | HALF_UP | HALF_DOWN | HALF_EVEN |
//  |-------|----|------|---------|-------|---------|-----------|-----------|
//  |   5.5 |  6 |    5 |       6 |     5 |       6 |         5 |         6 |
//  |   2.5 |  3 |    2 |       3 |     2 |       3 |         2 |         2 |
//  |   1.6 |  2 |    1 |       2 |     1 |       2 |         2 |         2 |
//  |   1.1 |  2 |    1 |       2 |     1 |       1 |         1 |         1 |
//  |  -1.1 | -2 |   -1 |      -1 |    -2 |      -1 |        -1 |        -1 |
//  |  -2.5 | -3 |   -2 |      -2 |    -3 |      -3 |        -2 |        -2 |
//  |-------|----|------|---------|-------|---------|-----------|-----------|
//
// UNNECESSARY asserts that no rounding is needed and fails with
// RoundingNecessaryError otherwise.
package decimal
