package decimal

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/zeebo/errs"
	"gopkg.in/inf.v0"
)

// Error classes.
var (
	// Error is the class for misuse of the package, such as an invalid
	// rounding mode.
	Error = errs.Class("decimal")

	// ParseError marks text or floats that are not a finite decimal.
	ParseError = errs.Class("parse")

	// NonTerminatingError marks an exact quotient with no finite decimal
	// expansion.
	NonTerminatingError = errs.Class("non-terminating expansion")

	// RoundingNecessaryError marks a result that would lose digits while
	// rounding with Unnecessary.
	RoundingNecessaryError = errs.Class("rounding necessary")

	// DivisionByZeroError marks a zero divisor.
	DivisionByZeroError = errs.Class("division by zero")
)

// ErrDivisionByZero is returned for every zero divisor.
var ErrDivisionByZero = DivisionByZeroError.New("divisor is zero")

// Frequently used values.
var (
	Zero = Decimal{}
	One  = MustParse("1")
	Ten  = MustParse("10")
)

var bigTen = big.NewInt(10)

// Decimal is an immutable fixed point base 10 number. The zero value is 0
// with scale 0.
type Decimal struct {
	dec *inf.Dec
}

func newDecimal(dec *inf.Dec) Decimal {
	if dec.Sign() == 0 && dec.Scale() < 0 {
		dec.SetScale(0)
	}

	return Decimal{dec: dec}
}

// New returns value * 10^-scale.
func New(value int64, scale int) Decimal {
	return newDecimal(inf.NewDec(value, inf.Scale(scale)))
}

// NewBig returns value * 10^-scale. The value is copied.
func NewBig(value *big.Int, scale int) Decimal {
	return newDecimal(inf.NewDecBig(new(big.Int).Set(value), inf.Scale(scale)))
}

// Parse returns the decimal written in s, keeping its scale. The grammar is:
//
//	sign        ::= '+' | '-'
//	digits      ::= digit { digit }
//	significand ::= digits '.' [ digits ] | [ digits ] '.' digits | digits
//	exponent    ::= ( 'e' | 'E' ) [ sign ] digits
//	decimal     ::= [ sign ] significand [ exponent ]
//
// An exponent shifts the scale: "1.5e3" is value 15, scale -2, and prints
// as "1500".
func Parse(s string) (d Decimal, err error) {
	defer ParseError.WrapP(&err)

	var (
		pos     int
		width   = len(s)
		neg     bool
		digits  = make([]byte, 0, width)
		scale   int64
		hasCoef bool
		eneg    bool
		exp     int64
		hasExp  bool
		hasE    bool
	)

	// Sign
	switch {
	case pos == width:
		// skip
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Integer
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		hasCoef = true
		digits = append(digits, s[pos])
		pos++
	}

	// Fraction
	if pos < width && s[pos] == '.' {
		pos++
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			hasCoef = true
			digits = append(digits, s[pos])
			scale++
			pos++
		}
	}

	// Exponent
	if pos < width && (s[pos] == 'e' || s[pos] == 'E') {
		hasE = true
		pos++
		switch {
		case pos == width:
			// skip
		case s[pos] == '-':
			eneg = true
			pos++
		case s[pos] == '+':
			pos++
		}
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			exp = exp*10 + int64(s[pos]-'0')
			if exp > math.MaxInt32 {
				return Decimal{}, errs.New("exponent out of range: %q", s)
			}
			hasExp = true
			pos++
		}
	}

	switch {
	case pos != width:
		return Decimal{}, errs.New("invalid character %q in %q", s[pos], s)
	case !hasCoef:
		return Decimal{}, errs.New("no digits in %q", s)
	case hasE && !hasExp:
		return Decimal{}, errs.New("no exponent in %q", s)
	}

	if eneg {
		scale += exp
	} else {
		scale -= exp
	}
	if scale > math.MaxInt32 || scale < math.MinInt32 {
		return Decimal{}, errs.New("scale out of range: %q", s)
	}

	value, ok := new(big.Int).SetString(string(digits), 10)
	if !ok {
		return Decimal{}, errs.New("invalid digits in %q", s)
	}
	if neg {
		value.Neg(value)
	}

	return newDecimal(inf.NewDecBig(value, inf.Scale(scale))), nil
}

// MustParse is like Parse but panics if s is not a decimal. It is intended
// for package level values.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q): %v", s, err))
	}

	return d
}

// FromFloat64 returns the decimal written by the shortest text that round
// trips to f. FromFloat64(0.2) is 0.2 with scale 1. NaN and infinities are
// rejected.
func FromFloat64(f float64) (Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Decimal{}, ParseError.New("not a finite number: %v", f)
	}

	return Parse(strconv.FormatFloat(f, 'f', -1, 64))
}

func (d Decimal) raw() *inf.Dec {
	if d.dec == nil {
		return new(inf.Dec)
	}

	return d.dec
}

// Scale returns the number of digits to the right of the decimal point.
func (d Decimal) Scale() int {
	return int(d.raw().Scale())
}

// Unscaled returns a copy of the unscaled value.
func (d Decimal) Unscaled() *big.Int {
	return new(big.Int).Set(d.raw().UnscaledBig())
}

// Sign returns -1, 0 or +1.
func (d Decimal) Sign() int {
	return d.raw().Sign()
}

// IsZero returns true if d is zero at any scale.
func (d Decimal) IsZero() bool {
	return d.Sign() == 0
}

// Neg returns -d with the scale of d.
func (d Decimal) Neg() Decimal {
	return newDecimal(new(inf.Dec).Neg(d.raw()))
}

// Add returns d + e at the larger of the two scales.
func (d Decimal) Add(e Decimal) Decimal {
	return newDecimal(new(inf.Dec).Add(d.raw(), e.raw()))
}

// Sub returns d - e at the larger of the two scales.
func (d Decimal) Sub(e Decimal) Decimal {
	return newDecimal(new(inf.Dec).Sub(d.raw(), e.raw()))
}

// Mul returns d * e with scale d.Scale() + e.Scale().
func (d Decimal) Mul(e Decimal) Decimal {
	return newDecimal(new(inf.Dec).Mul(d.raw(), e.raw()))
}

// Quo returns the exact quotient d / e. The scale is the smallest one at
// or above d.Scale() - e.Scale() that holds the quotient exactly.
func (d Decimal) Quo(e Decimal) (Decimal, error) {
	if e.IsZero() {
		return Decimal{}, ErrDivisionByZero
	}

	q := new(inf.Dec).QuoExact(d.raw(), e.raw())
	if q == nil {
		return Decimal{}, NonTerminatingError.New(
			"%s / %s has no exact decimal result",
			d, e,
		)
	}

	return newDecimal(q), nil
}

// QuoRound returns d / e rounded to scale with mode.
func (d Decimal) QuoRound(e Decimal, scale int, mode RoundingMode) (Decimal, error) {
	r, err := mode.rounder()
	if err != nil {
		return Decimal{}, err
	}

	if e.IsZero() {
		return Decimal{}, ErrDivisionByZero
	}

	z := new(inf.Dec).QuoRound(d.raw(), e.raw(), inf.Scale(scale), r)
	if z == nil {
		return Decimal{}, RoundingNecessaryError.New(
			"%s / %s at scale %d",
			d, e, scale,
		)
	}

	return newDecimal(z), nil
}

// SetScale returns d expressed with scale digits after the decimal point.
// Increasing the scale appends zeros. Decreasing it rounds with mode.
func (d Decimal) SetScale(scale int, mode RoundingMode) (Decimal, error) {
	r, err := mode.rounder()
	if err != nil {
		return Decimal{}, err
	}

	z := new(inf.Dec).Round(d.raw(), inf.Scale(scale), r)
	if z == nil {
		return Decimal{}, RoundingNecessaryError.New(
			"%s at scale %d",
			d, scale,
		)
	}

	return newDecimal(z), nil
}

// StripTrailingZeros returns the shortest representation of d. Zero
// becomes 0 with scale 0.
func (d Decimal) StripTrailingZeros() Decimal {
	if d.IsZero() {
		return Decimal{}
	}

	value := d.Unscaled()
	scale := d.raw().Scale()

	q, r := new(big.Int), new(big.Int)
	for {
		q.QuoRem(value, bigTen, r)
		if r.Sign() != 0 {
			break
		}

		value.Set(q)
		scale--
	}

	return newDecimal(inf.NewDecBig(value, scale))
}

// Equal returns true if d and e have the same value and the same scale.
// Use Cmp to compare numbers.
func (d Decimal) Equal(e Decimal) bool {
	return d.Scale() == e.Scale() && d.raw().UnscaledBig().Cmp(e.raw().UnscaledBig()) == 0
}

// Cmp compares the numbers d and e regardless of scale and returns:
//
//	-1 if d <  e
//	 0 if d == e
//	+1 if d >  e
func (d Decimal) Cmp(e Decimal) int {
	return d.raw().Cmp(e.raw())
}

// String returns d in plain notation with exactly Scale() fractional digits
// (or none when the scale is not positive).
func (d Decimal) String() string {
	return d.raw().String()
}

// MarshalText implements encoding.TextMarshaler.
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Decimal) UnmarshalText(text []byte) (err error) {
	*d, err = Parse(string(text))

	return err
}
