package demo

import (
	"io"

	"github.com/zeebo/errs"

	"github.com/calebcase/pitfalls/decimal"
)

// Error is the class for failures that end a demonstration early.
var Error = errs.Class("demo")

// Decimal prints the decimal demonstration to out.
func Decimal(out io.Writer) (err error) {
	defer Error.WrapP(&err)

	p := &printer{w: out}

	sections := []func(*printer) error{
		decimalCreation,
		decimalBasicOps,
		decimalDivision,
		decimalScaleAndRounding,
		decimalEquality,
	}

	for i, section := range sections {
		if i > 0 {
			p.println()
		}

		err = section(p)
		if err != nil {
			return err
		}
	}

	return p.err
}

func decimalCreation(p *printer) error {
	p.println("---- Creating decimals correctly ----")

	fromString, err := decimal.Parse("0.1")
	if err != nil {
		return err
	}

	viaFloat, err := decimal.FromFloat64(0.2)
	if err != nil {
		return err
	}

	x, y := 0.1, 0.2

	exact, err := decimal.FromFloat64(x + y)
	if err != nil {
		return err
	}

	p.printf("fromString     = %s\n", fromString)
	p.printf("viaFloat64     = %s\n", viaFloat)
	p.printf("float64 sum    = %s (0.1 + 0.2 computed in binary)\n", exact)
	p.printf("decimal sum    = %s\n", fromString.Add(viaFloat))

	return nil
}

func decimalBasicOps(p *printer) error {
	p.println("---- Basic operations (immutable) ----")

	a := decimal.MustParse("2.50")
	b := decimal.MustParse("1.25")

	p.printf("SUM         : %s\n", a.Add(b))
	p.printf("DIFFERENCE  : %s\n", a.Sub(b))
	p.printf("PRODUCT     : %s\n", a.Mul(b))
	p.printf("A = %s, B = %s\n", a, b)

	return nil
}

func decimalDivision(p *printer) error {
	p.println("---- Divisions ----")

	three := decimal.MustParse("3")

	_, err := decimal.One.Quo(three)
	switch {
	case err == nil:
		return Error.New("1 / 3 divided exactly")
	case decimal.NonTerminatingError.Has(err):
		p.printf("Exact divide failed: %v\n", err)
	default:
		return err
	}

	third2, err := decimal.One.QuoRound(three, 2, decimal.HalfUp)
	if err != nil {
		return err
	}

	third4, err := decimal.One.QuoRound(three, 4, decimal.HalfUp)
	if err != nil {
		return err
	}

	p.printf("1/3 (2 dp, %s): %s\n", decimal.HalfUp, third2)
	p.printf("1/3 (4 dp, %s): %s\n", decimal.HalfUp, third4)

	return nil
}

func decimalScaleAndRounding(p *printer) error {
	p.println("---- Setting the scale & RoundingMode ----")

	n := decimal.MustParse("2.355")

	p.printf("%-20s: %s\n", "Original", n)

	for _, mode := range []decimal.RoundingMode{
		decimal.HalfUp,
		decimal.Up,
		decimal.HalfDown,
		decimal.Down,
	} {
		r, err := n.SetScale(2, mode)
		if err != nil {
			return err
		}

		p.printf("%-20s: %s\n", "2 dp, "+mode.String(), r)
	}

	// Ties under banker's rounding go to the even neighbor.
	for _, tie := range []string{"2.345", "2.355"} {
		r, err := decimal.MustParse(tie).SetScale(2, decimal.HalfEven)
		if err != nil {
			return err
		}

		p.printf("%s → 2 dp, %s: %s\n", tie, decimal.HalfEven, r)
	}

	return nil
}

func decimalEquality(p *printer) error {
	p.println("---- Equality and Comparison ----")

	c := decimal.MustParse("2.50")
	d := decimal.MustParse("2.5")

	p.printf("c = %s = %v × 10^-%d\n", c, c.Unscaled(), c.Scale())
	p.printf("d = %s = %v × 10^-%d\n", d, d.Unscaled(), d.Scale())
	p.printf("c.Equal(d) ?        %t\n", c.Equal(d))
	p.printf("c.Cmp(d) == 0 ?     %t\n", c.Cmp(d) == 0)
	p.printf("Strip zeros equal?  %t\n", c.StripTrailingZeros().Equal(d.StripTrailingZeros()))

	return nil
}
