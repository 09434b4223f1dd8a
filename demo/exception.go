package demo

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/calebcase/pitfalls"
	"github.com/calebcase/pitfalls/config"
	"github.com/calebcase/pitfalls/integer"
	"github.com/calebcase/pitfalls/notes"
	"github.com/calebcase/pitfalls/registration"
)

// Reachable is the final line of the exception demonstration.
const Reachable = "This line is reachable even if errors happened above."

// Exception prints the exception demonstration. Handled failures go to
// errOut, everything else to out.
func Exception(out, errOut io.Writer, cfg config.Config) (err error) {
	defer Error.WrapP(&err)

	p := &printer{w: out}
	e := &printer{w: errOut}

	checkedHandleInPlace(p, e, cfg.NotesFile)
	checkedPropagateFromHelper(p, e, cfg.NotesFile)
	unchecked(p, e)
	customError(p, e, cfg.Policy())
	uncheckedPolicies(p, e, cfg.DefaultQuotient)
	duplicateName(p, e)

	p.println(Reachable)

	if p.err != nil {
		return p.err
	}

	return e.err
}

// checkedHandleInPlace opens the file itself and deals with a missing file
// right at the call.
func checkedHandleInPlace(p, e *printer, path string) {
	p.println()
	p.println("[Checked] Handle in place:")

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			e.printf("Couldn't open %s: %v\n", path, err)
			return
		}

		e.printf("Couldn't read %s: %v\n", path, err)
		return
	}
	defer f.Close()

	line, err := notes.FirstLine(f)
	if err != nil {
		e.printf("Couldn't read %s: %v\n", path, err)
		return
	}

	p.printf("First line: %s\n", line)
}

// checkedPropagateFromHelper lets notes.ReadFirstLine return the failure and
// decides here what it means.
func checkedPropagateFromHelper(p, e *printer, path string) {
	p.println()
	p.println("[Checked] Propagate from helper:")

	line, err := notes.ReadFirstLine(path)
	switch {
	case pitfalls.ResourceNotFoundError.Has(err):
		e.printf("File missing (from helper): %v\n", err)
	case err != nil:
		e.printf("Couldn't read (from helper): %v\n", err)
	default:
		p.printf("First line: %s\n", line)
	}
}

func unchecked(p, e *printer) {
	p.println()
	p.println("[Unchecked] Examples:")

	// A nil pointer is checked before it is dereferenced.
	var name *string
	if name != nil {
		p.println(strings.ToUpper(*name))
	} else {
		p.println("Name is nil (avoided nil pointer dereference by checking).")
	}

	p.printf("MustDivide(10, 2) = %d\n", integer.MustDivide(10, 2))

	var q int
	err := integer.Recover(func() {
		q = integer.MustDivide(10, 0)
	})
	if err != nil {
		e.printf("Invalid divide: %v\n", err)
	} else {
		p.printf("MustDivide(10, 0) = %d\n", q)
	}
}

func customError(p, e *printer, policy registration.Policy) {
	p.println()
	p.println("[Custom] Age validation:")

	for _, age := range []int{17, 20} {
		err := policy.ValidateAge(age)
		if err != nil {
			e.printf("Registration failed (age %d): %v\n", age, err)
			continue
		}

		p.printf("Welcome! You can enter the application (age %d).\n", age)
	}
}

func uncheckedPolicies(p, e *printer, def int) {
	p.println()
	p.println("[Unchecked] Call-site policies:")

	var q int

	// 1) No validation: the runtime panics.
	err := integer.Recover(func() {
		q = integer.Divide(1, 0)
	})
	if err != nil {
		e.printf("[raw] Unchecked failure caught: %v\n", err)
	} else {
		p.printf("[raw] 1 / 0 = %d\n", q)
	}

	// 2) Validate first and panic with a descriptive error.
	err = integer.Recover(func() {
		q = integer.MustDivide(1, 0)
	})
	if err != nil {
		e.printf("[throw] Bad input: %v\n", err)
	} else {
		p.printf("[throw] 1 / 0 = %d\n", q)
	}

	// 3) Validate first and fall back to the documented default.
	p.printf("[default] 1 / 0 (default %d) = %d\n", def, integer.DivideOrDefault(1, 0, def))
}

func duplicateName(p, e *printer) {
	p.println()
	p.println("[Duplicate] Name uniqueness:")

	r := registration.NewRegistry("Slava")

	err := r.SetName("Slava")
	if err != nil {
		e.printf("%v\n", err)
		return
	}

	p.println("Name set successfully.")
}
