// Package notes reads the first line of a notes file.
package notes

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/zeebo/errs"

	"github.com/calebcase/pitfalls"
)

// Error is the class for read failures other than a missing file.
var Error = errs.Class("notes")

// Empty is returned in place of a first line when the input has none.
const Empty = "(EMPTY FILE)"

// FirstLine returns the first line of r without its line ending, or Empty.
func FirstLine(r io.Reader) (line string, err error) {
	sc := bufio.NewScanner(r)
	if sc.Scan() {
		return sc.Text(), nil
	}

	err = sc.Err()
	if err != nil {
		return "", Error.Wrap(err)
	}

	return Empty, nil
}

// ReadFirstLine opens path and returns its first line. A missing file is a
// pitfalls.ResourceNotFoundError. The file is closed on every return path.
func ReadFirstLine(path string) (line string, err error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", pitfalls.ResourceNotFoundError.Wrap(err)
		}

		return "", Error.Wrap(err)
	}
	defer func() {
		cerr := f.Close()
		if err == nil && cerr != nil {
			err = Error.Wrap(cerr)
		}
	}()

	return FirstLine(f)
}
