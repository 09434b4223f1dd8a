package demo

import (
	"fmt"
	"io"
)

// printer writes formatted lines and keeps the first write error so the
// demonstrations can print without checking every call.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}

	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) println(args ...interface{}) {
	if p.err != nil {
		return
	}

	_, p.err = fmt.Fprintln(p.w, args...)
}
