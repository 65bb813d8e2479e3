package stdio

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/midbel/rw"
	"golang.org/x/term"
)

type Writer struct {
	*bufio.Writer
	inner io.Writer
}

func Buffer(w io.Writer) *Writer {
	return &Writer{
		Writer: bufio.NewWriter(w),
		inner:  w,
	}
}

func (w *Writer) Unwrap() io.Writer {
	return w.inner
}

// File walks the chain of wrapped writers down to the underlying file, if any.
func File(w io.Writer) (*os.File, bool) {
	for w != nil {
		if f, ok := w.(*os.File); ok {
			return f, true
		}
		u, ok := w.(rw.UnwrapWriter)
		if !ok {
			break
		}
		next, ok := u.Unwrap().(io.Writer)
		if !ok {
			break
		}
		w = next
	}
	return nil, false
}

func IsTerminal(w io.Writer) bool {
	f, ok := File(w)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

type Reporter struct {
	w      io.Writer
	prefix string
	color  *color.Color
}

func NewReporter(w io.Writer, prefix string) *Reporter {
	c := color.New(color.FgRed)
	if IsTerminal(w) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return &Reporter{
		w:      w,
		prefix: prefix,
		color:  c,
	}
}

func (r *Reporter) Report(err error) {
	if err == nil {
		return
	}
	r.Printf("%s", err)
}

func (r *Reporter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if r.prefix != "" {
		msg = r.prefix + ": " + msg
	}
	fmt.Fprintln(r.w, r.color.Sprint(msg))
}
