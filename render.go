package ecat

import (
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Renderer turns decoded text into the lines written to the output. It
// carries the squeeze and numbering state of a single file.
type Renderer struct {
	opts DisplayOptions

	blank bool
	line  uint64
	buf   []byte
}

func NewRenderer(opts DisplayOptions) *Renderer {
	return &Renderer{
		opts: opts,
	}
}

func (r *Renderer) Reset() {
	r.blank = false
	r.line = 0
	r.buf = r.buf[:0]
}

// Render splits text on line feeds. A trailing line feed does not start a new
// line and empty text renders nothing.
func (r *Renderer) Render(w io.Writer, text string) error {
	for len(text) > 0 {
		line, rest, _ := strings.Cut(text, "\n")
		if err := r.WriteLine(w, line); err != nil {
			return err
		}
		text = rest
	}
	return nil
}

func (r *Renderer) WriteLine(w io.Writer, line string) error {
	blank := line == ""
	if r.opts.Squeeze && blank && r.blank {
		return nil
	}
	r.blank = blank

	r.buf = r.buf[:0]
	if r.opts.numbered(blank) {
		r.line++
		r.buf = strconv.AppendUint(r.buf, r.line, 10)
		r.buf = append(r.buf, '\t')
	}
	for _, c := range line {
		r.buf = r.appendRune(r.buf, c)
	}
	if r.opts.ShowEnds {
		r.buf = append(r.buf, '$')
	}
	r.buf = append(r.buf, '\n')

	_, err := w.Write(r.buf)
	return err
}

func (r *Renderer) appendRune(buf []byte, c rune) []byte {
	switch {
	case r.opts.ShowTabs && c == '\t':
		return append(buf, '^', 'I')
	case r.opts.ShowNonPrinting && !unicode.IsPrint(c):
		return appendControl(buf, c)
	default:
		return utf8.AppendRune(buf, c)
	}
}

// appendControl writes codes 1 to 31 as '^' followed by 'A'+code-1, which
// leaves the characters after 'Z' for codes 27 to 31.
func appendControl(buf []byte, c rune) []byte {
	switch {
	case c == '\r':
		return append(buf, '^', 'M')
	case c == '\b':
		return append(buf, '^', 'H')
	case c >= 1 && c <= 31:
		return utf8.AppendRune(append(buf, '^'), 'A'+c-1)
	default:
		return utf8.AppendRune(buf, c)
	}
}
