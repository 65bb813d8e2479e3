package ecat

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/midbel/ecat/internal/charset"
	"github.com/midbel/ecat/internal/stdio"
)

const (
	Name    = "ecat"
	Version = "1.0"
)

type Cat struct {
	opts   DisplayOptions
	detect charset.Detector
	logger *slog.Logger

	stdout io.Writer
	stderr io.Writer

	out    *stdio.Writer
	errs   *stdio.Writer
	report *stdio.Reporter

	failures int
}

func New(options ...Option) (*Cat, error) {
	c := Cat{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, o := range options {
		if err := o(&c); err != nil {
			return nil, err
		}
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if c.detect == nil {
		c.detect = charset.NewDetector(c.logger)
	}
	c.out = stdio.Buffer(c.stdout)
	c.errs = stdio.Buffer(c.stderr)
	c.report = stdio.NewReporter(c.errs, Name)
	return &c, nil
}

// Run processes every file in order. A failing file is reported on stderr and
// does not stop the files after it. Diagnostics are flushed once the output of
// the failing file has been written.
func (c *Cat) Run(files []string) {
	for _, f := range files {
		if err := c.File(f); err != nil {
			c.failures++
			c.report.Report(err)
			c.errs.Flush()
		}
	}
}

func (c *Cat) Failures() int {
	return c.failures
}

func (c *Cat) File(file string) error {
	defer c.out.Flush()

	raw, err := readFile(file)
	if err != nil {
		return err
	}
	name := charset.Resolve(raw, c.opts.Encoding, c.detect)
	if c.opts.Encoding != "" {
		fmt.Fprintf(c.out, "using encoding: %s", name)
		fmt.Fprintln(c.out)
	}
	c.logger.Debug("decoding file", "file", file, "size", len(raw), "encoding", name, "native", charset.Known(name))

	text, err := charset.Decode(raw, name)
	if err != nil {
		return fileError(file, ErrDecode, err)
	}
	if err := NewRenderer(c.opts).Render(c.out, text); err != nil {
		return fileError(file, ErrWrite, err)
	}
	if err := c.out.Flush(); err != nil {
		return fileError(file, ErrWrite, err)
	}
	return nil
}

func readFile(file string) ([]byte, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, fileError(file, ErrOpen, unwrapPath(err))
	}
	defer r.Close()

	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fileError(file, ErrRead, unwrapPath(err))
	}
	return buf, nil
}

func unwrapPath(err error) error {
	var perr *fs.PathError
	if errors.As(err, &perr) {
		return perr.Err
	}
	return err
}
