package ecat

import (
	"io"
	"log/slog"

	"github.com/midbel/ecat/internal/charset"
)

type DisplayOptions struct {
	NumberAll       bool
	NumberNonBlank  bool
	ShowEnds        bool
	ShowTabs        bool
	ShowNonPrinting bool
	Squeeze         bool

	Encoding string
}

func (o DisplayOptions) numbered(blank bool) bool {
	if !o.NumberAll && !o.NumberNonBlank {
		return false
	}
	return !blank || o.NumberAll
}

type Option func(*Cat) error

func WithDisplay(opts DisplayOptions) Option {
	return func(c *Cat) error {
		c.opts = opts
		return nil
	}
}

func WithEncoding(name string) Option {
	return func(c *Cat) error {
		c.opts.Encoding = name
		return nil
	}
}

func WithDetector(d charset.Detector) Option {
	return func(c *Cat) error {
		c.detect = d
		return nil
	}
}

func WithStdout(w io.Writer) Option {
	return func(c *Cat) error {
		c.stdout = w
		return nil
	}
}

func WithStderr(w io.Writer) Option {
	return func(c *Cat) error {
		c.stderr = w
		return nil
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Cat) error {
		c.logger = logger
		return nil
	}
}
