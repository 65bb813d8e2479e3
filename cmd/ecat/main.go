package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/midbel/ecat"
	"github.com/midbel/ecat/internal/charset"
	"github.com/midbel/ecat/internal/config"
	"github.com/midbel/ecat/internal/stdio"
)

var (
	errHelp    = errors.New("help requested")
	errVersion = errors.New("version requested")
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type settings struct {
	display ecat.DisplayOptions
	debug   bool
	files   []string
}

func run(args []string, stdout, stderr io.Writer) int {
	errs := stdio.Buffer(stderr)
	defer errs.Flush()

	var (
		report    = stdio.NewReporter(errs, ecat.Name)
		def, cerr = config.Load()
		set, cfg  = flagSet(def.Display())
	)
	err := parse(set, args)
	switch {
	case errors.Is(err, errHelp) || errors.Is(err, pflag.ErrHelp):
		help(stdout, set)
		return 0
	case errors.Is(err, errVersion):
		fmt.Fprintf(stdout, "%s version %s", ecat.Name, ecat.Version)
		fmt.Fprintln(stdout)
		return 0
	case err != nil:
		report.Report(fmt.Errorf("%w: %s", ecat.ErrArgument, err))
		help(stdout, set)
		return 1
	case cerr != nil:
		report.Report(fmt.Errorf("%w: %s", ecat.ErrArgument, cerr))
		return 1
	}
	for _, a := range set.Args() {
		if a == "-" {
			continue
		}
		cfg.files = append(cfg.files, a)
	}
	if len(cfg.files) == 0 {
		report.Report(fmt.Errorf("%w: no input files", ecat.ErrArgument))
		help(stdout, set)
		return 1
	}

	logger := newLogger(stderr, cfg.debug)
	cat, err := ecat.New(
		ecat.WithDisplay(cfg.display),
		ecat.WithStdout(stdout),
		ecat.WithStderr(stderr),
		ecat.WithLogger(logger),
		ecat.WithDetector(charset.NewDetector(logger)),
	)
	if err != nil {
		report.Report(err)
		return 1
	}
	cat.Run(cfg.files)
	logger.Debug("done", "files", len(cfg.files), "failures", cat.Failures())
	return 0
}

func flagSet(def ecat.DisplayOptions) (*pflag.FlagSet, *settings) {
	var (
		set = pflag.NewFlagSet(ecat.Name, pflag.ContinueOnError)
		cfg settings
	)
	set.SetOutput(io.Discard)
	set.Usage = func() {}
	set.SortFlags = false

	set.StringVar(&cfg.display.Encoding, "encoding", def.Encoding, "use the given encoding instead of detecting it")
	set.BoolVarP(&cfg.display.NumberAll, "number", "n", def.NumberAll, "number all output lines")
	set.BoolVarP(&cfg.display.NumberNonBlank, "number-nonblank", "b", def.NumberNonBlank, "number nonempty output lines")
	set.BoolVarP(&cfg.display.ShowEnds, "show-ends", "E", def.ShowEnds, "display $ at end of each line")
	set.BoolVarP(&cfg.display.ShowTabs, "show-tabs", "T", def.ShowTabs, "display TAB characters as ^I")
	set.BoolVarP(&cfg.display.ShowNonPrinting, "show-nonprinting", "v", def.ShowNonPrinting, "use ^ notation for control characters")
	set.BoolVarP(&cfg.display.Squeeze, "squeeze-blank", "s", def.Squeeze, "suppress repeated empty output lines")
	set.BoolVar(&cfg.debug, "debug", false, "trace encoding decisions on stderr")
	set.Bool("help", false, "display this help and exit")
	set.Bool("version", false, "output version information and exit")
	return set, &cfg
}

// parse stops at the first help or version flag, whatever comes after it.
func parse(set *pflag.FlagSet, args []string) error {
	return set.ParseAll(args, func(f *pflag.Flag, value string) error {
		switch f.Name {
		case "help":
			return errHelp
		case "version":
			return errVersion
		default:
			return set.Set(f.Name, value)
		}
	})
}

func help(w io.Writer, set *pflag.FlagSet) {
	fmt.Fprintf(w, "usage: %s [options] file...", ecat.Name)
	fmt.Fprintln(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "options:")
	fmt.Fprint(w, set.FlagUsages())
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	if !debug {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
