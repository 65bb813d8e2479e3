package charset

import (
	"io"
	"log/slog"

	"github.com/saintfish/chardet"
)

type Detector interface {
	Detect(raw []byte) (string, error)
}

type DetectorFunc func([]byte) (string, error)

func (f DetectorFunc) Detect(raw []byte) (string, error) {
	return f(raw)
}

type textDetector struct {
	*chardet.Detector
	logger *slog.Logger
}

func NewDetector(logger *slog.Logger) Detector {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return textDetector{
		Detector: chardet.NewTextDetector(),
		logger:   logger,
	}
}

func (d textDetector) Detect(raw []byte) (string, error) {
	res, err := d.DetectBest(raw)
	if err != nil {
		return "", err
	}
	d.logger.Debug("charset detected", "charset", res.Charset, "language", res.Language, "confidence", res.Confidence)
	return res.Charset, nil
}

// Resolve returns explicit untouched when it is set. A failed, empty or
// unusable guess from d falls back to Default.
func Resolve(raw []byte, explicit string, d Detector) string {
	if explicit != "" {
		return explicit
	}
	if d == nil {
		return Default
	}
	name, err := d.Detect(raw)
	if err != nil || name == "" {
		return Default
	}
	if _, err := Lookup(name); err != nil {
		return Default
	}
	return name
}
