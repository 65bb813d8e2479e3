package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/midbel/ecat"
)

const EnvFile = "ECAT_CONFIG"

type Defaults struct {
	Encoding        string `toml:"encoding"`
	Number          bool   `toml:"number"`
	NumberNonBlank  bool   `toml:"number-nonblank"`
	ShowEnds        bool   `toml:"show-ends"`
	ShowTabs        bool   `toml:"show-tabs"`
	ShowNonPrinting bool   `toml:"show-nonprinting"`
	Squeeze         bool   `toml:"squeeze-blank"`
}

func (d Defaults) Display() ecat.DisplayOptions {
	return ecat.DisplayOptions{
		NumberAll:       d.Number,
		NumberNonBlank:  d.NumberNonBlank,
		ShowEnds:        d.ShowEnds,
		ShowTabs:        d.ShowTabs,
		ShowNonPrinting: d.ShowNonPrinting,
		Squeeze:         d.Squeeze,
		Encoding:        d.Encoding,
	}
}

// Locate returns the file named by ECAT_CONFIG, else the per user file. The
// second value tells whether the file was asked for explicitly.
func Locate() (string, bool) {
	if file := os.Getenv(EnvFile); file != "" {
		return file, true
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(dir, "ecat", "config.toml"), false
}

// Load reads the defaults file. A missing per user file is not an error.
func Load() (Defaults, error) {
	file, explicit := Locate()
	if file == "" {
		return Defaults{}, nil
	}
	d, err := LoadFile(file)
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return Defaults{}, nil
	}
	return d, err
}

func LoadFile(file string) (Defaults, error) {
	var d Defaults
	meta, err := toml.DecodeFile(file, &d)
	if err != nil {
		return Defaults{}, fmt.Errorf("%s: %w", file, err)
	}
	if keys := meta.Undecoded(); len(keys) > 0 {
		list := make([]string, 0, len(keys))
		for _, k := range keys {
			list = append(list, k.String())
		}
		return Defaults{}, fmt.Errorf("%s: unknown option(s): %s", file, strings.Join(list, ", "))
	}
	return d, nil
}
