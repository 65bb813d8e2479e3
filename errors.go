package ecat

import (
	"errors"
	"fmt"
)

var (
	ErrArgument = errors.New("invalid argument")
	ErrOpen     = errors.New("fail to open")
	ErrRead     = errors.New("fail to read")
	ErrDecode   = errors.New("fail to decode")
	ErrWrite    = errors.New("fail to write")
)

type FileError struct {
	File string
	Kind error
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.File, e.Err)
}

func (e *FileError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func fileError(file string, kind, err error) error {
	return &FileError{
		File: file,
		Kind: kind,
		Err:  err,
	}
}
