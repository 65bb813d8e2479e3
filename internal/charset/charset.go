package charset

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

const Default = "UTF-8"

var (
	ErrUnsupported = errors.New("unsupported encoding")
	ErrInvalid     = errors.New("invalid byte sequence")
)

type Error struct {
	Name string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// codepages is matched case-sensitively and never modified.
var codepages = map[string]encoding.Encoding{
	"UTF-8":      unicode.UTF8BOM,
	"GBK":        simplifiedchinese.GBK,
	"GB2312":     simplifiedchinese.GBK,
	"BIG5":       traditionalchinese.Big5,
	"Shift_JIS":  japanese.ShiftJIS,
	"EUC-KR":     korean.EUCKR,
	"ISO-8859-1": charmap.ISO8859_1,
}

// names reported by the detector or commonly given on the command line
// that neither index knows under that spelling.
var aliases = map[string]string{
	"ascii":    "us-ascii",
	"gb-18030": "gb18030",
}

var extras = map[string]encoding.Encoding{
	"utf-32":   utf32.UTF32(utf32.BigEndian, utf32.UseBOM),
	"utf-32be": utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM),
	"utf-32le": utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM),
}

func Known(name string) bool {
	_, ok := codepages[name]
	return ok
}

func Lookup(name string) (encoding.Encoding, error) {
	if e, ok := codepages[name]; ok {
		return e, nil
	}
	key := strings.ToLower(strings.TrimSpace(name))
	if a, ok := aliases[key]; ok {
		key = a
	}
	if e, ok := extras[key]; ok {
		return e, nil
	}
	if e, err := ianaindex.IANA.Encoding(key); err == nil && e != nil {
		return e, nil
	}
	if e, err := htmlindex.Get(key); err == nil && e != encoding.Replacement {
		return e, nil
	}
	return nil, &Error{
		Name: name,
		Err:  ErrUnsupported,
	}
}

func Decode(raw []byte, name string) (string, error) {
	if e, ok := codepages[name]; ok {
		return decodeNative(raw, name, e)
	}
	e, err := Lookup(name)
	if err != nil {
		return "", err
	}
	return decodeGeneric(raw, name, e)
}

func decodeNative(raw []byte, name string, e encoding.Encoding) (string, error) {
	buf, err := e.NewDecoder().Bytes(raw)
	if err != nil {
		return "", &Error{Name: name, Err: err}
	}
	return string(buf), nil
}

func decodeGeneric(raw []byte, name string, e encoding.Encoding) (string, error) {
	buf, _, err := transform.Bytes(e.NewDecoder(), raw)
	if err != nil {
		return "", &Error{Name: name, Err: err}
	}
	if !utf8.Valid(buf) {
		return "", &Error{Name: name, Err: ErrInvalid}
	}
	if bytes.ContainsRune(buf, utf8.RuneError) && !roundTrip(raw, buf, e) {
		return "", &Error{Name: name, Err: ErrInvalid}
	}
	return string(buf), nil
}

// roundTrip reports whether text encodes back to raw. A replacement
// character inserted by the decoder for a rejected sequence never does.
func roundTrip(raw, text []byte, e encoding.Encoding) bool {
	back, err := e.NewEncoder().Bytes(text)
	if err != nil {
		return false
	}
	if bytes.Equal(raw, back) {
		return true
	}
	for _, b := range boms {
		if bytes.Equal(bytes.TrimPrefix(raw, b), bytes.TrimPrefix(back, b)) {
			return true
		}
	}
	return false
}

var boms = [][]byte{
	{0xef, 0xbb, 0xbf},
	{0x00, 0x00, 0xfe, 0xff},
	{0xff, 0xfe, 0x00, 0x00},
	{0xfe, 0xff},
	{0xff, 0xfe},
}
