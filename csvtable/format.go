// Package csvtable writes data tables as CSV
// with configurable delimiter, line endings, quoting,
// column padding and character encoding.
package csvtable

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Format describes the encoding and structural format of a CSV file.
//
// Example:
//
//	format := &Format{
//	    Encoding:  "ISO 8859-1",
//	    Separator: ";",
//	    Newline:   "\r\n",
//	}
type Format struct {
	// Encoding of the written bytes,
	// any name supported by github.com/domonda/go-types/charset.
	Encoding string `json:"encoding" yaml:"encoding"`

	// Separator is the field delimiter character.
	Separator string `json:"separator" yaml:"separator"`

	// Newline is one of "\n", "\r\n", or "\n\r".
	Newline string `json:"newline" yaml:"newline"`
}

// NewFormat returns a UTF-8 Format with separator and "\r\n" line endings.
func NewFormat(separator string) *Format {
	return &Format{
		Encoding:  "UTF-8",
		Separator: separator,
		Newline:   "\r\n",
	}
}

// Validate checks if the Format configuration is valid.
// It can be safely called on a nil receiver.
func (f *Format) Validate() error {
	switch {
	case f == nil:
		return errors.New("<nil> csvtable.Format")
	case f.Encoding == "":
		return errors.New("missing csvtable.Format.Encoding")
	case f.Separator == "":
		return errors.New("missing csvtable.Format.Separator")
	case utf8.RuneCountInString(f.Separator) > 1:
		return fmt.Errorf("invalid csvtable.Format.Separator: %q", f.Separator)
	case f.Newline == "":
		return errors.New("missing csvtable.Format.Newline")
	case f.Newline != "\n" && f.Newline != "\n\r" && f.Newline != "\r\n":
		return fmt.Errorf("invalid csvtable.Format.Newline: %q", f.Newline)
	}
	return nil
}

// separatorRune returns the first rune of the separator string.
func (f *Format) separatorRune() rune {
	r, _ := utf8.DecodeRuneInString(f.Separator)
	return r
}
