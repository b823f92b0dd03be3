// Package obj parses the Wavefront OBJ geometry description format
// into an in-memory scene model.
//
// The parser is a single forward pass over the statement stream:
// references are resolved against the elements defined so far, so
// statements are never reordered. The first error aborts the parse;
// partial results are not returned. The package only stores control
// data, it never evaluates geometry; material libraries and other
// referenced files are recorded by name and never opened.
package obj

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Options configures a parse invocation.
type Options struct {
	// Locale is a BCP-47 tag selecting the decimal separator for
	// numeral tokens, e.g. "de" for comma-separated decimals. Empty
	// means "en" (a '.' separator). Locales whose separator is not
	// exactly one character are rejected.
	Locale string
}

// Parse reads OBJ text from r with default options.
func Parse(r io.Reader) (*Model, error) {
	return ParseWithOptions(r, Options{})
}

// ParseWithOptions reads OBJ text from r into a Model. Errors carry the
// 1-based input line number and wrap one of the package's sentinel
// errors.
func ParseWithOptions(r io.Reader, opts Options) (*Model, error) {
	num, err := newNumberParser(opts.Locale)
	if err != nil {
		return nil, err
	}

	statements, header, err := scanStatements(r)
	if err != nil {
		return nil, err
	}

	model := newModel()
	model.Comments = header

	p := newParser(model, num)
	for _, st := range statements {
		if err := p.dispatch(st); err != nil {
			return nil, fmt.Errorf("line %d: %w", st.Line, err)
		}
	}
	return model, nil
}

// ParseString parses OBJ text from a string.
func ParseString(s string) (*Model, error) {
	return Parse(strings.NewReader(s))
}

// ParseFile parses an OBJ file from disk.
func ParseFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening OBJ file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// ParseFileWithOptions parses an OBJ file from disk with options.
func ParseFileWithOptions(path string, opts Options) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening OBJ file: %w", err)
	}
	defer f.Close()
	return ParseWithOptions(f, opts)
}
