package obj

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// numberParser parses numeral tokens using a locale-specific decimal
// separator. The separator is fixed at construction; every malformed
// token fails with ErrNumericFormat naming the token, nothing is ever
// silently coerced.
type numberParser struct {
	separator rune
}

// newNumberParser resolves a BCP-47 locale tag to its decimal
// separator. An empty tag means "en". Construction fails when the tag
// cannot be parsed or its separator is not exactly one character.
func newNumberParser(locale string) (*numberParser, error) {
	if locale == "" {
		locale = "en"
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrLocale, locale, err)
	}
	sep, err := decimalSeparator(tag)
	if err != nil {
		return nil, err
	}
	return &numberParser{separator: sep}, nil
}

// decimalSeparator extracts a tag's decimal separator by formatting a
// known fraction and stripping the digit runes. CLDR number symbols are
// not exposed directly by x/text, so the formatted sample is the
// portable way to get at them.
func decimalSeparator(tag language.Tag) (rune, error) {
	sample := message.NewPrinter(tag).Sprintf("%.1f", 3.5)

	var sep strings.Builder
	for _, r := range sample {
		if !unicode.IsDigit(r) {
			sep.WriteRune(r)
		}
	}
	if utf8.RuneCountInString(sep.String()) != 1 {
		return 0, fmt.Errorf("%w: decimal separator %q is not a single character", ErrLocale, sep.String())
	}
	r, _ := utf8.DecodeRuneInString(sep.String())
	return r, nil
}

// float parses a floating point token. When the configured separator is
// not '.', the token must use the locale separator; a '.' is then a
// format error rather than an alternative spelling.
func (p *numberParser) float(token string) (float64, error) {
	s := token
	if p.separator != '.' {
		if strings.ContainsRune(s, '.') {
			return 0, fmt.Errorf("%w: %q does not use the %q decimal separator", ErrNumericFormat, token, string(p.separator))
		}
		s = strings.ReplaceAll(s, string(p.separator), ".")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a floating point numeral", ErrNumericFormat, token)
	}
	return v, nil
}

// integer parses a strict base-10 integer token.
func (p *numberParser) integer(token string) (int, error) {
	v, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a base-10 integer", ErrNumericFormat, token)
	}
	return v, nil
}
