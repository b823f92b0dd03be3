package obj

import (
	"errors"
	"testing"
)

func TestNewNumberParser_Locales(t *testing.T) {
	tests := []struct {
		locale string
		sep    rune
	}{
		{"", '.'},
		{"en", '.'},
		{"en-US", '.'},
		{"de", ','},
		{"fr", ','},
	}

	for _, tc := range tests {
		p, err := newNumberParser(tc.locale)
		if err != nil {
			t.Fatalf("newNumberParser(%q) failed: %v", tc.locale, err)
		}
		if p.separator != tc.sep {
			t.Errorf("locale %q: separator = %q, want %q", tc.locale, p.separator, tc.sep)
		}
	}
}

func TestNewNumberParser_BadTag(t *testing.T) {
	_, err := newNumberParser("no-such-locale-!!")
	if err == nil {
		t.Fatal("expected error for unparseable locale tag")
	}
	if !errors.Is(err, ErrLocale) {
		t.Errorf("error = %v, want ErrLocale", err)
	}
}

func TestNumberParser_Float(t *testing.T) {
	p, err := newNumberParser("en")
	if err != nil {
		t.Fatalf("newNumberParser failed: %v", err)
	}

	tests := []struct {
		token string
		want  float64
		ok    bool
	}{
		{"1.5", 1.5, true},
		{"-0.25", -0.25, true},
		{"+3", 3, true},
		{"1e3", 1000, true},
		{"2.5e-1", 0.25, true},
		{"abc", 0, false},
		{"1.5x", 0, false},
		{"", 0, false},
		{"1,5", 0, false},
	}

	for _, tc := range tests {
		got, err := p.float(tc.token)
		if tc.ok {
			if err != nil {
				t.Errorf("float(%q) failed: %v", tc.token, err)
			} else if got != tc.want {
				t.Errorf("float(%q) = %g, want %g", tc.token, got, tc.want)
			}
			continue
		}
		if err == nil {
			t.Errorf("float(%q) = %g, expected error", tc.token, got)
		} else if !errors.Is(err, ErrNumericFormat) {
			t.Errorf("float(%q) error = %v, want ErrNumericFormat", tc.token, err)
		}
	}
}

func TestNumberParser_FloatGermanLocale(t *testing.T) {
	p, err := newNumberParser("de")
	if err != nil {
		t.Fatalf("newNumberParser failed: %v", err)
	}

	got, err := p.float("1,5")
	if err != nil {
		t.Fatalf("float(\"1,5\") failed: %v", err)
	}
	if got != 1.5 {
		t.Errorf("float(\"1,5\") = %g, want 1.5", got)
	}

	// A point is not an alternative spelling under a comma locale.
	if _, err := p.float("1.5"); !errors.Is(err, ErrNumericFormat) {
		t.Errorf("float(\"1.5\") error = %v, want ErrNumericFormat", err)
	}
}

func TestNumberParser_Integer(t *testing.T) {
	p, err := newNumberParser("en")
	if err != nil {
		t.Fatalf("newNumberParser failed: %v", err)
	}

	tests := []struct {
		token string
		want  int
		ok    bool
	}{
		{"42", 42, true},
		{"-7", -7, true},
		{"0", 0, true},
		{"1.5", 0, false},
		{"1e3", 0, false},
		{"0x10", 0, false},
		{"12a", 0, false},
		{"", 0, false},
	}

	for _, tc := range tests {
		got, err := p.integer(tc.token)
		if tc.ok {
			if err != nil {
				t.Errorf("integer(%q) failed: %v", tc.token, err)
			} else if got != tc.want {
				t.Errorf("integer(%q) = %d, want %d", tc.token, got, tc.want)
			}
			continue
		}
		if err == nil {
			t.Errorf("integer(%q) = %d, expected error", tc.token, got)
		} else if !errors.Is(err, ErrNumericFormat) {
			t.Errorf("integer(%q) error = %v, want ErrNumericFormat", tc.token, err)
		}
	}
}
