package obj

import "errors"

// Parse errors. Statement handlers wrap these with keyword and token
// detail; callers discriminate with errors.Is. The first error aborts
// the whole parse, there is no skip-and-continue mode.
var (
	// ErrArity reports a statement with the wrong number of value
	// tokens, including repeated-group counts that do not divide evenly.
	ErrArity = errors.New("wrong statement arity")

	// ErrFormat reports an unrecognized sub-token such as a direction,
	// technique name, curve type or on/off flag.
	ErrFormat = errors.New("malformed token")

	// ErrNumericFormat reports a token that fails numeral parsing.
	ErrNumericFormat = errors.New("malformed numeral")

	// ErrReference reports an element reference that is zero or falls
	// outside the referenced list's current bounds.
	ErrReference = errors.New("invalid element reference")

	// ErrUnsupported reports a legacy statement superseded by the
	// free-form geometry statements.
	ErrUnsupported = errors.New("unsupported superseded statement")

	// ErrLocale reports a numeric locale whose decimal separator cannot
	// be used, or that cannot be resolved at all.
	ErrLocale = errors.New("unsupported numeric locale")
)
