package obj

import "fmt"

// resolveIndex converts a raw OBJ reference into an absolute 1-based
// index against a list of count elements. Positive references pass
// through unchanged. Negative references count backwards from the most
// recently defined element, so -1 resolves to count. Zero is never a
// valid reference. The resolved index must land inside [1, count];
// anything else is fatal to the parse.
func resolveIndex(raw, count int) (int, error) {
	if raw == 0 {
		return 0, fmt.Errorf("%w: an index must be specified, 0 is not a valid reference", ErrReference)
	}
	index := raw
	if raw < 0 {
		index = count + raw + 1
	}
	if index < 1 || index > count {
		return 0, fmt.Errorf("%w: reference %d resolves to %d, outside [1, %d]", ErrReference, raw, index, count)
	}
	return index, nil
}
