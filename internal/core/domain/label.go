package domain

import "unique"

// Label is a build target label such as "//src/java/foo:foo". Labels repeat
// heavily across build info records (every dependency edge names one), so the
// value is interned via unique.Handle to keep aggregated maps compact. The
// text is kept verbatim; label syntax is never validated or normalized here.
type Label struct {
	h unique.Handle[string]
}

// NewLabel interns s and returns it as a Label.
func NewLabel(s string) Label {
	return Label{
		h: unique.Make(s),
	}
}

// String returns the underlying label text.
func (l Label) String() string {
	var zero unique.Handle[string]
	if l.h == zero {
		return ""
	}
	return l.h.Value()
}

// MarshalText implements encoding.TextMarshaler.
// It returns the bytes of the underlying label text.
func (l Label) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// It creates a new handle from the provided text.
func (l *Label) UnmarshalText(text []byte) error {
	l.h = unique.Make(string(text))
	return nil
}
