package schema

// Secret wraps a sensitive string so it cannot leak through logging or
// serialisation by accident. Every textual representation is masked; the
// literal text is only reachable through Reveal, which widget value
// formatting calls explicitly.
type Secret string

const secretMask = "**********"

// Reveal returns the literal secret text.
func (s Secret) Reveal() string {
	return string(s)
}

// String implements fmt.Stringer with a fixed mask.
func (s Secret) String() string {
	if s == "" {
		return ""
	}
	return secretMask
}

// GoString keeps %#v output masked as well.
func (s Secret) GoString() string {
	return "schema.Secret(" + s.String() + ")"
}

// MarshalText masks the secret in any text-based encoding.
func (s Secret) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
