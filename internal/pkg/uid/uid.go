package uid

// StringID generates opaque string identifiers (correlation IDs).
type StringID interface {
	Generate() string
}

// NumberID generates int64 identifiers suitable for primary keys.
type NumberID interface {
	Generate() int64
}
