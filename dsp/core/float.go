package core

// Float constrains the numeric types these primitives operate on to the
// IEEE-754 binary floating-point types.
type Float interface {
	~float32 | ~float64
}

// Range is a simple min/max pair used by the range-based remap forms.
// Nothing enforces Min <= Max; an inverted range yields an inverted mapping.
type Range[F Float] struct {
	Min F
	Max F
}

// NewRange returns a Range with the given bounds.
func NewRange[F Float](min, max F) Range[F] {
	return Range[F]{Min: min, Max: max}
}

// Width returns Max - Min. Negative for inverted ranges.
func (r Range[F]) Width() F {
	return r.Max - r.Min
}
