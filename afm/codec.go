package afm

import "github.com/roach88/afmkit/internal/union"

var (
	// ErrUnknownVariant is returned when a union value carries none of its discriminator keys.
	ErrUnknownVariant = union.ErrUnknownVariant

	// ErrAmbiguousVariant is returned when a union value carries more than one discriminator key.
	ErrAmbiguousVariant = union.ErrAmbiguousVariant
)
