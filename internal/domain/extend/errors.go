package extend

import (
	"errors"

	"github.com/GriffinCanCode/sfc-extends/internal/domain/sfc"
)

var (
	// ErrMissingBase is returned when an ancestor file cannot be read.
	ErrMissingBase = errors.New("base component not readable")
	// ErrMalformedAncestor is returned when an ancestor's source, or the
	// source produced by resolving it, cannot be parsed or merged.
	ErrMalformedAncestor = errors.New("malformed ancestor component")
	// ErrCircularExtends is returned when a file reappears in its own chain.
	ErrCircularExtends = errors.New("circular extends chain")
	// ErrMaxDepth is returned when a chain is longer than Options.MaxDepth.
	ErrMaxDepth = errors.New("extends chain too deep")
)

// Error kinds reported by Kind.
const (
	KindMalformedSource   = "malformed_source"
	KindMissingBase       = "missing_base"
	KindMalformedAncestor = "malformed_ancestor"
	KindCircularExtends   = "circular_extends"
	KindMaxDepth          = "max_depth"
	KindInternal          = "internal"
)

// Kind classifies err into a stable label for responses and metrics.
// Ancestor failures are checked before source failures since they wrap them.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrCircularExtends):
		return KindCircularExtends
	case errors.Is(err, ErrMaxDepth):
		return KindMaxDepth
	case errors.Is(err, ErrMissingBase):
		return KindMissingBase
	case errors.Is(err, ErrMalformedAncestor):
		return KindMalformedAncestor
	case errors.Is(err, sfc.ErrMalformedSource):
		return KindMalformedSource
	default:
		return KindInternal
	}
}
