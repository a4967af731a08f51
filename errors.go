package bandplot

import "errors"

var (
	// ErrShape indicates data whose dimensions do not fit the subplot.
	ErrShape = errors.New("bandplot: malformed data")
	// ErrNoBands indicates an annotation added before any bands were plotted.
	ErrNoBands = errors.New("bandplot: no bands plotted in this subplot")
	// ErrNoKVectors indicates a light cone requested without k-vectors.
	ErrNoKVectors = errors.New("bandplot: no k-vectors given with the last bands")
	// ErrXAxisLocked indicates a request to change the x-axis placement of
	// a subplot after bands were plotted.
	ErrXAxisLocked = errors.New("bandplot: x-axis placement is fixed by the first band plot")
	// ErrTicks indicates tick positions which cannot be moved to the
	// Euclidean k-axis.
	ErrTicks = errors.New("bandplot: cannot correct x-axis with non-integer tick positions")
)
