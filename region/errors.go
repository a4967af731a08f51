package region

import "errors"

var (
	// ErrEmptyAxis indicates a k-axis without samples.
	ErrEmptyAxis = errors.New("region: k-axis must have at least one sample")
	// ErrLength indicates a curve whose sample count differs from the k-axis.
	ErrLength = errors.New("region: curve length does not match k-axis")
	// ErrOddColumns indicates a continuum table which cannot be split into
	// (min, max) column pairs.
	ErrOddColumns = errors.New("region: continuum table needs an even number of columns")
	// ErrRagged indicates table rows of differing lengths.
	ErrRagged = errors.New("region: all table rows must have the same length")
)
