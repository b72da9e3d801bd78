package ignore

import "errors"

var (
	// ErrNoData reports that the catalog (or a filtered part of it) could not be fetched.
	ErrNoData = errors.New("no catalog data")
	// ErrInvalidPath reports that fresh detection was requested without an output path.
	ErrInvalidPath = errors.New("invalid argument: output path is required to detect project signals")
)
