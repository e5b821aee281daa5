package dirfold

import "errors"

// ErrTargetNotFound is returned when a string target cannot be resolved to an
// existing file or directory, or when the target has an unsupported shape.
var ErrTargetNotFound = errors.New("aggregation target not found")

// ErrUnitLoad wraps any failure from the unit loader. The whole aggregation
// call fails; no partial mapping is returned.
var ErrUnitLoad = errors.New("unit load failed")
