package place

import "github.com/pkg/errors"

// errEmptyScale is returned when a computed scale factor would produce a
// zero-area destination frame.
var errEmptyScale = errors.New("place: scaled subtitle dimensions are empty")
