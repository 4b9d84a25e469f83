package shape

import "errors"

// ErrEmptyPath is returned by Build when no path supplied to it
// contains any control points, so a convex hull and bounding box
// cannot be computed.
var ErrEmptyPath = errors.New("vecpath: convex hull requested on empty point set")
