package path

import "errors"

// ErrDegenerateArc documents the condition PushEllipticalArc recovers
// from silently (a zero radius, or coincident endpoints). It is never
// returned by any function in this package — the builder logs and
// substitutes a line for a zero radius, or drops the segment for
// coincident endpoints — but is exported so callers can recognize the
// condition by name when inspecting logs.
var ErrDegenerateArc = errors.New("vecpath: arc radii collinear, no real solution")
