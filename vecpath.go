package vecpath

import (
	"log/slog"

	"github.com/gogpu/vecpath/curve"
	"github.com/gogpu/vecpath/internal/diag"
	"github.com/gogpu/vecpath/path"
	"github.com/gogpu/vecpath/shape"
)

// Re-exported sentinel errors. ErrDegenerateArc is never returned by
// BuildShape itself — the path builders recover from degenerate arc
// input silently, only logging it — it is exported so callers can
// recognize the condition if they inspect logs or build their own arc
// validation on top of this package.
var (
	ErrDegenerateArc   = path.ErrDegenerateArc
	ErrNumericOverflow = curve.ErrNumericOverflow
	ErrEmptyPath       = shape.ErrEmptyPath
)

// Shape is the assembled tessellation output, ready for GPU upload.
type Shape = shape.Shape

// Option configures BuildShape.
type Option = shape.Option

// WithEpsilon overrides the tie-break tolerance used by convex-hull
// construction (default 1e-6). Tessellation uses its own fixed
// tolerance and is not affected.
func WithEpsilon(eps float32) Option {
	return shape.WithEpsilon(eps)
}

// BuildShape tessellates one or more paths into a Shape: five Loop-Blinn
// vertex streams, a convex-hull triangle fan, a full-screen cover quad,
// and the bounding box of every control point submitted.
func BuildShape(paths []*path.Path, opts ...Option) (*Shape, error) {
	return shape.Build(paths, opts...)
}

// SetLogger installs l as the logger used by every vecpath sub-package.
// Pass nil to restore the silent default. Safe for concurrent use.
func SetLogger(l *slog.Logger) {
	diag.SetLogger(l)
}

// Logger returns the currently installed logger.
func Logger() *slog.Logger {
	return diag.Logger()
}
