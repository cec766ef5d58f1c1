// Package fov computes field of view with recursive shadowcasting.
//
// Sightline bounds are kept as integer rationals and compared by
// cross-multiplication, so results are identical on every platform. Wall
// corners are beveled when both tiles forming the corner are clear, which
// lets light graze past pillars and keeps every wall of a convex room
// visible from anywhere inside it.
package fov

// OpacitySource reports whether a tile blocks light. It must accept
// coordinates outside the map and report them as opaque.
type OpacitySource interface {
	IsOpaque(x, y int) bool
}

// VisibilitySink receives every tile found visible. It must ignore
// coordinates outside the map.
type VisibilitySink interface {
	MarkVisible(x, y int)
}

// OpacityFunc adapts a plain function to OpacitySource.
type OpacityFunc func(x, y int) bool

// IsOpaque calls f(x, y).
func (f OpacityFunc) IsOpaque(x, y int) bool { return f(x, y) }

// SinkFunc adapts a plain function to VisibilitySink.
type SinkFunc func(x, y int)

// MarkVisible calls f(x, y).
func (f SinkFunc) MarkVisible(x, y int) { f(x, y) }

// Engine computes visible tiles over an opacity source. It keeps no state
// between calls, so one Engine may serve any number of queries.
type Engine struct {
	opacity OpacitySource
	metric  Metric
}

// New creates an Engine. A nil metric selects Euclidean.
func New(opacity OpacitySource, metric Metric) *Engine {
	if metric == nil {
		metric = Euclidean
	}
	return &Engine{opacity: opacity, metric: metric}
}

// Compute marks the origin and every tile visible from it within
// rangeLimit. A rangeLimit of zero or less marks only the origin.
// Tiles on octant boundaries may be reported more than once.
func (e *Engine) Compute(originX, originY, rangeLimit int, sink VisibilitySink) {
	sink.MarkVisible(originX, originY)
	if rangeLimit <= 0 {
		return
	}
	for octant := range octants {
		e.scanOctant(octant, originX, originY, rangeLimit, sink)
	}
}

// ComputeOctant runs the sweep for a single octant (0-7) without marking
// the origin. Octant 0 spans east to north-east on screen and each
// following octant turns a further 45 degrees counter-clockwise.
func (e *Engine) ComputeOctant(octant, originX, originY, rangeLimit int, sink VisibilitySink) {
	if octant < 0 || octant >= len(octants) || rangeLimit <= 0 {
		return
	}
	e.scanOctant(octant, originX, originY, rangeLimit, sink)
}

func (e *Engine) scanOctant(octant, originX, originY, rangeLimit int, sink VisibilitySink) {
	s := &octantScan{
		opacity: e.opacity,
		metric:  e.metric,
		sink:    sink,
		t:       octants[octant],
		ox:      originX,
		oy:      originY,
		limit:   rangeLimit,
	}
	s.run()
}
