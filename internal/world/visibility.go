package world

import (
	"context"
	"slices"

	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/shadowdelve/internal/fov"
	"github.com/samdwyer/shadowdelve/internal/telemetry"
)

// gridSink marks tiles on the grid and collects the in-bounds set.
type gridSink struct {
	grid *Grid
	seen mapset.Set[Point]
}

func (s gridSink) MarkVisible(x, y int) {
	if !s.grid.InBounds(x, y) {
		return
	}
	s.grid.MarkVisible(x, y)
	s.seen.Put(Point{x, y})
}

// ComputeVisibility recomputes the currently visible tiles of g from
// origin out to rangeLimit. Visible flags from the previous query are
// cleared first and seen flags accumulate. The visible points are
// returned in row order.
func ComputeVisibility(ctx context.Context, g *Grid, origin Point, rangeLimit int) []Point {
	_, span := telemetry.Tracer("fov").Start(ctx, "fov.compute")
	defer span.End()

	g.ClearVisible()

	sink := gridSink{grid: g, seen: mapset.New[Point]()}
	fov.New(g, nil).Compute(origin.X, origin.Y, rangeLimit, sink)

	visible := make([]Point, 0, sink.seen.Size())
	sink.seen.Each(func(p Point) {
		visible = append(visible, p)
	})
	slices.SortFunc(visible, comparePoints)

	span.SetAttributes(
		attribute.Int("fov.origin_x", origin.X),
		attribute.Int("fov.origin_y", origin.Y),
		attribute.Int("fov.range", rangeLimit),
		attribute.Int("fov.visible_count", len(visible)),
	)
	return visible
}

func comparePoints(a, b Point) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}
