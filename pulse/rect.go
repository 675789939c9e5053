package pulse

import (
	"fmt"

	"github.com/oliverbestmann/seed/glm"
	"golang.org/x/exp/constraints"
)

// same type set as the glm vectors
type numeric interface {
	constraints.Float | ~uint32 | ~int32
}

type Rectangle2f = Rectangle2[float32]

type Rectangle2[T numeric] struct {
	Min glm.Vec2[T]
	Max glm.Vec2[T]
}

func RectangleFromXYWH[T numeric](x, y, w, h T) Rectangle2[T] {
	return Rectangle2[T]{
		Min: glm.Vec2[T]{x, y},
		Max: glm.Vec2[T]{x + w, y + h},
	}
}

func RectangleFromPoints[T numeric](a, b glm.Vec2[T]) Rectangle2[T] {
	return Rectangle2[T]{
		Min: glm.Vec2[T]{
			min(a[0], b[0]),
			min(a[1], b[1]),
		},
		Max: glm.Vec2[T]{
			max(a[0], b[0]),
			max(a[1], b[1]),
		},
	}
}

// Intersect returns the overlap of both rectangles. The result
// is empty if they do not overlap.
func (r Rectangle2[T]) Intersect(other Rectangle2[T]) Rectangle2[T] {
	minX := max(r.Min[0], other.Min[0])
	minY := max(r.Min[1], other.Min[1])

	maxX := max(minX, min(r.Max[0], other.Max[0]))
	maxY := max(minY, min(r.Max[1], other.Max[1]))

	return Rectangle2[T]{
		Min: glm.Vec2[T]{minX, minY},
		Max: glm.Vec2[T]{maxX, maxY},
	}
}

func (r Rectangle2[T]) Contains(other Rectangle2[T]) bool {
	return other.Min[0] >= r.Min[0] && other.Max[0] <= r.Max[0] &&
		other.Min[1] >= r.Min[1] && other.Max[1] <= r.Max[1]
}

func (r Rectangle2[T]) Width() T {
	return r.Max[0] - r.Min[0]
}

func (r Rectangle2[T]) Height() T {
	return r.Max[1] - r.Min[1]
}

func (r Rectangle2[T]) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

func (r Rectangle2[T]) String() string {
	return fmt.Sprintf("Rect(%v, %v, %v, %v)", r.Min[0], r.Min[1], r.Width(), r.Height())
}
