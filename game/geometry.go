// File: game/geometry.go
package game

import (
	"math"

	"github.com/gopong/gopong/utils"
)

// Point is an integer pixel coordinate on the board.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// PointSet is a deduplicated collection of sampled perimeter points.
type PointSet map[Point]struct{}

// Add inserts p into the set.
func (s PointSet) Add(p Point) { s[p] = struct{}{} }

// Contains reports whether p is in the set.
func (s PointSet) Contains(p Point) bool {
	_, ok := s[p]
	return ok
}

// Intersects reports whether the two sets share at least one point.
// Iterates the smaller set.
func (s PointSet) Intersects(other PointSet) bool {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	for p := range small {
		if large.Contains(p) {
			return true
		}
	}
	return false
}

// Union folds other into s and returns s.
func (s PointSet) Union(other PointSet) PointSet {
	for p := range other {
		s.Add(p)
	}
	return s
}

// CirclePoints samples samples+1 equally spaced angles from startAngle to
// endAngle inclusive and collects the truncated integer points on the arc.
// Distinct angles may truncate to the same pixel; the set absorbs that.
func CirclePoints(center Point, radius, samples int, startAngle, endAngle float64) PointSet {
	points := make(PointSet, samples+1)
	for i := 0; i <= samples; i++ {
		theta := startAngle + (endAngle-startAngle)*float64(i)/float64(samples)
		// Truncate the summed coordinate, not the offset: the collision
		// boundary depends on it.
		points.Add(Point{
			X: int(float64(center.X) + float64(radius)*math.Cos(theta)),
			Y: int(float64(center.Y) + float64(radius)*math.Sin(theta)),
		})
	}
	return points
}

// FullCirclePoints samples a complete circle.
func FullCirclePoints(center Point, radius, samples int) PointSet {
	return CirclePoints(center, radius, samples, 0, 2*math.Pi)
}

// RectRegions splits a rounded rectangle's perimeter into the four point
// sets the collision detector tests independently. Top and Bottom include
// their adjacent corner arcs and may share the edge endpoints with the side
// sets; the detector's check order resolves the overlap.
type RectRegions struct {
	Right  PointSet
	Left   PointSet
	Top    PointSet
	Bottom PointSet
}

// RoundedRectPoints samples the perimeter of a rounded rectangle centered at
// center. The corner radius is clamped to half of the width and height.
// Straight edges are sampled at integer-pixel granularity; each corner arc
// reuses the circle sampler over a quarter-circle range with arcSamples
// points.
func RoundedRectPoints(center Point, width, height, cornerRadius, arcSamples int) RectRegions {
	radius := utils.MinInt(cornerRadius, utils.MinInt(width/2, height/2))

	left := center.X - width/2
	right := center.X + width/2
	top := center.Y - height/2
	bottom := center.Y + height/2

	topLeft := Point{left + radius, top + radius}
	topRight := Point{right - radius, top + radius}
	bottomRight := Point{right - radius, bottom - radius}
	bottomLeft := Point{left + radius, bottom - radius}

	arcTL := CirclePoints(topLeft, radius, arcSamples, math.Pi/2, math.Pi)
	arcTR := CirclePoints(topRight, radius, arcSamples, 0, math.Pi/2)
	arcBR := CirclePoints(bottomRight, radius, arcSamples, -math.Pi/2, 0)
	arcBL := CirclePoints(bottomLeft, radius, arcSamples, math.Pi, 3*math.Pi/2)

	rightEdge := make(PointSet)
	leftEdge := make(PointSet)
	for y := top + radius; y <= bottom-radius; y++ {
		rightEdge.Add(Point{right, y})
		leftEdge.Add(Point{left, y})
	}

	topEdge := make(PointSet)
	bottomEdge := make(PointSet)
	for x := left + radius; x <= right-radius; x++ {
		topEdge.Add(Point{x, top})
		bottomEdge.Add(Point{x, bottom})
	}

	return RectRegions{
		Right:  rightEdge,
		Left:   leftEdge,
		Top:    arcTL.Union(topEdge).Union(arcTR),
		Bottom: arcBR.Union(bottomEdge).Union(arcBL),
	}
}
