package render

import "math"

// Projector maps grid coordinates to scene coordinates with a fixed-angle
// axonometric transform.
type Projector struct {
	centerX float64
	centerY float64
	scale   float64
	cos     float64
	sin     float64
}

// NewProjector creates a Projector from the projection settings.
func NewProjector(p Projection) Projector {
	angle := p.AngleDeg * math.Pi / 180
	return Projector{
		centerX: p.CenterX,
		centerY: p.CenterY,
		scale:   p.Scale,
		cos:     math.Cos(angle),
		sin:     math.Sin(angle),
	}
}

// Project returns the scene position of grid column x, row y at height z.
// Larger z moves the point up the screen.
func (p Projector) Project(x, y, z float64) Point2D {
	return Point2D{
		X: p.centerX + (x-y)*p.cos*p.scale,
		Y: p.centerY + (x+y)*p.sin*p.scale - z,
	}
}
