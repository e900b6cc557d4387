package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjector_Project(t *testing.T) {
	proj := NewProjector(DefaultConfig().Projection)
	step := math.Cos(math.Pi/6) * 20

	testCases := []struct {
		name     string
		x, y, z  float64
		expected Point2D
	}{
		{name: "origin maps to center", expected: Point2D{X: 400, Y: 300}},
		{name: "column moves right and down", x: 1, expected: Point2D{X: 400 + step, Y: 310}},
		{name: "row moves left and down", y: 1, expected: Point2D{X: 400 - step, Y: 310}},
		{name: "height raises the point", z: 10, expected: Point2D{X: 400, Y: 290}},
		{name: "diagonal stays centered", x: 3, y: 3, z: 4, expected: Point2D{X: 400, Y: 356}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := proj.Project(tc.x, tc.y, tc.z)
			assert.InDelta(t, tc.expected.X, got.X, 1e-9)
			assert.InDelta(t, tc.expected.Y, got.Y, 1e-9)
		})
	}
}

func TestProjector_Deterministic(t *testing.T) {
	cfg := DefaultConfig().Projection
	first := NewProjector(cfg).Project(17.5, 3.25, 42)
	for range 100 {
		assert.Equal(t, first, NewProjector(cfg).Project(17.5, 3.25, 42))
	}
}

func TestProjector_UsesConfiguredCanvas(t *testing.T) {
	proj := NewProjector(Projection{CenterX: 10, CenterY: 20, Scale: 1, AngleDeg: 30})
	got := proj.Project(0, 0, 5)
	assert.Equal(t, Point2D{X: 10, Y: 15}, got)
}
