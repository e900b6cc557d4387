package render

import (
	"testing"

	"github.com/naka-gawa/github-stats-card/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRadarRadius(t *testing.T) {
	rc := DefaultConfig().Radar
	testCases := []struct {
		name     string
		value    int
		expected float64
	}{
		{name: "zero maps to the center", value: 0, expected: 0},
		{name: "nine is a quarter", value: 9, expected: 27.5},
		{name: "ninety-nine is half", value: 99, expected: 55},
		{name: "9999 saturates", value: 9999, expected: 110},
		{name: "beyond saturation is clamped", value: 5_000_000, expected: 110},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, RadarRadius(tc.value, rc), 1e-9)
		})
	}
}

func TestRadar(t *testing.T) {
	cfg := DefaultConfig()
	layer, err := Radar(domain.MetricVector{10, 0, 2, 1, 0}, cfg)
	require.NoError(t, err)
	assert.Equal(t, LayerRadar, layer.Name)
	assert.Equal(t, cfg.RadarOffset, layer.Offset)

	var rings, data []Polygon
	for _, p := range layer.Polygons() {
		switch p.Class {
		case "grid":
			rings = append(rings, p)
		case "data":
			data = append(data, p)
		}
	}
	require.Len(t, rings, 4)
	require.Len(t, data, 1)

	for i, ring := range rings {
		require.Len(t, ring.Points, 5)
		r := cfg.Radar.MaxRadius * cfg.Radar.Rings[i]
		assert.InDelta(t, 0, ring.Points[0].X, 1e-9)
		assert.InDelta(t, -r, ring.Points[0].Y, 1e-9, "vertex 0 points up")
		assert.Equal(t, "none", ring.Fill)
	}

	vertices := data[0].Points
	require.Len(t, vertices, 5)
	assert.InDelta(t, -RadarRadius(10, cfg.Radar), vertices[0].Y, 1e-9)
	assert.Equal(t, Point2D{}, Point2D{X: round9(vertices[1].X), Y: round9(vertices[1].Y)})
	assert.Equal(t, Point2D{}, Point2D{X: round9(vertices[4].X), Y: round9(vertices[4].Y)})

	labels := layer.Texts()
	require.Len(t, labels, 5)
	for i, l := range labels {
		assert.Equal(t, domain.MetricLabels[i], l.Content)
	}
	assert.InDelta(t, -25, labels[0].Pos.X, 1e-9)
	assert.InDelta(t, -140, labels[0].Pos.Y, 1e-9)
}

func TestRadar_NegativeMetric(t *testing.T) {
	_, err := Radar(domain.MetricVector{1, 2, -3, 4, 5}, DefaultConfig())
	assert.ErrorIs(t, err, ErrNegativeMetric)
	assert.Contains(t, err.Error(), "PullReq")
}

func round9(v float64) float64 {
	if v < 1e-9 && v > -1e-9 {
		return 0
	}
	return v
}
