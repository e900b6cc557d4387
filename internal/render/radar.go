package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/naka-gawa/github-stats-card/internal/domain"
)

// ErrNegativeMetric is returned when a radar metric is below zero.
var ErrNegativeMetric = errors.New("negative metric")

// radarAngle returns the spoke angle of axis i; axis 0 points up.
func radarAngle(i int) float64 {
	return (float64(i)*72 - 90) * math.Pi / 180
}

// RadarRadius maps a metric onto [0, MaxRadius] with log10(v+1)/Divisor,
// clamped to [0, 1] before scaling.
func RadarRadius(v int, rc RadarConfig) float64 {
	scaled := math.Log10(float64(v)+1) / rc.Divisor
	scaled = math.Max(0, math.Min(1, scaled))
	return scaled * rc.MaxRadius
}

func pentagon(radius float64) []Point2D {
	points := make([]Point2D, 0, 5)
	for i := range 5 {
		a := radarAngle(i)
		points = append(points, Point2D{X: math.Cos(a) * radius, Y: math.Sin(a) * radius})
	}
	return points
}

// Radar draws the reference rings, the axis labels and the data polygon,
// centered on the layer origin.
func Radar(metrics domain.MetricVector, cfg Config) (Layer, error) {
	rc := cfg.Radar
	for i, v := range metrics {
		if v < 0 {
			return Layer{}, fmt.Errorf("%s = %d: %w", domain.MetricLabels[i], v, ErrNegativeMetric)
		}
	}

	shapes := make([]Shape, 0, len(rc.Rings)+len(metrics)+1)
	for _, r := range rc.Rings {
		shapes = append(shapes, Polygon{
			Points: pentagon(rc.MaxRadius * r),
			Fill:   "none",
			Stroke: rc.GridStroke,
			Class:  "grid",
		})
	}

	data := make([]Point2D, 0, len(metrics))
	for i, v := range metrics {
		a := radarAngle(i)
		r := RadarRadius(v, rc)
		data = append(data, Point2D{X: math.Cos(a) * r, Y: math.Sin(a) * r})
		shapes = append(shapes, Text{
			Pos:     Point2D{X: math.Cos(a)*rc.LabelRadius + rc.LabelShiftX, Y: math.Sin(a) * rc.LabelRadius},
			Content: domain.MetricLabels[i],
			Style:   TextStyle{Fill: cfg.TextColor, FontSize: rc.FontSize},
			Class:   "axis",
		})
	}
	shapes = append(shapes, Polygon{
		Points:      data,
		Fill:        rc.Fill,
		Stroke:      rc.Stroke,
		StrokeWidth: rc.StrokeWidth,
		Class:       "data",
	})
	return Layer{Name: LayerRadar, Offset: cfg.RadarOffset, Shapes: shapes}, nil
}
