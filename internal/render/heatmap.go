package render

import (
	"errors"
	"fmt"

	"github.com/naka-gawa/github-stats-card/internal/domain"
)

// ErrNegativeCount is returned when a calendar day or a language carries a negative value.
var ErrNegativeCount = errors.New("negative count")

// Face classes of a heatmap prism.
const (
	FaceLeft  = "face-left"
	FaceRight = "face-right"
	FaceTop   = "face-top"
)

// SeasonalColor picks the palette color for a week index. Weeks are split
// into four fixed buckets by cfg.BucketEnds; a zero count always gets the
// neutral color.
func SeasonalColor(week, count int, cfg HeatmapConfig) string {
	if count == 0 {
		return cfg.NeutralColor
	}
	for i, end := range cfg.BucketEnds {
		if week <= end {
			return cfg.Palette[i]
		}
	}
	return cfg.Palette[len(cfg.Palette)-1]
}

// Heatmap draws one isometric prism per calendar day. Every day, including
// days with no contributions, yields exactly three faces (left, right, top)
// so the layer always holds 3 x grid.Cells() polygons.
//
// Weeks are walked outer and days inner; later prisms overlap earlier ones.
func Heatmap(grid domain.CalendarGrid, cfg Config) (Layer, error) {
	proj := NewProjector(cfg.Projection)
	hc := cfg.Heatmap
	shapes := make([]Shape, 0, 3*grid.Cells())

	for x, week := range grid {
		for y, day := range week {
			if day.Count < 0 {
				return Layer{}, fmt.Errorf("week %d day %d: %w", x, y, ErrNegativeCount)
			}
			h := max(float64(day.Count)*hc.HeightScale, hc.MinHeight)
			color := day.Color
			if !day.HasColor() {
				color = SeasonalColor(x, day.Count, hc)
			}

			xf, yf := float64(x), float64(y)
			topBack := proj.Project(xf, yf, h)
			topLeft := proj.Project(xf+1, yf, h)
			topRight := proj.Project(xf, yf+1, h)
			topFront := proj.Project(xf+1, yf+1, h)
			botLeft := proj.Project(xf+1, yf, 0)
			botRight := proj.Project(xf, yf+1, 0)
			botFront := proj.Project(xf+1, yf+1, 0)

			shapes = append(shapes,
				Polygon{
					Points: []Point2D{topLeft, topFront, botFront, botLeft},
					Fill:   Darken(color, hc.LeftShade),
					Class:  FaceLeft,
				},
				Polygon{
					Points: []Point2D{topRight, topFront, botFront, botRight},
					Fill:   Darken(color, hc.RightShade),
					Class:  FaceRight,
				},
				Polygon{
					Points: []Point2D{topBack, topLeft, topFront, topRight},
					Fill:   color,
					Class:  FaceTop,
				},
			)
		}
	}
	return Layer{Name: LayerHeatmap, Offset: cfg.HeatmapOffset, Shapes: shapes}, nil
}
