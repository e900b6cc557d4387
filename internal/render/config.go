package render

// Projection configures the isometric projector.
type Projection struct {
	CenterX  float64
	CenterY  float64
	Scale    float64
	AngleDeg float64
}

// HeatmapConfig configures bar heights, shading and the seasonal palette.
type HeatmapConfig struct {
	HeightScale  float64
	MinHeight    float64
	LeftShade    float64
	RightShade   float64
	NeutralColor string
	// Palette is indexed by seasonal bucket.
	Palette [4]string
	// BucketEnds holds the last week index of the first three buckets.
	BucketEnds [3]int
}

// DonutConfig configures the donut rings and its legend grid.
type DonutConfig struct {
	Radius      float64
	InnerRadius float64

	LegendRows  int
	LegendX     float64
	LegendY     float64
	ColumnWidth float64
	RowHeight   float64
	SwatchSize  float64
	LabelGap    float64
	LabelDrop   float64
	FontSize    float64
}

// RadarConfig configures the pentagonal radar chart.
type RadarConfig struct {
	MaxRadius   float64
	Rings       []float64
	LabelRadius float64
	LabelShiftX float64
	// Divisor normalizes log10(v+1); values reaching 10^Divisor saturate.
	Divisor     float64
	GridStroke  string
	Fill        string
	Stroke      string
	StrokeWidth float64
	FontSize    float64
}

// FooterConfig configures the summary line at the bottom of the canvas.
type FooterConfig struct {
	Margin   float64
	FontSize float64
	Bold     bool
}

// Config is the immutable canvas geometry threaded into every renderer.
type Config struct {
	Width      float64
	Height     float64
	Background string
	FontFamily string
	TextColor  string

	Projection Projection
	Heatmap    HeatmapConfig
	Donut      DonutConfig
	Radar      RadarConfig
	Footer     FooterConfig

	HeatmapOffset Point2D
	DonutOffset   Point2D
	RadarOffset   Point2D
}

// DefaultConfig returns the layout of the stats card: a 1400x1000 canvas with
// the heatmap top left, the donut bottom left and the radar on the right.
func DefaultConfig() Config {
	return Config{
		Width:      1400,
		Height:     1000,
		Background: "#ffffff",
		FontFamily: "sans-serif",
		TextColor:  "#586069",
		Projection: Projection{
			CenterX:  400,
			CenterY:  300,
			Scale:    20,
			AngleDeg: 30,
		},
		Heatmap: HeatmapConfig{
			HeightScale:  5,
			MinHeight:    2,
			LeftShade:    0.8,
			RightShade:   0.6,
			NeutralColor: "#ebedf0",
			Palette:      [4]string{"#c6e48b", "#f4e04d", "#a3a3a3", "#d1a3d1"},
			BucketEnds:   [3]int{12, 25, 38},
		},
		Donut: DonutConfig{
			Radius:      90,
			InnerRadius: 60,
			LegendRows:  8,
			LegendX:     120,
			LegendY:     -80,
			ColumnWidth: 140,
			RowHeight:   22,
			SwatchSize:  12,
			LabelGap:    18,
			LabelDrop:   10,
			FontSize:    14,
		},
		Radar: RadarConfig{
			MaxRadius:   110,
			Rings:       []float64{0.25, 0.5, 0.75, 1.0},
			LabelRadius: 140,
			LabelShiftX: -25,
			Divisor:     4,
			GridStroke:  "#e1e4e8",
			Fill:        "rgba(46, 160, 67, 0.2)",
			Stroke:      "#2ea043",
			StrokeWidth: 2,
			FontSize:    15,
		},
		Footer: FooterConfig{
			Margin:   40,
			FontSize: 24,
			Bold:     true,
		},
		DonutOffset: Point2D{X: 180, Y: 820},
		RadarOffset: Point2D{X: 1150, Y: 250},
	}
}
