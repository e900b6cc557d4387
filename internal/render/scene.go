// Package render turns an activity record into a static scene of 2D shapes:
// an isometric contribution heatmap, a language donut with legend and a
// five-axis radar chart.
//
// Every function in this package is pure. The same record and Config always
// produce the same Scene, which makes the output suitable for snapshot tests.
package render

// Layer names, in drawing order.
const (
	LayerHeatmap = "heatmap"
	LayerDonut   = "donut"
	LayerRadar   = "radar"
	LayerFooter  = "footer"
)

// Point2D is a projected scene coordinate.
type Point2D struct {
	X float64
	Y float64
}

// Add returns p translated by q.
func (p Point2D) Add(q Point2D) Point2D {
	return Point2D{X: p.X + q.X, Y: p.Y + q.Y}
}

// Shape is one of Polygon, Path or Text.
type Shape interface {
	shape()
}

// Polygon is a closed, filled outline.
type Polygon struct {
	Points      []Point2D
	Fill        string
	Stroke      string
	StrokeWidth float64
	Class       string
}

// Path is an SVG-style path outline.
type Path struct {
	D     string
	Fill  string
	Class string
}

// TextStyle controls how a Text node is drawn.
type TextStyle struct {
	Fill     string
	FontSize float64
	Anchor   string
	Bold     bool
}

// Text is a label anchored at Pos.
type Text struct {
	Pos     Point2D
	Content string
	Style   TextStyle
	Class   string
}

func (Polygon) shape() {}
func (Path) shape()    {}
func (Text) shape()    {}

// Layer is a named group of shapes drawn under a translation offset.
type Layer struct {
	Name   string
	Offset Point2D
	Shapes []Shape
}

// Polygons returns the polygons of the layer in drawing order.
func (l Layer) Polygons() []Polygon {
	var out []Polygon
	for _, s := range l.Shapes {
		if p, ok := s.(Polygon); ok {
			out = append(out, p)
		}
	}
	return out
}

// Paths returns the paths of the layer in drawing order.
func (l Layer) Paths() []Path {
	var out []Path
	for _, s := range l.Shapes {
		if p, ok := s.(Path); ok {
			out = append(out, p)
		}
	}
	return out
}

// Texts returns the text nodes of the layer in drawing order.
func (l Layer) Texts() []Text {
	var out []Text
	for _, s := range l.Shapes {
		if t, ok := s.(Text); ok {
			out = append(out, t)
		}
	}
	return out
}

// Scene is the composed output handed to a serializer.
type Scene struct {
	Width      float64
	Height     float64
	Background string
	FontFamily string
	Layers     []Layer
}

// Layer looks a layer up by name.
func (s Scene) Layer(name string) (Layer, bool) {
	for _, l := range s.Layers {
		if l.Name == name {
			return l, true
		}
	}
	return Layer{}, false
}
