// Package svg renders the dashboard charts as inline SVG, keeping the page
// free of client-side charting dependencies.
package svg

// BarOpts customises the bar chart renderer.
type BarOpts struct {
	Title       string
	Description string
	FillColor   string
	AxisColor   string
	GridColor   string
	Padding     float64
	TickCount   int
}

// LineOpts customises the line chart renderer.
type LineOpts struct {
	Title       string
	Description string
	StrokeColor string
	FillColor   string
	AxisColor   string
	GridColor   string
	Padding     float64
	ShowDots    bool
	TickCount   int
}

// Defaults for the dashboard charts.
const (
	DefaultWidth   = 640
	DefaultHeight  = 260
	DefaultPadding = 32.0
	DefaultTicks   = 5
)
