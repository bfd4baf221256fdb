package svg

import (
	"strings"
	"testing"
)

func TestLineProducesSVG(t *testing.T) {
	html, err := Line(400, 200, []float64{2, 5, 3}, []string{"2024-01-01", "2024-01-02", "2024-01-03"}, LineOpts{
		Title:       "Daily Shipments Trend",
		Description: "Shipped quantity per day",
		ShowDots:    true,
	})
	if err != nil {
		t.Fatalf("line renderer error: %v", err)
	}
	output := string(html)
	if !strings.HasPrefix(output, "<svg") {
		t.Fatalf("expected svg output, got %s", output)
	}
	if !strings.Contains(output, "<path") {
		t.Fatalf("expected path element in svg")
	}
	if strings.Count(output, "<circle") != 3 {
		t.Fatalf("expected one dot per point, got %d", strings.Count(output, "<circle"))
	}
	if !strings.Contains(output, "aria-labelledby") {
		t.Fatalf("expected accessibility attributes")
	}
}

func TestLineSinglePointCentersDot(t *testing.T) {
	html, err := Line(400, 200, []float64{5}, []string{"2024-01-01"}, LineOpts{ShowDots: true})
	if err != nil {
		t.Fatalf("line renderer error: %v", err)
	}
	if !strings.Contains(string(html), "<circle") {
		t.Fatalf("expected dot for single point")
	}
}

func TestLineRejectsEmptySeries(t *testing.T) {
	if _, err := Line(400, 200, nil, nil, LineOpts{}); err == nil {
		t.Fatalf("expected error for empty series")
	}
}

func TestLineFlatSeriesDoesNotDivideByZero(t *testing.T) {
	html, err := Line(400, 200, []float64{3, 3, 3}, []string{"a", "b", "c"}, LineOpts{})
	if err != nil {
		t.Fatalf("line renderer error: %v", err)
	}
	if strings.Contains(string(html), "NaN") {
		t.Fatalf("expected finite coordinates, got %s", html)
	}
}
