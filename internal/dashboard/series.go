package dashboard

import (
	"sort"
	"time"
)

// Series is a label/value pairing ready for chart rendering.
type Series struct {
	Labels []string
	Values []float64
}

// CategorySeries reshapes a category-to-quantity mapping into a series sorted
// alphabetically by category name, keeping rendering deterministic.
func CategorySeries(stock map[string]int) Series {
	labels := make([]string, 0, len(stock))
	for category := range stock {
		labels = append(labels, category)
	}
	sort.Strings(labels)

	values := make([]float64, len(labels))
	for i, category := range labels {
		values[i] = float64(stock[category])
	}
	return Series{Labels: labels, Values: values}
}

// DailySeries reshapes a date-to-count mapping into a series ordered
// chronologically by calendar date, not map order. Labels that fail to parse
// sort after valid dates, in label order.
func DailySeries(daily map[string]int) Series {
	labels := make([]string, 0, len(daily))
	for date := range daily {
		labels = append(labels, date)
	}
	sort.Slice(labels, func(i, j int) bool {
		ti, errI := time.Parse("2006-01-02", labels[i])
		tj, errJ := time.Parse("2006-01-02", labels[j])
		if errI != nil || errJ != nil {
			if (errI == nil) != (errJ == nil) {
				return errI == nil
			}
			return labels[i] < labels[j]
		}
		return ti.Before(tj)
	})

	values := make([]float64, len(labels))
	for i, date := range labels {
		values[i] = float64(daily[date])
	}
	return Series{Labels: labels, Values: values}
}
