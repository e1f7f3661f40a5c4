package analysis

import (
	"github.com/montanaflynn/stats"
)

// BoxStats holds the five-number summary behind one box in a box plot.
type BoxStats struct {
	Label  string  `json:"label"`
	N      int     `json:"n"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// Box computes the five-number summary of values. An empty input yields a
// zero box with N=0; the chart layer renders it as-is.
func Box(label string, values []float64) (BoxStats, error) {
	box := BoxStats{Label: label, N: len(values)}
	if len(values) == 0 {
		return box, nil
	}
	if len(values) == 1 {
		v := values[0]
		box.Min, box.Q1, box.Median, box.Q3, box.Max = v, v, v, v, v
		return box, nil
	}

	var err error
	if box.Min, err = stats.Min(values); err != nil {
		return box, err
	}
	if box.Max, err = stats.Max(values); err != nil {
		return box, err
	}
	if box.Q1, err = stats.Percentile(values, 25); err != nil {
		return box, err
	}
	if box.Median, err = stats.Median(values); err != nil {
		return box, err
	}
	if box.Q3, err = stats.Percentile(values, 75); err != nil {
		return box, err
	}
	return box, nil
}
