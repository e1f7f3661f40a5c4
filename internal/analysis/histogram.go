package analysis

// HistogramBuckets is the fixed bucket count for distribution histograms.
const HistogramBuckets = 30

// Bin is one histogram bucket over [X0, X1); the final bucket also includes
// its upper edge so the observed maximum is counted.
type Bin struct {
	X0    float64 `json:"x0"`
	X1    float64 `json:"x1"`
	Count int     `json:"count"`
}

// Histogram buckets values into a fixed number of equal-width bins spanning
// the observed min and max. The bucket count never varies with the data; a
// constant column yields zero-width bins with everything in the first one.
func Histogram(values []float64, buckets int) []Bin {
	bins := make([]Bin, buckets)
	if len(values) == 0 {
		return bins
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	width := (max - min) / float64(buckets)
	for i := range bins {
		bins[i].X0 = min + width*float64(i)
		bins[i].X1 = min + width*float64(i+1)
	}
	bins[buckets-1].X1 = max

	for _, v := range values {
		idx := 0
		if width > 0 {
			idx = int((v - min) / width)
			if idx >= buckets {
				idx = buckets - 1
			}
		}
		bins[idx].Count++
	}
	return bins
}
