package analysis

import (
	"math"

	"github.com/montanaflynn/stats"

	"heartscope/domain/table"
	"heartscope/internal/errors"
)

// Summary holds the standard descriptive statistics for one numeric column.
type Summary struct {
	Column string  `json:"column"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Q25    float64 `json:"q25"`
	Median float64 `json:"median"`
	Q75    float64 `json:"q75"`
	Max    float64 `json:"max"`
}

// Describe computes count/mean/std/min/quartiles/max over the non-missing
// values of a numeric column.
func Describe(col *table.Column) (Summary, error) {
	if !col.IsNumeric() {
		return Summary{}, errors.ColumnKind(col.Name, "numeric")
	}
	values := col.CompactValues()
	if len(values) == 0 {
		return Summary{Column: col.Name}, nil
	}
	if len(values) == 1 {
		v := values[0]
		return Summary{Column: col.Name, Count: 1, Mean: v, Min: v, Q25: v, Median: v, Q75: v, Max: v}, nil
	}

	mean, err := stats.Mean(values)
	if err != nil {
		return Summary{}, err
	}
	std := 0.0
	if len(values) > 1 {
		// Sample standard deviation, matching the usual describe() output.
		if std, err = stats.StandardDeviationSample(values); err != nil {
			return Summary{}, err
		}
	}
	min, err := stats.Min(values)
	if err != nil {
		return Summary{}, err
	}
	max, err := stats.Max(values)
	if err != nil {
		return Summary{}, err
	}
	q25, err := stats.Percentile(values, 25)
	if err != nil {
		return Summary{}, err
	}
	median, err := stats.Median(values)
	if err != nil {
		return Summary{}, err
	}
	q75, err := stats.Percentile(values, 75)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Column: col.Name,
		Count:  len(values),
		Mean:   mean,
		Std:    std,
		Min:    min,
		Q25:    q25,
		Median: median,
		Q75:    q75,
		Max:    max,
	}, nil
}

// DescribeNumeric computes summaries for every numeric column of the table,
// in table order.
func DescribeNumeric(t *table.Table) ([]Summary, error) {
	names := t.NumericNames()
	out := make([]Summary, 0, len(names))
	for _, name := range names {
		col, _ := t.Column(name)
		summary, err := Describe(col)
		if err != nil {
			return nil, err
		}
		out = append(out, summary)
	}
	return out, nil
}

// Mean returns the mean of the non-missing values of a numeric column.
func Mean(col *table.Column) (float64, error) {
	if !col.IsNumeric() {
		return 0, errors.ColumnKind(col.Name, "numeric")
	}
	values := col.CompactValues()
	if len(values) == 0 {
		return math.NaN(), nil
	}
	return stats.Mean(values)
}

// Sum returns the sum of the non-missing values of a column.
func Sum(col *table.Column) float64 {
	total := 0.0
	for i, v := range col.Values {
		if col.Valid[i] {
			total += v
		}
	}
	return total
}

// Round1 rounds to one decimal place, the precision the Home metrics use.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
