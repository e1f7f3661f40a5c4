package analysis

import (
	"sort"
	"strconv"

	"heartscope/domain/table"
)

// CategoryCount is the occurrence count of one category label.
type CategoryCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// ValueCounts tallies category occurrences over the non-missing rows of a
// column, most frequent first. Ties break on label order so output is
// deterministic.
func ValueCounts(col *table.Column) []CategoryCount {
	counts := make(map[string]int)
	for i := 0; i < col.Len(); i++ {
		if label, ok := col.CategoryAt(i); ok {
			counts[label]++
		}
	}

	out := make([]CategoryCount, 0, len(counts))
	for label, count := range counts {
		out = append(out, CategoryCount{Label: label, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return lessLabel(out[i].Label, out[j].Label)
	})
	return out
}

// Categories returns the distinct labels of a column in ascending label
// order: numerically when every label parses as a number, lexically
// otherwise.
func Categories(col *table.Column) []string {
	seen := make(map[string]bool)
	var labels []string
	for i := 0; i < col.Len(); i++ {
		if label, ok := col.CategoryAt(i); ok && !seen[label] {
			seen[label] = true
			labels = append(labels, label)
		}
	}
	sort.Slice(labels, func(i, j int) bool { return lessLabel(labels[i], labels[j]) })
	return labels
}

// lessLabel orders labels numerically where possible so "2" sorts before
// "10".
func lessLabel(a, b string) bool {
	av, aerr := strconv.ParseFloat(a, 64)
	bv, berr := strconv.ParseFloat(b, 64)
	if aerr == nil && berr == nil {
		return av < bv
	}
	return a < b
}
