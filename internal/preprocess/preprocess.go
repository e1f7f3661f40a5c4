package preprocess

import (
	"heartscope/domain/table"
	"heartscope/internal/errors"
)

// AgeGroupColumn is the name of the derived age bucket column.
const AgeGroupColumn = "age_group"

// TargetColumn is the binary disease outcome column.
const TargetColumn = "target"

// CategoricalColumns is the fixed list of integer-coded columns that carry
// unordered labels. Vessel count and slope are included: their codes are
// names, not magnitudes.
var CategoricalColumns = []string{
	"sex", "cp", "fbs", "restecg",
	"exang", "slope", "ca", "thal",
}

// Age bucket labels in bin order.
const (
	GroupYoung  = "Young"
	GroupMiddle = "Middle"
	GroupSenior = "Senior"
	GroupElder  = "Elder"
)

// AgeGroup buckets an age into its group label. Boundaries: [0,40] Young,
// (40,50] Middle, (50,60] Senior, (60,100] Elder. Ages outside [0,100]
// return ok=false: a valid but unclassified state, never an error.
func AgeGroup(age float64) (string, bool) {
	switch {
	case age < 0 || age > 100:
		return "", false
	case age <= 40:
		return GroupYoung, true
	case age <= 50:
		return GroupMiddle, true
	case age <= 60:
		return GroupSenior, true
	default:
		return GroupElder, true
	}
}

// Apply returns a copy of the table with the derived age-group column
// attached and the fixed categorical columns retagged as nominal. The input
// is never modified. Apply is idempotent: running it on its own output
// recomputes the same groups and tags.
func Apply(t *table.Table) (*table.Table, error) {
	age, ok := t.Column("age")
	if !ok {
		return nil, errors.ColumnMissing("age")
	}

	labels := make([]string, age.Len())
	valid := make([]bool, age.Len())
	for i := range age.Values {
		if !age.Valid[i] {
			continue
		}
		if group, classified := AgeGroup(age.Values[i]); classified {
			labels[i] = group
			valid[i] = true
		}
	}
	ageGroup := table.NewLabelColumn(AgeGroupColumn, labels, valid)

	out := t.Clone()
	if existing, present := out.Column(AgeGroupColumn); present {
		// Re-applied on already processed output: replace in place so bin
		// edges stay deterministic and stable.
		*existing = ageGroup
	} else {
		appended, err := out.Append(ageGroup)
		if err != nil {
			return nil, err
		}
		out = appended
	}

	for _, name := range CategoricalColumns {
		if col, present := out.Column(name); present {
			col.Kind = table.KindCategorical
		}
	}

	return out, nil
}
