package table

import (
	"testing"
)

func newTestTable(t *testing.T) *Table {
	t.Helper()
	tbl, err := New("fp", []Column{
		NewNumericColumn("age", []float64{25, 45, 55}, nil),
		NewNumericColumn("chol", []float64{200, 0, 340}, []bool{true, false, true}),
		NewLabelColumn("group", []string{"Young", "Middle", "Senior"}, nil),
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return tbl
}

func TestNew_RejectsRaggedColumns(t *testing.T) {
	_, err := New("fp", []Column{
		NewNumericColumn("a", []float64{1, 2}, nil),
		NewNumericColumn("b", []float64{1, 2, 3}, nil),
	})
	if err == nil {
		t.Fatal("expected error for mismatched column lengths")
	}
}

func TestColumn_Missingness(t *testing.T) {
	tbl := newTestTable(t)
	col, ok := tbl.Column("chol")
	if !ok {
		t.Fatal("chol column not found")
	}
	if got := col.NonMissing(); got != 2 {
		t.Errorf("NonMissing = %d, want 2", got)
	}
	if got := col.Missing(); got != 1 {
		t.Errorf("Missing = %d, want 1", got)
	}
	if got := col.CompactValues(); len(got) != 2 || got[0] != 200 || got[1] != 340 {
		t.Errorf("CompactValues = %v, want [200 340]", got)
	}
}

func TestColumn_CategoryAt(t *testing.T) {
	tbl := newTestTable(t)

	group, _ := tbl.Column("group")
	if label, ok := group.CategoryAt(0); !ok || label != "Young" {
		t.Errorf("CategoryAt(0) = %q, %v; want Young, true", label, ok)
	}

	// Integer-coded columns format the code as the label.
	age, _ := tbl.Column("age")
	if label, ok := age.CategoryAt(1); !ok || label != "45" {
		t.Errorf("CategoryAt(1) = %q, %v; want 45, true", label, ok)
	}

	chol, _ := tbl.Column("chol")
	if _, ok := chol.CategoryAt(1); ok {
		t.Error("CategoryAt on a missing cell should report not-ok")
	}
}

func TestTable_NumericNames(t *testing.T) {
	tbl := newTestTable(t)
	names := tbl.NumericNames()
	if len(names) != 2 || names[0] != "age" || names[1] != "chol" {
		t.Errorf("NumericNames = %v, want [age chol]", names)
	}
}

func TestTable_CloneIsIndependent(t *testing.T) {
	tbl := newTestTable(t)
	clone := tbl.Clone()

	col, _ := clone.Column("age")
	col.Values[0] = 99
	col.Kind = KindCategorical

	orig, _ := tbl.Column("age")
	if orig.Values[0] != 25 {
		t.Error("mutating a clone leaked into the original values")
	}
	if orig.Kind != KindNumeric {
		t.Error("mutating a clone leaked into the original kind tag")
	}
}

func TestTable_Append(t *testing.T) {
	tbl := newTestTable(t)

	out, err := tbl.Append(NewLabelColumn("extra", []string{"a", "b", "c"}, nil))
	if err != nil {
		t.Fatalf("Append returned error: %v", err)
	}
	if out.ColumnCount() != 4 {
		t.Errorf("appended table has %d columns, want 4", out.ColumnCount())
	}
	if tbl.ColumnCount() != 3 {
		t.Error("Append modified the receiver")
	}

	if _, err := tbl.Append(NewLabelColumn("age", []string{"a", "b", "c"}, nil)); err == nil {
		t.Error("expected error appending a duplicate column name")
	}
	if _, err := tbl.Append(NewNumericColumn("short", []float64{1}, nil)); err == nil {
		t.Error("expected error appending a short column")
	}
}

func TestTable_MemoryBytes(t *testing.T) {
	tbl := newTestTable(t)
	if tbl.MemoryBytes() <= 0 {
		t.Error("MemoryBytes should be positive for a populated table")
	}
}
