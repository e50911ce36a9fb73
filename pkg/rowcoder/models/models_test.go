package models

import (
	"testing"
)

func TestStateOf(t *testing.T) {
	tests := []struct {
		cell     string
		expected LabelState
	}{
		{"1", LabelSet},
		{" 1 ", LabelSet},
		{"1.0", LabelSet},
		{"1.00", LabelSet},
		{"", LabelUnset},
		{"0", LabelUnset},
		{"2", LabelUnset},
		{"yes", LabelUnset},
		{"true", LabelUnset},
	}

	for _, tt := range tests {
		if got := StateOf(tt.cell); got != tt.expected {
			t.Errorf("StateOf(%q) = %v, expected %v", tt.cell, got, tt.expected)
		}
	}
}

func TestIsBlank(t *testing.T) {
	for _, cell := range []string{"", " ", "\t"} {
		if !IsBlank(cell) {
			t.Errorf("Expected %q to be blank", cell)
		}
	}
	for _, cell := range []string{"0", "1", "x"} {
		if IsBlank(cell) {
			t.Errorf("Expected %q not to be blank", cell)
		}
	}
}

func TestLabelStateCell(t *testing.T) {
	if LabelSet.Cell() != "1" {
		t.Errorf("Expected set cell '1', got %q", LabelSet.Cell())
	}
	if LabelUnset.Cell() != "" {
		t.Errorf("Expected unset cell to be blank, got %q", LabelUnset.Cell())
	}
	if LabelUnset.Toggle() != LabelSet || LabelSet.Toggle() != LabelUnset {
		t.Error("Toggle should flip the state")
	}
}

func TestSelection(t *testing.T) {
	sel := SelectionOf(ViolationFlag, SequentialCoherence)
	if sel.Count() != 2 {
		t.Errorf("Expected 2 labels set, got %d", sel.Count())
	}

	clone := sel.Clone()
	clone[ViolationFlag] = LabelUnset
	if sel[ViolationFlag] != LabelSet {
		t.Error("Clone should not share state with the original")
	}
	if sel.Equal(clone) {
		t.Error("Expected selections to differ")
	}

	// A missing key reads as unset
	if !NewSelection().Equal(Selection{}) {
		t.Error("Expected an empty selection to equal an all-unset one")
	}
}

func TestTableAddColumn(t *testing.T) {
	table := NewTable("a", "b")
	table.AppendRow("1")
	table.AddColumn("c")
	table.AddColumn("a")

	if len(table.Columns) != 3 {
		t.Fatalf("Expected 3 columns, got %v", table.Columns)
	}
	rec := table.Record(0)
	if rec[0] != "1" || rec[1] != "" || rec[2] != "" {
		t.Errorf("Unexpected record %q", rec)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
	}{
		{"csv", FormatCSV},
		{".CSV", FormatCSV},
		{"xlsx", FormatXLSX},
		{"excel", FormatXLSX},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if err != nil {
			t.Errorf("ParseFormat(%q) failed: %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseFormat(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}

	if _, err := ParseFormat("json"); err == nil {
		t.Error("Expected an error for json")
	}
	if FormatCSV.Other() != FormatXLSX || FormatXLSX.Extension() != ".xlsx" {
		t.Error("Unexpected Other/Extension result")
	}
}
