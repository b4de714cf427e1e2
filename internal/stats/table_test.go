package stats

import (
	"bytes"
	"testing"
)

func TestTableAlignsColumns(t *testing.T) {
	tbl := newTable(
		column{title: "Char"},
		column{title: "Accuracy", right: true},
		column{title: "Correct", right: true},
	)
	tbl.addRow("a", "97.50%", "12")
	tbl.addRow("<space>", "8.00%", "3")

	lines := tbl.lines()
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Char    Accuracy Correct" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "a         97.50%      12" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "<space>    8.00%       3" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestTableWideRunes(t *testing.T) {
	tbl := newTable(column{title: "Char"}, column{title: "N", right: true})
	tbl.addRow("漢", "1")
	tbl.addRow("ab", "2")
	lines := tbl.lines()
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[1] != "漢   1" {
		t.Fatalf("unexpected wide row: %q", lines[1])
	}
	if lines[2] != "ab   2" {
		t.Fatalf("unexpected row: %q", lines[2])
	}
}

func TestTableShortRowAndRender(t *testing.T) {
	tbl := newTable(column{title: "A"}, column{title: "B", right: true})
	tbl.addRow("xyz")
	var buf bytes.Buffer
	if err := tbl.render(&buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := buf.String(); got != "A   B\nxyz  \n" {
		t.Fatalf("unexpected output %q", got)
	}
}
