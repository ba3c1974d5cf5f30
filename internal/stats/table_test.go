package stats

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Char", "Count"}
	rows := [][]string{
		{"<space>", "12"},
		{"é", "3"},
	}
	lines := formatTable(headers, rows, map[int]bool{1: true})
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Char    Count" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "<space>    12" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "é           3" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableWideRunes(t *testing.T) {
	lines := formatTable([]string{"C"}, [][]string{{"日"}}, nil)
	if lines[0] != "C " {
		t.Fatalf("expected header padded to wide rune width, got %q", lines[0])
	}
}
