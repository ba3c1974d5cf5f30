package generator

import (
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestASCIILineWidthAndAlphabet(t *testing.T) {
	src := NewASCII(rand.New(rand.NewSource(1)))
	for _, width := range []int{1, 10, 50} {
		line := src.NextLine(width)
		if utf8.RuneCountInString(line) != width {
			t.Fatalf("expected %d chars, got %d", width, utf8.RuneCountInString(line))
		}
		for _, r := range line {
			if !strings.ContainsRune(Alphabet(), r) {
				t.Fatalf("unexpected char %q outside alphabet", r)
			}
		}
	}
	if got := src.NextLine(0); got != "" {
		t.Fatalf("expected empty line for zero width, got %q", got)
	}
}

func TestAlphabetHasNoDigits(t *testing.T) {
	if strings.ContainsAny(Alphabet(), "0123456789") {
		t.Fatalf("expected alphabet without digits")
	}
	if len(Alphabet()) != 84 {
		t.Fatalf("expected 84 symbols, got %d", len(Alphabet()))
	}
}

func TestWordsLineFitsWidth(t *testing.T) {
	words := []string{"hello", "world", "this", "is", "a", "test"}
	src := NewWords(rand.New(rand.NewSource(7)), words)
	for _, width := range []int{50, 10, 5} {
		for i := 0; i < 20; i++ {
			line := src.NextLine(width)
			if line == "" {
				t.Fatalf("expected non-empty line for width %d", width)
			}
			if utf8.RuneCountInString(line) > width {
				t.Fatalf("line %q exceeds width %d", line, width)
			}
			for _, w := range strings.Fields(line) {
				if !contains(words, w) {
					t.Fatalf("unexpected word %q", w)
				}
			}
		}
	}
}

func TestWordsEmptyListPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on empty word list")
		}
	}()
	NewWords(rand.New(rand.NewSource(1)), nil).NextLine(10)
}

func TestTextSequentialWithWraparound(t *testing.T) {
	tokens := strings.Fields("This is a sample text for testing purposes.")
	src := NewText(tokens, 0)

	steps := []struct {
		line   string
		cursor int
	}{
		{"This is a sample", 4},
		{"text for testing", 7},
		{"purposes. This is a", 3},
	}
	for i, step := range steps {
		line := src.NextLine(20)
		if line != step.line {
			t.Fatalf("line %d: expected %q, got %q", i, step.line, line)
		}
		if src.Cursor() != step.cursor {
			t.Fatalf("line %d: expected cursor %d, got %d", i, step.cursor, src.Cursor())
		}
	}
}

func TestTextTwoTokensPerLine(t *testing.T) {
	src := NewText([]string{"aa", "bb", "cc", "dd", "ee"}, 0)
	want := []string{"aa bb", "cc dd", "ee aa"}
	for i, w := range want {
		if got := src.NextLine(6); got != w {
			t.Fatalf("line %d: expected %q, got %q", i, w, got)
		}
	}
	if src.Cursor() != 1 {
		t.Fatalf("expected cursor 1, got %d", src.Cursor())
	}
}

func TestTextOversizedTokenIsTruncated(t *testing.T) {
	src := NewText([]string{"abcdefghij", "xy"}, 0)
	if got := src.NextLine(4); got != "abcd" {
		t.Fatalf("expected truncated token, got %q", got)
	}
	if src.Cursor() != 1 {
		t.Fatalf("expected cursor 1, got %d", src.Cursor())
	}
	if got := src.NextLine(4); got != "xy" {
		t.Fatalf("expected %q, got %q", "xy", got)
	}
}

func TestTextRewindAndSetCursor(t *testing.T) {
	src := NewText([]string{"a", "b", "c"}, 5)
	if src.Cursor() != 0 {
		t.Fatalf("expected out-of-range cursor reset to 0, got %d", src.Cursor())
	}
	src.SetCursor(3)
	src.Rewind(2)
	if src.Cursor() != 1 {
		t.Fatalf("expected cursor 1, got %d", src.Cursor())
	}
	src.Rewind(10)
	if src.Cursor() != 0 {
		t.Fatalf("expected rewind to stop at 0, got %d", src.Cursor())
	}
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
