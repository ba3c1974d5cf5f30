package wordlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadTokens(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(path, []byte("hello world\n\tfrom  ttypr\n"), 0o644); err != nil {
		t.Fatalf("write words: %v", err)
	}
	tokens, err := LoadTokens(path)
	if err != nil {
		t.Fatalf("load tokens: %v", err)
	}
	if strings.Join(tokens, ",") != "hello,world,from,ttypr" {
		t.Fatalf("unexpected tokens: %v", tokens)
	}
}

func TestLoadTokensMissingFile(t *testing.T) {
	tokens, err := LoadTokens(filepath.Join(t.TempDir(), "text.txt"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if len(tokens) != 0 {
		t.Fatalf("expected no tokens, got %v", tokens)
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize("This is a sample text for testing purposes.")
	if len(got) != 8 || got[7] != "purposes." {
		t.Fatalf("unexpected tokens: %v", got)
	}
}

func TestDefaultWords(t *testing.T) {
	words := DefaultWords()
	if len(words) == 0 {
		t.Fatalf("expected default words")
	}
	if words[0] != "the" || words[len(words)-1] != "enormous" {
		t.Fatalf("unexpected default words boundaries: %q ... %q", words[0], words[len(words)-1])
	}
	words[0] = "changed"
	if DefaultWords()[0] != "the" {
		t.Fatalf("expected DefaultWords to return a copy")
	}
}

func TestDefaultText(t *testing.T) {
	text := DefaultText()
	if len(text) == 0 {
		t.Fatalf("expected default text")
	}
	if text[0] != "The" || text[len(text)-1] != "mitten." {
		t.Fatalf("unexpected default text boundaries: %q ... %q", text[0], text[len(text)-1])
	}
}
