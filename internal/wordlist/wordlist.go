// Package wordlist loads word lists and text corpora from files.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadTokens reads the file at path and splits it on whitespace. A missing
// file yields no tokens and no error.
func LoadTokens(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	var tokens []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return tokens, nil
}

// Tokenize splits text on whitespace.
func Tokenize(text string) []string {
	return strings.Fields(text)
}
