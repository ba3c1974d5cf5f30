package config

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/ttypr/internal/model"
	"github.com/verte-zerg/ttypr/internal/stats"
)

// DefaultLineWidth is the practice line width used when none is configured.
const DefaultLineWidth = 50

// State is the persisted application state.
type State struct {
	FirstRun          bool
	ShowNotifications bool
	SaveMistyped      bool
	Mistyped          map[string]int
	CorpusCursor      int
	UseDefaultWords   bool
	UseDefaultText    bool
	TextHash          string
	LineWidth         int
}

// DefaultState returns the state used on first start.
func DefaultState() State {
	return State{
		FirstRun:          true,
		ShowNotifications: true,
		SaveMistyped:      true,
		Mistyped:          map[string]int{},
		LineWidth:         DefaultLineWidth,
	}
}

type fileState struct {
	FirstRun          bool          `toml:"first_run"`
	ShowNotifications bool          `toml:"show_notifications"`
	SaveMistyped      bool          `toml:"save_mistyped"`
	CorpusCursor      int           `toml:"corpus_cursor"`
	UseDefaultWords   bool          `toml:"use_default_words"`
	UseDefaultText    bool          `toml:"use_default_text"`
	TextHash          string        `toml:"text_hash"`
	LineWidth         int           `toml:"line_width"`
	Mistyped          []fileMistake `toml:"mistyped"`
}

type fileMistake struct {
	Char  string `toml:"char"`
	Count int    `toml:"count"`
}

// LoadState reads the state file at path. A missing file is created with
// default values.
func LoadState(path string) (State, error) {
	if path == "" {
		return State{}, fmt.Errorf("state path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return State{}, fmt.Errorf("failed to stat state: %w", err)
		}
		st := DefaultState()
		if err := SaveState(path, st); err != nil {
			return State{}, err
		}
		return st, nil
	}

	fs := toFile(DefaultState())
	fs.Mistyped = nil
	if _, err := toml.DecodeFile(path, &fs); err != nil {
		return State{}, fmt.Errorf("failed to decode state: %w", err)
	}
	return fromFile(fs), nil
}

// SaveState writes st to path, replacing the previous file atomically.
func SaveState(path string, st State) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "config-*.toml")
	if err != nil {
		return fmt.Errorf("failed to create temp state: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	writer := bufio.NewWriter(tmpFile)
	if err := toml.NewEncoder(writer).Encode(toFile(st)); err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush state: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close state: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}
	return nil
}

// FileHash returns the hex SHA-256 of the file at path, or "" when the file
// does not exist.
func FileHash(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to hash %s: %w", path, err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

func toFile(st State) fileState {
	fs := fileState{
		FirstRun:          st.FirstRun,
		ShowNotifications: st.ShowNotifications,
		SaveMistyped:      st.SaveMistyped,
		CorpusCursor:      st.CorpusCursor,
		UseDefaultWords:   st.UseDefaultWords,
		UseDefaultText:    st.UseDefaultText,
		TextHash:          st.TextHash,
		LineWidth:         st.LineWidth,
	}
	for _, m := range stats.SortMistakes(st.Mistyped) {
		fs.Mistyped = append(fs.Mistyped, fileMistake{Char: m.Char, Count: m.Count})
	}
	return fs
}

func fromFile(fs fileState) State {
	st := State{
		FirstRun:          fs.FirstRun,
		ShowNotifications: fs.ShowNotifications,
		SaveMistyped:      fs.SaveMistyped,
		Mistyped:          make(map[string]int, len(fs.Mistyped)),
		CorpusCursor:      fs.CorpusCursor,
		UseDefaultWords:   fs.UseDefaultWords,
		UseDefaultText:    fs.UseDefaultText,
		TextHash:          fs.TextHash,
		LineWidth:         fs.LineWidth,
	}
	for _, m := range fs.Mistyped {
		if m.Char == "" || m.Count <= 0 {
			continue
		}
		st.Mistyped[m.Char] += m.Count
	}
	if st.CorpusCursor < 0 {
		st.CorpusCursor = 0
	}
	if st.LineWidth <= 0 {
		st.LineWidth = DefaultLineWidth
	}
	return st
}

// Mistakes returns the ledger sorted for display.
func (s State) Mistakes() []model.Mistake {
	return stats.SortMistakes(s.Mistyped)
}
