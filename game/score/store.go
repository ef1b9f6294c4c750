// Package score persists the high score and game history to a local JSON
// file. The record survives across sessions; a new best is written only at
// game over, and only when it strictly beats the stored value.
package score

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

var (
	// ErrNotFound is returned when no record has been written yet.
	ErrNotFound = errors.New("score: no saved record")
	// ErrCorrupt is returned when the backing file cannot be parsed. It is
	// surfaced rather than defaulted so a damaged file never silently wipes
	// a player's best.
	ErrCorrupt = errors.New("score: record is corrupt")
)

// Result is one completed game.
type Result struct {
	SessionID string    `json:"session_id"`
	Score     int       `json:"score"`
	EndedAt   time.Time `json:"ended_at"`
}

type record struct {
	HighScore int      `json:"high_score"`
	History   []Result `json:"history"`
}

// Store is the persistence contract consumed by the state manager.
type Store interface {
	// ReadHighScore returns the stored high score. It fails with ErrNotFound
	// when nothing has been stored and ErrCorrupt when the record is
	// unparsable; callers display a fallback rather than crash.
	ReadHighScore() (int, error)

	// WriteHighScore stores value unconditionally.
	WriteHighScore(value int) error

	// CommitIfHigher stores value only if it strictly exceeds the current
	// high score, reporting whether a write happened. A missing record
	// counts as zero so the first game can set a score.
	CommitIfHigher(value int) (bool, error)

	// AppendResult adds one completed game to the history.
	AppendResult(r Result) error
}

// FileStore implements Store on a single JSON file.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (fs *FileStore) ReadHighScore() (int, error) {
	rec, err := fs.read()
	if err != nil {
		return 0, err
	}
	return rec.HighScore, nil
}

func (fs *FileStore) WriteHighScore(value int) error {
	rec, err := fs.readOrEmpty()
	if err != nil {
		return err
	}
	rec.HighScore = value
	return fs.write(rec)
}

func (fs *FileStore) CommitIfHigher(value int) (bool, error) {
	rec, err := fs.readOrEmpty()
	if err != nil {
		return false, err
	}
	if value <= rec.HighScore {
		return false, nil
	}
	rec.HighScore = value
	if err := fs.write(rec); err != nil {
		return false, err
	}
	return true, nil
}

func (fs *FileStore) AppendResult(r Result) error {
	rec, err := fs.readOrEmpty()
	if err != nil {
		return err
	}
	rec.History = append(rec.History, r)
	return fs.write(rec)
}

func (fs *FileStore) read() (record, error) {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return record{}, fmt.Errorf("%w: %s", ErrNotFound, fs.path)
		}
		return record{}, fmt.Errorf("failed to read score file: %w", err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return record{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return rec, nil
}

// readOrEmpty treats a missing record as the zero record. Corruption and I/O
// failures are still surfaced: overwriting a file we could not read would
// destroy whatever it held.
func (fs *FileStore) readOrEmpty() (record, error) {
	rec, err := fs.read()
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return record{}, nil
		}
		return record{}, err
	}
	return rec, nil
}

func (fs *FileStore) write(rec record) error {
	if dir := filepath.Dir(fs.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create score directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal score record: %w", err)
	}

	if err := os.WriteFile(fs.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write score file: %w", err)
	}
	return nil
}
