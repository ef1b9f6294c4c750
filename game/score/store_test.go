package score

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "scores.json"))
}

func TestReadHighScoreMissing(t *testing.T) {
	fs := newTestStore(t)

	_, err := fs.ReadHighScore()
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing file, got %v", err)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	fs := newTestStore(t)

	for _, v := range []int{0, 3, 42} {
		if err := fs.WriteHighScore(v); err != nil {
			t.Fatalf("failed to write high score %d: %v", v, err)
		}
		got, err := fs.ReadHighScore()
		if err != nil {
			t.Fatalf("failed to read high score back: %v", err)
		}
		if got != v {
			t.Errorf("expected %d after writing %d, got %d", v, v, got)
		}
	}
}

func TestCommitIfHigher(t *testing.T) {
	fs := newTestStore(t)

	t.Run("first commit writes", func(t *testing.T) {
		wrote, err := fs.CommitIfHigher(5)
		if err != nil {
			t.Fatalf("commit failed: %v", err)
		}
		if !wrote {
			t.Error("expected first commit to write")
		}
	})

	t.Run("same value is a no-op", func(t *testing.T) {
		wrote, err := fs.CommitIfHigher(5)
		if err != nil {
			t.Fatalf("commit failed: %v", err)
		}
		if wrote {
			t.Error("expected repeated commit not to write")
		}
		got, _ := fs.ReadHighScore()
		if got != 5 {
			t.Errorf("expected stored high score to stay 5, got %d", got)
		}
	})

	t.Run("lower value is a no-op", func(t *testing.T) {
		wrote, err := fs.CommitIfHigher(3)
		if err != nil {
			t.Fatalf("commit failed: %v", err)
		}
		if wrote {
			t.Error("expected lower commit not to write")
		}
	})

	t.Run("higher value writes", func(t *testing.T) {
		wrote, err := fs.CommitIfHigher(9)
		if err != nil {
			t.Fatalf("commit failed: %v", err)
		}
		if !wrote {
			t.Error("expected higher commit to write")
		}
		got, _ := fs.ReadHighScore()
		if got != 9 {
			t.Errorf("expected stored high score 9, got %d", got)
		}
	})
}

func TestCorruptFileSurfaced(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	if err := os.WriteFile(path, []byte("not json{"), 0644); err != nil {
		t.Fatalf("failed to seed corrupt file: %v", err)
	}
	fs := NewFileStore(path)

	if _, err := fs.ReadHighScore(); !errors.Is(err, ErrCorrupt) {
		t.Errorf("expected ErrCorrupt from read, got %v", err)
	}

	// A commit must not clobber a record it could not read.
	if _, err := fs.CommitIfHigher(100); !errors.Is(err, ErrCorrupt) {
		t.Errorf("expected ErrCorrupt from commit, got %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to re-read file: %v", err)
	}
	if string(data) != "not json{" {
		t.Error("expected corrupt file to be left untouched")
	}
}

func TestAppendResult(t *testing.T) {
	fs := newTestStore(t)

	if err := fs.WriteHighScore(4); err != nil {
		t.Fatalf("failed to write high score: %v", err)
	}

	r := Result{SessionID: "abc", Score: 2, EndedAt: time.Now().UTC()}
	if err := fs.AppendResult(r); err != nil {
		t.Fatalf("failed to append result: %v", err)
	}
	if err := fs.AppendResult(Result{SessionID: "def", Score: 4, EndedAt: time.Now().UTC()}); err != nil {
		t.Fatalf("failed to append second result: %v", err)
	}

	// History grows without disturbing the high score.
	got, err := fs.ReadHighScore()
	if err != nil {
		t.Fatalf("failed to read high score: %v", err)
	}
	if got != 4 {
		t.Errorf("expected high score 4 after appends, got %d", got)
	}

	rec, err := fs.read()
	if err != nil {
		t.Fatalf("failed to read record: %v", err)
	}
	if len(rec.History) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(rec.History))
	}
	if rec.History[0].SessionID != "abc" || rec.History[0].Score != 2 {
		t.Errorf("unexpected first history entry: %+v", rec.History[0])
	}
}

func TestWriteCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "scores.json")
	fs := NewFileStore(path)

	if err := fs.WriteHighScore(1); err != nil {
		t.Fatalf("expected write to create parent directories: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected score file to exist: %v", err)
	}
}
