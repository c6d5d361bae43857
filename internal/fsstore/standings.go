package fsstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adventboard/adventboard/internal/domain/standings"
	"github.com/adventboard/adventboard/internal/repository"
)

// StandingsStore keeps one <group>-<year>.json file per cache entry
// under its root directory.
type StandingsStore struct {
	root string
}

// NewStandingsStore creates a store rooted at the given directory. The
// directory is created lazily on the first write.
func NewStandingsStore(root string) *StandingsStore {
	return &StandingsStore{root: root}
}

func (s *StandingsStore) path(group string, year int) (string, error) {
	// Group ids become file names; anything that could escape the root
	// is rejected outright.
	if group == "" || strings.ContainsAny(group, "/\\") || strings.Contains(group, "..") {
		return "", fmt.Errorf("invalid group id %q", group)
	}
	return filepath.Join(s.root, fmt.Sprintf("%s-%d.json", group, year)), nil
}

// Load reads and decodes a cached snapshot. A missing file reports
// repository.ErrNotFound.
func (s *StandingsStore) Load(_ context.Context, group string, year int) (*standings.Standings, error) {
	path, err := s.path(group, year)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("reading cache file: %w", err)
	}
	snapshot, err := standings.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding cache file %s: %w", filepath.Base(path), err)
	}
	return snapshot, nil
}

// Save overwrites the cached snapshot for (group, year). The write is
// atomic, and the resulting file mtime becomes the entry's fetch time.
func (s *StandingsStore) Save(_ context.Context, group string, year int, snapshot *standings.Standings) error {
	path, err := s.path(group, year)
	if err != nil {
		return err
	}
	data, err := snapshot.Encode()
	if err != nil {
		return err
	}
	return writeFileAtomic(path, data)
}

// Age reports how long ago the entry was last written. ok is false when
// no entry exists.
func (s *StandingsStore) Age(_ context.Context, group string, year int) (time.Duration, bool, error) {
	path, err := s.path(group, year)
	if err != nil {
		return 0, false, err
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("checking cache file: %w", err)
	}
	return time.Since(info.ModTime()), true, nil
}

// WithLock holds the entry's advisory lock for the duration of fn.
func (s *StandingsStore) WithLock(_ context.Context, group string, year int, fn func() error) error {
	path, err := s.path(group, year)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	return withFileLock(path+".lock", fn)
}
