package fsstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adventboard/adventboard/internal/domain/registry"
	"github.com/adventboard/adventboard/internal/repository"
)

// RegistryStore keeps one pub/<token>.json file per published
// leaderboard. Group lookup is a directory scan; registries are small
// enough that an index isn't worth a second file format here — the
// sqlite store covers deployments where it is.
type RegistryStore struct {
	dir string
}

// NewRegistryStore creates a store keeping records under <root>/pub.
func NewRegistryStore(root string) *RegistryStore {
	return &RegistryStore{dir: filepath.Join(root, "pub")}
}

func (s *RegistryStore) path(token string) (string, error) {
	// Tokens come from untrusted lookups; only the minted shape ever
	// touches the filesystem.
	if !registry.ValidToken(token) {
		return "", repository.ErrNotFound
	}
	return filepath.Join(s.dir, token+".json"), nil
}

func decodeRecord(path string) (*registry.PublicLeaderboard, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("reading registry file: %w", err)
	}
	var rec registry.PublicLeaderboard
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decoding registry file %s: %w", filepath.Base(path), err)
	}
	return &rec, nil
}

// Get looks a record up by token.
func (s *RegistryStore) Get(_ context.Context, token string) (*registry.PublicLeaderboard, error) {
	path, err := s.path(token)
	if err != nil {
		return nil, err
	}
	return decodeRecord(path)
}

// FindByGroup scans the registry directory for the record backed by the
// given group.
func (s *RegistryStore) FindByGroup(_ context.Context, groupID string) (*registry.PublicLeaderboard, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scanning registry: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		rec, err := decodeRecord(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			// Undecodable strays don't block the scan.
			continue
		}
		if rec.GroupID == groupID {
			return rec, nil
		}
	}
	return nil, repository.ErrNotFound
}

// Put creates or overwrites a record, atomically.
func (s *RegistryStore) Put(_ context.Context, rec *registry.PublicLeaderboard) error {
	path, err := s.path(rec.Token)
	if err != nil {
		return fmt.Errorf("invalid token %q", rec.Token)
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding registry record: %w", err)
	}
	return writeFileAtomic(path, data)
}

// Exists reports whether a token is already taken.
func (s *RegistryStore) Exists(_ context.Context, token string) (bool, error) {
	path, err := s.path(token)
	if err != nil {
		return false, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("checking registry file: %w", err)
	}
	return true, nil
}

// WithLock holds the registry-wide advisory lock for the duration of fn.
func (s *RegistryStore) WithLock(_ context.Context, fn func() error) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating registry directory: %w", err)
	}
	return withFileLock(filepath.Join(s.dir, ".lock"), fn)
}
