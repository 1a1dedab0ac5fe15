package knowledge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	hjson "github.com/hjson/hjson-go/v4"
)

// Store persists one Record per area key. Put overwrites any existing
// record for the key; Get returns ErrRecordNotFound when none exists.
type Store interface {
	Put(ctx context.Context, areaKey string, rec *Record) error
	Get(ctx context.Context, areaKey string) (*Record, error)
}

// Partition names under the data directory. Only the brief partition is
// written by the upload path; the other two hold curated archives.
const (
	PartitionBrief      = "brief"
	PartitionCasos      = "casos"
	PartitionGuidelines = "guidelines"
)

// FileStore keeps one human-readable UTF-8 JSON document per area key
// under <baseDir>/brief. Writes go to a temp file in the same directory
// and are moved into place with a rename, so readers never observe a
// partially-written document. Writes to the same key are serialized with a
// per-key mutex.
type FileStore struct {
	baseDir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewFileStore provisions the partition directories and returns the store.
func NewFileStore(baseDir string) (*FileStore, error) {
	for _, p := range []string{PartitionBrief, PartitionCasos, PartitionGuidelines} {
		if err := os.MkdirAll(filepath.Join(baseDir, p), 0o755); err != nil {
			return nil, fmt.Errorf("failed to provision knowledge dir %s: %w", p, err)
		}
	}
	return &FileStore{
		baseDir: baseDir,
		locks:   make(map[string]*sync.Mutex),
	}, nil
}

func (s *FileStore) keyLock(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	return l
}

// safeKey reduces a caller-supplied free-text area key to a filename.
// Knowledge keys are not restricted to the four generation areas.
func safeKey(key string) string {
	key = strings.TrimSpace(key)
	var b strings.Builder
	for _, r := range key {
		switch {
		case r == '/' || r == '\\' || r == ':' || r == '.' || r == 0:
			b.WriteRune('-')
		case r == ' ':
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.baseDir, PartitionBrief, safeKey(key)+".json")
}

// Put atomically replaces the persisted document for the key.
func (s *FileStore) Put(ctx context.Context, areaKey string, rec *Record) error {
	if strings.TrimSpace(areaKey) == "" {
		return ErrMissingAreaKey
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return fmt.Errorf("failed to encode knowledge record: %w", err)
	}

	lock := s.keyLock(safeKey(areaKey))
	lock.Lock()
	defer lock.Unlock()

	dir := filepath.Join(s.baseDir, PartitionBrief)
	tmp, err := os.CreateTemp(dir, ".brief-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to stage knowledge record: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write knowledge record: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write knowledge record: %w", err)
	}
	if err := os.Rename(tmpName, s.path(areaKey)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to persist knowledge record: %w", err)
	}
	return nil
}

// Get loads the persisted document for the key. Decoding goes through
// hjson so hand-edited documents with comments or trailing commas still
// load.
func (s *FileStore) Get(ctx context.Context, areaKey string) (*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path(areaKey))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, areaKey)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read knowledge record: %w", err)
	}

	var lenient interface{}
	if err := hjson.Unmarshal(data, &lenient); err != nil {
		return nil, fmt.Errorf("failed to parse knowledge record %s: %w", areaKey, err)
	}
	strict, err := json.Marshal(lenient)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode knowledge record %s: %w", areaKey, err)
	}

	var rec Record
	if err := json.Unmarshal(strict, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode knowledge record %s: %w", areaKey, err)
	}
	return &rec, nil
}
