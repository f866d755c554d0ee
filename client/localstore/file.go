package localstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps every key in a single JSON document on disk. The
// document is read once on open and rewritten after every change, so a
// restart rehydrates whatever the last writer saved.
type FileStore struct {
	mu      sync.Mutex
	path    string
	entries map[string]json.RawMessage
}

// OpenFile loads the store at path, creating parent directories as
// needed. A missing or unreadable document starts the store empty.
func OpenFile(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	fs := &FileStore{
		path:    path,
		entries: make(map[string]json.RawMessage),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fs, nil
		}
		return nil, err
	}

	// Corrupt document: start over rather than fail
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(data, &entries); err == nil && entries != nil {
		fs.entries = entries
	}
	return fs, nil
}

func (fs *FileStore) Load(key string, out any) bool {
	fs.mu.Lock()
	raw, ok := fs.entries[key]
	fs.mu.Unlock()
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false
	}
	return true
}

func (fs *FileStore) Save(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.entries[key] = raw
	return fs.flush()
}

func (fs *FileStore) Delete(key string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if _, ok := fs.entries[key]; !ok {
		return nil
	}
	delete(fs.entries, key)
	return fs.flush()
}

// flush writes the document atomically: temp file, then rename.
// Callers must hold fs.mu.
func (fs *FileStore) flush() error {
	data, err := json.MarshalIndent(fs.entries, "", "  ")
	if err != nil {
		return err
	}

	tmp := fs.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, fs.path)
}
