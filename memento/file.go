package memento

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// File stores all keys in a single JSON object on disk. Every update rewrites
// the file through a temporary file and a rename.
type File struct {
	path string

	mu     sync.Mutex
	data   []byte
	closed bool
}

// OpenFile loads the JSON document at path. A missing file is treated as an
// empty store and created on the first update.
func OpenFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read state file: %w", err)
		}
		data = []byte("{}")
	}

	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("state file %s is not valid JSON", path)
	}

	return &File{path: path, data: data}, nil
}

// Path returns the location of the state file.
func (f *File) Path() string {
	return f.path
}

// Get implements [wordmark.Memento].
func (f *File) Get(key string, dst any) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return false, ErrClosed
	}

	res := gjson.GetBytes(f.data, gjson.Escape(key))
	if !res.Exists() {
		return false, nil
	}
	if err := json.Unmarshal([]byte(res.Raw), dst); err != nil {
		return true, fmt.Errorf("decode %q: %w", key, err)
	}
	return true, nil
}

// Update implements [wordmark.Memento].
func (f *File) Update(ctx context.Context, key string, value any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrClosed
	}

	data, err := sjson.SetRawBytes(f.data, gjson.Escape(key), raw)
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	if err := writeFileAtomic(f.path, data); err != nil {
		return err
	}
	f.data = data
	return nil
}

// Keys returns the top level keys of the state file.
func (f *File) Keys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	var keys []string
	gjson.ParseBytes(f.data).ForEach(func(key, _ gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})
	return keys
}

func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".wordmark-*.json")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close state file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}
