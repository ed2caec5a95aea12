package defaults

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/Raghav-2611/saanjha/internal/fileutil"
	"go.uber.org/zap"
)

// File keeps every key in a single JSON object on disk. Values must be JSON
// documents; they are stored inline so the file stays readable.
type File struct {
	mu        sync.Mutex
	path      string
	values    map[string]json.RawMessage
	recovered string
}

// OpenFile reads the defaults file at path. A missing file is treated as empty
// and is only created on the first write.
//
// A file that is not a JSON object is moved aside to path+".corrupt" and f
// starts empty; RecoveredFrom reports where it went.
func OpenFile(path string, opts ...Option) (*File, error) {
	if path == "" {
		return nil, errors.New("defaults path is empty")
	}
	o := newOptions(opts)

	f := &File{path: path, values: make(map[string]json.RawMessage)}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return f, nil
		}
		return nil, fmt.Errorf("read defaults: %w", err)
	}
	if len(data) == 0 {
		return f, nil
	}
	if err := json.Unmarshal(data, &f.values); err != nil {
		backup := path + ".corrupt"
		if renameErr := os.Rename(path, backup); renameErr != nil {
			return nil, fmt.Errorf("parse defaults %s: %w (moving it aside failed: %v)", path, err, renameErr)
		}
		o.logger.Warn("defaults file unreadable, starting empty",
			zap.String("path", path), zap.String("backup", backup), zap.Error(err))
		f.values = make(map[string]json.RawMessage)
		f.recovered = backup
		return f, nil
	}
	if f.values == nil {
		f.values = make(map[string]json.RawMessage)
	}
	return f, nil
}

// RecoveredFrom returns where an unreadable file was moved on open, or "".
func (f *File) RecoveredFrom() string {
	return f.recovered
}

// Path returns the file backing f.
func (f *File) Path() string {
	return f.path
}

func (f *File) Data(key string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	v, ok := f.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (f *File) SetData(key string, data []byte) error {
	if !json.Valid(data) {
		return fmt.Errorf("value for '%s' is not valid JSON", key)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.values[key] = append(json.RawMessage(nil), data...)
	return f.flush()
}

func (f *File) Remove(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.values[key]; !ok {
		return nil
	}
	delete(f.values, key)
	return f.flush()
}

// Close is a no-op; every write is already on disk.
func (f *File) Close() error {
	return nil
}

// flush must be called with f.mu held.
func (f *File) flush() error {
	data, err := json.MarshalIndent(f.values, "", "  ")
	if err != nil {
		return err
	}
	if err := fileutil.WriteAtomic(f.path, data, 0o600); err != nil {
		return fmt.Errorf("write defaults: %w", err)
	}
	return nil
}
