package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/BurntSushi/toml"
)

// FileStore keeps items in a TOML file:
//
//	[items]
//	todo = '[{"id":1,"name":"Buy milk","done":false}]'
//
// Every operation re-reads the file so separate processes sharing a path see
// each other's writes. Writes go to a temp file that is renamed into place.
type FileStore struct {
	mu     sync.Mutex
	path   string
	closed bool
}

type fileDoc struct {
	Items map[string]string `toml:"items"`
}

// OpenFileStore opens (and if needed creates the directory for) a file store.
// The file itself is created on first write.
func OpenFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("file store path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &FileStore{path: path}, nil
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) GetItem(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return "", false, ErrClosed
	}
	doc, err := s.read()
	if err != nil {
		return "", false, err
	}
	v, ok := doc.Items[key]
	return v, ok, nil
}

func (s *FileStore) SetItem(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	doc, err := s.read()
	if err != nil {
		return err
	}
	doc.Items[key] = value
	return s.write(doc)
}

func (s *FileStore) RemoveItem(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	doc, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := doc.Items[key]; !ok {
		return nil
	}
	delete(doc.Items, key)
	return s.write(doc)
}

func (s *FileStore) Keys(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(doc.Items))
	for k := range doc.Items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *FileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *FileStore) read() (*fileDoc, error) {
	doc := &fileDoc{}
	if _, err := toml.DecodeFile(s.path, doc); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read store file: %w", err)
		}
	}
	if doc.Items == nil {
		doc.Items = make(map[string]string)
	}
	return doc, nil
}

func (s *FileStore) write(doc *fileDoc) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return fmt.Errorf("encode store file: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write store file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace store file: %w", err)
	}
	return nil
}
