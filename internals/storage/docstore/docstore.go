// Package docstore is a file-backed document store: one JSON document per
// record inside a single directory, the document being the sole source of
// truth. There is no index — every read re-derives state from the files.
package docstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	ErrNotFound = errors.New("docstore: record not found")
)

// WriteError wraps an I/O failure while persisting a document.
type WriteError struct {
	ID  string
	Err error
}

func (e *WriteError) Error() string { return fmt.Sprintf("docstore: write %s: %v", e.ID, e.Err) }
func (e *WriteError) Unwrap() error { return e.Err }

// Store keeps one collection of T documents under dir. Files are named
// <prefix><id>.json. The normalize hook runs on every decode so that
// documents written by earlier schema versions get their defaults filled
// in one place instead of at every call site.
//
// No in-process locks: concurrent creates are safe (ids carry random
// entropy, filenames are disjoint), but update/delete on the same id are
// last-writer-wins. Acceptable for a single-operator moderation workflow.
type Store[T any] struct {
	dir       string
	prefix    string
	normalize func(*T)
}

func New[T any](dir, prefix string, normalize func(*T)) *Store[T] {
	return &Store[T]{dir: dir, prefix: prefix, normalize: normalize}
}

// Path returns the on-disk location of a record. The naming convention is
// load-bearing; callers serve and delete files derived from it.
func (s *Store[T]) Path(id string) string {
	return filepath.Join(s.dir, s.prefix+id+".json")
}

// Create persists doc under id as one atomic write (temp file + rename).
func (s *Store[T]) Create(id string, doc *T) error {
	if err := s.write(id, doc); err != nil {
		return &WriteError{ID: id, Err: err}
	}
	return nil
}

// Get returns the document for id, or ErrNotFound.
func (s *Store[T]) Get(id string) (*T, error) {
	return s.read(s.Path(id))
}

// List enumerates every document newest-first by file modification time
// and keeps those matching pred (nil pred keeps everything). Listing is
// not snapshot-isolated: writes racing with the scan may or may not be
// observed.
func (s *Store[T]) List(pred func(*T) bool) ([]*T, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	type candidate struct {
		path  string
		mtime int64
	}
	files := make([]candidate, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		if s.prefix != "" && !strings.HasPrefix(e.Name(), s.prefix) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue // deleted mid-scan
		}
		files = append(files, candidate{
			path:  filepath.Join(s.dir, e.Name()),
			mtime: info.ModTime().UnixNano(),
		})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].mtime > files[j].mtime })

	items := make([]*T, 0, len(files))
	for _, f := range files {
		doc, err := s.read(f.path)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue // deleted mid-scan
			}
			log.Printf("[WARN] docstore: skipping unreadable %s: %v", f.path, err)
			continue
		}
		if pred == nil || pred(doc) {
			items = append(items, doc)
		}
	}
	return items, nil
}

// Update is a read-modify-write: it loads the record, applies mutate and
// persists the result. Not transactional across processes; two operators
// updating the same id race last-writer-wins.
func (s *Store[T]) Update(id string, mutate func(*T) error) (*T, error) {
	doc, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := mutate(doc); err != nil {
		return nil, err
	}
	if err := s.write(id, doc); err != nil {
		return nil, &WriteError{ID: id, Err: err}
	}
	return doc, nil
}

// Delete removes the document. A second delete of the same id returns
// ErrNotFound rather than an I/O error.
func (s *Store[T]) Delete(id string) error {
	err := os.Remove(s.Path(id))
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	return err
}

func (s *Store[T]) read(path string) (*T, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	doc := new(T)
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, err
	}
	if s.normalize != nil {
		s.normalize(doc)
	}
	return doc, nil
}

func (s *Store[T]) write(id string, doc *T) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.Path(id))
}
