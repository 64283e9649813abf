// Package store persists rendered artifacts under a root directory and
// hands back retrievable references. It is written against afero.Fs so the
// gallery can run on the OS filesystem in the CLI and on an in-memory
// filesystem in tests. The dithering engine never touches the store; only
// callers that want to keep their output do.
package store

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// Ref is a retrievable reference to a stored artifact.
type Ref struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// Store is an artifact store rooted at a directory of an afero filesystem.
type Store struct {
	fs   afero.Fs
	root string
}

// New returns a store over the OS filesystem rooted at root.
func New(root string) *Store {
	return NewFS(afero.NewOsFs(), root)
}

// NewFS returns a store over fsys rooted at root.
func NewFS(fsys afero.Fs, root string) *Store {
	return &Store{fs: fsys, root: root}
}

// resolve maps a store path to a filesystem path, rejecting paths that
// would escape the root.
func (s *Store) resolve(p string) (string, error) {
	clean := path.Clean("/" + p)
	if clean == "/" {
		return "", fmt.Errorf("store: empty path")
	}
	return path.Join(s.root, clean[1:]), nil
}

// Save writes payload at p, creating parent directories as needed, and
// returns the stored reference.
func (s *Store) Save(p string, payload []byte) (Ref, error) {
	full, err := s.resolve(p)
	if err != nil {
		return Ref{}, err
	}
	if dir := path.Dir(full); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return Ref{}, fmt.Errorf("store: save %s: %w", p, err)
		}
	}
	if err := afero.WriteFile(s.fs, full, payload, 0o644); err != nil {
		return Ref{}, fmt.Errorf("store: save %s: %w", p, err)
	}
	return s.stat(p, full)
}

// Get returns the payload stored at p.
func (s *Store) Get(p string) ([]byte, error) {
	full, err := s.resolve(p)
	if err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(s.fs, full)
	if err != nil {
		return nil, fmt.Errorf("store: get %s: %w", p, err)
	}
	return data, nil
}

// List returns references for every artifact whose path starts with
// prefix, sorted by path. An empty prefix lists the whole store. A missing
// root directory is an empty store, not an error.
func (s *Store) List(prefix string) ([]Ref, error) {
	var refs []Ref
	err := afero.Walk(s.fs, s.root, func(full string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel := strings.TrimPrefix(strings.TrimPrefix(full, s.root), "/")
		if prefix != "" && !strings.HasPrefix(rel, prefix) {
			return nil
		}
		refs = append(refs, Ref{Path: rel, Size: info.Size(), ModTime: info.ModTime()})
		return nil
	})
	if err != nil {
		if exists, _ := afero.DirExists(s.fs, s.root); !exists {
			return nil, nil
		}
		return nil, fmt.Errorf("store: list: %w", err)
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].Path < refs[j].Path })
	return refs, nil
}

// Remove deletes the artifact at p.
func (s *Store) Remove(p string) error {
	full, err := s.resolve(p)
	if err != nil {
		return err
	}
	if err := s.fs.Remove(full); err != nil {
		return fmt.Errorf("store: remove %s: %w", p, err)
	}
	return nil
}

func (s *Store) stat(p, full string) (Ref, error) {
	info, err := s.fs.Stat(full)
	if err != nil {
		return Ref{}, fmt.Errorf("store: stat %s: %w", p, err)
	}
	return Ref{Path: strings.TrimPrefix(path.Clean("/"+p), "/"), Size: info.Size(), ModTime: info.ModTime()}, nil
}
