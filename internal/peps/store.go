// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package peps

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/rand/v2"
	"os"

	"github.com/spf13/afero"
)

// Store is a read-only collection of PEP documents with its manifest.
type Store struct {
	fs       afero.Fs
	manifest Manifest
	rng      *rand.Rand
}

// Option configures a Store.
type Option func(*Store)

// WithRand sets the random source used for "random" lookups.
func WithRand(rng *rand.Rand) Option {
	return func(s *Store) {
		s.rng = rng
	}
}

// NewStore creates a store over fsys, reading its manifest. The filesystem is
// wrapped read-only.
func NewStore(fsys afero.Fs, opts ...Option) (*Store, error) {
	ro := afero.NewReadOnlyFs(fsys)
	m, err := LoadManifest(ro)
	if err != nil {
		return nil, err
	}

	s := &Store{fs: ro, manifest: m}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// OpenDir creates a store over a bundle directory on disk.
func OpenDir(dir string, opts ...Option) (*Store, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open bundle directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("bundle path %s is not a directory", dir)
	}
	return NewStore(afero.NewBasePathFs(afero.NewOsFs(), dir), opts...)
}

// Manifest returns the store's manifest.
func (s *Store) Manifest() Manifest {
	return s.manifest
}

// Resolve maps a validated identifier to a file path inside the store.
// Numbers are not checked against the manifest; "random" picks a manifest entry.
func (s *Store) Resolve(number string) (string, error) {
	if number != RandomToken {
		return FileName(number), nil
	}

	entries := s.manifest.Entries
	if len(entries) == 0 {
		return "", ErrNoDocumentsFound
	}
	var i int
	if s.rng != nil {
		i = s.rng.IntN(len(entries))
	} else {
		i = rand.IntN(len(entries))
	}
	return entries[i].File, nil
}

// Read returns the full content of the file at path. The file is closed
// before returning, whether or not the read succeeded.
func (s *Store) Read(path string) ([]byte, error) {
	f, err := s.fs.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrDocumentNotFound, path, err)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return content, nil
}

// Load resolves and reads the document for a validated identifier.
func (s *Store) Load(number string) (Document, error) {
	path, err := s.Resolve(number)
	if err != nil {
		return Document{}, err
	}

	content, err := s.Read(path)
	if err != nil {
		return Document{}, err
	}

	resolved := number
	if number == RandomToken {
		if match := fileNamePattern.FindStringSubmatch(path); match != nil {
			resolved = match[1]
		}
	}
	return Document{Number: resolved, Path: path, Content: content}, nil
}
