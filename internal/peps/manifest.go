// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package peps

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ManifestFile is the name of the manifest inside a bundle directory.
const ManifestFile = "manifest.yaml"

var fileNamePattern = regexp.MustCompile(`^pep-(\d+)\.md$`)

// pepHeadingPrefix matches "PEP 8 -- " or "PEP 8 - " at the start of a heading.
var pepHeadingPrefix = regexp.MustCompile(`^PEP\s+\d+\s+[-–—]+\s*`)

// Entry describes one bundled document.
type Entry struct {
	// Number is the PEP number
	Number int `yaml:"number"`

	// Title is the document title, taken from its first heading or Title field
	Title string `yaml:"title,omitempty"`

	// File is the file name relative to the bundle root
	File string `yaml:"file"`
}

// Manifest enumerates the documents of a bundle. It is written at packaging
// time by genmanifest and only read at runtime.
type Manifest struct {
	Entries []Entry `yaml:"peps"`
}

// Lookup returns the entry for a PEP number.
func (m Manifest) Lookup(number int) (Entry, bool) {
	i := sort.Search(len(m.Entries), func(i int) bool { return m.Entries[i].Number >= number })
	if i < len(m.Entries) && m.Entries[i].Number == number {
		return m.Entries[i], true
	}
	return Entry{}, false
}

// LoadManifest reads and parses the manifest at the root of fsys.
func LoadManifest(fsys afero.Fs) (Manifest, error) {
	data, err := afero.ReadFile(fsys, ManifestFile)
	if err != nil {
		return Manifest{}, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("failed to parse manifest: %w", err)
	}
	sortEntries(m.Entries)
	return m, nil
}

// BuildManifest scans the root of fsys for pep-NNNN.md files and records each
// with its title.
func BuildManifest(fsys afero.Fs) (Manifest, error) {
	infos, err := afero.ReadDir(fsys, ".")
	if err != nil {
		return Manifest{}, fmt.Errorf("failed to list bundle directory: %w", err)
	}

	m := Manifest{Entries: []Entry{}}
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		match := fileNamePattern.FindStringSubmatch(info.Name())
		if match == nil {
			continue
		}
		number, err := strconv.Atoi(match[1])
		if err != nil {
			return Manifest{}, fmt.Errorf("bad document number in %s: %w", info.Name(), err)
		}
		content, err := afero.ReadFile(fsys, info.Name())
		if err != nil {
			return Manifest{}, fmt.Errorf("failed to read %s: %w", info.Name(), err)
		}
		m.Entries = append(m.Entries, Entry{
			Number: number,
			Title:  ExtractTitle(content),
			File:   info.Name(),
		})
	}
	sortEntries(m.Entries)
	return m, nil
}

// WriteManifest writes m as YAML to the root of fsys.
func WriteManifest(fsys afero.Fs, m Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest to YAML: %w", err)
	}
	if err := afero.WriteFile(fsys, ManifestFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", ManifestFile, err)
	}
	return nil
}

// Validate checks that every manifest entry names a file present in fsys.
func (m Manifest) Validate(fsys afero.Fs) error {
	for _, e := range m.Entries {
		if path.Base(e.File) != e.File {
			return fmt.Errorf("manifest entry %d: file %q must be at the bundle root", e.Number, e.File)
		}
		if _, err := fsys.Stat(e.File); err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("manifest entry %d: %w: %s", e.Number, ErrDocumentNotFound, e.File)
			}
			return fmt.Errorf("manifest entry %d: %w", e.Number, err)
		}
	}
	return nil
}

// ExtractTitle returns the title of a PEP markdown document. A "Title:" header
// field wins; otherwise the first heading is used with any "PEP N --" prefix removed.
func ExtractTitle(content []byte) string {
	var heading string
	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if after, ok := strings.CutPrefix(line, "Title:"); ok {
			return strings.TrimSpace(after)
		}
		if heading == "" && strings.HasPrefix(line, "#") {
			heading = strings.TrimSpace(strings.TrimLeft(line, "#"))
		}
	}
	return pepHeadingPrefix.ReplaceAllString(heading, "")
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].Number < entries[j].Number })
}
