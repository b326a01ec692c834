// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package peps

import (
	"embed"
	"io/fs"

	"github.com/spf13/afero"
)

//go:generate go run ../../cmd/genmanifest --dir data

//go:embed data
var bundledFiles embed.FS

// BundleFS returns the embedded bundle as a read-only filesystem rooted at the
// directory holding the documents and manifest.
func BundleFS() afero.Fs {
	sub, err := fs.Sub(bundledFiles, "data")
	if err != nil {
		panic(err)
	}
	return afero.FromIOFS{FS: sub}
}

// Bundled returns a store over the documents embedded in the binary.
func Bundled(opts ...Option) (*Store, error) {
	return NewStore(BundleFS(), opts...)
}
