// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package peps provides access to the bundled PEP documents: validating the
// identifier given on the command line, resolving it to a file and reading it.
package peps

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// RandomToken is the identifier that asks for a random bundled document.
const RandomToken = "random"

// fileNameWidth is the zero-padded width of the number in a document file name.
const fileNameWidth = 4

var (
	// ErrInvalidArgument is returned for identifiers that are neither an integer nor "random".
	ErrInvalidArgument = errors.New(`argument should be an integer or 'random'`)

	// ErrDocumentNotFound is returned when no file exists for a resolved identifier.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrNoDocumentsFound is returned when a random document is requested from an empty bundle.
	ErrNoDocumentsFound = errors.New("no documents found in bundle")
)

// Document is one PEP read from a store.
type Document struct {
	Number  string // Identifier text as resolved (never "random")
	Path    string // Path of the file inside the store
	Content []byte // Raw markdown
}

// ValidateNumber returns value unchanged if it is an integer or the literal "random".
// Integers are decimal digits with an optional sign; surrounding whitespace and
// digit separators such as "1_000" are rejected.
func ValidateNumber(value string) (string, error) {
	if value == RandomToken {
		return value, nil
	}
	if _, ok := new(big.Int).SetString(value, 10); !ok {
		return "", fmt.Errorf("invalid value %q: %w", value, ErrInvalidArgument)
	}
	return value, nil
}

// FileName returns the bundle file name for an identifier, e.g. "8" -> "pep-0008.md".
func FileName(number string) string {
	return "pep-" + zeroPad(number, fileNameWidth) + ".md"
}

// zeroPad left-fills s with zeros up to width, keeping a leading sign in front.
// Longer strings are returned untouched.
func zeroPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	sign := ""
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		sign, s = s[:1], s[1:]
	}
	return sign + strings.Repeat("0", width-len(sign)-len(s)) + s
}
