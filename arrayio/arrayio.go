// Copyright 2026 The core.matrix Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package arrayio reads and writes .ndar archives: named arrays stored with
// a JSON header, a 64-byte aligned little-endian data section, and a SHA-256
// checksum trailer.
//
// Example:
//
//	ar := arrayio.NewArchive()
//	_ = arrayio.Add(ar, "weights", w)
//	_ = arrayio.WriteFile("model.ndar", ar)
//
//	f, _ := arrayio.ReadFile("model.ndar")
//	w2, _ := arrayio.Get[float64](f, "weights")
package arrayio

import (
	"fmt"
	"io"
	"os"

	"github.com/SwamWithTurtles/core.matrix/internal/arrayio"
	"github.com/SwamWithTurtles/core.matrix/ndarray"
)

// Archive accumulates named arrays for writing.
type Archive = arrayio.Archive

// File is a parsed, checksum-verified archive.
type File = arrayio.File

// Sentinel errors, matched with errors.Is.
var (
	ErrBadMagic         = arrayio.ErrBadMagic
	ErrBadVersion       = arrayio.ErrBadVersion
	ErrChecksumMismatch = arrayio.ErrChecksumMismatch
	ErrCorrupt          = arrayio.ErrCorrupt
	ErrNotFound         = arrayio.ErrNotFound
	ErrKindMismatch     = arrayio.ErrKindMismatch
	ErrDuplicateName    = arrayio.ErrDuplicateName
)

// NewArchive creates an empty archive.
func NewArchive() *Archive {
	return arrayio.NewArchive()
}

// Add stores a packed copy of a under name. Boxed arrays are rejected with
// ndarray.ErrUnsupported.
func Add[T any](ar *Archive, name string, a *ndarray.Array[T]) error {
	return arrayio.Add(ar, name, a)
}

// ReadArchive parses and verifies an archive from r.
func ReadArchive(r io.Reader) (*File, error) {
	return arrayio.ReadArchive(r)
}

// Get decodes the named array; the element type must match the stored kind.
func Get[T any](f *File, name string) (*ndarray.Array[T], error) {
	return arrayio.Get[T](f, name)
}

// WriteFile writes an archive to path.
func WriteFile(path string, ar *Archive) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create archive: %w", err)
	}
	if _, err := ar.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write archive: %w", err)
	}
	return f.Close()
}

// ReadFile parses and verifies the archive at path.
func ReadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer f.Close()
	return arrayio.ReadArchive(f)
}
