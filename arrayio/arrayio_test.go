// Copyright 2026 The core.matrix Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package arrayio_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SwamWithTurtles/core.matrix/arrayio"
	"github.com/SwamWithTurtles/core.matrix/ndarray"
)

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.ndar")

	w, err := ndarray.FromSlice([]float64{1, 2, 3, 4, 5, 6}, ndarray.Shape{2, 3})
	require.NoError(t, err)

	ar := arrayio.NewArchive()
	require.NoError(t, arrayio.Add(ar, "weights", w))
	require.NoError(t, arrayio.WriteFile(path, ar))

	f, err := arrayio.ReadFile(path)
	require.NoError(t, err)

	got, err := arrayio.Get[float64](f, "weights")
	require.NoError(t, err)
	assert.True(t, ndarray.Equal(w, got))

	_, err = arrayio.Get[float64](f, "nope")
	assert.ErrorIs(t, err, arrayio.ErrNotFound)
}

func TestReadFileMissing(t *testing.T) {
	_, err := arrayio.ReadFile(filepath.Join(t.TempDir(), "absent.ndar"))
	assert.Error(t, err)
}
