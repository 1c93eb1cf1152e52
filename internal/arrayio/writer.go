package arrayio

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/SwamWithTurtles/core.matrix/internal/ndarray"
)

// Archive accumulates named arrays for writing. Payloads are packed
// row-major at Add time, so views are stored by value, not by buffer.
type Archive struct {
	entries []entry
	names   map[string]bool
}

type entry struct {
	meta    arrayMeta
	payload []byte
}

// NewArchive creates an empty archive.
func NewArchive() *Archive {
	return &Archive{names: make(map[string]bool)}
}

// Add stores a packed copy of a under name. Boxed arrays have no stable
// byte representation and are rejected with ndarray.ErrUnsupported.
func Add[T any](ar *Archive, name string, a *ndarray.Array[T]) error {
	if name == "" {
		return fmt.Errorf("empty array name: %w", ErrCorrupt)
	}
	if ar.names[name] {
		return fmt.Errorf("array %q: %w", name, ErrDuplicateName)
	}

	payload, kind, err := encodePayload(any(a.Clone().Data()))
	if err != nil {
		return fmt.Errorf("array %q: %w", name, err)
	}

	ar.names[name] = true
	ar.entries = append(ar.entries, entry{
		meta: arrayMeta{
			Name:  name,
			Kind:  kind,
			Shape: a.Shape().Clone(),
		},
		payload: payload,
	})
	return nil
}

// Len returns the number of stored arrays.
func (ar *Archive) Len() int {
	return len(ar.entries)
}

// WriteTo writes the full archive: prefix, header, padding, data section
// and checksum trailer. It implements io.WriterTo.
func (ar *Archive) WriteTo(w io.Writer) (int64, error) {
	metas := make([]arrayMeta, len(ar.entries))
	var offset int64
	for i, e := range ar.entries {
		m := e.meta
		m.Offset = offset
		m.Size = int64(len(e.payload))
		metas[i] = m
		offset += m.Size
	}

	headerJSON, err := json.Marshal(header{
		Version:   formatVersion,
		CreatedAt: time.Now().UTC(),
		Arrays:    metas,
	})
	if err != nil {
		return 0, fmt.Errorf("marshal header: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(magicBytes)
	if err := binary.Write(&buf, binary.LittleEndian, uint32(formatVersion)); err != nil {
		return 0, err
	}
	if err := binary.Write(&buf, binary.LittleEndian, uint64(len(headerJSON))); err != nil {
		return 0, err
	}
	buf.Write(headerJSON)

	if pad := (dataAlignment - buf.Len()%dataAlignment) % dataAlignment; pad > 0 {
		buf.Write(make([]byte, pad))
	}
	for _, e := range ar.entries {
		buf.Write(e.payload)
	}

	sum := sha256.Sum256(buf.Bytes())
	buf.Write(sum[:])

	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

// encodePayload packs a backing slice into little-endian bytes.
func encodePayload(data any) ([]byte, string, error) {
	switch d := data.(type) {
	case []int64:
		out := make([]byte, 8*len(d))
		for i, v := range d {
			binary.LittleEndian.PutUint64(out[8*i:], uint64(v))
		}
		return out, kindInt64, nil
	case []float32:
		out := make([]byte, 4*len(d))
		for i, v := range d {
			binary.LittleEndian.PutUint32(out[4*i:], math.Float32bits(v))
		}
		return out, kindFloat32, nil
	case []float64:
		out := make([]byte, 8*len(d))
		for i, v := range d {
			binary.LittleEndian.PutUint64(out[8*i:], math.Float64bits(v))
		}
		return out, kindFloat64, nil
	}
	return nil, "", fmt.Errorf("boxed elements have no byte representation: %w", ndarray.ErrUnsupported)
}
