package arrayio

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/SwamWithTurtles/core.matrix/internal/ndarray"
)

// File is a parsed archive with its checksum and layout already validated.
type File struct {
	byName map[string]entry
}

// ReadArchive parses an archive. The checksum is verified before anything
// in the body is trusted.
func ReadArchive(r io.Reader) (*File, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read archive: %w", err)
	}
	if len(raw) < fixedPrefix+checksumSize {
		return nil, fmt.Errorf("archive of %d bytes is shorter than the fixed layout: %w", len(raw), ErrCorrupt)
	}

	body := raw[:len(raw)-checksumSize]
	stored := raw[len(raw)-checksumSize:]
	sum := sha256.Sum256(body)
	if !bytes.Equal(sum[:], stored) {
		return nil, ErrChecksumMismatch
	}

	if string(body[:4]) != magicBytes {
		return nil, ErrBadMagic
	}
	if v := binary.LittleEndian.Uint32(body[4:8]); v != formatVersion {
		return nil, fmt.Errorf("version %d: %w", v, ErrBadVersion)
	}

	headerLen := binary.LittleEndian.Uint64(body[8:16])
	if headerLen > maxHeaderSize || fixedPrefix+int(headerLen) > len(body) {
		return nil, fmt.Errorf("header of %d bytes exceeds the archive: %w", headerLen, ErrCorrupt)
	}
	var hdr header
	if err := json.Unmarshal(body[fixedPrefix:fixedPrefix+int(headerLen)], &hdr); err != nil {
		return nil, fmt.Errorf("decode header: %w (%w)", err, ErrCorrupt)
	}
	if len(hdr.Arrays) > maxArrays {
		return nil, fmt.Errorf("%d arrays exceeds the archive limit: %w", len(hdr.Arrays), ErrCorrupt)
	}

	dataStart := fixedPrefix + int(headerLen)
	dataStart += (dataAlignment - dataStart%dataAlignment) % dataAlignment
	if dataStart > len(body) {
		return nil, fmt.Errorf("data section starts past the archive end: %w", ErrCorrupt)
	}
	data := body[dataStart:]

	f := &File{byName: make(map[string]entry, len(hdr.Arrays))}
	for _, m := range hdr.Arrays {
		if err := validateMeta(m, int64(len(data))); err != nil {
			return nil, err
		}
		if _, dup := f.byName[m.Name]; dup {
			return nil, fmt.Errorf("array %q: %w", m.Name, ErrDuplicateName)
		}
		f.byName[m.Name] = entry{meta: m, payload: data[m.Offset : m.Offset+m.Size]}
	}
	return f, nil
}

// validateMeta rejects layouts that do not describe a well-formed payload
// inside the data section.
func validateMeta(m arrayMeta, dataLen int64) error {
	if m.Name == "" {
		return fmt.Errorf("unnamed array in header: %w", ErrCorrupt)
	}
	if m.Offset < 0 || m.Size < 0 || m.Offset+m.Size > dataLen {
		return fmt.Errorf("array %q payload [%d, %d) outside data section of %d bytes: %w",
			m.Name, m.Offset, m.Offset+m.Size, dataLen, ErrCorrupt)
	}
	elemSize, ok := kindElemSize(m.Kind)
	if !ok {
		return fmt.Errorf("array %q has unknown kind %q: %w", m.Name, m.Kind, ErrCorrupt)
	}
	shape := ndarray.Shape(m.Shape)
	if err := shape.Validate(); err != nil {
		return fmt.Errorf("array %q: %w (%w)", m.Name, err, ErrCorrupt)
	}
	if int64(shape.NumElements())*int64(elemSize) != m.Size {
		return fmt.Errorf("array %q shape %v does not cover %d payload bytes: %w",
			m.Name, m.Shape, m.Size, ErrCorrupt)
	}
	return nil
}

// Names returns the stored array names in sorted order.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.byName))
	for name := range f.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get decodes the named array. The requested element type must match the
// stored kind exactly.
func Get[T any](f *File, name string) (*ndarray.Array[T], error) {
	e, ok := f.byName[name]
	if !ok {
		return nil, fmt.Errorf("array %q: %w", name, ErrNotFound)
	}
	want, elemSize, ok := kindOf[T]()
	if !ok {
		return nil, fmt.Errorf("array %q: boxed elements have no byte representation: %w", name, ndarray.ErrUnsupported)
	}
	if e.meta.Kind != want {
		return nil, fmt.Errorf("array %q stores %s, requested %s: %w", name, e.meta.Kind, want, ErrKindMismatch)
	}

	out := make([]T, len(e.payload)/elemSize)
	switch dst := any(out).(type) {
	case []int64:
		for i := range dst {
			dst[i] = int64(binary.LittleEndian.Uint64(e.payload[8*i:]))
		}
	case []float32:
		for i := range dst {
			dst[i] = math.Float32frombits(binary.LittleEndian.Uint32(e.payload[4*i:]))
		}
	case []float64:
		for i := range dst {
			dst[i] = math.Float64frombits(binary.LittleEndian.Uint64(e.payload[8*i:]))
		}
	}
	return ndarray.FromSlice(out, ndarray.Shape(e.meta.Shape))
}

// kindOf maps an element type parameter to its stored kind name and size.
func kindOf[T any]() (string, int, bool) {
	var zero T
	switch any(zero).(type) {
	case int64:
		return kindInt64, 8, true
	case float32:
		return kindFloat32, 4, true
	case float64:
		return kindFloat64, 8, true
	}
	return "", 0, false
}

// kindElemSize returns the byte size of one element of a stored kind.
func kindElemSize(kind string) (int, bool) {
	switch kind {
	case kindInt64, kindFloat64:
		return 8, true
	case kindFloat32:
		return 4, true
	}
	return 0, false
}
