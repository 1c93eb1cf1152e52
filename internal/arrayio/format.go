// Package arrayio persists arrays in the .ndar archive format: magic bytes,
// a JSON header describing the stored arrays, an aligned little-endian data
// section, and a SHA-256 checksum trailer covering everything before it.
package arrayio

import "time"

const (
	magicBytes    = "NDAR"
	formatVersion = 1
	dataAlignment = 64 // data section starts on a 64-byte boundary
	checksumSize  = 32 // SHA-256 trailer
	fixedPrefix   = 16 // magic(4) + version(4) + header length(8)

	maxHeaderSize = 64 << 20
	maxArrays     = 1 << 16
)

// Element kind names as stored in headers.
const (
	kindInt64   = "int64"
	kindFloat32 = "float32"
	kindFloat64 = "float64"
)

// header is the JSON document between the fixed prefix and the data section.
type header struct {
	Version   int         `json:"version"`
	CreatedAt time.Time   `json:"created_at"`
	Arrays    []arrayMeta `json:"arrays"`
}

// arrayMeta describes one stored array. Offset and Size locate its payload
// within the data section.
type arrayMeta struct {
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Shape  []int  `json:"shape"`
	Offset int64  `json:"offset"`
	Size   int64  `json:"size"`
}
