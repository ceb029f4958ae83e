package ziplong

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// Size is the width of a ZIP long field in bytes.
const Size = 4

var (
	// ErrOutOfBounds is returned when fewer than Size bytes are available.
	ErrOutOfBounds      = errors.New("ziplong: buffer too short")
	// ErrUnknownSignature is returned by Identify for unregistered values.
	ErrUnknownSignature = errors.New("ziplong: unknown signature")
)

func checkBounds(b []byte, off int) error {
	if off < 0 || len(b)-off < Size {
		return errors.Wrapf(ErrOutOfBounds, "need %d bytes at offset %d, have %d", Size, off, len(b))
	}
	return nil
}

// Decode returns the unsigned little-endian value of the four bytes at off.
func Decode(b []byte, off int) (int64, error) {
	if err := checkBounds(b, off); err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint32(b[off:])), nil
}

// Encode returns the low 32 bits of v as four little-endian bytes.
func Encode(v int64) []byte {
	b := make([]byte, Size)
	binary.LittleEndian.PutUint32(b, uint32(v))
	return b
}

// PutValue writes the low 32 bits of v into buf at off.
func PutValue(v int64, buf []byte, off int) error {
	if err := checkBounds(buf, off); err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(buf[off:], uint32(v))
	return nil
}
