// Package ziplong implements the four byte little-endian unsigned field
// used throughout ZIP headers for signatures, sizes and offsets.
package ziplong

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// Long is an unsigned 32-bit ZIP field held in an int64 so every bit
// pattern maps to a non-negative value. The zero value is 0.
//
// Construction does not range check. Values outside [0, 1<<32) are kept
// as given and only their low 32 bits are visible through Bytes and Put.
type Long struct {
	value int64
}

// New wraps v without range checking.
func New(v int64) Long {
	return Long{value: v}
}

// FromBytes decodes the four bytes of b starting at off.
func FromBytes(b []byte, off int) (Long, error) {
	v, err := Decode(b, off)
	if err != nil {
		return Long{}, err
	}
	return Long{value: v}, nil
}

// MustFromBytes is like FromBytes but panics on a short buffer.
func MustFromBytes(b []byte, off int) Long {
	l, err := FromBytes(b, off)
	if err != nil {
		panic(err)
	}
	return l
}

// Bytes returns a newly allocated little-endian encoding of l.
func (l Long) Bytes() []byte {
	return Encode(l.value)
}

// Put writes l into buf at off without reallocating buf.
func (l Long) Put(buf []byte, off int) error {
	return PutValue(l.value, buf, off)
}

// Value returns the stored magnitude unmasked.
func (l Long) Value() int64 {
	return l.value
}

// Uint32 returns the value as it appears on the wire.
func (l Long) Uint32() uint32 {
	return uint32(l.value)
}

// Equal reports whether l and o hold the same magnitude.
func (l Long) Equal(o Long) bool {
	return l.value == o.value
}

// Hash is the low 32 bits of the value. Equal values hash equal, but
// New(-1) and Zip64Magic share a hash without being equal.
func (l Long) Hash() uint32 {
	return uint32(l.value)
}

// String is a debug form such as Long{67324752}.
func (l Long) String() string {
	return fmt.Sprintf("Long{%d}", l.value)
}

// MarshalBinary implements encoding.BinaryMarshaler with the four byte
// wire form, so only the low 32 bits survive.
func (l Long) MarshalBinary() ([]byte, error) {
	return l.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. data must be
// exactly Size bytes.
func (l *Long) UnmarshalBinary(data []byte) error {
	if len(data) != Size {
		return errors.Wrapf(ErrOutOfBounds, "need exactly %d bytes, have %d", Size, len(data))
	}
	v, err := Decode(data, 0)
	if err != nil {
		return err
	}
	l.value = v
	return nil
}

// MarshalText implements encoding.TextMarshaler with the decimal magnitude.
func (l Long) MarshalText() ([]byte, error) {
	return []byte(strconv.FormatInt(l.value, 10)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Decimal and 0x
// prefixed hex are accepted.
func (l *Long) UnmarshalText(text []byte) error {
	v, err := strconv.ParseInt(string(text), 0, 64)
	if err != nil {
		return errors.Wrapf(err, "ziplong: invalid value %q", text)
	}
	l.value = v
	return nil
}
