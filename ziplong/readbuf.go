package ziplong

import "github.com/pkg/errors"

// Buf is a read cursor over consecutive little-endian header fields.
type Buf []byte

// Long consumes the next four bytes.
func (b *Buf) Long() (Long, error) {
	l, err := FromBytes(*b, 0)
	if err != nil {
		return Long{}, err
	}
	*b = (*b)[Size:]
	return l, nil
}

// Skip advances past n bytes.
func (b *Buf) Skip(n int) error {
	if n < 0 || n > len(*b) {
		return errors.Wrapf(ErrOutOfBounds, "skip %d bytes, have %d", n, len(*b))
	}
	*b = (*b)[n:]
	return nil
}

// Len is the number of unread bytes.
func (b Buf) Len() int {
	return len(b)
}
