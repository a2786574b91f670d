package seed

import (
	"encoding/binary"
	"fmt"
	"io"

	errs "github.com/matzehuels/babelgallery/pkg/errors"
)

const (
	// Base is the number of distinct code unit values.
	Base = 1 << 16

	// MaxUnit is the value emitted once per full multiple of Base.
	MaxUnit = Base - 1
)

// Key is the encoded form of a seed. The zero value is the key for seed 0.
// Keys are comparable; two keys are equal exactly when their seeds are.
type Key struct {
	full      int64  // number of leading MaxUnit units
	remainder uint16 // value of the final unit
}

// Encode returns the key for n. It fails with INVALID_SEED when n < 0.
func Encode(n int64) (Key, error) {
	if n < 0 {
		return Key{}, errs.New(errs.ErrCodeInvalidSeed, "seed must be non-negative, got %d", n)
	}
	return Key{full: n / Base, remainder: uint16(n % Base)}, nil
}

// MustEncode is like Encode but panics on a negative seed.
// Intended for constants and tests.
func MustEncode(n int64) Key {
	k, err := Encode(n)
	if err != nil {
		panic(err)
	}
	return k
}

// Seed returns the number the key was encoded from.
func (k Key) Seed() int64 {
	return k.full*Base + int64(k.remainder)
}

// Len returns the number of code units in the encoding.
func (k Key) Len() int64 {
	return k.full + 1
}

// Units materializes the encoding. Prefer WriteTo for large seeds.
func (k Key) Units() []uint16 {
	units := make([]uint16, 0, k.Len())
	for i := int64(0); i < k.full; i++ {
		units = append(units, MaxUnit)
	}
	return append(units, k.remainder)
}

// Bytes returns the encoding as big-endian unit pairs.
func (k Key) Bytes() []byte {
	out := make([]byte, 0, 2*k.Len())
	for _, u := range k.Units() {
		out = binary.BigEndian.AppendUint16(out, u)
	}
	return out
}

// chunkUnits bounds the buffer used by WriteTo.
const chunkUnits = 4096

// WriteTo writes the same bytes as Bytes without materializing them.
func (k Key) WriteTo(w io.Writer) (int64, error) {
	var written int64

	if k.full > 0 {
		chunk := make([]byte, 2*min(k.full, chunkUnits))
		for i := range chunk {
			chunk[i] = 0xFF
		}
		for left := k.full; left > 0; {
			n := min(left, chunkUnits)
			m, err := w.Write(chunk[:2*n])
			written += int64(m)
			if err != nil {
				return written, err
			}
			left -= n
		}
	}

	var tail [2]byte
	binary.BigEndian.PutUint16(tail[:], k.remainder)
	m, err := w.Write(tail[:])
	written += int64(m)
	return written, err
}

// String renders the key as hex units, abbreviating long runs of 0xFFFF.
func (k Key) String() string {
	switch {
	case k.full == 0:
		return fmt.Sprintf("[%04X]", k.remainder)
	case k.full <= 3:
		s := "["
		for i := int64(0); i < k.full; i++ {
			s += "FFFF "
		}
		return s + fmt.Sprintf("%04X]", k.remainder)
	default:
		return fmt.Sprintf("[FFFF x%d %04X]", k.full, k.remainder)
	}
}

// Decode is the inverse of Key.Units. Every unit but the last must be
// MaxUnit and the sequence must not be empty.
func Decode(units []uint16) (Key, error) {
	if len(units) == 0 {
		return Key{}, errs.New(errs.ErrCodeInvalidSeed, "empty key")
	}
	last := len(units) - 1
	for i, u := range units[:last] {
		if u != MaxUnit {
			return Key{}, errs.New(errs.ErrCodeInvalidSeed, "unit %d is %04X, want FFFF", i, u)
		}
	}
	return Key{full: int64(last), remainder: units[last]}, nil
}
