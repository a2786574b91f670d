// Package stream turns a seed key into a reproducible sequence of bounded
// integers.
//
// The generator is the ChaCha20 keystream (RFC 8439) keyed with the SHA-256
// digest of the key bytes, a zero nonce and a block counter starting at 0.
// Each draw consumes 8 keystream bytes, read big-endian; the top 53 bits
// give a float in [0, 1), and
//
//	Int(min, max) = floor(f * (max - min + 1)) + min
//
// Streams are cheap to construct and are never shared: callers that need
// an independent projection of the same seed build a second Stream rather
// than resetting or forking one. Two streams built from the same key
// produce identical sequences.
//
// A Stream is not safe for concurrent use.
package stream

import (
	"crypto/sha256"
	"encoding/binary"
	"math"

	"golang.org/x/crypto/chacha20"

	errs "github.com/matzehuels/babelgallery/pkg/errors"
	"github.com/matzehuels/babelgallery/pkg/seed"
)

// bufSize is a whole number of ChaCha20 blocks.
const bufSize = 8 * 64

// Stream is a deterministic integer source derived from one seed key.
type Stream struct {
	cipher *chacha20.Cipher
	buf    [bufSize]byte
	pos    int
	draws  uint64
}

// Digest returns the cipher key derived from key.
func Digest(key seed.Key) [sha256.Size]byte {
	h := sha256.New()
	// hash.Hash writes never fail.
	_, _ = key.WriteTo(h)
	var d [sha256.Size]byte
	h.Sum(d[:0])
	return d
}

// New creates a stream positioned at the first draw for key.
func New(key seed.Key) *Stream {
	d := Digest(key)
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(d[:], nonce[:])
	if err != nil {
		// Key and nonce sizes are fixed above.
		panic("stream: " + err.Error())
	}
	return &Stream{cipher: c, pos: bufSize}
}

// ForSeed encodes n and returns a fresh stream for it.
func ForSeed(n int64) (*Stream, error) {
	key, err := seed.Encode(n)
	if err != nil {
		return nil, err
	}
	return New(key), nil
}

// Uint64 returns the next 64 keystream bits.
func (s *Stream) Uint64() uint64 {
	if s.pos+8 > bufSize {
		s.refill()
	}
	v := binary.BigEndian.Uint64(s.buf[s.pos:])
	s.pos += 8
	s.draws++
	return v
}

// Float64 returns the next draw as a float in [0, 1).
func (s *Stream) Float64() float64 {
	return float64(s.Uint64()>>11) / (1 << 53)
}

// Int returns the next draw as an integer in [min, max], both inclusive.
// A draw is consumed even when min == max. It fails with INVALID_RANGE,
// consuming nothing, when min > max.
func (s *Stream) Int(min, max int) (int, error) {
	if min > max {
		return 0, errs.New(errs.ErrCodeInvalidRange, "min %d is greater than max %d", min, max)
	}
	span := float64(max) - float64(min) + 1
	return int(math.Floor(s.Float64()*span)) + min, nil
}

// Byte returns the next draw in [0, 255]. It is Int(0, 255) without the
// error path and is what the pixel loop uses.
func (s *Stream) Byte() uint8 {
	return uint8(s.Float64() * 256)
}

// Draws reports how many values have been drawn so far.
func (s *Stream) Draws() uint64 {
	return s.draws
}

func (s *Stream) refill() {
	clear(s.buf[:])
	s.cipher.XORKeyStream(s.buf[:], s.buf[:])
	s.pos = 0
}
