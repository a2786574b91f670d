package seed

import (
	"bytes"
	"slices"
	"testing"

	errs "github.com/matzehuels/babelgallery/pkg/errors"
)

func TestEncodeBoundaries(t *testing.T) {
	tests := []struct {
		n    int64
		want []uint16
	}{
		{0, []uint16{0x0000}},
		{1, []uint16{0x0001}},
		{65535, []uint16{0xFFFF}},
		{65536, []uint16{0xFFFF, 0x0000}},
		{65537, []uint16{0xFFFF, 0x0001}},
		{131071, []uint16{0xFFFF, 0xFFFF}},
		{131072, []uint16{0xFFFF, 0xFFFF, 0x0000}},
	}

	for _, tt := range tests {
		k, err := Encode(tt.n)
		if err != nil {
			t.Fatalf("Encode(%d) error: %v", tt.n, err)
		}
		if got := k.Units(); !slices.Equal(got, tt.want) {
			t.Errorf("Encode(%d).Units() = %04X, want %04X", tt.n, got, tt.want)
		}
		if k.Len() != int64(len(tt.want)) {
			t.Errorf("Encode(%d).Len() = %d, want %d", tt.n, k.Len(), len(tt.want))
		}
		if k.Seed() != tt.n {
			t.Errorf("Encode(%d).Seed() = %d", tt.n, k.Seed())
		}
	}
}

func TestEncodeNegative(t *testing.T) {
	for _, n := range []int64{-1, -65536, -1 << 62} {
		_, err := Encode(n)
		if !errs.Is(err, errs.ErrCodeInvalidSeed) {
			t.Errorf("Encode(%d) error = %v, want INVALID_SEED", n, err)
		}
	}
}

func TestMustEncodePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustEncode(-1) should panic")
		}
	}()
	MustEncode(-1)
}

func TestEncodeInjective(t *testing.T) {
	seen := make(map[string]int64)
	check := func(n int64) {
		key := string(MustEncode(n).Bytes())
		if prev, ok := seen[key]; ok {
			t.Fatalf("Encode(%d) collides with Encode(%d)", n, prev)
		}
		seen[key] = n
	}

	for n := int64(0); n < 3*Base+10; n++ {
		check(n)
	}
	for _, n := range []int64{10 * Base, 10*Base - 1, 10*Base + 1, 26734142, 26734143} {
		check(n)
	}
}

func TestBytesBigEndian(t *testing.T) {
	got := MustEncode(65537).Bytes()
	want := []byte{0xFF, 0xFF, 0x00, 0x01}
	if !bytes.Equal(got, want) {
		t.Errorf("Bytes() = % X, want % X", got, want)
	}
}

func TestWriteToMatchesBytes(t *testing.T) {
	for _, n := range []int64{0, 1, 65535, 65536, 3*Base + 7, chunkUnits*Base + 5, (2*chunkUnits+3)*Base + 9} {
		k := MustEncode(n)

		var buf bytes.Buffer
		written, err := k.WriteTo(&buf)
		if err != nil {
			t.Fatalf("WriteTo(%d) error: %v", n, err)
		}
		if written != int64(buf.Len()) {
			t.Errorf("WriteTo(%d) reported %d bytes, wrote %d", n, written, buf.Len())
		}
		if !bytes.Equal(buf.Bytes(), k.Bytes()) {
			t.Errorf("WriteTo(%d) bytes differ from Bytes()", n)
		}
	}
}

func TestDecode(t *testing.T) {
	for _, n := range []int64{0, 1, 65535, 65536, 131072, 999999} {
		k, err := Decode(MustEncode(n).Units())
		if err != nil {
			t.Fatalf("Decode(Encode(%d)) error: %v", n, err)
		}
		if k.Seed() != n {
			t.Errorf("Decode(Encode(%d)).Seed() = %d", n, k.Seed())
		}
	}

	bad := [][]uint16{
		nil,
		{0x0001, 0x0002},
		{0xFFFF, 0x0000, 0x0001},
	}
	for _, units := range bad {
		if _, err := Decode(units); !errs.Is(err, errs.ErrCodeInvalidSeed) {
			t.Errorf("Decode(%04X) error = %v, want INVALID_SEED", units, err)
		}
	}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "[0000]"},
		{65535, "[FFFF]"},
		{65537, "[FFFF 0001]"},
		{10*Base + 2, "[FFFF x10 0002]"},
	}
	for _, tt := range tests {
		if got := MustEncode(tt.n).String(); got != tt.want {
			t.Errorf("Encode(%d).String() = %q, want %q", tt.n, got, tt.want)
		}
	}
}
