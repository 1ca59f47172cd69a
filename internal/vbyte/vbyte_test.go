package vbyte

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeOneExamples(t *testing.T) {
	assert.Equal(t, []byte{0b00100010}, EncodeOne(34))
	assert.Equal(t, []byte{0b10000001, 0b00010000}, EncodeOne(144))
}

func TestRoundTrip(t *testing.T) {
	cases := [][]uint64{
		nil,
		{0},
		{34, 144, 113, 162},
		{0, 1, 127, 128, 16383, 16384, 1 << 40},
	}
	for _, xs := range cases {
		encoded := Encode(xs)
		decoded, err := Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, xs, decoded)
	}
}

func TestEncodeOneTerminationByte(t *testing.T) {
	for _, n := range []uint64{0, 1, 127, 128, 1 << 20} {
		b := EncodeOne(n)
		terminators := 0
		for _, c := range b {
			if c&continuationBit == 0 {
				terminators++
			}
		}
		assert.Equal(t, 1, terminators)
	}
}

func TestDecodeTruncatedStream(t *testing.T) {
	truncated := EncodeOne(144)[:1] // drop the terminating byte
	_, err := Decode(truncated)
	require.ErrorIs(t, err, ErrMalformedVByte)
}

func TestDecodeEmpty(t *testing.T) {
	out, err := Decode(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}
