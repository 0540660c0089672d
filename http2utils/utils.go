// Package http2utils holds the small byte/bit helpers shared by the frame2
// codec: big-endian packing, padding, and the exclusive-bit packing used by
// the Priority frame and the Headers frame's embedded priority field.
package http2utils

import (
	"crypto/rand"
	"errors"

	"github.com/valyala/fastrand"
)

// ErrPaddingOutOfRange is returned by CutPadding when the declared pad
// length doesn't fit inside the payload.
var ErrPaddingOutOfRange = errors.New("http2utils: padding length exceeds payload")

func Uint24ToBytes(b []byte, n uint32) {
	_ = b[2] // bound checking
	b[0] = byte(n >> 16)
	b[1] = byte(n >> 8)
	b[2] = byte(n)
}

func BytesToUint24(b []byte) uint32 {
	_ = b[2] // bound checking
	return uint32(b[0])<<16 |
		uint32(b[1])<<8 |
		uint32(b[2])
}

func AppendUint32Bytes(dst []byte, n uint32) []byte {
	dst = append(dst, byte(n>>24))
	dst = append(dst, byte(n>>16))
	dst = append(dst, byte(n>>8))
	dst = append(dst, byte(n))
	return dst
}

func Uint32ToBytes(b []byte, n uint32) {
	_ = b[3] // bound checking
	b[0] = byte(n >> 24)
	b[1] = byte(n >> 16)
	b[2] = byte(n >> 8)
	b[3] = byte(n)
}

func BytesToUint32(b []byte) uint32 {
	_ = b[3] // bound checking
	n := uint32(b[0])<<24 |
		uint32(b[1])<<16 |
		uint32(b[2])<<8 |
		uint32(b[3])
	return n
}

// PackStreamDependency packs the exclusive bit (MSB) and the 31-bit stream
// dependency id into a single u32, as used on the wire by Priority and by
// the Headers frame's optional priority field.
func PackStreamDependency(exclusive bool, id uint32) uint32 {
	v := id & (1<<31 - 1)
	if exclusive {
		v |= 1 << 31
	}
	return v
}

// UnpackStreamDependency splits a wire u32 into the exclusive bit and the
// 31-bit stream dependency id.
func UnpackStreamDependency(v uint32) (exclusive bool, id uint32) {
	return v&(1<<31) != 0, v & (1<<31 - 1)
}

func Resize(b []byte, neededLen int) []byte {
	b = b[:cap(b)]

	if n := neededLen - len(b); n > 0 {
		b = append(b, make([]byte, n)...)
	}

	return b[:neededLen]
}

// CutPadding strips the leading pad-length byte and the trailing padding
// from payload, per the PADDED layout shared by Data, Headers and
// PushPromise.
func CutPadding(payload []byte) ([]byte, error) {
	if len(payload) == 0 {
		return nil, ErrPaddingOutOfRange
	}

	pad := int(payload[0])
	if pad > len(payload)-1 {
		return nil, ErrPaddingOutOfRange
	}

	return payload[1 : len(payload)-pad], nil
}

// AddPadding prefixes b with a random pad length byte and appends that many
// random padding bytes, mirroring the PADDED layout on write.
func AddPadding(b []byte) []byte {
	n := int(fastrand.Uint32n(256-9)) + 9
	nn := len(b)

	padded := make([]byte, 1+nn+n)
	padded[0] = byte(n)
	copy(padded[1:], b)
	rand.Read(padded[1+nn:])

	return padded
}
