// Package frame2 is a bit-exact, stateless codec for the ten frame types of
// the HTTP/2 wire protocol (RFC 7540 §6). It performs no stream tracking,
// no flow-control accounting and no HPACK: it only turns bytes into typed
// frames and back.
//
// Use ReadFrame to read one frame from any io.Reader and WriteFrame to
// write one back to any io.Writer. FrameHeader instances should be returned to the pool
// with ReleaseFrameHeader once the caller is done with them.
package frame2

import (
	"fmt"
	"io"
	"sync"

	"github.com/sblundy/static2/http2utils"
)

// FrameType identifies the kind of a frame (RFC 7540 §11.2).
type FrameType uint8

const (
	TypeData         FrameType = 0x0
	TypeHeaders      FrameType = 0x1
	TypePriority     FrameType = 0x2
	TypeRstStream    FrameType = 0x3
	TypeSettings     FrameType = 0x4
	TypePushPromise  FrameType = 0x5
	TypePing         FrameType = 0x6
	TypeGoAway       FrameType = 0x7
	TypeWindowUpdate FrameType = 0x8
	TypeContinuation FrameType = 0x9

	minFrameType FrameType = TypeData
	maxFrameType FrameType = TypeContinuation
)

func (t FrameType) String() string {
	switch t {
	case TypeData:
		return "DATA"
	case TypeHeaders:
		return "HEADERS"
	case TypePriority:
		return "PRIORITY"
	case TypeRstStream:
		return "RST_STREAM"
	case TypeSettings:
		return "SETTINGS"
	case TypePushPromise:
		return "PUSH_PROMISE"
	case TypePing:
		return "PING"
	case TypeGoAway:
		return "GOAWAY"
	case TypeWindowUpdate:
		return "WINDOW_UPDATE"
	case TypeContinuation:
		return "CONTINUATION"
	}
	return fmt.Sprintf("UNKNOWN(0x%x)", uint8(t))
}

// FrameFlags is the one-byte flag bitfield carried by every frame header.
type FrameFlags uint8

const (
	FlagAck        FrameFlags = 0x1
	FlagEndStream  FrameFlags = 0x1
	FlagEndHeaders FrameFlags = 0x4
	FlagPadded     FrameFlags = 0x8
	FlagPriority   FrameFlags = 0x20
)

// Has reports whether every bit in o is set in f.
func (f FrameFlags) Has(o FrameFlags) bool { return f&o == o }

// Add returns f with o's bits set.
func (f FrameFlags) Add(o FrameFlags) FrameFlags { return f | o }

// DefaultFrameSize is the length of the 9-byte frame header.
const DefaultFrameSize = 9

// Frame is implemented by each of the ten frame payload types. A Frame
// instance must not be used from more than one goroutine at a time.
type Frame interface {
	Type() FrameType
	Reset()
	// Deserialize populates the frame from the already-read raw payload
	// held by fh.
	Deserialize(fh *FrameHeader) error
	// Serialize writes the frame's wire payload into fh.
	Serialize(fh *FrameHeader)
}

var frameHeaderPool = sync.Pool{
	New: func() interface{} { return &FrameHeader{} },
}

// FrameHeader is the 9-byte frame header plus the decoded body.
//
// Use AcquireFrameHeader/ReleaseFrameHeader to reuse allocations across
// reads; a zero-value FrameHeader is also valid, just uncached.
type FrameHeader struct {
	length int
	kind   FrameType
	flags  FrameFlags
	stream uint32

	rawHeader [DefaultFrameSize]byte
	payload   []byte

	fr Frame
}

// AcquireFrameHeader returns a reset FrameHeader from the pool.
func AcquireFrameHeader() *FrameHeader {
	fh := frameHeaderPool.Get().(*FrameHeader)
	fh.Reset()
	return fh
}

// ReleaseFrameHeader resets fh and returns it to the pool.
func ReleaseFrameHeader(fh *FrameHeader) {
	if fh == nil {
		return
	}
	fh.Reset()
	frameHeaderPool.Put(fh)
}

// Reset clears fh so it can be reused.
func (fh *FrameHeader) Reset() {
	fh.kind = 0
	fh.flags = 0
	fh.stream = 0
	fh.length = 0
	fh.fr = nil
	fh.payload = fh.payload[:0]
}

func (fh *FrameHeader) Type() FrameType   { return fh.kind }
func (fh *FrameHeader) Flags() FrameFlags { return fh.flags }
func (fh *FrameHeader) SetFlags(f FrameFlags) { fh.flags = f }
func (fh *FrameHeader) Stream() uint32    { return fh.stream }

// SetStream sets the stream id. The high (reserved) bit is masked off, as
// required on both read and write.
func (fh *FrameHeader) SetStream(stream uint32) { fh.stream = stream & (1<<31 - 1) }

// Len returns the payload length as read from, or about to be written to,
// the wire.
func (fh *FrameHeader) Len() int { return fh.length }

// Body returns the decoded frame payload, valid after a successful read.
func (fh *FrameHeader) Body() Frame { return fh.fr }

// SetBody attaches fr as the payload to serialize; fh.Type() reports
// fr.Type() from this point on.
func (fh *FrameHeader) SetBody(fr Frame) {
	if fr == nil {
		panic("frame2: body cannot be nil")
	}
	fh.fr = fr
	fh.kind = fr.Type()
}

func (fh *FrameHeader) setPayload(b []byte) {
	fh.payload = append(fh.payload[:0], b...)
}

func (fh *FrameHeader) parseValues(header []byte) {
	fh.length = int(http2utils.BytesToUint24(header[:3]))
	fh.kind = FrameType(header[3])
	fh.flags = FrameFlags(header[4])
	fh.stream = http2utils.BytesToUint32(header[5:]) & (1<<31 - 1)
}

func (fh *FrameHeader) buildHeader(header []byte) {
	http2utils.Uint24ToBytes(header[:3], uint32(fh.length))
	header[3] = byte(fh.kind)
	header[4] = byte(fh.flags)
	http2utils.Uint32ToBytes(header[5:], fh.stream)
}

func newFrame(kind FrameType) (Frame, error) {
	switch kind {
	case TypeData:
		return acquireData(), nil
	case TypeHeaders:
		return acquireHeaders(), nil
	case TypePriority:
		return acquirePriority(), nil
	case TypeRstStream:
		return acquireRstStream(), nil
	case TypeSettings:
		return acquireSettings(), nil
	case TypePushPromise:
		return acquirePushPromise(), nil
	case TypePing:
		return acquirePing(), nil
	case TypeGoAway:
		return acquireGoAway(), nil
	case TypeWindowUpdate:
		return acquireWindowUpdate(), nil
	case TypeContinuation:
		return acquireContinuation(), nil
	}
	return nil, &UnrecognizedFrameTypeError{Type: uint8(kind)}
}

// ReadFrame reads one frame header and its payload from br and returns the
// decoded FrameHeader. It never returns a partially populated frame: on any
// error the returned *FrameHeader is nil.
//
// The caller owns the returned FrameHeader and should pass it to
// ReleaseFrameHeader when done.
func ReadFrame(br io.Reader) (*FrameHeader, error) {
	fh := AcquireFrameHeader()

	if _, err := io.ReadFull(br, fh.rawHeader[:]); err != nil {
		ReleaseFrameHeader(fh)
		return nil, &ReadError{Context: "frame header", Err: err}
	}

	fh.parseValues(fh.rawHeader[:])

	if err := checkInvariants(fh.kind, fh.stream, fh.length); err != nil {
		ReleaseFrameHeader(fh)
		return nil, err
	}

	if fh.length > 0 {
		fh.payload = http2utils.Resize(fh.payload, fh.length)
		if _, err := io.ReadFull(br, fh.payload); err != nil {
			ReleaseFrameHeader(fh)
			return nil, &ReadError{Context: "frame payload", Err: err}
		}
	} else {
		fh.payload = fh.payload[:0]
	}

	fr, err := newFrame(fh.kind)
	if err != nil {
		ReleaseFrameHeader(fh)
		return nil, err
	}
	fh.fr = fr

	if err := fr.Deserialize(fh); err != nil {
		ReleaseFrameHeader(fh)
		return nil, err
	}

	return fh, nil
}

// WriteFrame serializes fh.Body() and writes the 9-byte header followed by
// the payload to bw. It writes exactly the bytes required: no padding is
// emitted on output even if the frame declares padding on read.
func WriteFrame(bw io.Writer, fh *FrameHeader) (int64, error) {
	if fh.fr == nil {
		panic("frame2: FrameHeader has no body, call SetBody first")
	}

	fh.payload = fh.payload[:0]
	fh.flags = 0
	fh.fr.Serialize(fh)
	fh.length = len(fh.payload)
	fh.kind = fh.fr.Type()

	if err := checkInvariants(fh.kind, fh.stream, fh.length); err != nil {
		return 0, err
	}

	fh.buildHeader(fh.rawHeader[:])

	n, err := bw.Write(fh.rawHeader[:])
	if err != nil {
		return int64(n), &WriteError{Context: "frame header", Err: err}
	}

	m, err := bw.Write(fh.payload)
	total := int64(n + m)
	if err != nil {
		return total, &WriteError{Context: "frame payload", Err: err}
	}

	return total, nil
}
