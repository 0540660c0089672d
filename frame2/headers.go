package frame2

import (
	"sync"

	"github.com/sblundy/static2/http2utils"
)

var _ Frame = (*Headers)(nil)

// Headers is the FrameHeaders payload (RFC 7540 §6.2).
//
// The header-block fragment is treated as opaque bytes: HPACK decoding is
// out of scope for this codec.
type Headers struct {
	padded     bool
	hasPriority bool
	priority   PriorityInfo
	endStream  bool
	endHeaders bool
	rawHeaders []byte
}

var headersPool = sync.Pool{New: func() interface{} { return &Headers{} }}

func AcquireHeaders() *Headers { return acquireHeaders() }
func ReleaseHeaders(h *Headers) { releaseHeaders(h) }

func acquireHeaders() *Headers {
	h := headersPool.Get().(*Headers)
	h.Reset()
	return h
}

func releaseHeaders(h *Headers) { headersPool.Put(h) }

func (h *Headers) Type() FrameType { return TypeHeaders }

func (h *Headers) Reset() {
	h.padded = false
	h.hasPriority = false
	h.priority = PriorityInfo{}
	h.endStream = false
	h.endHeaders = false
	h.rawHeaders = h.rawHeaders[:0]
}

func (h *Headers) CopyTo(other *Headers) {
	other.padded = h.padded
	other.hasPriority = h.hasPriority
	other.priority = h.priority
	other.endStream = h.endStream
	other.endHeaders = h.endHeaders
	other.rawHeaders = append(other.rawHeaders[:0], h.rawHeaders...)
}

func (h *Headers) Fragment() []byte          { return h.rawHeaders }
func (h *Headers) SetFragment(b []byte)      { h.rawHeaders = append(h.rawHeaders[:0], b...) }
func (h *Headers) AppendFragment(b []byte)   { h.rawHeaders = append(h.rawHeaders, b...) }
func (h *Headers) EndStream() bool           { return h.endStream }
func (h *Headers) SetEndStream(v bool)       { h.endStream = v }
func (h *Headers) EndHeaders() bool          { return h.endHeaders }
func (h *Headers) SetEndHeaders(v bool)      { h.endHeaders = v }
func (h *Headers) Padded() bool              { return h.padded }
func (h *Headers) SetPadded(v bool)          { h.padded = v }
func (h *Headers) Priority() (PriorityInfo, bool) { return h.priority, h.hasPriority }

// SetPriority attaches priority fields and sets the PRIORITY flag on write.
func (h *Headers) SetPriority(info PriorityInfo) {
	h.hasPriority = true
	h.priority = info
}

// ClearPriority removes any attached priority fields.
func (h *Headers) ClearPriority() {
	h.hasPriority = false
	h.priority = PriorityInfo{}
}

func (h *Headers) Deserialize(fh *FrameHeader) error {
	flags := fh.Flags()
	payload := fh.payload

	if flags.Has(FlagPadded) {
		var err error
		payload, err = http2utils.CutPadding(payload)
		if err != nil {
			return err
		}
		h.padded = true
	}

	if flags.Has(FlagPriority) {
		if len(payload) < 5 {
			return ErrMissingBytes
		}
		exclusive, dep := http2utils.UnpackStreamDependency(http2utils.BytesToUint32(payload))
		h.hasPriority = true
		h.priority = PriorityInfo{Exclusive: exclusive, StreamDependency: dep, Weight: payload[4]}
		payload = payload[5:]
	}

	h.endStream = flags.Has(FlagEndStream)
	h.endHeaders = flags.Has(FlagEndHeaders)
	h.rawHeaders = append(h.rawHeaders[:0], payload...)

	return nil
}

func (h *Headers) Serialize(fh *FrameHeader) {
	if h.endStream {
		fh.SetFlags(fh.Flags().Add(FlagEndStream))
	}
	if h.endHeaders {
		fh.SetFlags(fh.Flags().Add(FlagEndHeaders))
	}

	payload := make([]byte, 0, len(h.rawHeaders)+5)

	if h.hasPriority {
		fh.SetFlags(fh.Flags().Add(FlagPriority))
		packed := http2utils.PackStreamDependency(h.priority.Exclusive, h.priority.StreamDependency)
		payload = http2utils.AppendUint32Bytes(payload, packed)
		payload = append(payload, h.priority.Weight)
	}

	payload = append(payload, h.rawHeaders...)

	// padded is read-only state from a prior Deserialize; the writer never
	// re-pads on the way out, it emits exactly the bytes required.
	fh.setPayload(payload)
}
