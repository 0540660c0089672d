package frame2

import (
	"sync"

	"github.com/sblundy/static2/http2utils"
)

var (
	_ Frame = (*PushPromise)(nil)
)

// PushPromise is the FramePushPromise payload (RFC 7540 §6.6).
type PushPromise struct {
	padded        bool
	endHeaders    bool
	promisedStream uint32
	rawHeaders    []byte
}

var pushPromisePool = sync.Pool{New: func() interface{} { return &PushPromise{} }}

func AcquirePushPromise() *PushPromise { return acquirePushPromise() }
func ReleasePushPromise(pp *PushPromise) { releasePushPromise(pp) }

func acquirePushPromise() *PushPromise {
	pp := pushPromisePool.Get().(*PushPromise)
	pp.Reset()
	return pp
}

func releasePushPromise(pp *PushPromise) { pushPromisePool.Put(pp) }

func (pp *PushPromise) Type() FrameType { return TypePushPromise }

func (pp *PushPromise) Reset() {
	pp.padded = false
	pp.endHeaders = false
	pp.promisedStream = 0
	pp.rawHeaders = pp.rawHeaders[:0]
}

func (pp *PushPromise) CopyTo(other *PushPromise) {
	other.padded = pp.padded
	other.endHeaders = pp.endHeaders
	other.promisedStream = pp.promisedStream
	other.rawHeaders = append(other.rawHeaders[:0], pp.rawHeaders...)
}

func (pp *PushPromise) Padded() bool              { return pp.padded }
func (pp *PushPromise) SetPadded(v bool)          { pp.padded = v }
func (pp *PushPromise) EndHeaders() bool          { return pp.endHeaders }
func (pp *PushPromise) SetEndHeaders(v bool)      { pp.endHeaders = v }
func (pp *PushPromise) PromisedStream() uint32    { return pp.promisedStream }
func (pp *PushPromise) SetPromisedStream(id uint32) { pp.promisedStream = id & (1<<31 - 1) }
func (pp *PushPromise) Fragment() []byte          { return pp.rawHeaders }
func (pp *PushPromise) SetFragment(b []byte)      { pp.rawHeaders = append(pp.rawHeaders[:0], b...) }

func (pp *PushPromise) Deserialize(fh *FrameHeader) error {
	payload := fh.payload

	if fh.Flags().Has(FlagPadded) {
		var err error
		payload, err = http2utils.CutPadding(payload)
		if err != nil {
			return err
		}
		pp.padded = true
	}

	if len(payload) < 4 {
		return ErrMissingBytes
	}

	pp.promisedStream = http2utils.BytesToUint32(payload) & (1<<31 - 1)
	pp.endHeaders = fh.Flags().Has(FlagEndHeaders)
	pp.rawHeaders = append(pp.rawHeaders[:0], payload[4:]...)

	return nil
}

func (pp *PushPromise) Serialize(fh *FrameHeader) {
	if pp.endHeaders {
		fh.SetFlags(fh.Flags().Add(FlagEndHeaders))
	}

	payload := http2utils.AppendUint32Bytes(make([]byte, 0, 4+len(pp.rawHeaders)), pp.promisedStream)
	payload = append(payload, pp.rawHeaders...)

	// padded is read-only state from a prior Deserialize; the writer never
	// re-pads on the way out, it emits exactly the bytes required.
	fh.setPayload(payload)
}
