package frame2

import (
	"sync"

	"github.com/sblundy/static2/http2utils"
)

var _ Frame = (*RstStream)(nil)

// RstStream is the FrameResetStream payload (RFC 7540 §6.4). Its payload is
// always exactly 4 bytes: a single error code.
type RstStream struct {
	code ErrorCode
}

var rstStreamPool = sync.Pool{New: func() interface{} { return &RstStream{} }}

func AcquireRstStream() *RstStream { return acquireRstStream() }
func ReleaseRstStream(r *RstStream) { releaseRstStream(r) }

func acquireRstStream() *RstStream {
	r := rstStreamPool.Get().(*RstStream)
	r.Reset()
	return r
}

func releaseRstStream(r *RstStream) { rstStreamPool.Put(r) }

func (r *RstStream) Type() FrameType { return TypeRstStream }

func (r *RstStream) Reset() { r.code = 0 }

func (r *RstStream) CopyTo(other *RstStream) { other.code = r.code }

func (r *RstStream) Code() ErrorCode     { return r.code }
func (r *RstStream) SetCode(c ErrorCode) { r.code = c }

func (r *RstStream) Deserialize(fh *FrameHeader) error {
	if len(fh.payload) != 4 {
		return ErrMissingBytes
	}
	r.code = ErrorCode(http2utils.BytesToUint32(fh.payload))
	return nil
}

func (r *RstStream) Serialize(fh *FrameHeader) {
	fh.setPayload(http2utils.AppendUint32Bytes(fh.payload[:0], uint32(r.code)))
}
