package frame2

import (
	"fmt"
	"sync"

	"github.com/sblundy/static2/http2utils"
)

var _ Frame = (*GoAway)(nil)

// GoAway is the FrameGoAway payload (RFC 7540 §6.8).
type GoAway struct {
	lastStreamID uint32
	code         ErrorCode
	debug        []byte
}

var goAwayPool = sync.Pool{New: func() interface{} { return &GoAway{} }}

func AcquireGoAway() *GoAway { return acquireGoAway() }
func ReleaseGoAway(ga *GoAway) { releaseGoAway(ga) }

func acquireGoAway() *GoAway {
	ga := goAwayPool.Get().(*GoAway)
	ga.Reset()
	return ga
}

func releaseGoAway(ga *GoAway) { goAwayPool.Put(ga) }

func (ga *GoAway) Type() FrameType { return TypeGoAway }

func (ga *GoAway) Reset() {
	ga.lastStreamID = 0
	ga.code = 0
	ga.debug = ga.debug[:0]
}

func (ga *GoAway) CopyTo(other *GoAway) {
	other.lastStreamID = ga.lastStreamID
	other.code = ga.code
	other.debug = append(other.debug[:0], ga.debug...)
}

func (ga *GoAway) Error() string {
	return fmt.Sprintf("frame2: GOAWAY lastStream=%d code=%s debug=%q", ga.lastStreamID, ga.code, ga.debug)
}

func (ga *GoAway) LastStreamID() uint32    { return ga.lastStreamID }
func (ga *GoAway) SetLastStreamID(id uint32) { ga.lastStreamID = id & (1<<31 - 1) }
func (ga *GoAway) Code() ErrorCode         { return ga.code }
func (ga *GoAway) SetCode(c ErrorCode)     { ga.code = c }
func (ga *GoAway) Debug() []byte           { return ga.debug }
func (ga *GoAway) SetDebug(b []byte)       { ga.debug = append(ga.debug[:0], b...) }

func (ga *GoAway) Deserialize(fh *FrameHeader) error {
	if len(fh.payload) < 8 {
		return ErrMissingBytes
	}

	ga.lastStreamID = http2utils.BytesToUint32(fh.payload) & (1<<31 - 1)
	ga.code = ErrorCode(http2utils.BytesToUint32(fh.payload[4:]))
	ga.debug = append(ga.debug[:0], fh.payload[8:]...)

	return nil
}

func (ga *GoAway) Serialize(fh *FrameHeader) {
	payload := http2utils.AppendUint32Bytes(make([]byte, 0, 8+len(ga.debug)), ga.lastStreamID)
	payload = http2utils.AppendUint32Bytes(payload, uint32(ga.code))
	payload = append(payload, ga.debug...)
	fh.setPayload(payload)
}
