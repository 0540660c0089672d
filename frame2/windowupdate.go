package frame2

import (
	"sync"

	"github.com/sblundy/static2/http2utils"
)

var _ Frame = (*WindowUpdate)(nil)

// WindowUpdate is the FrameWindowUpdate payload (RFC 7540 §6.9): a single
// 31-bit size increment. Unlike the other frame types the carrying
// FrameHeader's stream id may legally be zero (connection-level window) or
// non-zero (stream-level window) — callers distinguish the two by reading
// FrameHeader.Stream() themselves; a zero stream id means "connection".
type WindowUpdate struct {
	increment uint32
}

var windowUpdatePool = sync.Pool{New: func() interface{} { return &WindowUpdate{} }}

func AcquireWindowUpdate() *WindowUpdate { return acquireWindowUpdate() }
func ReleaseWindowUpdate(wu *WindowUpdate) { releaseWindowUpdate(wu) }

func acquireWindowUpdate() *WindowUpdate {
	wu := windowUpdatePool.Get().(*WindowUpdate)
	wu.Reset()
	return wu
}

func releaseWindowUpdate(wu *WindowUpdate) { windowUpdatePool.Put(wu) }

func (wu *WindowUpdate) Type() FrameType { return TypeWindowUpdate }

func (wu *WindowUpdate) Reset() { wu.increment = 0 }

func (wu *WindowUpdate) CopyTo(other *WindowUpdate) { other.increment = wu.increment }

func (wu *WindowUpdate) Increment() uint32     { return wu.increment }
func (wu *WindowUpdate) SetIncrement(v uint32) { wu.increment = v & (1<<31 - 1) }

func (wu *WindowUpdate) Deserialize(fh *FrameHeader) error {
	if len(fh.payload) != 4 {
		return ErrMissingBytes
	}
	wu.increment = http2utils.BytesToUint32(fh.payload) & (1<<31 - 1)
	return nil
}

func (wu *WindowUpdate) Serialize(fh *FrameHeader) {
	fh.setPayload(http2utils.AppendUint32Bytes(fh.payload[:0], wu.increment))
}
