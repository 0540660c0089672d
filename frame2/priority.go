package frame2

import (
	"sync"

	"github.com/sblundy/static2/http2utils"
)

var _ Frame = (*Priority)(nil)

// PriorityInfo is the exclusive/dependency/weight triple carried by a
// Priority frame and, optionally, by a Headers frame.
//
// On the wire it is packed into a single u32 (exclusive bit in the MSB,
// stream dependency id in the low 31 bits) followed by one weight byte;
// http2utils.PackStreamDependency/UnpackStreamDependency do the packing.
type PriorityInfo struct {
	Exclusive        bool
	StreamDependency uint32
	Weight           uint8
}

// Priority is the FramePriority payload (RFC 7540 §6.3).
type Priority struct {
	info PriorityInfo
}

var priorityPool = sync.Pool{New: func() interface{} { return &Priority{} }}

func AcquirePriority() *Priority { return acquirePriority() }
func ReleasePriority(p *Priority) { releasePriority(p) }

func acquirePriority() *Priority {
	p := priorityPool.Get().(*Priority)
	p.Reset()
	return p
}

func releasePriority(p *Priority) { priorityPool.Put(p) }

func (p *Priority) Type() FrameType { return TypePriority }

func (p *Priority) Reset() { p.info = PriorityInfo{} }

func (p *Priority) CopyTo(other *Priority) { other.info = p.info }

// Info returns the priority fields.
func (p *Priority) Info() PriorityInfo { return p.info }

// SetInfo sets the priority fields.
func (p *Priority) SetInfo(info PriorityInfo) { p.info = info }

func (p *Priority) Deserialize(fh *FrameHeader) error {
	if len(fh.payload) != 5 {
		return ErrMissingBytes
	}

	exclusive, dep := http2utils.UnpackStreamDependency(http2utils.BytesToUint32(fh.payload))
	p.info = PriorityInfo{
		Exclusive:        exclusive,
		StreamDependency: dep,
		Weight:           fh.payload[4],
	}

	return nil
}

func (p *Priority) Serialize(fh *FrameHeader) {
	packed := http2utils.PackStreamDependency(p.info.Exclusive, p.info.StreamDependency)
	payload := http2utils.AppendUint32Bytes(fh.payload[:0], packed)
	payload = append(payload, p.info.Weight)
	fh.setPayload(payload)
}
