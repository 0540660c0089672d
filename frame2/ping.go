package frame2

import "sync"

var _ Frame = (*Ping)(nil)

// Ping is the FramePing payload (RFC 7540 §6.7): always exactly 8 opaque
// bytes.
type Ping struct {
	ack  bool
	data [8]byte
}

var pingPool = sync.Pool{New: func() interface{} { return &Ping{} }}

func AcquirePing() *Ping { return acquirePing() }
func ReleasePing(p *Ping) { releasePing(p) }

func acquirePing() *Ping {
	p := pingPool.Get().(*Ping)
	p.Reset()
	return p
}

func releasePing(p *Ping) { pingPool.Put(p) }

func (p *Ping) Type() FrameType { return TypePing }

func (p *Ping) Reset() {
	p.ack = false
	p.data = [8]byte{}
}

func (p *Ping) CopyTo(other *Ping) {
	other.ack = p.ack
	other.data = p.data
}

func (p *Ping) Ack() bool       { return p.ack }
func (p *Ping) SetAck(v bool)   { p.ack = v }
func (p *Ping) Data() []byte    { return p.data[:] }

func (p *Ping) SetData(b []byte) {
	copy(p.data[:], b)
}

func (p *Ping) Deserialize(fh *FrameHeader) error {
	if len(fh.payload) != 8 {
		return ErrMissingBytes
	}
	p.ack = fh.Flags().Has(FlagAck)
	copy(p.data[:], fh.payload)
	return nil
}

func (p *Ping) Serialize(fh *FrameHeader) {
	if p.ack {
		fh.SetFlags(fh.Flags().Add(FlagAck))
	}
	fh.setPayload(p.data[:])
}
