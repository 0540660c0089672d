package frame2

import "sync"

var (
	_ Frame = (*Continuation)(nil)
)

// Continuation is the FrameContinuation payload (RFC 7540 §6.10): the
// entire payload is a header-block fragment continuing the preceding
// Headers or PushPromise frame.
type Continuation struct {
	endHeaders bool
	rawHeaders []byte
}

var continuationPool = sync.Pool{New: func() interface{} { return &Continuation{} }}

func AcquireContinuation() *Continuation { return acquireContinuation() }
func ReleaseContinuation(c *Continuation) { releaseContinuation(c) }

func acquireContinuation() *Continuation {
	c := continuationPool.Get().(*Continuation)
	c.Reset()
	return c
}

func releaseContinuation(c *Continuation) { continuationPool.Put(c) }

func (c *Continuation) Type() FrameType { return TypeContinuation }

func (c *Continuation) Reset() {
	c.endHeaders = false
	c.rawHeaders = c.rawHeaders[:0]
}

func (c *Continuation) CopyTo(other *Continuation) {
	other.endHeaders = c.endHeaders
	other.rawHeaders = append(other.rawHeaders[:0], c.rawHeaders...)
}

func (c *Continuation) EndHeaders() bool     { return c.endHeaders }
func (c *Continuation) SetEndHeaders(v bool) { c.endHeaders = v }
func (c *Continuation) Fragment() []byte     { return c.rawHeaders }
func (c *Continuation) SetFragment(b []byte) { c.rawHeaders = append(c.rawHeaders[:0], b...) }

func (c *Continuation) Deserialize(fh *FrameHeader) error {
	c.endHeaders = fh.Flags().Has(FlagEndHeaders)
	c.rawHeaders = append(c.rawHeaders[:0], fh.payload...)
	return nil
}

func (c *Continuation) Serialize(fh *FrameHeader) {
	if c.endHeaders {
		fh.SetFlags(fh.Flags().Add(FlagEndHeaders))
	}
	fh.setPayload(c.rawHeaders)
}
