package frame2

import (
	"sync"

	"github.com/sblundy/static2/http2utils"
)

var _ Frame = (*Data)(nil)

// Data is the FrameData payload (RFC 7540 §6.1).
//
// Data frames can carry the END_STREAM and PADDED flags.
type Data struct {
	endStream bool
	padded    bool
	b         []byte
}

var dataPool = sync.Pool{New: func() interface{} { return &Data{} }}

// AcquireData returns a reset Data from the pool.
func AcquireData() *Data { return acquireData() }

// ReleaseData returns d to the pool.
func ReleaseData(d *Data) { releaseData(d) }

func acquireData() *Data {
	d := dataPool.Get().(*Data)
	d.Reset()
	return d
}

func releaseData(d *Data) { dataPool.Put(d) }

func (d *Data) Type() FrameType { return TypeData }

func (d *Data) Reset() {
	d.endStream = false
	d.padded = false
	d.b = d.b[:0]
}

// CopyTo copies d's fields into other.
func (d *Data) CopyTo(other *Data) {
	other.endStream = d.endStream
	other.padded = d.padded
	other.b = append(other.b[:0], d.b...)
}

func (d *Data) EndStream() bool         { return d.endStream }
func (d *Data) SetEndStream(v bool)     { d.endStream = v }
func (d *Data) Padded() bool            { return d.padded }
func (d *Data) SetPadded(v bool)        { d.padded = v }
func (d *Data) Bytes() []byte           { return d.b }
func (d *Data) SetData(b []byte)        { d.b = append(d.b[:0], b...) }

func (d *Data) Deserialize(fh *FrameHeader) error {
	payload := fh.payload

	if fh.Flags().Has(FlagPadded) {
		var err error
		payload, err = http2utils.CutPadding(payload)
		if err != nil {
			return err
		}
		d.padded = true
	}

	d.endStream = fh.Flags().Has(FlagEndStream)
	d.b = append(d.b[:0], payload...)

	return nil
}

// Serialize never pads: padded is read-only state recording whether this
// frame was padded when it was decoded, not an instruction to re-pad on
// the way back out. The writer emits exactly d.b, no more.
func (d *Data) Serialize(fh *FrameHeader) {
	if d.endStream {
		fh.SetFlags(fh.Flags().Add(FlagEndStream))
	}

	fh.setPayload(d.b)
}
