package msh

import (
	"bytes"
	"encoding/binary"

	"github.com/mogaika/battlezone_browser/utils"
)

// encoder accumulates the output, one forward pass, nothing is patched after
// the fact. Writes into the memory buffer cannot fail, so the field writers
// stay error free and the single io error surfaces in MSH.Encode.
type encoder struct {
	buf bytes.Buffer
	cfg SaveConfig
}

func newEncoder(cfg SaveConfig) *encoder {
	return &encoder{cfg: cfg}
}

func (e *encoder) bytes() []byte {
	return e.buf.Bytes()
}

func (e *encoder) emit(v interface{}) {
	if err := binary.Write(&e.buf, binary.LittleEndian, v); err != nil {
		panic(err)
	}
}

func (e *encoder) u16(v uint16) { e.emit(v) }
func (e *encoder) u32(v uint32) { e.emit(v) }
func (e *encoder) f32(v float32) { e.emit(v) }
func (e *encoder) tag(v uint32) { e.emit(v) }

// writeName stores the string null terminated, with the terminator counted
// into the 16 bit length prefix.
func (e *encoder) writeName(name string) {
	raw := utils.StringToBytes(name, true)
	e.u16(uint16(len(raw)))
	e.buf.Write(raw)
}
