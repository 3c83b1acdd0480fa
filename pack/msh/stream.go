package msh

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"

	"github.com/mogaika/battlezone_browser/utils"
)

// stream is a forward cursor over the whole file buffer. The only backtracking
// the format ever needs is the 4 byte tag probe, see unreadTag.
type stream struct {
	buf []byte
	pos int
}

func newStream(b []byte) *stream {
	return &stream{buf: b}
}

func (s *stream) Read(p []byte) (int, error) {
	if s.pos+len(p) > len(s.buf) {
		return 0, errors.Wrapf(io.ErrUnexpectedEOF, "[msh] need %d bytes at 0x%x", len(p), s.pos)
	}
	copy(p, s.buf[s.pos:])
	s.pos += len(p)
	return len(p), nil
}

func (s *stream) remaining() int {
	return len(s.buf) - s.pos
}

func (s *stream) u16() (uint16, error) {
	if s.pos+2 > len(s.buf) {
		return 0, errors.Wrapf(io.ErrUnexpectedEOF, "[msh] need 2 bytes at 0x%x", s.pos)
	}
	v := binary.LittleEndian.Uint16(s.buf[s.pos:])
	s.pos += 2
	return v, nil
}

func (s *stream) u32() (uint32, error) {
	if s.pos+4 > len(s.buf) {
		return 0, errors.Wrapf(io.ErrUnexpectedEOF, "[msh] need 4 bytes at 0x%x", s.pos)
	}
	v := binary.LittleEndian.Uint32(s.buf[s.pos:])
	s.pos += 4
	return v, nil
}

func (s *stream) f32() (float32, error) {
	v, err := s.u32()
	return math.Float32frombits(v), err
}

// into fills a fixed-size value (struct or array of structs) from the cursor.
func (s *stream) into(v interface{}) error {
	return binary.Read(s, binary.LittleEndian, v)
}

func (s *stream) readTag() (uint32, error) {
	return s.u32()
}

// unreadTag rewinds the cursor over a tag that did not match.
func (s *stream) unreadTag() {
	s.pos -= 4
}

// count reads a 32 bit element count and validates it against the bytes left
// in the buffer, so corrupt counts fail before allocation. elemSize is the
// minimal encoded size of one element.
func (s *stream) count(elemSize int) (int, error) {
	at := s.pos
	n, err := s.u32()
	if err != nil {
		return 0, err
	}
	if elemSize > 0 && int(n) > s.remaining()/elemSize {
		return 0, errors.Wrapf(io.ErrUnexpectedEOF,
			"[msh] count %d of %d byte elements at 0x%x overruns buffer", n, elemSize, at)
	}
	return int(n), nil
}

// readName reads a length prefixed null terminated string. The stored length
// includes the terminator. Empty names are a format error.
func (s *stream) readName() (string, error) {
	at := s.pos
	l, err := s.u16()
	if err != nil {
		return "", err
	}
	if s.pos+int(l) > len(s.buf) {
		return "", errors.Wrapf(io.ErrUnexpectedEOF, "[msh] name of %d bytes at 0x%x", l, at)
	}
	raw := s.buf[s.pos : s.pos+int(l)]
	s.pos += int(l)

	name := utils.BytesToString(raw)
	if len(name) == 0 {
		return "", errors.Wrapf(ErrZeroLengthName, "at 0x%x", at)
	}
	return name, nil
}
