package msh

import (
	"bytes"
	"io"
	"testing"

	"github.com/pkg/errors"
)

func TestStreamCountGuard(t *testing.T) {
	var buf bytes.Buffer
	putU32(&buf, 0xFFFFFF) // far more elements than bytes left
	buf.Write(make([]byte, 64))

	s := newStream(buf.Bytes())
	_, err := s.count(sizeofVertex)
	if errors.Cause(err) != io.ErrUnexpectedEOF {
		t.Errorf("oversized count accepted: %v", err)
	}

	s = newStream(buf.Bytes())
	if n, err := s.count(0); err != nil || n != 0xFFFFFF {
		// elemSize 0 disables the guard for callers that size elements
		// themselves
		t.Errorf("count(0) = %d, %v", n, err)
	}
}

func TestStreamNameCodec(t *testing.T) {
	e := newEncoder(SaveConfig{})
	e.writeName("ivtank")

	raw := e.bytes()
	if len(raw) != 2+7 {
		t.Fatalf("encoded name is %d bytes", len(raw))
	}
	if raw[len(raw)-1] != 0 {
		t.Errorf("terminator missing")
	}

	s := newStream(raw)
	name, err := s.readName()
	if err != nil {
		t.Fatal(err)
	}
	if name != "ivtank" {
		t.Errorf("name = %q", name)
	}
	if s.remaining() != 0 {
		t.Errorf("%d bytes left after name", s.remaining())
	}
}

func TestStreamTagProbe(t *testing.T) {
	var buf bytes.Buffer
	putU32(&buf, MSH_MATERIAL, 42)

	s := newStream(buf.Bytes())
	tag, err := s.readTag()
	if err != nil || tag != MSH_MATERIAL {
		t.Fatalf("tag = 0x%x, %v", tag, err)
	}
	s.unreadTag()
	if s.pos != 0 {
		t.Errorf("unreadTag left cursor at %d", s.pos)
	}

	if tag, _ = s.readTag(); tag != MSH_MATERIAL {
		t.Errorf("reread tag = 0x%x", tag)
	}
	if v, _ := s.u32(); v != 42 {
		t.Errorf("payload after tag = %d", v)
	}
}

func TestStreamShortReads(t *testing.T) {
	s := newStream([]byte{1, 2})
	if _, err := s.u32(); errors.Cause(err) != io.ErrUnexpectedEOF {
		t.Errorf("u32 on 2 bytes: %v", err)
	}
	if _, err := s.u16(); err != nil {
		t.Errorf("failed u32 moved the cursor: %v", err)
	}
}
