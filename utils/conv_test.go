package utils

import (
	"bytes"
	"testing"
)

func TestBytesToString(t *testing.T) {
	if s := BytesToString([]byte("ivtank\x00garbage")); s != "ivtank" {
		t.Errorf("got %q", s)
	}
	if s := BytesToString([]byte("noterm")); s != "noterm" {
		t.Errorf("got %q", s)
	}
	if s := BytesToString([]byte{0}); s != "" {
		t.Errorf("got %q", s)
	}
}

func TestStringToBytes(t *testing.T) {
	if bs := StringToBytes("msh", true); !bytes.Equal(bs, []byte("msh\x00")) {
		t.Errorf("got %v", bs)
	}
	if bs := StringToBytes("msh", false); !bytes.Equal(bs, []byte("msh")) {
		t.Errorf("got %v", bs)
	}
}

func TestStringToBytesBuffer(t *testing.T) {
	bs := StringToBytesBuffer("msh", 8, true)
	if len(bs) != 8 {
		t.Fatalf("len = %d", len(bs))
	}
	if !bytes.Equal(bs[:4], []byte("msh\x00")) || !bytes.Equal(bs[4:], make([]byte, 4)) {
		t.Errorf("got %v", bs)
	}
}
