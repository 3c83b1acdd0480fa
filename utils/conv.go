package utils

import (
	"bytes"
	"encoding/binary"

	"github.com/mogaika/battlezone_browser/config"

	"golang.org/x/text/transform"
)

// BytesToString decodes a null terminated byte string using the configured
// charmap. Bytes after the first null are ignored.
func BytesToString(bs []byte) string {
	n := bytes.IndexByte(bs, 0)
	if n < 0 {
		n = len(bs)
	}

	s, _, err := transform.Bytes(config.GetEncoding().NewDecoder(), bs[0:n])
	if err != nil {
		panic(err)
	}

	return string(s)
}

func BytesStringLength(bs []byte) int {
	if l := bytes.IndexByte(bs, 0); l == -1 {
		return len(bs)
	} else {
		return l
	}
}

func StringToBytes(s string, nilTerminate bool) []byte {
	bs, _, err := transform.Bytes(config.GetEncoding().NewEncoder(), []byte(s))
	if err != nil {
		panic(err)
	}

	if nilTerminate {
		bs = append(bs, 0)
	}
	return bs
}

func StringToBytesBuffer(s string, bufSize int, nilTerminate bool) []byte {
	bs := StringToBytes(s, nilTerminate)
	if len(bs) < bufSize {
		r := make([]byte, bufSize)
		copy(r, bs)
		bs = r
	} else if len(bs) > bufSize {
		panic(bs)
	}
	return bs
}

func ReadBytes(out interface{}, raw []byte) {
	if err := binary.Read(bytes.NewReader(raw), binary.LittleEndian, out); err != nil {
		panic(err)
	}
}

func AsBytes(data interface{}) []byte {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, data); err != nil {
		panic(err)
	}
	return buf.Bytes()
}
