package msh

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
)

// Block tags of the .msh container. Unknown tags inside the mesh stream are
// fatal, there is no way to resynchronize after one.
const (
	MSH_END_OF_OPTIONALS = 0x9709513F
	MSH_MATERIAL         = 0x9709513E
	MSH_TEXTURE          = 0x7951FC0B
	MSH_CHILD            = 0xF74C51EE
	MSH_SIBLING          = 0xB8990880
	MSH_END              = 0xA93EB864
	MSH_EOF              = 0xE3BB47F1
)

var (
	ErrZeroLengthName = errors.New("zero length name")
	ErrUnknownBlock   = errors.New("unknown block")
	ErrInvalidFormat  = errors.New("invalid format")
)

// SaveConfig is the per call encoder policy.
type SaveConfig struct {
	// WriteEndOfOptionals re-emits the end-of-optionals tag on records that
	// had one. Kept off by default: older .msh readers (the OMDL1 viewer for
	// one) crash on the tag, so encoding intentionally loses that bit.
	WriteEndOfOptionals bool
}

// MSH is a whole decoded file.
type MSH struct {
	Header FileHeader
	Blocks []*Block
}

// Decode parses a complete .msh stream into the object graph.
func Decode(r io.Reader) (*MSH, error) {
	raw, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "[msh] reading source")
	}
	return decode(newStream(raw))
}

// Open decodes the .msh file at path.
func Open(path string) (*MSH, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[msh] open %q", path)
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "[msh] decode %q", path)
	}
	return m, nil
}

func decode(s *stream) (*MSH, error) {
	m := &MSH{}
	if err := s.into(&m.Header); err != nil {
		return nil, err
	}

	m.Blocks = make([]*Block, 0, m.Header.BlockCount)
	for i := uint32(0); i < m.Header.BlockCount; i++ {
		b, err := decodeBlock(s)
		if err != nil {
			return nil, errors.Wrapf(err, "block %d", i)
		}
		m.Blocks = append(m.Blocks, b)
	}
	return m, nil
}

// Encode writes the graph back to w. The header block count is recomputed
// from the blocks actually held, a stale count in the header never wins.
func (m *MSH) Encode(w io.Writer, cfg SaveConfig) error {
	e := newEncoder(cfg)

	m.Header.BlockCount = uint32(len(m.Blocks))
	e.emit(&m.Header)

	for _, b := range m.Blocks {
		b.encode(e)
	}

	if _, err := w.Write(e.bytes()); err != nil {
		return errors.Wrapf(err, "[msh] writing output")
	}
	return nil
}

// Save encodes into the file at path, creating or truncating it.
func (m *MSH) Save(path string, cfg SaveConfig) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "[msh] create %q", path)
	}
	defer f.Close()
	return m.Encode(f, cfg)
}
