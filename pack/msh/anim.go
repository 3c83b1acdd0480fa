package msh

import (
	"github.com/pkg/errors"
)

// Anim is a per state keyframe sub track.
type Anim struct {
	Index    uint32
	MaxFrame float32
	Keys     []AnimKey
}

// AnimList is a named animation: its own key list plus per state sub tracks.
type AnimList struct {
	Name     string
	Type     uint32
	MaxFrame float32
	EndFrame float32
	Keys     []AnimKey
	Anims    []*Anim
}

func decodeAnimKeys(s *stream) ([]AnimKey, error) {
	n, err := s.count(sizeofAnimKey)
	if err != nil {
		return nil, err
	}
	keys := make([]AnimKey, n)
	if err := s.into(keys); err != nil {
		return nil, err
	}
	return keys, nil
}

func encodeAnimKeys(e *encoder, keys []AnimKey) {
	e.u32(uint32(len(keys)))
	if len(keys) != 0 {
		e.emit(keys)
	}
}

func decodeAnim(s *stream) (*Anim, error) {
	a := &Anim{}
	var err error
	if a.Index, err = s.u32(); err != nil {
		return nil, err
	}
	if a.MaxFrame, err = s.f32(); err != nil {
		return nil, err
	}
	if a.Keys, err = decodeAnimKeys(s); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Anim) encode(e *encoder) {
	e.u32(a.Index)
	e.f32(a.MaxFrame)
	encodeAnimKeys(e, a.Keys)
}

func decodeAnimList(s *stream) (*AnimList, error) {
	al := &AnimList{}
	var err error
	if al.Name, err = s.readName(); err != nil {
		return nil, errors.Wrapf(err, "anim list name")
	}
	if al.Type, err = s.u32(); err != nil {
		return nil, err
	}
	if al.MaxFrame, err = s.f32(); err != nil {
		return nil, err
	}
	if al.EndFrame, err = s.f32(); err != nil {
		return nil, err
	}
	if al.Keys, err = decodeAnimKeys(s); err != nil {
		return nil, err
	}

	n, err := s.count(12)
	if err != nil {
		return nil, err
	}
	al.Anims = make([]*Anim, 0, n)
	for i := 0; i < n; i++ {
		a, err := decodeAnim(s)
		if err != nil {
			return nil, errors.Wrapf(err, "anim %d of %q", i, al.Name)
		}
		al.Anims = append(al.Anims, a)
	}
	return al, nil
}

func (al *AnimList) encode(e *encoder) {
	e.writeName(al.Name)
	e.u32(al.Type)
	e.f32(al.MaxFrame)
	e.f32(al.EndFrame)
	encodeAnimKeys(e, al.Keys)
	e.u32(uint32(len(al.Anims)))
	for _, a := range al.Anims {
		a.encode(e)
	}
}
