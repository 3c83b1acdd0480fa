package msh

import (
	"github.com/pkg/errors"
)

// Material is the shading constant record that may follow a face group.
// Stock exporters generate the name by hashing the color inputs into a hex
// string appended to "mat".
type Material struct {
	Name          string
	Diffuse       ColorValue
	Specular      ColorValue
	SpecularPower float32
	Emissive      ColorValue
	Ambient       ColorValue
}

// Texture is the texture reference record that may follow a Material.
type Texture struct {
	Name    string
	Type    uint32
	Mipmaps uint32
}

func decodeMaterial(s *stream) (*Material, error) {
	m := &Material{}
	var err error
	if m.Name, err = s.readName(); err != nil {
		return nil, errors.Wrapf(err, "material name")
	}
	if err = s.into(&m.Diffuse); err != nil {
		return nil, err
	}
	if err = s.into(&m.Specular); err != nil {
		return nil, err
	}
	if m.SpecularPower, err = s.f32(); err != nil {
		return nil, err
	}
	if err = s.into(&m.Emissive); err != nil {
		return nil, err
	}
	if err = s.into(&m.Ambient); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Material) encode(e *encoder) {
	e.tag(MSH_MATERIAL)
	e.writeName(m.Name)
	e.emit(&m.Diffuse)
	e.emit(&m.Specular)
	e.f32(m.SpecularPower)
	e.emit(&m.Emissive)
	e.emit(&m.Ambient)
}

func decodeTexture(s *stream) (*Texture, error) {
	t := &Texture{}
	var err error
	if t.Name, err = s.readName(); err != nil {
		return nil, errors.Wrapf(err, "texture name")
	}
	if t.Type, err = s.u32(); err != nil {
		return nil, err
	}
	if t.Mipmaps, err = s.u32(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Texture) encode(e *encoder) {
	e.tag(MSH_TEXTURE)
	e.writeName(t.Name)
	e.u32(t.Type)
	e.u32(t.Mipmaps)
}

// decodeOptionals runs the shared probe protocol after a face group record:
// an optional Material, an optional Texture, then an optional
// end-of-optionals tag, in that fixed order. Every probe reads one tag and
// rewinds when it does not match. Absence of any slot is a valid outcome.
func decodeOptionals(s *stream) (*Material, *Texture, bool, error) {
	var mat *Material
	var tex *Texture

	tag, err := s.readTag()
	if err != nil {
		return nil, nil, false, err
	}
	if tag == MSH_MATERIAL {
		if mat, err = decodeMaterial(s); err != nil {
			return nil, nil, false, err
		}
	} else {
		s.unreadTag()
	}

	if tag, err = s.readTag(); err != nil {
		return nil, nil, false, err
	}
	if tag == MSH_TEXTURE {
		if tex, err = decodeTexture(s); err != nil {
			return nil, nil, false, err
		}
	} else {
		s.unreadTag()
	}

	if tag, err = s.readTag(); err != nil {
		return nil, nil, false, err
	}
	if tag == MSH_END_OF_OPTIONALS {
		return mat, tex, true, nil
	}
	s.unreadTag()
	return mat, tex, false, nil
}

// encodeOptionals is the inverse: present slots only. The end tag is emitted
// only when the encoder policy allows it, see SaveConfig.
func encodeOptionals(e *encoder, mat *Material, tex *Texture, endMarker bool) {
	if mat != nil {
		mat.encode(e)
	}
	if tex != nil {
		tex.encode(e)
	}
	if endMarker && e.cfg.WriteEndOfOptionals {
		e.tag(MSH_END_OF_OPTIONALS)
	}
}
