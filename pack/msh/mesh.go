package msh

import (
	"github.com/pkg/errors"
)

// VertGroup binds a material/texture to a run of faces of a local mesh.
type VertGroup struct {
	StateIndex uint32
	VertCount  uint32
	IndexCount uint32
	PlaneIndex uint32

	Material  *Material
	Texture   *Texture
	EndMarker bool
}

func decodeVertGroup(s *stream) (*VertGroup, error) {
	vg := &VertGroup{}
	var err error
	if vg.StateIndex, err = s.u32(); err != nil {
		return nil, err
	}
	if vg.VertCount, err = s.u32(); err != nil {
		return nil, err
	}
	if vg.IndexCount, err = s.u32(); err != nil {
		return nil, err
	}
	if vg.PlaneIndex, err = s.u32(); err != nil {
		return nil, err
	}
	vg.Material, vg.Texture, vg.EndMarker, err = decodeOptionals(s)
	if err != nil {
		return nil, err
	}
	return vg, nil
}

func (vg *VertGroup) encode(e *encoder) {
	e.u32(vg.StateIndex)
	e.u32(vg.VertCount)
	e.u32(vg.IndexCount)
	e.u32(vg.PlaneIndex)
	encodeOptionals(e, vg.Material, vg.Texture, vg.EndMarker)
}

// Mesh is one node of the local mesh hierarchy. Child and Sibling are the
// ownership edges actually stored on disk (first child / next sibling).
// Children is the flat ordered view the decoder maintains alongside them;
// Walk and the document export rely on it.
type Mesh struct {
	Name             string
	StateIndex       uint32
	IsSingleGeometry int32
	RenderFlags      uint32
	Matrix           Matrix

	Colors   []Color
	Planes   []Plane
	Vertices []Vertex
	Groups   []*VertGroup
	Indices  []uint16

	Child   *Mesh
	Sibling *Mesh

	Children []*Mesh
}

// decodeMeshBody reads one mesh record, markers excluded.
func decodeMeshBody(s *stream) (*Mesh, error) {
	m := &Mesh{}
	var err error
	if m.Name, err = s.readName(); err != nil {
		return nil, errors.Wrapf(err, "mesh name")
	}
	if m.StateIndex, err = s.u32(); err != nil {
		return nil, err
	}
	if err = s.into(&m.IsSingleGeometry); err != nil {
		return nil, err
	}
	if m.RenderFlags, err = s.u32(); err != nil {
		return nil, err
	}
	if err = s.into(&m.Matrix); err != nil {
		return nil, err
	}

	n, err := s.count(sizeofColor)
	if err != nil {
		return nil, err
	}
	m.Colors = make([]Color, n)
	if err = s.into(m.Colors); err != nil {
		return nil, err
	}

	if n, err = s.count(sizeofPlane); err != nil {
		return nil, err
	}
	m.Planes = make([]Plane, n)
	if err = s.into(m.Planes); err != nil {
		return nil, err
	}

	if n, err = s.count(sizeofVertex); err != nil {
		return nil, err
	}
	m.Vertices = make([]Vertex, n)
	if err = s.into(m.Vertices); err != nil {
		return nil, err
	}

	if n, err = s.count(16); err != nil {
		return nil, err
	}
	m.Groups = make([]*VertGroup, 0, n)
	for i := 0; i < n; i++ {
		vg, err := decodeVertGroup(s)
		if err != nil {
			return nil, errors.Wrapf(err, "vert group %d of mesh %q", i, m.Name)
		}
		m.Groups = append(m.Groups, vg)
	}

	// The index buffer is not required to hold whole triangles, a trailing
	// partial one is carried through untouched.
	if n, err = s.count(2); err != nil {
		return nil, err
	}
	m.Indices = make([]uint16, n)
	if err = s.into(m.Indices); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Mesh) encodeBody(e *encoder) {
	e.writeName(m.Name)
	e.u32(m.StateIndex)
	e.emit(m.IsSingleGeometry)
	e.u32(m.RenderFlags)
	e.emit(&m.Matrix)

	e.u32(uint32(len(m.Colors)))
	if len(m.Colors) != 0 {
		e.emit(m.Colors)
	}
	e.u32(uint32(len(m.Planes)))
	if len(m.Planes) != 0 {
		e.emit(m.Planes)
	}
	e.u32(uint32(len(m.Vertices)))
	if len(m.Vertices) != 0 {
		e.emit(m.Vertices)
	}
	e.u32(uint32(len(m.Groups)))
	for _, vg := range m.Groups {
		vg.encode(e)
	}
	e.u32(uint32(len(m.Indices)))
	if len(m.Indices) != 0 {
		e.emit(m.Indices)
	}
}

// decodeMeshTree rebuilds the hierarchy under an already parsed root from the
// flat marker stream. The shape state is three scalars: the current depth,
// the number of still open nodes, and the last node seen at every depth.
// Marker order does not nest like balanced parentheses in every file the
// game shipped, so the depth correction after END is kept exactly as the
// engine behaves rather than simplified.
func decodeMeshTree(s *stream, root *Mesh) error {
	depth := 0
	open := 1
	nodeAtDepth := []*Mesh{root}

	for open > 0 {
		at := s.pos
		tag, err := s.readTag()
		if err != nil {
			return err
		}

		switch tag {
		case MSH_CHILD:
			m, err := decodeMeshBody(s)
			if err != nil {
				return err
			}
			cur := nodeAtDepth[depth]
			cur.Child = m
			cur.Children = append(cur.Children, m)

			depth++
			open++
			if len(nodeAtDepth) < depth+1 {
				nodeAtDepth = append(nodeAtDepth, m)
			} else {
				nodeAtDepth[depth] = m
			}

		case MSH_SIBLING:
			m, err := decodeMeshBody(s)
			if err != nil {
				return err
			}
			nodeAtDepth[depth].Sibling = m

			parent := root
			if depth > 0 {
				parent = nodeAtDepth[depth-1]
			}
			parent.Children = append(parent.Children, m)

			nodeAtDepth[depth] = m
			open++

		case MSH_END:
			open--
			for open < depth {
				depth--
			}

		default:
			return errors.Wrapf(ErrUnknownBlock,
				"mesh block 0x%.8x at 0x%x (note that oldpipe meshes are not supported)", tag, at)
		}
	}

	at := s.pos
	tag, err := s.readTag()
	if err != nil {
		return errors.Wrapf(ErrInvalidFormat, "missing EOF mark at 0x%x", at)
	}
	if tag != MSH_EOF {
		return errors.Wrapf(ErrInvalidFormat, "expected EOF mark, got 0x%.8x at 0x%x", tag, at)
	}
	return nil
}

// encodeTree writes the node body and its whole subtree. Every node is
// closed by an END marker whether or not it had children; the root itself is
// written without a leading marker.
func (m *Mesh) encodeTree(e *encoder) {
	m.encodeBody(e)

	if m.Child != nil {
		e.tag(MSH_CHILD)
		m.Child.encodeTree(e)
	}

	e.tag(MSH_END)

	if m.Sibling != nil {
		e.tag(MSH_SIBLING)
		m.Sibling.encodeTree(e)
	}
}
