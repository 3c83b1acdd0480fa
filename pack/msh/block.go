package msh

import (
	"github.com/pkg/errors"
)

// BuckyDesc binds a material/texture to a run of faces of the global mesh.
// Field order follows the wire: flags, index count, vert count.
type BuckyDesc struct {
	Flags      uint32
	IndexCount uint32
	VertCount  uint32

	Material  *Material
	Texture   *Texture
	EndMarker bool
}

func decodeBucky(s *stream) (*BuckyDesc, error) {
	bd := &BuckyDesc{}
	var err error
	if bd.Flags, err = s.u32(); err != nil {
		return nil, err
	}
	if bd.IndexCount, err = s.u32(); err != nil {
		return nil, err
	}
	if bd.VertCount, err = s.u32(); err != nil {
		return nil, err
	}
	bd.Material, bd.Texture, bd.EndMarker, err = decodeOptionals(s)
	if err != nil {
		return nil, err
	}
	return bd, nil
}

func (bd *BuckyDesc) encode(e *encoder) {
	e.u32(bd.Flags)
	e.u32(bd.IndexCount)
	e.u32(bd.VertCount)
	encodeOptionals(e, bd.Material, bd.Texture, bd.EndMarker)
}

// Block is one independent geometry unit: the global buffers of the single
// geometry path, the skin table, the animation lists and the owned local
// mesh hierarchy.
type Block struct {
	Info   BlockInfo
	Name   string
	Sphere Sphere
	Header BlockHeader

	Vertices []Vector
	Normals  []Vector
	UVs      []UVPair
	Colors   []Color
	Faces    []FaceObj
	Buckys   []*BuckyDesc

	// VertToState holds one weight/index list per state.
	VertToState [][]VertIndex

	Groups        []*VertGroup
	Indices       []uint16
	Planes        []Plane
	StateMatrices []Matrix
	States        []AnimKey
	AnimLists     []*AnimList

	Root *Mesh
}

func decodeBlock(s *stream) (*Block, error) {
	b := &Block{}
	var err error
	if err = s.into(&b.Info); err != nil {
		return nil, err
	}
	if b.Name, err = s.readName(); err != nil {
		return nil, errors.Wrapf(err, "block name")
	}
	if err = s.into(&b.Sphere); err != nil {
		return nil, err
	}
	if err = s.into(&b.Header); err != nil {
		return nil, err
	}

	n, err := s.count(sizeofVector)
	if err != nil {
		return nil, err
	}
	b.Vertices = make([]Vector, n)
	if err = s.into(b.Vertices); err != nil {
		return nil, err
	}

	if n, err = s.count(sizeofVector); err != nil {
		return nil, err
	}
	b.Normals = make([]Vector, n)
	if err = s.into(b.Normals); err != nil {
		return nil, err
	}

	if n, err = s.count(sizeofUVPair); err != nil {
		return nil, err
	}
	b.UVs = make([]UVPair, n)
	if err = s.into(b.UVs); err != nil {
		return nil, err
	}

	if n, err = s.count(sizeofColor); err != nil {
		return nil, err
	}
	b.Colors = make([]Color, n)
	if err = s.into(b.Colors); err != nil {
		return nil, err
	}

	if n, err = s.count(sizeofFaceObj); err != nil {
		return nil, err
	}
	b.Faces = make([]FaceObj, n)
	if err = s.into(b.Faces); err != nil {
		return nil, err
	}

	if n, err = s.count(12); err != nil {
		return nil, err
	}
	b.Buckys = make([]*BuckyDesc, 0, n)
	for i := 0; i < n; i++ {
		bd, err := decodeBucky(s)
		if err != nil {
			return nil, errors.Wrapf(err, "bucky %d", i)
		}
		b.Buckys = append(b.Buckys, bd)
	}

	if err = b.decodeVertToState(s); err != nil {
		return nil, err
	}

	if n, err = s.count(16); err != nil {
		return nil, err
	}
	b.Groups = make([]*VertGroup, 0, n)
	for i := 0; i < n; i++ {
		vg, err := decodeVertGroup(s)
		if err != nil {
			return nil, errors.Wrapf(err, "vert group %d", i)
		}
		b.Groups = append(b.Groups, vg)
	}

	if n, err = s.count(2); err != nil {
		return nil, err
	}
	b.Indices = make([]uint16, n)
	if err = s.into(b.Indices); err != nil {
		return nil, err
	}

	if n, err = s.count(sizeofPlane); err != nil {
		return nil, err
	}
	b.Planes = make([]Plane, n)
	if err = s.into(b.Planes); err != nil {
		return nil, err
	}

	if n, err = s.count(sizeofMatrix); err != nil {
		return nil, err
	}
	b.StateMatrices = make([]Matrix, n)
	if err = s.into(b.StateMatrices); err != nil {
		return nil, err
	}

	if b.States, err = decodeAnimKeys(s); err != nil {
		return nil, err
	}

	if n, err = s.count(18); err != nil {
		return nil, err
	}
	b.AnimLists = make([]*AnimList, 0, n)
	for i := 0; i < n; i++ {
		al, err := decodeAnimList(s)
		if err != nil {
			return nil, errors.Wrapf(err, "anim list %d", i)
		}
		b.AnimLists = append(b.AnimLists, al)
	}

	if b.Root, err = decodeMeshBody(s); err != nil {
		return nil, errors.Wrapf(err, "root mesh")
	}
	if err = decodeMeshTree(s, b.Root); err != nil {
		return nil, errors.Wrapf(err, "mesh tree of block %q", b.Name)
	}

	return b, nil
}

// decodeVertToState reads the skin table: a list count, then per state one
// inner count and that many weight/index pairs. The pair is read field by
// field on purpose, a whole-record read would change its 6 byte size.
func (b *Block) decodeVertToState(s *stream) error {
	n, err := s.count(sizeofTag)
	if err != nil {
		return err
	}
	b.VertToState = make([][]VertIndex, 0, n)
	for i := 0; i < n; i++ {
		inner, err := s.count(sizeofVertIndex)
		if err != nil {
			return errors.Wrapf(err, "vert to state %d", i)
		}
		list := make([]VertIndex, inner)
		for j := range list {
			if list[j].Weight, err = s.f32(); err != nil {
				return errors.Wrapf(err, "vert to state %d/%d", i, j)
			}
			if list[j].Index, err = s.u16(); err != nil {
				return errors.Wrapf(err, "vert to state %d/%d", i, j)
			}
		}
		b.VertToState = append(b.VertToState, list)
	}
	return nil
}

func (b *Block) encode(e *encoder) {
	e.emit(&b.Info)
	e.writeName(b.Name)
	e.emit(&b.Sphere)
	e.emit(&b.Header)

	e.u32(uint32(len(b.Vertices)))
	if len(b.Vertices) != 0 {
		e.emit(b.Vertices)
	}
	e.u32(uint32(len(b.Normals)))
	if len(b.Normals) != 0 {
		e.emit(b.Normals)
	}
	e.u32(uint32(len(b.UVs)))
	if len(b.UVs) != 0 {
		e.emit(b.UVs)
	}
	e.u32(uint32(len(b.Colors)))
	if len(b.Colors) != 0 {
		e.emit(b.Colors)
	}
	e.u32(uint32(len(b.Faces)))
	if len(b.Faces) != 0 {
		e.emit(b.Faces)
	}

	e.u32(uint32(len(b.Buckys)))
	for _, bd := range b.Buckys {
		bd.encode(e)
	}

	e.u32(uint32(len(b.VertToState)))
	for _, list := range b.VertToState {
		e.u32(uint32(len(list)))
		for _, vi := range list {
			e.f32(vi.Weight)
			e.u16(vi.Index)
		}
	}

	e.u32(uint32(len(b.Groups)))
	for _, vg := range b.Groups {
		vg.encode(e)
	}

	e.u32(uint32(len(b.Indices)))
	if len(b.Indices) != 0 {
		e.emit(b.Indices)
	}
	e.u32(uint32(len(b.Planes)))
	if len(b.Planes) != 0 {
		e.emit(b.Planes)
	}
	e.u32(uint32(len(b.StateMatrices)))
	if len(b.StateMatrices) != 0 {
		e.emit(b.StateMatrices)
	}
	encodeAnimKeys(e, b.States)

	e.u32(uint32(len(b.AnimLists)))
	for _, al := range b.AnimLists {
		al.encode(e)
	}

	if b.Root != nil {
		b.Root.encodeTree(e)
	}

	e.tag(MSH_EOF)
}
