package msh

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/mogaika/battlezone_browser/utils"
)

type Vector = mgl32.Vec3
type UVPair = mgl32.Vec2
type Quaternion = mgl32.Quat

// ColorValue is a material color, four floats in r,g,b,a order on disk.
type ColorValue = utils.ColorFloat

// Color is a per vertex color, stored b,g,r,a.
type Color struct {
	B, G, R, A uint8
}

// Matrix is stored as four row vectors, 16 floats total.
type Matrix struct {
	Right mgl32.Vec4
	Up    mgl32.Vec4
	Front mgl32.Vec4
	Posit mgl32.Vec4
}

type Plane struct {
	D, X, Y, Z float32
}

// Vertex is one element of the local (hierarchical) vertex buffer.
type Vertex struct {
	Pos  Vector
	Norm Vector
	UV   UVPair
}

// Sphere is the block bounding volume.
type Sphere struct {
	Radius  float32
	Matrix  Matrix
	Width   float32
	Height  float32
	Breadth float32
}

// FaceObj is one face of the global (single geometry) representation.
type FaceObj struct {
	BuckyIndex uint16
	Verts      [3]uint16
	Norms      [3]uint16
	UVs        [3]uint16
}

// AnimKey is a single keyframe.
type AnimKey struct {
	Frame float32
	Type  uint32
	Quat  Quaternion
	Vect  Vector
}

// VertIndex binds a skin weight to a vertex. On disk it is exactly 6 bytes,
// weight then index, never padded to the aligned struct size.
type VertIndex struct {
	Weight float32
	Index  uint16
}

// FileHeader is the fixed top level header.
type FileHeader struct {
	FileType   [4]byte
	Version    uint32
	BlockCount uint32
	NotUsed    [32]byte
}

// BlockInfo precedes each block body.
type BlockInfo struct {
	Key  uint32
	Size uint32
}

// BlockHeader carries the per block pipeline flags.
type BlockHeader struct {
	Dummy            float32
	Scale            float32
	Indexed          uint32
	MoveAnim         uint32
	OldPipe          uint32
	IsSingleGeometry uint32
	Skinned          uint32
}

// Encoded element sizes, used to sanity check counts before allocating.
const (
	sizeofTag        = 4
	sizeofVector     = 12
	sizeofUVPair     = 8
	sizeofColor      = 4
	sizeofPlane      = 16
	sizeofVertex     = 32
	sizeofMatrix     = 64
	sizeofFaceObj    = 20
	sizeofAnimKey    = 36
	sizeofVertIndex  = 6
	sizeofSphere     = 80
	sizeofBlockInfo  = 8
	sizeofHeader     = 28
	sizeofFileHeader = 44
)
