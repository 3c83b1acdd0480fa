package msh

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/mogaika/battlezone_browser/utils"
)

// Hand written document conversion of the whole graph: every entity maps to
// a generic key/value structure suitable for JSON interchange. The key names
// and nesting follow the layout the game tools expect, so dumps stay diffable
// across versions.

func marshalName(name string) interface{} {
	return map[string]interface{}{
		"string": name,
		"length": len(utils.StringToBytes(name, true)),
	}
}

func marshalVector(v Vector) interface{} {
	return map[string]interface{}{"x": v.X(), "y": v.Y(), "z": v.Z()}
}

func marshalUV(uv UVPair) interface{} {
	return map[string]interface{}{"u": uv.X(), "v": uv.Y()}
}

func marshalQuat(q Quaternion) interface{} {
	return map[string]interface{}{"s": q.W, "x": q.V.X(), "y": q.V.Y(), "z": q.V.Z()}
}

func marshalVec4(v mgl32.Vec4) []float32 {
	return []float32{v.X(), v.Y(), v.Z(), v.W()}
}

func marshalMatrix(m *Matrix) interface{} {
	return map[string]interface{}{
		"right": marshalVec4(m.Right),
		"up":    marshalVec4(m.Up),
		"front": marshalVec4(m.Front),
		"posit": marshalVec4(m.Posit),
	}
}

func marshalColor(c Color) interface{} {
	return map[string]interface{}{"b": c.B, "g": c.G, "r": c.R, "a": c.A}
}

func marshalColorValue(c ColorValue) interface{} {
	return map[string]interface{}{"r": c[0], "g": c[1], "b": c[2], "a": c[3]}
}

func marshalPlane(p Plane) interface{} {
	return map[string]interface{}{"d": p.D, "x": p.X, "y": p.Y, "z": p.Z}
}

func marshalSphere(s *Sphere) interface{} {
	return map[string]interface{}{
		"radius":  s.Radius,
		"matrix":  marshalMatrix(&s.Matrix),
		"Width":   s.Width,
		"Height":  s.Height,
		"Breadth": s.Breadth,
	}
}

func marshalAnimKey(k *AnimKey) interface{} {
	return map[string]interface{}{
		"frame": k.Frame,
		"type":  k.Type,
		"quat":  marshalQuat(k.Quat),
		"vect":  marshalVector(k.Vect),
	}
}

func marshalAnimKeys(keys []AnimKey) []interface{} {
	out := make([]interface{}, len(keys))
	for i := range keys {
		out[i] = marshalAnimKey(&keys[i])
	}
	return out
}

func marshalFace(f *FaceObj) interface{} {
	return map[string]interface{}{
		"buckyIndex": f.BuckyIndex,
		"verts":      []uint16{f.Verts[0], f.Verts[1], f.Verts[2]},
		"norms":      []uint16{f.Norms[0], f.Norms[1], f.Norms[2]},
		"uvs":        []uint16{f.UVs[0], f.UVs[1], f.UVs[2]},
	}
}

func (m *Material) Marshal() interface{} {
	return map[string]interface{}{
		"name":          marshalName(m.Name),
		"diffuse":       marshalColorValue(m.Diffuse),
		"specular":      marshalColorValue(m.Specular),
		"specularPower": m.SpecularPower,
		"emissive":      marshalColorValue(m.Emissive),
		"ambient":       marshalColorValue(m.Ambient),
	}
}

func (t *Texture) Marshal() interface{} {
	return map[string]interface{}{
		"name":        marshalName(t.Name),
		"type":        t.Type,
		"mipMapCount": t.Mipmaps,
	}
}

func (vg *VertGroup) Marshal() interface{} {
	j := map[string]interface{}{
		"stateIndex": vg.StateIndex,
		"vertCount":  vg.VertCount,
		"indexCount": vg.IndexCount,
		"planeIndex": vg.PlaneIndex,
	}
	if vg.Material != nil {
		j["matBlock"] = vg.Material.Marshal()
	}
	if vg.Texture != nil {
		j["matTexture"] = vg.Texture.Marshal()
	}
	return j
}

func (bd *BuckyDesc) Marshal() interface{} {
	j := map[string]interface{}{
		"flags":      bd.Flags,
		"indexCount": bd.IndexCount,
		"vertCount":  bd.VertCount,
	}
	if bd.Material != nil {
		j["matBlock"] = bd.Material.Marshal()
	}
	if bd.Texture != nil {
		j["matTexture"] = bd.Texture.Marshal()
	}
	return j
}

func (a *Anim) Marshal() interface{} {
	return map[string]interface{}{
		"index":    a.Index,
		"maxFrame": a.MaxFrame,
		"keys":     marshalAnimKeys(a.Keys),
	}
}

func (al *AnimList) Marshal() interface{} {
	anims := make([]interface{}, len(al.Anims))
	for i, a := range al.Anims {
		anims[i] = a.Marshal()
	}
	return map[string]interface{}{
		"name":       marshalName(al.Name),
		"type":       al.Type,
		"maxFrame":   al.MaxFrame,
		"endFrame":   al.EndFrame,
		"animations": anims,
		"states":     marshalAnimKeys(al.Keys),
	}
}

func (m *Mesh) Marshal() interface{} {
	colors := make([]interface{}, len(m.Colors))
	for i, c := range m.Colors {
		colors[i] = marshalColor(c)
	}
	groups := make([]interface{}, len(m.Groups))
	for i, vg := range m.Groups {
		groups[i] = vg.Marshal()
	}
	planes := make([]interface{}, len(m.Planes))
	for i, p := range m.Planes {
		planes[i] = marshalPlane(p)
	}
	verts := make([]interface{}, len(m.Vertices))
	for i := range m.Vertices {
		v := &m.Vertices[i]
		verts[i] = map[string]interface{}{
			"pos":  marshalVector(v.Pos),
			"norm": marshalVector(v.Norm),
			"uv":   marshalUV(v.UV),
		}
	}

	j := map[string]interface{}{
		"name":             marshalName(m.Name),
		"isSingleGeometry": m.IsSingleGeometry,
		"renderFlags":      m.RenderFlags,
		"stateIndex":       m.StateIndex,
		"objectMatrix":     marshalMatrix(&m.Matrix),
		"localColors":      colors,
		"localGroups":      groups,
		"localIndices":     m.Indices,
		"localPlanes":      planes,
		"localVertex":      verts,
	}

	// The tree is reproduced through the on disk edges, not the flat view.
	if m.Child != nil {
		j["child"] = m.Child.Marshal()
	}
	if m.Sibling != nil {
		j["siblings"] = []interface{}{m.Sibling.Marshal()}
	}
	return j
}

func (b *Block) Marshal() interface{} {
	vertices := make([]interface{}, len(b.Vertices))
	for i, v := range b.Vertices {
		vertices[i] = marshalVector(v)
	}
	normals := make([]interface{}, len(b.Normals))
	for i, v := range b.Normals {
		normals[i] = marshalVector(v)
	}
	uvs := make([]interface{}, len(b.UVs))
	for i, uv := range b.UVs {
		uvs[i] = marshalUV(uv)
	}
	colors := make([]interface{}, len(b.Colors))
	for i, c := range b.Colors {
		colors[i] = marshalColor(c)
	}
	faces := make([]interface{}, len(b.Faces))
	for i := range b.Faces {
		faces[i] = marshalFace(&b.Faces[i])
	}
	buckys := make([]interface{}, len(b.Buckys))
	for i, bd := range b.Buckys {
		buckys[i] = bd.Marshal()
	}
	vertToState := make([]interface{}, len(b.VertToState))
	for i, list := range b.VertToState {
		arr := make([]interface{}, len(list))
		for k, vi := range list {
			arr[k] = map[string]interface{}{"weight": vi.Weight, "index": vi.Index}
		}
		vertToState[i] = map[string]interface{}{"count": len(list), "array": arr}
	}
	groups := make([]interface{}, len(b.Groups))
	for i, vg := range b.Groups {
		groups[i] = vg.Marshal()
	}
	planes := make([]interface{}, len(b.Planes))
	for i, p := range b.Planes {
		planes[i] = marshalPlane(p)
	}
	stateMats := make([]interface{}, len(b.StateMatrices))
	for i := range b.StateMatrices {
		stateMats[i] = marshalMatrix(&b.StateMatrices[i])
	}
	animLists := make([]interface{}, len(b.AnimLists))
	for i, al := range b.AnimLists {
		animLists[i] = al.Marshal()
	}

	j := map[string]interface{}{
		"name":      marshalName(b.Name),
		"bigSphere": marshalSphere(&b.Sphere),
		"blockInfo": map[string]interface{}{"key": b.Info.Key, "size": b.Info.Size},

		"vertices":    vertices,
		"normals":     normals,
		"uvs":         uvs,
		"colors":      colors,
		"faces":       faces,
		"buckys":      buckys,
		"vertToState": vertToState,
		"groups":      groups,
		"indices":     b.Indices,
		"planes":      planes,
		"stateMats":   stateMats,
		"States":      marshalAnimKeys(b.States),
		"animList":    animLists,

		"dummy":            b.Header.Dummy,
		"scale":            b.Header.Scale,
		"indexed":          b.Header.Indexed,
		"moveAnim":         b.Header.MoveAnim,
		"oldPipe":          b.Header.OldPipe,
		"isSingleGeometry": b.Header.IsSingleGeometry,
		"skinned":          b.Header.Skinned,
	}
	if b.Root != nil {
		j["mesh"] = b.Root.Marshal()
	}
	return j
}

func (m *MSH) Marshal() interface{} {
	blocks := make([]interface{}, len(m.Blocks))
	for i, b := range m.Blocks {
		blocks[i] = b.Marshal()
	}

	notUsed := make([]string, len(m.Header.NotUsed))
	for i, x := range m.Header.NotUsed {
		notUsed[i] = fmt.Sprintf("%02X", x)
	}

	return map[string]interface{}{
		"verID":      m.Header.Version,
		"blockCount": m.Header.BlockCount,
		"fileType":   utils.BytesToString(m.Header.FileType[:]),
		"notUsed":    strings.Join(notUsed, " "),
		"meshRoot":   blocks,
	}
}
