package msh

// Walk visits the meshes below m in decode order, depth first. The visit
// callback receives the depth relative to the walk root.
func (m *Mesh) Walk(depth int, visit func(m *Mesh, depth int)) {
	for _, child := range m.Children {
		visit(child, depth)
		child.Walk(depth+1, visit)
	}
}

// Walk visits every mesh of the block hierarchy in pre order, root first at
// depth 0. The traversal is read only and can be repeated freely.
func (b *Block) Walk(visit func(m *Mesh, depth int)) {
	if b.Root == nil {
		return
	}
	visit(b.Root, 0)
	b.Root.Walk(1, visit)
}

// Walk visits the hierarchies of all blocks in file order.
func (m *MSH) Walk(visit func(m *Mesh, depth int)) {
	for _, b := range m.Blocks {
		b.Walk(visit)
	}
}
