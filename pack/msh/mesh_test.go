package msh

import (
	"bytes"
	"encoding/binary"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
)

func treeOutline(b *Block) []string {
	outline := make([]string, 0)
	b.Walk(func(m *Mesh, depth int) {
		outline = append(outline, m.Name)
	})
	return outline
}

func TestTreeShape(t *testing.T) {
	// root
	//   hull
	//     cockpit
	//     wing_l
	//     wing_r
	//   turret
	cockpit := testMesh("cockpit")
	wingL := testMesh("wing_l")
	wingR := testMesh("wing_r")
	cockpit.Sibling = wingL
	wingL.Sibling = wingR

	hull := testMesh("hull")
	hull.Child = cockpit
	turret := testMesh("turret")
	hull.Sibling = turret

	b := testBlock("ship")
	b.Root.Child = hull

	decoded := decodeFile(t, encodeFile(t, testFile(b), SaveConfig{}))
	root := decoded.Blocks[0].Root

	if len(root.Children) != 2 || root.Children[0].Name != "hull" || root.Children[1].Name != "turret" {
		t.Fatalf("root children damaged: %v", treeOutline(decoded.Blocks[0]))
	}
	gotHull := root.Children[0]
	if len(gotHull.Children) != 3 {
		t.Fatalf("hull children count = %d", len(gotHull.Children))
	}
	for i, want := range []string{"cockpit", "wing_l", "wing_r"} {
		if gotHull.Children[i].Name != want {
			t.Errorf("hull child %d = %q, want %q", i, gotHull.Children[i].Name, want)
		}
	}
	if gotHull.Child.Name != "cockpit" || gotHull.Child.Sibling.Name != "wing_l" {
		t.Errorf("sibling chain damaged")
	}
	if len(root.Children[1].Children) != 0 {
		t.Errorf("turret should be a leaf")
	}
}

func TestWalkOrder(t *testing.T) {
	b := testBlock("ship")
	a := testMesh("a")
	aa := testMesh("aa")
	bm := testMesh("b")
	a.Child = aa
	a.Sibling = bm
	b.Root.Child = a

	decoded := decodeFile(t, encodeFile(t, testFile(b), SaveConfig{}))
	blk := decoded.Blocks[0]

	wantNames := []string{"root", "a", "aa", "b"}
	wantDepths := []int{0, 1, 2, 1}

	for pass := 0; pass < 2; pass++ {
		names := make([]string, 0)
		depths := make([]int, 0)
		blk.Walk(func(m *Mesh, depth int) {
			names = append(names, m.Name)
			depths = append(depths, depth)
		})
		if len(names) != len(wantNames) {
			t.Fatalf("pass %d: walked %v", pass, names)
		}
		for i := range names {
			if names[i] != wantNames[i] || depths[i] != wantDepths[i] {
				t.Errorf("pass %d: step %d = (%s, %d), want (%s, %d)",
					pass, i, names[i], depths[i], wantNames[i], wantDepths[i])
			}
		}
	}
}

func TestUnknownMarker(t *testing.T) {
	raw := encodeFile(t, testFile(testBlock("x")), SaveConfig{})

	// A single mesh block ends with END then EOF.
	bad := make([]byte, len(raw))
	copy(bad, raw)
	binary.LittleEndian.PutUint32(bad[len(bad)-8:], 0xDEADBEEF)

	_, err := Decode(bytes.NewReader(bad))
	if errors.Cause(err) != ErrUnknownBlock {
		t.Errorf("err = %v, want ErrUnknownBlock", err)
	}
}

func TestEOFMarker(t *testing.T) {
	raw := encodeFile(t, testFile(testBlock("x")), SaveConfig{})

	corrupted := make([]byte, len(raw))
	copy(corrupted, raw)
	binary.LittleEndian.PutUint32(corrupted[len(corrupted)-4:], 0x11223344)
	if _, err := Decode(bytes.NewReader(corrupted)); errors.Cause(err) != ErrInvalidFormat {
		t.Errorf("corrupted EOF: err = %v, want ErrInvalidFormat", err)
	}

	if _, err := Decode(bytes.NewReader(raw[:len(raw)-4])); errors.Cause(err) != ErrInvalidFormat {
		t.Errorf("truncated EOF: err = %v, want ErrInvalidFormat", err)
	}
}

// Consecutive SIBLING markers followed by a CHILD attach to the node the
// marker machine currently tracks at that depth, not to the first sibling.
func TestMarkerSequenceSiblingRuns(t *testing.T) {
	e := newEncoder(SaveConfig{})
	testMesh("root").encodeBody(e)
	e.tag(MSH_CHILD)
	testMesh("a").encodeBody(e)
	e.tag(MSH_SIBLING)
	testMesh("b").encodeBody(e)
	e.tag(MSH_SIBLING)
	testMesh("c").encodeBody(e)
	e.tag(MSH_CHILD)
	testMesh("d").encodeBody(e)
	for i := 0; i < 5; i++ {
		e.tag(MSH_END)
	}
	e.tag(MSH_EOF)

	s := newStream(e.bytes())
	root, err := decodeMeshBody(s)
	if err != nil {
		t.Fatal(err)
	}
	if err := decodeMeshTree(s, root); err != nil {
		t.Fatal(err)
	}

	if len(root.Children) != 3 {
		t.Fatalf("root children = %d, want 3", len(root.Children))
	}
	c := root.Children[2]
	if c.Name != "c" || len(c.Children) != 1 || c.Children[0].Name != "d" {
		t.Errorf("child after sibling run attached wrong: %+v", c)
	}
	if s.remaining() != 0 {
		t.Errorf("%d bytes left after tree", s.remaining())
	}
}

// Random trees through the codec: the marker stream must rebuild the exact
// shape and re-encode byte identical.
func TestMarkerStreamFuzz(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		rnd := rand.New(rand.NewSource(seed))

		nodes := []*Mesh{testMesh("m0")}
		total := 2 + rnd.Intn(30)
		for i := 1; i < total; i++ {
			m := testMesh(nodes[0].Name[:1] + string(rune('0'+i%10)))
			parent := nodes[rnd.Intn(len(nodes))]
			if parent.Child == nil {
				parent.Child = m
			} else {
				last := parent.Child
				for last.Sibling != nil {
					last = last.Sibling
				}
				last.Sibling = m
			}
			nodes = append(nodes, m)
		}

		b := testBlock("fuzz")
		b.Root.Child = nodes[0]
		src := testFile(b)

		first := encodeFile(t, src, SaveConfig{})
		decoded := decodeFile(t, first)
		second := encodeFile(t, decoded, SaveConfig{})
		if !bytes.Equal(first, second) {
			t.Fatalf("seed %d: tree encode unstable", seed)
		}

		count := 0
		decoded.Blocks[0].Walk(func(m *Mesh, depth int) { count++ })
		if count != len(nodes)+1 {
			t.Errorf("seed %d: walked %d meshes, want %d", seed, count, len(nodes)+1)
		}
	}
}
