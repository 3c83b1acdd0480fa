package msh

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
)

func testKeys(frames ...float32) []AnimKey {
	keys := make([]AnimKey, 0, len(frames))
	for _, f := range frames {
		keys = append(keys, AnimKey{
			Frame: f,
			Type:  2,
			Quat:  Quaternion{W: 1},
			Vect:  Vector{f, 0, -f},
		})
	}
	return keys
}

func TestAnimListRoundTrip(t *testing.T) {
	b := testBlock("walker")
	b.States = testKeys(0)
	b.AnimLists = []*AnimList{
		{
			Name:     "walk",
			Type:     1,
			MaxFrame: 29,
			EndFrame: 29,
			Keys:     testKeys(0, 10, 29),
			Anims: []*Anim{
				{Index: 0, MaxFrame: 29, Keys: testKeys(0, 29)},
				{Index: 1, MaxFrame: 29},
			},
		},
		{Name: "idle", MaxFrame: 1, EndFrame: 1},
	}

	decoded := decodeFile(t, encodeFile(t, testFile(b), SaveConfig{}))
	got := decoded.Blocks[0].AnimLists
	if len(got) != 2 {
		t.Fatalf("anim list count = %d", len(got))
	}

	walk := got[0]
	if walk.Name != "walk" || walk.Type != 1 || walk.MaxFrame != 29 || walk.EndFrame != 29 {
		t.Errorf("walk header damaged: %+v", walk)
	}
	if len(walk.Keys) != 3 || walk.Keys[1].Frame != 10 {
		t.Errorf("walk keys damaged: %+v", walk.Keys)
	}
	if walk.Keys[2].Vect != (Vector{29, 0, -29}) {
		t.Errorf("key vector damaged: %+v", walk.Keys[2])
	}
	if len(walk.Anims) != 2 || len(walk.Anims[0].Keys) != 2 || len(walk.Anims[1].Keys) != 0 {
		t.Errorf("sub tracks damaged: %+v", walk.Anims)
	}
	if walk.Anims[1].Index != 1 {
		t.Errorf("sub track index damaged: %+v", walk.Anims[1])
	}

	if got[1].Name != "idle" || len(got[1].Keys) != 0 || len(got[1].Anims) != 0 {
		t.Errorf("idle damaged: %+v", got[1])
	}
}

func TestAnimListEmptyName(t *testing.T) {
	b := testBlock("walker")
	b.AnimLists = []*AnimList{{Name: ""}}

	raw := encodeFile(t, testFile(b), SaveConfig{})
	_, err := Decode(bytes.NewReader(raw))
	if errors.Cause(err) != ErrZeroLengthName {
		t.Errorf("err = %v, want ErrZeroLengthName", err)
	}
}
