package msh

import (
	"encoding/json"
	"testing"
)

func asMap(t *testing.T, v interface{}) map[string]interface{} {
	t.Helper()
	m, ok := v.(map[string]interface{})
	if !ok {
		t.Fatalf("not a document node: %T", v)
	}
	return m
}

func TestMarshalDocument(t *testing.T) {
	src := testFile(richBlock())
	doc := asMap(t, src.Marshal())

	if _, err := json.Marshal(doc); err != nil {
		t.Fatalf("document not serializable: %v", err)
	}

	if doc["verID"] != uint32(121) {
		t.Errorf("verID = %v", doc["verID"])
	}
	if doc["fileType"] != "MSH" {
		t.Errorf("fileType = %v", doc["fileType"])
	}

	blocks := doc["meshRoot"].([]interface{})
	if len(blocks) != 1 {
		t.Fatalf("blocks = %d", len(blocks))
	}
	blk := asMap(t, blocks[0])

	name := asMap(t, blk["name"])
	if name["string"] != "soldier" {
		t.Errorf("block name = %v", name["string"])
	}
	// The length slot counts the trailing null of the stored string.
	if name["length"] != len("soldier")+1 {
		t.Errorf("name length = %v", name["length"])
	}

	sphere := asMap(t, blk["bigSphere"])
	if sphere["radius"] != float32(2.5) {
		t.Errorf("sphere radius = %v", sphere["radius"])
	}

	buckys := blk["buckys"].([]interface{})
	if len(buckys) == 0 {
		t.Fatal("no buckys in document")
	}
	bd0 := asMap(t, buckys[0])
	src0 := src.Blocks[0].Buckys[0]
	if bd0["indexCount"] != src0.IndexCount || bd0["vertCount"] != src0.VertCount {
		t.Errorf("bucky counts = %v/%v, want %d/%d",
			bd0["indexCount"], bd0["vertCount"], src0.IndexCount, src0.VertCount)
	}
	if _, ok := bd0["matBlock"]; !ok {
		t.Errorf("bucky material missing from document")
	}
}

func TestMarshalMeshEdges(t *testing.T) {
	blk := asMap(t, richBlock().Marshal())
	root := asMap(t, blk["mesh"])

	child := asMap(t, root["child"])
	childName := asMap(t, child["name"])
	if childName["string"] != "turret" {
		t.Fatalf("child = %v", childName["string"])
	}

	siblings := child["siblings"].([]interface{})
	if len(siblings) != 1 {
		t.Fatalf("siblings = %d", len(siblings))
	}
	sibName := asMap(t, asMap(t, siblings[0])["name"])
	if sibName["string"] != "barrel" {
		t.Errorf("sibling = %v", sibName["string"])
	}

	if _, ok := root["siblings"]; ok {
		t.Errorf("root grew a phantom sibling")
	}
}
