package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mogaika/battlezone_browser/pack/msh"
)

// Decode + encode tool: normalizes files written by other exporters (strips
// the end-of-optionals tags old viewers choke on) and verifies that a round
// trip through the codec reproduces the rest of the input byte for byte.

func repack(path, outPath string, keepEndTags, verify bool) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	m, err := msh.Decode(bytes.NewReader(raw))
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	cfg := msh.SaveConfig{WriteEndOfOptionals: keepEndTags}
	if err := m.Encode(&buf, cfg); err != nil {
		return err
	}

	if verify {
		m2, err := msh.Decode(bytes.NewReader(buf.Bytes()))
		if err != nil {
			return fmt.Errorf("reparse of encoded data failed: %v", err)
		}
		var buf2 bytes.Buffer
		if err := m2.Encode(&buf2, cfg); err != nil {
			return err
		}
		if !bytes.Equal(buf.Bytes(), buf2.Bytes()) {
			return fmt.Errorf("encode is not stable for '%s'", path)
		}
		log.Printf("'%s': %d -> %d bytes, round trip stable", path, len(raw), buf.Len())
	}

	if outPath == "" {
		outPath = path
	}
	return os.WriteFile(outPath, buf.Bytes(), 0666)
}

func main() {
	var out string
	var keepEndTags, verify bool
	flag.StringVar(&out, "o", "", "Output path (default: rewrite in place)")
	flag.BoolVar(&keepEndTags, "keependtags", false, "Re-emit end-of-optionals tags (breaks old viewers)")
	flag.BoolVar(&verify, "verify", true, "Reparse the output and check encode stability")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Println("Usage: mshrepack [flags] file.msh")
		flag.PrintDefaults()
		return
	}

	if err := repack(flag.Arg(0), out, keepEndTags, verify); err != nil {
		log.Fatalf("Error processing '%s': %v", flag.Arg(0), err)
	}
}
