package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mogaika/battlezone_browser/config"
	"github.com/mogaika/battlezone_browser/pack/msh"
	"github.com/mogaika/battlezone_browser/utils"
)

func dump(path string, outline, spewIt, force bool) error {
	m, err := msh.Open(path)
	if err != nil {
		return err
	}

	if outline {
		m.Walk(func(mesh *msh.Mesh, depth int) {
			fmt.Printf("%s%s\n", strings.Repeat("  ", depth), mesh.Name)
		})
		return nil
	}

	if spewIt {
		fmt.Print(utils.SDump(m))
		return nil
	}

	jsonPath := path + ".json"
	if !force {
		if _, err := os.Stat(jsonPath); err == nil {
			log.Printf("Skipping '%s': json already exists", path)
			return nil
		}
	}

	data, err := json.MarshalIndent(m.Marshal(), "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(jsonPath, data, 0666)
}

func main() {
	var outline, spewIt, force bool
	var encoding string
	flag.BoolVar(&outline, "outline", false, "Print the mesh hierarchy instead of writing json")
	flag.BoolVar(&spewIt, "spew", false, "Print the raw decoded structs instead of writing json")
	flag.BoolVar(&force, "f", false, "Overwrite existing json files")
	flag.StringVar(&encoding, "encoding", "", "Name of charmap used for strings in files")
	flag.Parse()

	if encoding != "" {
		if err := config.SetEncoding(encoding); err != nil {
			log.Fatal(err)
		}
	}

	if flag.NArg() == 0 {
		fmt.Printf("Usage: %s [flags] file.msh ...\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
		return
	}

	for _, path := range flag.Args() {
		if err := dump(path, outline, spewIt, force); err != nil {
			log.Fatalf("Error processing '%s': %v", path, err)
		}
	}
}
