package main

import (
	"flag"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mogaika/battlezone_browser/config"
	"github.com/mogaika/battlezone_browser/web"

	_ "github.com/mogaika/battlezone_browser/pack/msh"
)

type settings struct {
	Addr     string `yaml:"addr"`
	Dir      string `yaml:"dir"`
	Encoding string `yaml:"encoding"`
	WebPath  string `yaml:"webpath"`
}

func loadSettings(path string, s *settings) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, s)
}

func main() {
	s := settings{
		Addr:    ":8000",
		WebPath: "web",
	}

	var settingsPath string
	flag.StringVar(&settingsPath, "settings", "", "Path to yaml settings file")
	flag.StringVar(&s.Addr, "i", s.Addr, "Address of server")
	flag.StringVar(&s.Dir, "dir", "", "Path to folder with msh files")
	flag.StringVar(&s.Encoding, "encoding", "", "Name of charmap used for strings in files")
	flag.Parse()

	if settingsPath != "" {
		if err := loadSettings(settingsPath, &s); err != nil {
			log.Fatalf("Cannot load settings %q: %v", settingsPath, err)
		}
	}

	if s.Encoding != "" {
		if err := config.SetEncoding(s.Encoding); err != nil {
			log.Printf("Supported encodings: %v", config.ListEncodings())
			log.Fatal(err)
		}
	}

	if s.Dir == "" {
		flag.PrintDefaults()
		return
	}

	if err := web.StartServer(s.Addr, s.Dir, s.WebPath); err != nil {
		log.Fatal(err)
	}
}
