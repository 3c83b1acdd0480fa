package web

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/mogaika/battlezone_browser/pack"
	file_msh "github.com/mogaika/battlezone_browser/pack/msh"
	"github.com/mogaika/battlezone_browser/status"
	"github.com/mogaika/battlezone_browser/webutils"
)

// serverFilePath resolves a request name inside ServerDirectory, refusing
// anything that escapes it.
func serverFilePath(name string) (string, error) {
	if name != filepath.Base(name) {
		return "", fmt.Errorf("invalid file name '%s'", name)
	}
	return filepath.Join(ServerDirectory, name), nil
}

func HandlerAjaxList(w http.ResponseWriter, r *http.Request) {
	entries, err := os.ReadDir(ServerDirectory)
	if err != nil {
		webutils.WriteError(w, err)
		return
	}

	files := make([]string, 0)
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".msh") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	webutils.WriteJson(w, files)
}

func HandlerAjaxFile(w http.ResponseWriter, r *http.Request) {
	file := mux.Vars(r)["file"]
	path, err := serverFilePath(file)
	if err != nil {
		webutils.WriteError(w, err)
		return
	}

	data, err := pack.GetInstanceHandler(path)
	if err != nil {
		log.Printf("Error getting instance of '%s': %v", file, err)
		status.Error("Failed to decode %s: %v", file, err)
		webutils.WriteError(w, err)
		return
	}

	status.Info("Decoded %s", file)
	switch m := data.(type) {
	case *file_msh.MSH:
		webutils.WriteJson(w, m.Marshal())
	default:
		webutils.WriteError(w, fmt.Errorf("File %s has no json view", file))
	}
}

func HandlerAjaxFileOutline(w http.ResponseWriter, r *http.Request) {
	file := mux.Vars(r)["file"]
	path, err := serverFilePath(file)
	if err != nil {
		webutils.WriteError(w, err)
		return
	}

	m, err := file_msh.Open(path)
	if err != nil {
		webutils.WriteError(w, err)
		return
	}

	type outlineEntry struct {
		Name  string
		Depth int
	}
	outline := make([]outlineEntry, 0)
	m.Walk(func(mesh *file_msh.Mesh, depth int) {
		outline = append(outline, outlineEntry{Name: mesh.Name, Depth: depth})
	})
	webutils.WriteJson(w, outline)
}

func HandlerDumpFile(w http.ResponseWriter, r *http.Request) {
	file := mux.Vars(r)["file"]
	path, err := serverFilePath(file)
	if err != nil {
		webutils.WriteError(w, err)
		return
	}

	m, err := file_msh.Open(path)
	if err != nil {
		webutils.WriteError(w, err)
		return
	}
	webutils.WriteJsonFile(w, m.Marshal(), file)
}

// HandlerRepackFile re-encodes the decoded graph and returns the bytes, a
// quick way to check what a round trip does to a particular file.
func HandlerRepackFile(w http.ResponseWriter, r *http.Request) {
	file := mux.Vars(r)["file"]
	path, err := serverFilePath(file)
	if err != nil {
		webutils.WriteError(w, err)
		return
	}

	m, err := file_msh.Open(path)
	if err != nil {
		webutils.WriteError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := m.Encode(&buf, file_msh.SaveConfig{}); err != nil {
		webutils.WriteError(w, err)
		return
	}
	webutils.WriteFile(w, &buf, file)
}

var wsUpgrader = websocket.Upgrader{ReadBufferSize: 1024, WriteBufferSize: 1024}

func HandlerWebsocketStatus(w http.ResponseWriter, r *http.Request) {
	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[web] ws upgrade error: %v", err)
		return
	}
	status.NewClient(conn)
}
