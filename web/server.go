package web

import (
	"log"
	"net/http"
	"os"
	"path"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// ServerDirectory is the directory of game files the handlers operate on.
var ServerDirectory string

func StartServer(addr string, dir string, webPath string) error {
	ServerDirectory = dir

	r := mux.NewRouter()
	r.HandleFunc("/json/msh", HandlerAjaxList)
	r.HandleFunc("/json/msh/{file}", HandlerAjaxFile)
	r.HandleFunc("/json/msh/{file}/outline", HandlerAjaxFileOutline)
	r.HandleFunc("/dump/msh/{file}", HandlerDumpFile)
	r.HandleFunc("/repack/msh/{file}", HandlerRepackFile)
	r.HandleFunc("/ws/status", HandlerWebsocketStatus)

	r.PathPrefix("/").Handler(http.FileServer(http.Dir(path.Join(webPath, "data"))))

	h := handlers.RecoveryHandler()(r)
	h = handlers.LoggingHandler(os.Stdout, h)

	log.Printf("[web] Starting server %v", addr)

	return http.ListenAndServe(addr, h)
}
