package controllers

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/benbjohnson/hashfs"
	"github.com/gorilla/mux"

	"github.com/jobsboard/web/pkg/application"
)

type StaticFilesController struct {
	fsInstances []*hashfs.FS
}

func (s *StaticFilesController) Key() string {
	return "/assets"
}

// Register serves each file from the first registered FS holding it. Hashed
// names are cached for good by hashfs.
func (s *StaticFilesController) Register(r *mux.Router) {
	servers := make([]http.Handler, len(s.fsInstances))
	for i, fsys := range s.fsInstances {
		servers[i] = hashfs.FileServer(fsys)
	}
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/")
		for i, fsys := range s.fsInstances {
			plain, _ := hashfs.ParseName(name)
			if _, err := fs.Stat(fsys, plain); err == nil {
				servers[i].ServeHTTP(w, r)
				return
			}
		}
		http.NotFound(w, r)
	})
	r.PathPrefix("/assets/").Handler(http.StripPrefix("/assets", handler))
}

func NewStaticFilesController(fsInstances []*hashfs.FS) application.Controller {
	return &StaticFilesController{
		fsInstances: fsInstances,
	}
}
