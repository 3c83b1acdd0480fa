package pack

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// FileLoader turns a file on disk into a decoded instance.
type FileLoader func(path string) (interface{}, error)

var gHandlers map[string]FileLoader = make(map[string]FileLoader, 0)

// SetHandler registers a loader for a file extension (".MSH").
// Format packages register themselves from init.
func SetHandler(ext string, ldr FileLoader) {
	gHandlers[strings.ToUpper(ext)] = ldr
}

// GetInstanceHandler decodes the file using the loader registered for its
// extension.
func GetInstanceHandler(path string) (interface{}, error) {
	ext := strings.ToUpper(filepath.Ext(path))

	h, found := gHandlers[ext]
	if !found {
		return nil, errors.Errorf("[pack] Cannot find handler for '%s' extension", ext)
	}

	inst, err := h(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[pack] Handler error for '%s'", path)
	}
	return inst, nil
}

// Extensions lists the registered extensions.
func Extensions() []string {
	exts := make([]string, 0, len(gHandlers))
	for ext := range gHandlers {
		exts = append(exts, ext)
	}
	return exts
}
