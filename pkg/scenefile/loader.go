package scenefile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Loader reads scene files from a base directory, caching each by file name
// so loading the same scene again returns the already-parsed value.
type Loader struct {
	basePath   string
	sceneCache map[string]*Scene
}

func NewLoader(basePath string) *Loader {
	return &Loader{
		basePath:   basePath,
		sceneCache: make(map[string]*Scene),
	}
}

// LoadScene reads and parses name+".json" under the loader's base path.
func (l *Loader) LoadScene(name string) (*Scene, error) {
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	if scene, ok := l.sceneCache[name]; ok {
		return scene, nil
	}

	path := filepath.Join(l.basePath, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read scene file: %w", err)
	}

	var scene Scene
	if err := json.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("could not unmarshal scene json: %w", err)
	}

	l.sceneCache[name] = &scene
	return &scene, nil
}
