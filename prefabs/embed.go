package prefabs

import (
	"embed"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Disk directories that override the embedded files when present.
const (
	Dir        = "prefabs"
	ScriptsDir = "prefabs/scripts"
)

//go:embed *.yaml scripts/*.tengo
var files embed.FS

// Load reads a YAML prefab such as tuning.yaml.
func Load(name string) ([]byte, error) {
	return read(relPath(name))
}

// LoadScript reads a tengo script. "speed.tengo", "scripts/speed.tengo" and
// "prefabs/scripts/speed.tengo" all name the same file.
func LoadScript(name string) ([]byte, error) {
	rel := strings.TrimPrefix(relPath(name), "scripts/")
	return read(path.Join("scripts", rel))
}

// read prefers the copy on disk so edits show up without a rebuild.
func read(rel string) ([]byte, error) {
	if data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(rel))); err == nil {
		return data, nil
	}
	return files.ReadFile(rel)
}

func relPath(name string) string {
	return strings.TrimPrefix(filepath.ToSlash(name), Dir+"/")
}
