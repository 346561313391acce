package infra_modelfs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

const weightsPattern = "*.gguf"

var ErrDirNotFound = errors.New("models directory not found")

// Dir is the models directory as seen from this process (dir) and from the
// machine that runs the generation service (hostDir).
type Dir struct {
	dir     string
	hostDir string
}

func New(dir string, hostDir string) *Dir {
	return &Dir{
		dir:     dir,
		hostDir: hostDir,
	}
}

// List returns the sorted base names of every weights file in the directory.
func (d *Dir) List() ([]string, error) {
	if _, err := os.Stat(d.dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: Path %s not found", ErrDirNotFound, d.dir)
		}
		return nil, err
	}

	matches, err := filepath.Glob(filepath.Join(d.dir, weightsPattern))
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		files = append(files, filepath.Base(m))
	}
	sort.Strings(files)
	return files, nil
}

// Exists reports whether filename is a regular file directly inside the
// directory. Names that try to leave the directory never exist.
func (d *Dir) Exists(filename string) (bool, error) {
	if filename == "" || filename != filepath.Base(filename) || filename == ".." {
		return false, nil
	}

	info, err := os.Stat(filepath.Join(d.dir, filename))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

func (d *Dir) HostPath(filename string) string {
	return d.hostDir + "/" + filename
}
