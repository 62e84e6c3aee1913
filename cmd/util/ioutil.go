package util

import (
	"fmt"
	"os"
)

const p = string(os.PathSeparator)

// CreateFolder makes sure the folder at path exists. Existing contents are
// left alone so earlier runs stay comparable.
func CreateFolder(path string) error {
	info, err := os.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%s exists and is not a folder", path)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return err
	}
	return os.MkdirAll(path, os.ModePerm)
}

// ProfilePath returns the path of a profile of the given kind ("cpu", "mem")
// for the run called id inside folder.
func ProfilePath(folder, id, kind string) string {
	if folder == "" {
		return id + "-" + kind + ".pprof"
	}
	return folder + p + id + "-" + kind + ".pprof"
}
