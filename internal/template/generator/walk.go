package generator

import (
	"os"
	"path"
	"sort"

	"github.com/go-git/go-billy/v5"

	"github.com/tacogips/scaffold/internal/debug"
	"github.com/tacogips/scaffold/internal/template/model"
)

// Walk enumerates the template tree in pre-order with siblings sorted by
// name, so every directory precedes its children and the order is stable.
// Excluded entries and their subtrees are omitted. Symbolic links to regular
// files are followed; other links are skipped.
func Walk(root billy.Filesystem, ex *Excluder) ([]model.TreeEntry, error) {
	var entries []model.TreeEntry
	if err := walkDir(root, "", ex, &entries); err != nil {
		return nil, err
	}
	debug.Debug("[generator] Walk found %d entries", len(entries))
	return entries, nil
}

func walkDir(root billy.Filesystem, dir string, ex *Excluder, out *[]model.TreeEntry) error {
	readPath := dir
	if readPath == "" {
		readPath = "."
	}

	infos, err := root.ReadDir(readPath)
	if err != nil {
		return newGeneratorError(GeneratorWalkFailed, "failed to read template directory", readPath, err)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name() < infos[j].Name() })

	for _, info := range infos {
		rel := path.Join(dir, info.Name())

		if info.Mode()&os.ModeSymlink != 0 {
			target, err := root.Stat(rel)
			if err != nil || !target.Mode().IsRegular() {
				debug.Debug("[generator] Skipping symbolic link: %s", rel)
				continue
			}
			info = target
		}

		isDir := info.IsDir()
		if ex.Excluded(rel, isDir) {
			continue
		}

		*out = append(*out, model.TreeEntry{RelPath: rel, IsDir: isDir, Mode: info.Mode()})
		if isDir {
			if err := walkDir(root, rel, ex, out); err != nil {
				return err
			}
		}
	}
	return nil
}
