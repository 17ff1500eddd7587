package texture

import (
	"io/fs"
	"path/filepath"
	"strings"
)

var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".tga":  true,
	".webp": true,
}

// Index maps texture names to files under an asset directory. Lookups are
// case-insensitive and fall back to the file stem, so a catalog entry
// "textures/earth.jpg" also finds "Textures/Earth.png".
type Index struct {
	root   string
	byPath map[string]string // lower(relative path) → full path
	byStem map[string]string // lower(stem) → full path
}

// BuildIndex scans root recursively for image files. A missing root yields an
// empty index; lookups then resolve relative to root unchanged.
func BuildIndex(root string) *Index {
	idx := &Index{
		root:   root,
		byPath: make(map[string]string),
		byStem: make(map[string]string),
	}
	if root == "" {
		return idx
	}

	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if !imageExts[ext] {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		idx.byPath[strings.ToLower(filepath.ToSlash(rel))] = path

		stem := strings.ToLower(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
		if _, exists := idx.byStem[stem]; !exists {
			idx.byStem[stem] = path
		}
		return nil
	})

	return idx
}

// ResolvePath returns the file for a texture name. ok is false when nothing in
// the index matched; path is then the name joined onto the root so the load
// failure names a useful location.
func (idx *Index) ResolvePath(name string) (path string, ok bool) {
	if name == "" {
		return "", false
	}
	if filepath.IsAbs(name) {
		return name, true
	}
	norm := strings.ToLower(filepath.ToSlash(filepath.Clean(strings.ReplaceAll(name, "\\", "/"))))
	if p, found := idx.byPath[norm]; found {
		return p, true
	}
	base := filepath.Base(norm)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if p, found := idx.byStem[stem]; found {
		return p, true
	}
	return filepath.Join(idx.root, filepath.FromSlash(name)), false
}

// Len returns the number of indexed textures.
func (idx *Index) Len() int {
	return len(idx.byPath)
}
