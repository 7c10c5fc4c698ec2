package texture

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// Index maps lowercase atlas stems to filesystem paths, so a batch run can
// pair "creeper.geo.json" with "creeper.png" regardless of extension case.
// PNG takes priority over JPEG/TGA for the same stem (alpha channel).
type Index struct {
	entries map[string]string // stem.lower() → full path
}

var atlasExts = map[string]int{
	".png":  0, // preferred
	".tga":  1,
	".jpg":  2,
	".jpeg": 2,
}

// BuildIndex recursively scans dir for atlas image files.
func BuildIndex(dir string) *Index {
	idx := &Index{entries: make(map[string]string)}

	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		rank, ok := atlasExts[ext]
		if !ok {
			return nil
		}
		stem := strings.ToLower(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))

		existing, exists := idx.entries[stem]
		if !exists || rank < atlasExts[strings.ToLower(filepath.Ext(existing))] {
			idx.entries[stem] = path
		}
		return nil
	})

	return idx
}

// ResolvePath returns the filesystem path for an atlas stem, or ("", false).
// Geometry suffixes like "creeper.geo" resolve to the "creeper" atlas.
func (idx *Index) ResolvePath(name string) (string, bool) {
	stem := strings.ToLower(strings.TrimSuffix(filepath.Base(name), filepath.Ext(name)))
	stem = strings.TrimSuffix(stem, ".geo")

	path, ok := idx.entries[stem]
	return path, ok
}

// Len returns the number of indexed atlases.
func (idx *Index) Len() int {
	return len(idx.entries)
}
