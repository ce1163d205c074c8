package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/backmassage/picnamer/internal/config"
	"github.com/backmassage/picnamer/internal/naming"
)

// Photo is one qualifying file in the photo folder.
type Photo struct {
	Path string // Full path inside the photo folder.
	Name string // Base name, used for ordering.
	Ext  string // Lowercased extension with leading dot.
	Size int64
}

// Discover lists the immediate entries of cfg.PhotoFolder, keeps regular
// files whose extension cfg allows, and returns them sorted by natural order
// of their base name. Sub-directories are ignored, not walked.
func Discover(cfg *config.Config) ([]Photo, error) {
	dir := cfg.PhotoFolder
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list photo folder: %w", err)
	}

	var photos []Photo
	for _, e := range entries {
		ext := photoExt(e.Name())
		if ext == "" || !cfg.Allows(ext) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		// Stat follows symlinks so a link to a photo counts as a photo.
		info, err := os.Stat(path)
		if errors.Is(err, os.ErrNotExist) {
			continue // dangling symlink
		}
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		if !info.Mode().IsRegular() {
			continue
		}
		photos = append(photos, Photo{
			Path: path,
			Name: e.Name(),
			Ext:  ext,
			Size: info.Size(),
		})
	}

	slices.SortFunc(photos, func(a, b Photo) int {
		return naming.NaturalCompare(a.Name, b.Name)
	})
	return photos, nil
}

// photoExt returns the lowercased extension of name. A dotfile such as
// ".jpg" has a stem but no extension, and a trailing dot is not one either.
func photoExt(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[i:])
}
