package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"path"

	"momentos/internal/models"
)

// Extensions is the allow-list of image extensions picked up from the photo directory.
var Extensions = []string{"jpeg", "jpg", "png", "gif"}

// Discover collects every allowed image directly inside dir.
// Keys are URL paths ("/" + path inside fsys) so they can be served as-is;
// values are the file contents. A missing dir gives an empty map.
func Discover(fsys fs.FS, dir string) (map[string][]byte, error) {
	found := make(map[string][]byte)
	if dir == "" {
		dir = "."
	}

	if _, err := fs.Stat(fsys, dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return found, nil
		}
		return nil, fmt.Errorf("stat %s: %w", dir, err)
	}

	for _, ext := range Extensions {
		matches, err := fs.Glob(fsys, path.Join(dir, "*."+ext))
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", ext, err)
		}
		for _, m := range matches {
			info, err := fs.Stat(fsys, m)
			if err != nil {
				return nil, fmt.Errorf("stat %s: %w", m, err)
			}
			if info.IsDir() {
				continue
			}
			data, err := fs.ReadFile(fsys, m)
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", m, err)
			}
			found["/"+m] = data
		}
	}
	return found, nil
}

// Load discovers the photo directory and returns it in gallery order.
func Load(fsys fs.FS, dir string) ([]models.Photo, error) {
	found, err := Discover(fsys, dir)
	if err != nil {
		return nil, err
	}
	return Enumerate(found), nil
}
