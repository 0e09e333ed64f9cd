// Package assets turns the bundled photo directory into ordered gallery records.
package assets

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"momentos/internal/models"
)

var (
	numericPrefix = regexp.MustCompile(`^(\d+)\.`)
	imageExt      = regexp.MustCompile(`\.(jpeg|jpg|png|gif)$`)
)

// Enumerate orders the discovered asset paths by their numeric filename prefix
// (1.jpeg, 2.jpeg, 10.jpeg...) and assigns sequential ids starting at 1.
// Only the keys of the mapping are used. Paths without a numeric prefix sort as 0;
// equal keys fall back to plain path order.
func Enumerate[V any](assets map[string]V) []models.Photo {
	paths := make([]string, 0, len(assets))
	for p := range assets {
		paths = append(paths, p)
	}

	keys := make(map[string]int64, len(paths))
	for _, p := range paths {
		keys[p] = SortKey(p)
	}

	sort.Slice(paths, func(i, j int) bool {
		ki, kj := keys[paths[i]], keys[paths[j]]
		if ki != kj {
			return ki < kj
		}
		return paths[i] < paths[j]
	})

	photos := make([]models.Photo, 0, len(paths))
	for i, p := range paths {
		id := int64(i + 1)
		photos = append(photos, models.Photo{
			ID:      id,
			URL:     p,
			Caption: Caption(p, id),
		})
	}
	return photos
}

// SortKey returns the numeric prefix of the last path segment, or 0 when there is
// none. A prefix too large for an int64 saturates at math.MaxInt64 so it sorts last.
func SortKey(path string) int64 {
	m := numericPrefix.FindStringSubmatch(lastSegment(path))
	if m == nil {
		return 0
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxInt64
	}
	if err != nil {
		return 0
	}
	return n
}

// Caption is the file name without its image extension.
// An empty result falls back to "Foto <id>".
func Caption(path string, id int64) string {
	name := imageExt.ReplaceAllString(lastSegment(path), "")
	if name == "" {
		return fmt.Sprintf("Foto %d", id)
	}
	return name
}

func lastSegment(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}
