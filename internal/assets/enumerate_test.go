package assets

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func set(paths ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		m[p] = struct{}{}
	}
	return m
}

func TestEnumerate_NumericOrder(t *testing.T) {
	photos := Enumerate(set("/d/10.png", "/d/2.jpg", "/d/1.gif"))

	require.Len(t, photos, 3)
	assert.Equal(t, "/d/1.gif", photos[0].URL)
	assert.Equal(t, "/d/2.jpg", photos[1].URL)
	assert.Equal(t, "/d/10.png", photos[2].URL)
	for i, p := range photos {
		assert.Equal(t, int64(i+1), p.ID)
	}
}

func TestEnumerate_IdsHaveNoGaps(t *testing.T) {
	photos := Enumerate(set("/d/1.jpg", "/d/3.jpg", "/d/7.jpg"))

	require.Len(t, photos, 3)
	assert.Equal(t, int64(3), photos[2].ID)
	assert.Equal(t, "7", photos[2].Caption)
}

func TestEnumerate_Empty(t *testing.T) {
	assert.Empty(t, Enumerate(map[string][]byte{}))
	assert.Empty(t, Enumerate[[]byte](nil))
}

func TestEnumerate_NonNumericSortsFirst(t *testing.T) {
	photos := Enumerate(set("/src/img/momentos/2.jpeg", "/src/img/momentos/cover.png", "/src/img/momentos/1.jpeg"))

	require.Len(t, photos, 3)
	assert.Equal(t, "/src/img/momentos/cover.png", photos[0].URL)
	assert.Equal(t, "cover", photos[0].Caption)
	assert.Equal(t, "1", photos[1].Caption)
	assert.Equal(t, "2", photos[2].Caption)
}

func TestEnumerate_OversizedPrefixSortsLast(t *testing.T) {
	photos := Enumerate(set("/d/99999999999999999999999.jpg", "/d/10.png", "/d/capa.png"))

	require.Len(t, photos, 3)
	assert.Equal(t, "/d/capa.png", photos[0].URL)
	assert.Equal(t, "/d/10.png", photos[1].URL)
	assert.Equal(t, "/d/99999999999999999999999.jpg", photos[2].URL)
	assert.Equal(t, int64(3), photos[2].ID)
}

func TestEnumerate_TiesUsePathOrder(t *testing.T) {
	photos := Enumerate(set("/d/b.png", "/d/a.png", "/d/01.jpg", "/d/1.jpg"))

	urls := make([]string, len(photos))
	for i, p := range photos {
		urls[i] = p.URL
	}
	assert.Equal(t, []string{"/d/a.png", "/d/b.png", "/d/01.jpg", "/d/1.jpg"}, urls)
}

func TestEnumerate_KeepsEveryPath(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	in := map[string]int{}
	for i := 0; i < 200; i++ {
		var p string
		switch rng.Intn(3) {
		case 0:
			p = fmt.Sprintf("/img/%d.jpg", rng.Intn(50))
		case 1:
			p = fmt.Sprintf("/img/x%d.png", rng.Intn(50))
		default:
			p = fmt.Sprintf("/img/%d", rng.Intn(50))
		}
		in[p] = i
	}

	photos := Enumerate(in)
	require.Len(t, photos, len(in))

	seen := map[string]bool{}
	for i, p := range photos {
		assert.False(t, seen[p.URL], "duplicate %s", p.URL)
		seen[p.URL] = true
		_, ok := in[p.URL]
		assert.True(t, ok)
		if i > 0 {
			assert.LessOrEqual(t, SortKey(photos[i-1].URL), SortKey(p.URL))
		}
	}
}

func TestEnumerate_StableAcrossRuns(t *testing.T) {
	in := set("/d/3.jpg", "/d/x.gif", "/d/y.gif", "/d/1.png", "/d/3.png")

	first := Enumerate(in)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Enumerate(in))
	}
}

func TestEnumerate_DoesNotMutateInput(t *testing.T) {
	in := set("/d/2.jpg", "/d/1.jpg")
	Enumerate(in)
	assert.Equal(t, set("/d/1.jpg", "/d/2.jpg"), in)
}

func TestSortKey(t *testing.T) {
	tests := []struct {
		path string
		want int64
	}{
		{"/src/img/momentos/7.jpeg", 7},
		{"/src/img/momentos/cover.png", 0},
		{"/d/0010.png", 10},
		{"/d/12.backup.jpg", 12},
		{"/d/img12.jpg", 0},
		{"/2024/photo.jpg", 0},
		{"/d/12", 0},
		{"5.gif", 5},
		{"/d/99999999999999999999999.jpg", math.MaxInt64},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, SortKey(tt.path))
		})
	}
}

func TestCaption(t *testing.T) {
	tests := []struct {
		path string
		id   int64
		want string
	}{
		{"/src/img/momentos/7.jpeg", 1, "7"},
		{"/src/img/momentos/cover.png", 1, "cover"},
		{"/d/beach.gif", 1, "beach"},
		{"/d/photo.JPG", 1, "photo.JPG"},
		{"/d/archive.tar.png", 1, "archive.tar"},
		{"/d/notes.txt", 1, "notes.txt"},
		{"/d/.png", 4, "Foto 4"},
		{"/d/", 2, "Foto 2"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Caption(tt.path, tt.id))
		})
	}
}
