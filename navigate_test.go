package pathier_test

import (
	"path/filepath"
	"testing"

	"github.com/jakoblorz/go-pathier"
	"github.com/stretchr/testify/require"
)

func TestPath_MoveUp(t *testing.T) {
	p := pathier.New("some/directory/in/your/system")

	got, err := p.MoveUp("directory")
	require.NoError(t, err)
	require.Equal(t, filepath.Join("some", "directory"), got.String())

	got, err = pathier.New("a/b/c/a/d/e").MoveUp("a")
	require.NoError(t, err)
	require.Equal(t, "a", got.String(), "first occurrence wins")
}

func TestPath_MoveUnder(t *testing.T) {
	tests := []struct {
		path string
		name string
		want string
	}{
		{"a/b/c/d/e/f/g", "c", "a/b/c/d"},
		{"a/b/c/a/d/e", "a", "a/b/c/a/d"},
		{"a/b/c", "b", "a/b/c"},
		{"a/b/c", "c", "a/b/c"},
	}

	for _, tt := range tests {
		t.Run(tt.path+"@"+tt.name, func(t *testing.T) {
			got, err := pathier.New(tt.path).MoveUnder(tt.name)
			require.NoError(t, err)
			require.Equal(t, filepath.FromSlash(tt.want), got.String())
		})
	}
}

func TestPath_Separate(t *testing.T) {
	p := pathier.New("a/b/c/d/e")

	got, err := p.Separate("c", false)
	require.NoError(t, err)
	require.Equal(t, filepath.FromSlash("d/e"), got.String())

	got, err = p.Separate("c", true)
	require.NoError(t, err)
	require.Equal(t, filepath.FromSlash("c/d/e"), got.String())

	got, err = p.Separate("e", false)
	require.NoError(t, err)
	require.Equal(t, ".", got.String())
}

func TestPath_NavigationMissingSegment(t *testing.T) {
	p := pathier.New("a/b/c")

	_, err := p.MoveUp("yeet")
	require.ErrorIs(t, err, pathier.ErrSegmentNotFound)

	_, err = p.MoveUnder("yeet")
	require.ErrorIs(t, err, pathier.ErrSegmentNotFound)

	_, err = p.Separate("yeet", true)
	require.ErrorIs(t, err, pathier.ErrSegmentNotFound)

	_, err = p.MoveUp("B")
	require.ErrorIs(t, err, pathier.ErrSegmentNotFound, "matching is case-sensitive")
}
