package pathier_test

import (
	"testing"
	"time"

	"github.com/jakoblorz/go-pathier"
	"github.com/jakoblorz/go-pathier/internal/filesystem"
	"github.com/stretchr/testify/require"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{0, "0 bytes"},
		{999, "999 bytes"},
		{1000, "1.0 kb"},
		{1234, "1.23 kb"},
		{1500000, "1.5 mb"},
		{1234567, "1.23 mb"},
		{2000000000000000000, "2000.0 pb"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, pathier.FormatSize(tt.size))
		})
	}
}

func TestPath_Size(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("project/a.txt", make([]byte, 10))
	fs.AddFile("project/sub/b.json", make([]byte, 5))
	fs.AddFile("project/Makefile", make([]byte, 7))
	fs.AddFile("project/sub/noext", make([]byte, 3))
	fs.AddFile("project/x.d/README", make([]byte, 11))

	require.Equal(t, int64(15), onMock(fs, "project").Size(), "only names with a dot count")
	require.Equal(t, int64(7), onMock(fs, "project/Makefile").Size())
	require.Equal(t, int64(0), onMock(fs, "project/missing").Size())
	require.Equal(t, "15 bytes", onMock(fs, "project").FormattedSize())
}

func TestPath_SizeOnDisk(t *testing.T) {
	root := pathier.New(t.TempDir())
	file := root.Join("data.bin")
	require.NoError(t, file.WriteBytes(make([]byte, 1234)))

	require.Equal(t, int64(1234), file.Size())
	require.Equal(t, int64(1234), root.Size())
	require.Equal(t, "1.23 kb", file.FormattedSize())
}

func TestPath_Times(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("project/a.txt", nil)

	created := time.Now().Add(-2 * time.Hour)
	modified := time.Now().Add(-time.Hour)
	fs.SetTimes("project/a.txt", created, modified)

	p := onMock(fs, "project/a.txt")

	gotCreated, ok := p.CreationTime()
	require.True(t, ok)
	require.True(t, gotCreated.Equal(created))

	age, ok := p.Age()
	require.True(t, ok)
	require.GreaterOrEqual(t, age, 2*time.Hour)

	gotModified, ok := p.ModTime()
	require.True(t, ok)
	require.True(t, gotModified.Equal(modified))

	modAge, ok := p.ModAge()
	require.True(t, ok)
	require.GreaterOrEqual(t, modAge, time.Hour)
	require.Less(t, modAge, 2*time.Hour)
}

func TestPath_TimesMissing(t *testing.T) {
	p := onMock(filesystem.NewMockFileSystem(), "missing")

	_, ok := p.CreationTime()
	require.False(t, ok)
	_, ok = p.Age()
	require.False(t, ok)
	_, ok = p.ModTime()
	require.False(t, ok)
	_, ok = p.ModAge()
	require.False(t, ok)
}

func TestPath_TimesOnDisk(t *testing.T) {
	file := pathier.New(t.TempDir(), "a.txt")
	require.NoError(t, file.WriteText("x"))

	created, ok := file.CreationTime()
	require.True(t, ok)
	require.False(t, created.IsZero())

	age, ok := file.Age()
	require.True(t, ok)
	require.Less(t, age, time.Hour)
}

func TestPath_Comparisons(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("old.txt", make([]byte, 100))
	fs.AddFile("new.txt", make([]byte, 10))

	base := time.Now().Add(-24 * time.Hour)
	fs.SetTimes("old.txt", base, base.Add(3*time.Hour))
	fs.SetTimes("new.txt", base.Add(time.Hour), base.Add(2*time.Hour))

	old := onMock(fs, "old.txt")
	young := onMock(fs, "new.txt")

	larger, err := old.IsLarger(young)
	require.NoError(t, err)
	require.True(t, larger)

	older, err := old.IsOlder(young)
	require.NoError(t, err)
	require.True(t, older)

	older, err = young.IsOlder(old)
	require.NoError(t, err)
	require.False(t, older)

	recent, err := old.ModifiedMoreRecently(young)
	require.NoError(t, err)
	require.True(t, recent)
}

func TestPath_ComparisonsMissing(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("a.txt", nil)

	present := onMock(fs, "a.txt")
	missing := onMock(fs, "b.txt")

	_, err := present.IsLarger(missing)
	require.ErrorIs(t, err, pathier.ErrNoMetadata)

	_, err = missing.IsOlder(present)
	require.ErrorIs(t, err, pathier.ErrNoMetadata)

	_, err = present.ModifiedMoreRecently(missing)
	require.ErrorIs(t, err, pathier.ErrNoMetadata)
}
