package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSize(t *testing.T) {
	fs := newMockFS(t, map[string]string{
		"/workspace/data/a.txt":  strings.Repeat("x", 1500),
		"/workspace/data/b.json": "{}",
		"/workspace/data/README": "ignored",
	})

	out, err := run(t, fs, nil, "size", "data")
	require.NoError(t, err)
	require.Equal(t, "1502\n", out)

	out, err = run(t, fs, nil, "size", "data", "--human")
	require.NoError(t, err)
	require.Equal(t, "1.5 kb\n", out)

	out, err = run(t, fs, nil, "size", "missing")
	require.NoError(t, err)
	require.Equal(t, "0\n", out)
}

func TestInfo(t *testing.T) {
	fs := newMockFS(t, map[string]string{"/workspace/notes.txt": "hello"})

	out, err := run(t, fs, nil, "info", "notes.txt")
	require.NoError(t, err)
	require.Contains(t, out, "exists")
	require.Contains(t, out, "true")
	require.Contains(t, out, "file")
	require.Contains(t, out, "5 bytes")
	require.Contains(t, out, "modified")

	out, err = run(t, fs, nil, "info", "nope.txt")
	require.NoError(t, err)
	require.Contains(t, out, "false")
	require.NotContains(t, out, "modified")
}

func TestCopy(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		fs := newMockFS(t, map[string]string{"/workspace/a.txt": "one"})

		out, err := run(t, fs, nil, "copy", "a.txt", "b.txt")
		require.NoError(t, err)
		require.Contains(t, out, "b.txt")

		data, err := fs.ReadFile("/workspace/b.txt")
		require.NoError(t, err)
		require.Equal(t, "one", string(data))
	})

	t.Run("existing file is kept without overwrite", func(t *testing.T) {
		fs := newMockFS(t, map[string]string{
			"/workspace/a.txt": "new",
			"/workspace/b.txt": "old",
		})

		_, err := run(t, fs, nil, "copy", "a.txt", "b.txt")
		require.NoError(t, err)
		data, _ := fs.ReadFile("/workspace/b.txt")
		require.Equal(t, "old", string(data))

		_, err = run(t, fs, nil, "copy", "a.txt", "b.txt", "--overwrite")
		require.NoError(t, err)
		data, _ = fs.ReadFile("/workspace/b.txt")
		require.Equal(t, "new", string(data))
	})

	t.Run("directory", func(t *testing.T) {
		fs := newMockFS(t, map[string]string{
			"/workspace/src/a.txt":     "a",
			"/workspace/src/sub/b.txt": "b",
		})

		_, err := run(t, fs, nil, "copy", "src", "dst")
		require.NoError(t, err)
		require.True(t, fs.Exists("/workspace/dst/a.txt"))
		require.True(t, fs.Exists("/workspace/dst/sub/b.txt"))

		_, err = run(t, fs, nil, "copy", "src", "src/inner", "--overwrite")
		require.Error(t, err)
		require.Contains(t, err.Error(), "inside the source")
	})

	t.Run("missing source does nothing", func(t *testing.T) {
		fs := newMockFS(t, nil)

		_, err := run(t, fs, nil, "copy", "a.txt", "b.txt")
		require.NoError(t, err)
		require.False(t, fs.Exists("/workspace/b.txt"))
	})
}

func TestDelete(t *testing.T) {
	fs := newMockFS(t, map[string]string{
		"/workspace/build/a.o": "x",
		"/workspace/build/b.o": "y",
	})

	out, err := run(t, fs, nil, "delete", "build", "--yes")
	require.NoError(t, err)
	require.Contains(t, out, "deleted")
	require.False(t, fs.Exists("/workspace/build"))
	require.False(t, fs.Exists("/workspace/build/a.o"))

	_, err = run(t, fs, nil, "delete", "build", "--yes")
	require.NoError(t, err)

	_, err = run(t, fs, nil, "delete", "build", "--yes", "--strict")
	require.Error(t, err)
}

func TestBackup(t *testing.T) {
	t.Run("default name", func(t *testing.T) {
		fs := newMockFS(t, map[string]string{"/workspace/notes.txt": "hello"})

		out, err := run(t, fs, nil, "backup", "notes.txt")
		require.NoError(t, err)
		require.Contains(t, out, "notes_backup.txt")
		require.True(t, fs.Exists("/workspace/notes_backup.txt"))
	})

	t.Run("template from flag", func(t *testing.T) {
		fs := newMockFS(t, map[string]string{"/workspace/notes.txt": "hello"})

		_, err := run(t, fs, nil, "backup", "notes.txt", "--template", "{{ .Stem }}.bak{{ .Ext }}")
		require.NoError(t, err)
		require.True(t, fs.Exists("/workspace/notes.bak.txt"))
	})

	t.Run("template from config file", func(t *testing.T) {
		fs := newMockFS(t, map[string]string{
			"/workspace/.pathier.toml": "[backup]\ntemplate = \"old-{{ .Stem }}{{ .Ext }}\"\n",
			"/workspace/notes.txt":     "hello",
		})

		_, err := run(t, fs, nil, "backup", "notes.txt")
		require.NoError(t, err)
		require.True(t, fs.Exists("/workspace/old-notes.txt"))
	})

	t.Run("missing source", func(t *testing.T) {
		fs := newMockFS(t, nil)

		out, err := run(t, fs, nil, "backup", "notes.txt")
		require.NoError(t, err)
		require.Contains(t, out, "nothing to back up")
	})
}

func TestConvert(t *testing.T) {
	fs := newMockFS(t, map[string]string{
		"/workspace/in.json": `{"name":"pathier","tags":["a","b"],"nested":{"z":1,"a":2}}`,
	})

	_, err := run(t, fs, nil, "convert", "in.json", "out/config.yaml")
	require.NoError(t, err)

	data, err := fs.ReadFile("/workspace/out/config.yaml")
	require.NoError(t, err)
	require.Contains(t, string(data), "name: pathier")
	require.Contains(t, string(data), "- a")

	_, err = run(t, fs, nil, "convert", "out/config.yaml", "back.json", "--indent", "2")
	require.NoError(t, err)

	data, err = fs.ReadFile("/workspace/back.json")
	require.NoError(t, err)
	require.Contains(t, string(data), "\n  \"name\": \"pathier\"")

	_, err = run(t, fs, nil, "convert", "in.json", "out.ini")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported")
}

func TestNavigate(t *testing.T) {
	fs := newMockFS(t, nil)
	const p = "/srv/app/src/app/pkg/file.go"

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "moveup", args: []string{"moveup", p, "app"}, want: "/srv/app\n"},
		{name: "moveunder", args: []string{"moveunder", p, "app"}, want: "/srv/app/src/app/pkg\n"},
		{name: "separate", args: []string{"separate", p, "src"}, want: "app/pkg/file.go\n"},
		{name: "separate keep", args: []string{"separate", p, "src", "--keep"}, want: "src/app/pkg/file.go\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, fs, nil, tt.args...)
			require.NoError(t, err)
			require.Equal(t, tt.want, out)
		})
	}

	t.Run("missing segment", func(t *testing.T) {
		_, err := run(t, fs, nil, "moveup", p, "nope")
		require.Error(t, err)
		require.Contains(t, err.Error(), "not a parent of")
	})
}
