package cli

import (
	"bytes"
	"testing"

	"github.com/jakoblorz/go-pathier/internal/filesystem"
	"github.com/stretchr/testify/require"
)

const testWorkspaceRoot = "/workspace"

func newMockFS(t *testing.T, files map[string]string) *filesystem.MockFileSystem {
	t.Helper()

	fs := filesystem.NewMockFileSystem()
	fs.AddDir(testWorkspaceRoot)
	fs.SetCurrentDir(testWorkspaceRoot)
	for path, content := range files {
		fs.AddFile(path, []byte(content))
	}
	return fs
}

func run(t *testing.T, fs filesystem.FileSystem, env map[string]string, args ...string) (string, error) {
	t.Helper()

	lookupEnv := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	var out, errOut bytes.Buffer
	cmd := NewRootCommand(fs, lookupEnv)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_UnknownLogFormat(t *testing.T) {
	fs := newMockFS(t, map[string]string{"/workspace/a.txt": "hello"})

	_, err := run(t, fs, nil, "size", "a.txt", "--log-format", "xml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown log format")
}

func TestRoot_ConfigFromEnv(t *testing.T) {
	fs := newMockFS(t, map[string]string{"/workspace/a.txt": "hello"})

	_, err := run(t, fs, map[string]string{"PATHIER_LOG_FORMAT": "yaml"}, "size", "a.txt")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown log format")

	_, err = run(t, fs, map[string]string{"PATHIER_LOG_FORMAT": "yaml"}, "size", "a.txt", "--log-format", "json")
	require.NoError(t, err)
}

func TestRoot_InvalidConfigFile(t *testing.T) {
	fs := newMockFS(t, map[string]string{
		"/.pathier.json":   "{not json",
		"/workspace/a.txt": "hello",
	})

	_, err := run(t, fs, nil, "size", "a.txt")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load config")
}
