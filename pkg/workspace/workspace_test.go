package workspace

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strmbuild/strm/internal/testutils/fstest"
	"github.com/strmbuild/strm/internal/testutils/keytest"
)

func newTestManager(t *testing.T) (*Manager, string) {
	t.Helper()

	projectDir := t.TempDir()

	return NewManager(projectDir, t.Logf), projectDir
}

func writeElementSources(t *testing.T, dir string) {
	t.Helper()

	fstest.WriteToFile(t, []byte("int main() {}\n"), filepath.Join(dir, "main.c"))
	fstest.WriteToFile(t, []byte("all:\n"), filepath.Join(dir, "Makefile"))
}

func TestOpenListClose(t *testing.T) {
	mgr, projectDir := newTestManager(t)

	srcDir := filepath.Join(projectDir, "elements", "app")
	writeElementSources(t, srcDir)

	wsDir := filepath.Join(t.TempDir(), "app-ws")

	ws, err := mgr.Open("app", srcDir, wsDir)
	require.NoError(t, err)
	assert.Equal(t, "app", ws.Element)
	assert.Equal(t, wsDir, ws.Path)
	assert.NotEmpty(t, ws.Key)
	assert.FileExists(t, filepath.Join(wsDir, "main.c"))

	list, err := mgr.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, ws, list[0])

	require.NoError(t, mgr.Close("app"))

	list, err = mgr.List()
	require.NoError(t, err)
	assert.Empty(t, list)

	// closing does not delete the workspace directory
	assert.FileExists(t, filepath.Join(wsDir, "main.c"))
}

func TestOpenTwiceFails(t *testing.T) {
	mgr, projectDir := newTestManager(t)

	srcDir := filepath.Join(projectDir, "elements", "app")
	writeElementSources(t, srcDir)

	_, err := mgr.Open("app", srcDir, filepath.Join(t.TempDir(), "ws1"))
	require.NoError(t, err)

	_, err = mgr.Open("app", srcDir, filepath.Join(t.TempDir(), "ws2"))
	require.ErrorIs(t, err, ErrExists)
}

func TestCloseUnknownWorkspaceFails(t *testing.T) {
	mgr, _ := newTestManager(t)

	require.ErrorIs(t, mgr.Close("app"), ErrNotExist)
}

func TestResetRestagesSources(t *testing.T) {
	mgr, projectDir := newTestManager(t)

	srcDir := filepath.Join(projectDir, "elements", "app")
	writeElementSources(t, srcDir)

	wsDir := filepath.Join(t.TempDir(), "app-ws")

	opened, err := mgr.Open("app", srcDir, wsDir)
	require.NoError(t, err)
	require.NoError(t, mgr.SetLastBuild("app", opened.Key))

	// modify the workspace content
	fstest.WriteToFile(t, []byte("int main() { return 1; }\n"), filepath.Join(wsDir, "main.c"))
	fstest.WriteToFile(t, []byte("tmp"), filepath.Join(wsDir, "scratch.txt"))

	ws, err := mgr.Reset("app", srcDir)
	require.NoError(t, err)

	assert.Equal(t, []byte("int main() {}\n"), fstest.ReadFile(t, filepath.Join(wsDir, "main.c")))
	assert.NoFileExists(t, filepath.Join(wsDir, "scratch.txt"))
	assert.Equal(t, opened.Key, ws.Key)
	assert.Empty(t, ws.LastBuild)

	stored, err := mgr.Get("app")
	require.NoError(t, err)
	assert.Equal(t, ws, stored)
}

func TestResetChangedSourcesChangesKey(t *testing.T) {
	mgr, projectDir := newTestManager(t)

	srcDir := filepath.Join(projectDir, "elements", "app")
	writeElementSources(t, srcDir)

	opened, err := mgr.Open("app", srcDir, filepath.Join(t.TempDir(), "app-ws"))
	require.NoError(t, err)

	fstest.WriteToFile(t, []byte("int main() { return 2; }\n"), filepath.Join(srcDir, "main.c"))

	ws, err := mgr.Reset("app", srcDir)
	require.NoError(t, err)
	assert.NotEqual(t, opened.Key, ws.Key)
}

func TestResetUnknownWorkspaceFails(t *testing.T) {
	mgr, _ := newTestManager(t)

	_, err := mgr.Reset("app", t.TempDir())
	require.ErrorIs(t, err, ErrNotExist)
}

func TestGetUnknownWorkspaceFails(t *testing.T) {
	mgr, _ := newTestManager(t)

	_, err := mgr.Get("app")
	require.ErrorIs(t, err, ErrNotExist)
}

func TestListIsOrderedByElementName(t *testing.T) {
	mgr, projectDir := newTestManager(t)

	for _, element := range []string{"zlib", "app", "libfoo"} {
		srcDir := filepath.Join(projectDir, "elements", element)
		writeElementSources(t, srcDir)

		_, err := mgr.Open(element, srcDir, filepath.Join(t.TempDir(), element))
		require.NoError(t, err)
	}

	list, err := mgr.List()
	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.Equal(t, "app", list[0].Element)
	assert.Equal(t, "libfoo", list[1].Element)
	assert.Equal(t, "zlib", list[2].Element)
}

func TestSetLastBuild(t *testing.T) {
	mgr, projectDir := newTestManager(t)

	srcDir := filepath.Join(projectDir, "elements", "app")
	writeElementSources(t, srcDir)

	ws, err := mgr.Open("app", srcDir, filepath.Join(t.TempDir(), "ws"))
	require.NoError(t, err)
	assert.Empty(t, ws.LastBuild)

	require.NoError(t, mgr.SetLastBuild("app", ws.Key))

	ws, err = mgr.Get("app")
	require.NoError(t, err)
	assert.Equal(t, ws.Key, ws.LastBuild)

	require.ErrorIs(t, mgr.SetLastBuild("other", ws.Key), ErrNotExist)
}

func TestStatePersistsAcrossManagers(t *testing.T) {
	mgr, projectDir := newTestManager(t)

	srcDir := filepath.Join(projectDir, "elements", "app")
	writeElementSources(t, srcDir)

	ws, err := mgr.Open("app", srcDir, filepath.Join(t.TempDir(), "ws"))
	require.NoError(t, err)

	mgr2 := NewManager(projectDir, nil)

	got, err := mgr2.Get("app")
	require.NoError(t, err)
	assert.Equal(t, ws, got)
}

func TestWorkspaceKeysAreStable(t *testing.T) {
	mgr, projectDir := newTestManager(t)

	srcDir := filepath.Join(projectDir, "elements", "app")
	writeElementSources(t, srcDir)

	ws1, err := mgr.Open("app", srcDir, filepath.Join(t.TempDir(), "ws1"))
	require.NoError(t, err)

	keyDir := t.TempDir()
	keytest.Update(t, keyDir, map[string]string{"app": ws1.Key})

	// the same source content yields the same key in a fresh workspace
	require.NoError(t, mgr.Close("app"))

	ws2, err := mgr.Open("app", srcDir, filepath.Join(t.TempDir(), "ws2"))
	require.NoError(t, err)

	keytest.Check(t, keyDir, map[string]string{"app": ws2.Key})
}

func TestWorkspaceKeyChangesWithContent(t *testing.T) {
	mgr, projectDir := newTestManager(t)

	srcDir := filepath.Join(projectDir, "elements", "app")
	writeElementSources(t, srcDir)

	ws1, err := mgr.Open("app", srcDir, filepath.Join(t.TempDir(), "ws1"))
	require.NoError(t, err)
	require.NoError(t, mgr.Close("app"))

	fstest.WriteToFile(t, []byte("int main() { return 1; }\n"), filepath.Join(srcDir, "main.c"))

	ws2, err := mgr.Open("app", srcDir, filepath.Join(t.TempDir(), "ws2"))
	require.NoError(t, err)

	assert.NotEqual(t, ws1.Key, ws2.Key)
}
