package command

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strmbuild/strm/internal/testutils/fstest"
	"github.com/strmbuild/strm/internal/testutils/ostest"
	"github.com/strmbuild/strm/pkg/cfg"
)

// initWorkspaceTest creates a project directory containing an element called
// "app", a user configuration with all paths pointing into the temporary
// directory and changes the working directory to the project root.
// It returns the project directory.
func initWorkspaceTest(t *testing.T) string {
	t.Helper()

	initTest(t)

	dir := t.TempDir()

	fstest.WriteToFile(t, []byte("name: testproject\nformat-version: 1\n"),
		filepath.Join(dir, cfg.ProjectFileName))
	fstest.WriteToFile(t, []byte("int main() {}\n"),
		filepath.Join(dir, "elements", "app", "main.c"))

	cfgPath := filepath.Join(dir, cfg.FileName)
	cfgContent := fmt.Sprintf(
		"sourcedir: %s\ncachedir: %s\nlogdir: %s\n",
		filepath.Join(dir, "var", "sources"),
		filepath.Join(dir, "var", "cache"),
		filepath.Join(dir, "var", "logs"),
	)
	fstest.WriteToFile(t, []byte(cfgContent), cfgPath)
	t.Setenv(cfg.EnvVarConfigFile, cfgPath)

	ostest.Chdir(t, dir)

	return dir
}

func TestWorkspaceOpenStagesSourcesAndWritesSessionLog(t *testing.T) {
	dir := initWorkspaceTest(t)
	wsDir := filepath.Join(dir, "ws")

	cmd := newWorkspaceOpenCmd()
	cmd.SetArgs([]string{"app", wsDir})
	execCheck(t, cmd, exitCodeSuccess)

	assert.Equal(t, []byte("int main() {}\n"),
		fstest.ReadFile(t, filepath.Join(wsDir, "main.c")))

	logFiles, err := filepath.Glob(filepath.Join(dir, "var", "logs", "*.log"))
	require.NoError(t, err)
	assert.Len(t, logFiles, 1)
}

func TestWorkspaceOpenTwiceFails(t *testing.T) {
	dir := initWorkspaceTest(t)

	cmd := newWorkspaceOpenCmd()
	cmd.SetArgs([]string{"app", filepath.Join(dir, "ws1")})
	execCheck(t, cmd, exitCodeSuccess)

	cmd = newWorkspaceOpenCmd()
	cmd.SetArgs([]string{"app", filepath.Join(dir, "ws2")})
	execCheck(t, cmd, exitCodeAlreadyExist)
}

func TestWorkspaceCloseKeepsDirectory(t *testing.T) {
	dir := initWorkspaceTest(t)
	wsDir := filepath.Join(dir, "ws")

	cmd := newWorkspaceOpenCmd()
	cmd.SetArgs([]string{"app", wsDir})
	execCheck(t, cmd, exitCodeSuccess)

	closeCmd := newWorkspaceCloseCmd()
	closeCmd.SetArgs([]string{"app"})
	execCheck(t, closeCmd, exitCodeSuccess)

	assert.FileExists(t, filepath.Join(wsDir, "main.c"))
}

func TestWorkspaceCloseWithoutOpenWorkspaceFails(t *testing.T) {
	initWorkspaceTest(t)

	cmd := newWorkspaceCloseCmd()
	cmd.SetArgs([]string{"app"})
	execCheck(t, cmd, exitCodeNotExist)
}

func TestWorkspaceResetRestagesSources(t *testing.T) {
	dir := initWorkspaceTest(t)
	wsDir := filepath.Join(dir, "ws")

	openCmd := newWorkspaceOpenCmd()
	openCmd.SetArgs([]string{"app", wsDir})
	execCheck(t, openCmd, exitCodeSuccess)

	fstest.WriteToFile(t, []byte("int main() { return 1; }\n"),
		filepath.Join(wsDir, "main.c"))

	resetCmd := newWorkspaceResetCmd()
	resetCmd.SetArgs([]string{"app"})
	execCheck(t, resetCmd, exitCodeSuccess)

	assert.Equal(t, []byte("int main() {}\n"),
		fstest.ReadFile(t, filepath.Join(wsDir, "main.c")))
}

func TestWorkspaceResetWithoutOpenWorkspaceFails(t *testing.T) {
	initWorkspaceTest(t)

	cmd := newWorkspaceResetCmd()
	cmd.SetArgs([]string{"app"})
	execCheck(t, cmd, exitCodeNotExist)
}

func TestWorkspaceList(t *testing.T) {
	dir := initWorkspaceTest(t)
	wsDir := filepath.Join(dir, "ws")

	openCmd := newWorkspaceOpenCmd()
	openCmd.SetArgs([]string{"app", wsDir})
	execCheck(t, openCmd, exitCodeSuccess)

	stdoutBuf, _ := interceptCmdOutput(t)

	listCmd := newWorkspaceListCmd()
	listCmd.SetArgs([]string{"--format", "json"})
	execCheck(t, listCmd, exitCodeSuccess)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(stdoutBuf.Bytes(), &rows))
	require.Len(t, rows, 1)

	assert.Equal(t, "app", rows[0]["element"])
	assert.Equal(t, wsDir, rows[0]["path"])
	// keys are abbreviated to the default key-length
	assert.Len(t, rows[0]["key"], 8)
	assert.Empty(t, rows[0]["last-build"])
}

func TestWorkspaceListEmptyProject(t *testing.T) {
	initWorkspaceTest(t)

	stdoutBuf, _ := interceptCmdOutput(t)

	cmd := newWorkspaceListCmd()
	cmd.SetArgs([]string{"--format", "json"})
	execCheck(t, cmd, exitCodeSuccess)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(stdoutBuf.Bytes(), &rows))
	assert.Empty(t, rows)
}
