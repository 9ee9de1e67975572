package command

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strmbuild/strm/internal/testutils/fstest"
	"github.com/strmbuild/strm/pkg/cfg"
	"github.com/strmbuild/strm/pkg/project"
)

func TestInitProjectCreatesLoadableConfigFile(t *testing.T) {
	initTest(t)

	dir := t.TempDir()

	cmd := newInitProjectCmd()
	cmd.SetArgs([]string{"myproject", dir})
	execCheck(t, cmd, exitCodeSuccess)

	p, err := project.NewProject(filepath.Join(dir, cfg.ProjectFileName))
	require.NoError(t, err)
	assert.Equal(t, "myproject", p.Name)
	assert.Equal(t, filepath.Join(dir, "elements"), p.ElementDir())
}

func TestInitProjectFailsWhenConfigFileExists(t *testing.T) {
	initTest(t)

	dir := t.TempDir()
	fstest.WriteToFile(t, []byte("name: other\nformat-version: 1\n"),
		filepath.Join(dir, cfg.ProjectFileName))

	cmd := newInitProjectCmd()
	cmd.SetArgs([]string{"myproject", dir})
	execCheck(t, cmd, exitCodeAlreadyExist)
}

func TestInitProjectInvalidNameFails(t *testing.T) {
	initTest(t)

	cmd := newInitProjectCmd()
	cmd.SetArgs([]string{"my/project", t.TempDir()})
	execCheck(t, cmd, exitCodeError)
}
