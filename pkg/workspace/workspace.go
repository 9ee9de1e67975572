// Package workspace manages checked-out, mutable copies of element sources.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/strmbuild/strm/internal/digest/tree"
	"github.com/strmbuild/strm/internal/fs"
)

const (
	// StateDirName is the directory in the project root that contains the
	// workspace state file.
	StateDirName = ".strm"
	// StateFileName is the name of the workspace state file.
	StateFileName = "workspaces.toml"
)

var (
	// ErrExists is returned when a workspace for the element is already open.
	ErrExists = errors.New("workspace is already open")
	// ErrNotExist is returned when no workspace is open for the element.
	ErrNotExist = errors.New("workspace is not open")
)

// Workspace is an open workspace of an element.
type Workspace struct {
	Element   string `toml:"-"`
	Path      string `toml:"path"`
	Key       string `toml:"key"`
	LastBuild string `toml:"last-build,omitempty"`
}

type state struct {
	Workspaces map[string]*Workspace `toml:"workspaces"`
}

// Manager tracks the open workspaces of a project in a state file in the
// project directory.
type Manager struct {
	stateFilePath string
	stager        *Stager
}

// NewManager returns a Manager for the project with the root directory
// projectDir.
func NewManager(projectDir string, debugLogFn func(string, ...any)) *Manager {
	return &Manager{
		stateFilePath: filepath.Join(projectDir, StateDirName, StateFileName),
		stager: NewStager(
			[]string{StateDirName, StateDirName + "/**"},
			debugLogFn,
		),
	}
}

// Open stages the sources in srcDir into targetDir and records the workspace.
// The workspace key is the content digest of the staged tree.
// If a workspace for the element is already open, ErrExists is returned and
// targetDir is left unchanged.
func (m *Manager) Open(element, srcDir, targetDir string) (*Workspace, error) {
	st, err := m.loadState()
	if err != nil {
		return nil, err
	}

	if ws, exists := st.Workspaces[element]; exists {
		return nil, fmt.Errorf("%w for element %q at %s", ErrExists, element, ws.Path)
	}

	absTarget, err := filepath.Abs(targetDir)
	if err != nil {
		return nil, err
	}

	if err := m.stager.Stage(srcDir, absTarget); err != nil {
		return nil, fmt.Errorf("staging sources of %q failed: %w", element, err)
	}

	key, err := tree.Sum(absTarget)
	if err != nil {
		return nil, fmt.Errorf("calculating workspace key of %q failed: %w", element, err)
	}

	ws := &Workspace{
		Element: element,
		Path:    absTarget,
		Key:     key.Hex(),
	}

	st.Workspaces[element] = ws

	if err := m.saveState(st); err != nil {
		return nil, err
	}

	return ws, nil
}

// Close removes the workspace record of the element.
// The workspace directory is not deleted.
func (m *Manager) Close(element string) error {
	st, err := m.loadState()
	if err != nil {
		return err
	}

	if _, exists := st.Workspaces[element]; !exists {
		return fmt.Errorf("%w for element %q", ErrNotExist, element)
	}

	delete(st.Workspaces, element)

	return m.saveState(st)
}

// Reset discards the content of the element's workspace directory and stages
// the sources in srcDir into it again.
// The workspace key is recalculated and a recorded last build is cleared.
func (m *Manager) Reset(element, srcDir string) (*Workspace, error) {
	st, err := m.loadState()
	if err != nil {
		return nil, err
	}

	ws, exists := st.Workspaces[element]
	if !exists {
		return nil, fmt.Errorf("%w for element %q", ErrNotExist, element)
	}

	if err := os.RemoveAll(ws.Path); err != nil {
		return nil, fmt.Errorf("removing workspace content of %q failed: %w", element, err)
	}

	if err := m.stager.Stage(srcDir, ws.Path); err != nil {
		return nil, fmt.Errorf("staging sources of %q failed: %w", element, err)
	}

	key, err := tree.Sum(ws.Path)
	if err != nil {
		return nil, fmt.Errorf("calculating workspace key of %q failed: %w", element, err)
	}

	ws.Key = key.Hex()
	ws.LastBuild = ""

	if err := m.saveState(st); err != nil {
		return nil, err
	}

	return ws, nil
}

// Get returns the workspace of the element.
func (m *Manager) Get(element string) (*Workspace, error) {
	st, err := m.loadState()
	if err != nil {
		return nil, err
	}

	ws, exists := st.Workspaces[element]
	if !exists {
		return nil, fmt.Errorf("%w for element %q", ErrNotExist, element)
	}

	return ws, nil
}

// List returns all open workspaces, ordered by element name.
func (m *Manager) List() ([]*Workspace, error) {
	st, err := m.loadState()
	if err != nil {
		return nil, err
	}

	res := make([]*Workspace, 0, len(st.Workspaces))
	for _, ws := range st.Workspaces {
		res = append(res, ws)
	}

	sort.Slice(res, func(i, j int) bool {
		return res[i].Element < res[j].Element
	})

	return res, nil
}

// SetLastBuild records the key of the last build of the element's workspace.
func (m *Manager) SetLastBuild(element, key string) error {
	st, err := m.loadState()
	if err != nil {
		return err
	}

	ws, exists := st.Workspaces[element]
	if !exists {
		return fmt.Errorf("%w for element %q", ErrNotExist, element)
	}

	ws.LastBuild = key

	return m.saveState(st)
}

func (m *Manager) loadState() (*state, error) {
	st := state{Workspaces: map[string]*Workspace{}}

	data, err := os.ReadFile(m.stateFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &st, nil
		}

		return nil, err
	}

	if err := toml.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("parsing %s failed: %w", m.stateFilePath, err)
	}

	for element, ws := range st.Workspaces {
		ws.Element = element
	}

	return &st, nil
}

func (m *Manager) saveState(st *state) error {
	if err := fs.Mkdir(filepath.Dir(m.stateFilePath)); err != nil {
		return err
	}

	data, err := toml.Marshal(st)
	if err != nil {
		return err
	}

	if err := os.WriteFile(m.stateFilePath, data, 0640); err != nil {
		return fmt.Errorf("writing %s failed: %w", m.stateFilePath, err)
	}

	return nil
}
