// Package project locates and represents a strm project directory.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/strmbuild/strm/internal/fs"
	"github.com/strmbuild/strm/pkg/cfg"
)

// FormatVersion is the project configuration format version that this
// version of strm understands.
const FormatVersion = 1

// ErrNotFound is returned when no project configuration file exists in a
// directory or any of its parents.
var ErrNotFound = errors.New("project.conf not found")

// Project is a directory tree containing elements, marked by a project.conf
// file at its root.
type Project struct {
	// Path is the absolute path of the project root directory.
	Path string
	// CfgPath is the absolute path of the project configuration file.
	CfgPath string

	Name        string
	ElementPath string
}

// FindProjectCfg searches for a project configuration file in dir and its
// parent directories and returns its absolute path.
func FindProjectCfg(dir string) (string, error) {
	path, err := fs.FindFileInParentDirs(dir, cfg.ProjectFileName)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}

		return "", err
	}

	return path, nil
}

// FindProject locates the project that contains dir.
func FindProject(dir string) (*Project, error) {
	cfgPath, err := FindProjectCfg(dir)
	if err != nil {
		return nil, err
	}

	return NewProject(cfgPath)
}

// NewProject reads the project configuration file and returns a Project.
func NewProject(cfgPath string) (*Project, error) {
	projectCfg, err := cfg.ProjectFromFile(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("reading project config %q failed: %w", cfgPath, err)
	}

	if err := projectCfg.Validate(); err != nil {
		return nil, fmt.Errorf("project config %q is invalid: %w", cfgPath, err)
	}

	if projectCfg.FormatVersion != FormatVersion {
		return nil, fmt.Errorf("project config %q has format-version %d, this version of strm supports %d",
			cfgPath, projectCfg.FormatVersion, FormatVersion)
	}

	abs, err := filepath.Abs(cfgPath)
	if err != nil {
		return nil, err
	}

	return &Project{
		Path:        filepath.Dir(abs),
		CfgPath:     abs,
		Name:        projectCfg.Name,
		ElementPath: projectCfg.ElementPath,
	}, nil
}

// ElementDir returns the absolute path of the directory containing the
// project's element definitions.
func (p *Project) ElementDir() string {
	return filepath.Join(p.Path, p.ElementPath)
}

// ElementSourceDir returns the absolute path of the local source directory
// of an element.
func (p *Project) ElementSourceDir(element string) string {
	return filepath.Join(p.ElementDir(), element)
}
