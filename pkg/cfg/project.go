package cfg

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/strmbuild/strm/internal/validation"
)

// ProjectFileName is the name of the project configuration file.
// It marks the root directory of a project.
const ProjectFileName = "project.conf"

const defaultElementPath = "elements"

// Project is the parsed project configuration file.
type Project struct {
	Name          string `yaml:"name"`
	FormatVersion int    `yaml:"format-version"`
	ElementPath   string `yaml:"element-path,omitempty"`

	filePath string
}

// ProjectFromFile reads the project configuration file and returns it.
// Unknown keys in the file cause an error.
func ProjectFromFile(path string) (*Project, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var project Project

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	if err := dec.Decode(&project); err != nil {
		return nil, err
	}

	if project.ElementPath == "" {
		project.ElementPath = defaultElementPath
	}

	project.filePath = path

	return &project, nil
}

// FilePath returns the path of the file the configuration was loaded from.
func (p *Project) FilePath() string {
	return p.filePath
}

// Validate validates the project configuration.
func (p *Project) Validate() error {
	if err := p.validateName(); err != nil {
		return fieldErrorWrap(err, "name")
	}

	if p.FormatVersion <= 0 {
		return newFieldError("must be a positive integer", "format-version")
	}

	if p.ElementPath == "" {
		return newFieldError("can not be empty", "element-path")
	}

	if filepath.IsAbs(p.ElementPath) {
		return newFieldError("must be relative to the project directory", "element-path")
	}

	return nil
}

func (p *Project) validateName() error {
	if p.Name == "" {
		return fmt.Errorf("can not be empty")
	}

	if err := validation.StrID(p.Name); err != nil {
		return err
	}

	if strings.ContainsAny(p.Name, "/\\") {
		return fmt.Errorf("can not contain path separators")
	}

	return nil
}

// ExampleProject returns a project configuration with example values.
func ExampleProject(name string) *Project {
	return &Project{
		Name:          name,
		FormatVersion: 1,
		ElementPath:   defaultElementPath,
	}
}

// ToFile writes the project configuration to a file.
func (p *Project) ToFile(filepath string, opts ...toFileOpt) error {
	return toFile(p, filepath, opts...)
}
