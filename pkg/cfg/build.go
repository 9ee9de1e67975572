package cfg

import "fmt"

const maxJobsLimit = 1024

// Build contains the per-task build settings.
type Build struct {
	// MaxJobs bounds the parallelism within a single build task.
	// 0 selects the number of available CPU cores.
	MaxJobs int `yaml:"max-jobs" env:"MAX_JOBS"`
	// Dependencies specifies which dependencies are included when
	// elements are built.
	Dependencies BuildDeps `yaml:"dependencies" env:"DEPENDENCIES"`
}

// BuildDeps specifies which dependencies are included in a build plan.
type BuildDeps string

const (
	// BuildDepsNone builds only the requested elements.
	BuildDepsNone BuildDeps = "none"
	// BuildDepsAll additionally rebuilds all their dependencies.
	BuildDepsAll BuildDeps = "all"
)

func (d BuildDeps) String() string {
	return string(d)
}

func (b *Build) validate() error {
	if b.MaxJobs < 0 || b.MaxJobs > maxJobsLimit {
		return newFieldError(
			fmt.Sprintf("must be in range [0, %d], 0 selects the CPU count", maxJobsLimit),
			"max-jobs")
	}

	if err := validateEnum(b.Dependencies, BuildDepsNone, BuildDepsAll); err != nil {
		return fieldErrorWrap(err, "dependencies")
	}

	return nil
}
