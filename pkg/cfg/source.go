package cfg

// SourceScope specifies which network locations source operations may
// access.
type SourceScope string

const (
	// SourceScopeAll allows accessing the original source locations.
	SourceScopeAll SourceScope = "all"
	// SourceScopeAliases restricts access to locations reachable through
	// configured project aliases.
	SourceScopeAliases SourceScope = "aliases"
)

func (s SourceScope) String() string {
	return string(s)
}

// Fetch contains the network access scope of source downloads.
type Fetch struct {
	Source SourceScope `yaml:"source" env:"SOURCE"`
}

func (f *Fetch) validate() error {
	if err := validateEnum(f.Source, SourceScopeAll, SourceScopeAliases); err != nil {
		return fieldErrorWrap(err, "source")
	}

	return nil
}

// Track contains the network access scope of source reference tracking.
type Track struct {
	Source SourceScope `yaml:"source" env:"SOURCE"`
}

func (t *Track) validate() error {
	if err := validateEnum(t.Source, SourceScopeAll, SourceScopeAliases); err != nil {
		return fieldErrorWrap(err, "source")
	}

	return nil
}
