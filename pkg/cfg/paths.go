package cfg

// Paths contains the filesystem locations the tool operates on.
// The values may reference environment variables (${XDG_CACHE_HOME}) and a
// leading ~, they are expanded via Config.Resolve.
type Paths struct {
	// SourceDir is the directory downloaded sources are cached in.
	SourceDir string `yaml:"sourcedir" env:"SOURCEDIR"`
	// CacheDir is the root directory of the artifact cache.
	CacheDir string `yaml:"cachedir" env:"CACHEDIR"`
	// LogDir is the directory log files are written to.
	LogDir string `yaml:"logdir" env:"LOGDIR"`
	// WorkspaceDir is the default directory workspaces are opened in,
	// relative paths are interpreted relative to the project root.
	WorkspaceDir string `yaml:"workspacedir" env:"WORKSPACEDIR"`
}

func (p *Paths) validate() error {
	for _, f := range []struct {
		key string
		val string
	}{
		{"sourcedir", p.SourceDir},
		{"cachedir", p.CacheDir},
		{"logdir", p.LogDir},
		{"workspacedir", p.WorkspaceDir},
	} {
		if f.val == "" {
			return newFieldError("can not be empty", f.key)
		}
	}

	return nil
}

func (p *Paths) resolve(resolvers ...Resolver) error {
	for _, f := range []struct {
		key string
		val *string
	}{
		{"sourcedir", &p.SourceDir},
		{"cachedir", &p.CacheDir},
		{"logdir", &p.LogDir},
		{"workspacedir", &p.WorkspaceDir},
	} {
		for _, r := range resolvers {
			var err error

			if *f.val, err = r.Resolve(*f.val); err != nil {
				return fieldErrorWrap(err, f.key)
			}
		}
	}

	return nil
}
