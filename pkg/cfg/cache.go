package cfg

// Cache contains the artifact cache storage policy.
type Cache struct {
	// Quota limits the size of the local artifact cache, see QuotaSpec.
	Quota QuotaSpec `yaml:"quota" env:"QUOTA"`
	// PullBuildtrees specifies whether build trees are pulled together
	// with artifacts from remote caches.
	PullBuildtrees bool `yaml:"pull-buildtrees" env:"PULL_BUILDTREES"`
	// CacheBuildtrees specifies when build trees are stored in the cache.
	// With TriStateAuto they are only stored for failed builds.
	CacheBuildtrees TriState `yaml:"cache-buildtrees" env:"CACHE_BUILDTREES"`
}

func (c *Cache) validate() error {
	if _, err := c.Quota.Parse(); err != nil {
		return fieldErrorWrap(err, "quota")
	}

	if err := c.CacheBuildtrees.validate(); err != nil {
		return fieldErrorWrap(err, "cache-buildtrees")
	}

	return nil
}

// TriState is a configuration value that can be enabled, disabled or left to
// the tool to decide.
type TriState string

const (
	TriStateAlways TriState = "always"
	TriStateAuto   TriState = "auto"
	TriStateNever  TriState = "never"
)

func (t TriState) validate() error {
	return validateEnum(t, TriStateAlways, TriStateAuto, TriStateNever)
}

func (t TriState) String() string {
	return string(t)
}
