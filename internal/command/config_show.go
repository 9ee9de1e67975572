package command

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/strmbuild/strm/internal/command/flag"
	"github.com/strmbuild/strm/internal/command/term"
	"github.com/strmbuild/strm/internal/format"
	"github.com/strmbuild/strm/internal/format/json"
	"github.com/strmbuild/strm/internal/format/table"
	"github.com/strmbuild/strm/pkg/cfg"
)

const configShowLongHelp = `
Show the effective configuration.
The shown values are the defaults, overridden by the settings in the
configuration file and the STRM_* environment variables.
`

type configShowCmd struct {
	cobra.Command

	format  *flag.Format
	resolve bool
}

func init() {
	configCmd.AddCommand(&newConfigShowCmd().Command)
}

func newConfigShowCmd() *configShowCmd {
	cmd := configShowCmd{
		Command: cobra.Command{
			Use:   "show",
			Short: "show the effective configuration",
			Long:  strings.TrimSpace(configShowLongHelp),
			Args:  cobra.NoArgs,
		},
	}

	cmd.format = flag.NewFormatFlag()
	cmd.Flags().VarP(cmd.format, "format", "f", cmd.format.Usage(term.Highlight))
	_ = cmd.format.RegisterFlagCompletion(&cmd.Command)

	cmd.Flags().BoolVar(&cmd.resolve, "resolve", false,
		"resolve environment variables and '~' in path settings")

	cmd.Run = cmd.run

	return &cmd
}

type settingRow struct {
	setting string
	value   any
}

func (r *settingRow) AsMap(fields []string) map[string]any {
	res := make(map[string]any, len(fields))

	for _, f := range fields {
		switch f {
		case "setting":
			res[f] = r.setting
		case "value":
			res[f] = r.value
		}
	}

	return res
}

func settingRows(config *cfg.Config) []*settingRow {
	return []*settingRow{
		{"sourcedir", config.Paths.SourceDir},
		{"cachedir", config.Paths.CacheDir},
		{"logdir", config.Paths.LogDir},
		{"workspacedir", config.Paths.WorkspaceDir},
		{"cache.quota", config.Cache.Quota.String()},
		{"cache.pull-buildtrees", config.Cache.PullBuildtrees},
		{"cache.cache-buildtrees", string(config.Cache.CacheBuildtrees)},
		{"scheduler.fetchers", config.Scheduler.Fetchers},
		{"scheduler.builders", config.Scheduler.Builders},
		{"scheduler.pushers", config.Scheduler.Pushers},
		{"scheduler.network-retries", config.Scheduler.NetworkRetries},
		{"scheduler.on-error", string(config.Scheduler.OnError)},
		{"build.max-jobs", config.Build.MaxJobs},
		{"build.dependencies", string(config.Build.Dependencies)},
		{"fetch.source", string(config.Fetch.Source)},
		{"track.source", string(config.Track.Source)},
		{"logging.key-length", config.Logging.KeyLength},
		{"logging.verbose", config.Logging.Verbose},
		{"logging.error-lines", config.Logging.ErrorLines},
		{"logging.message-lines", config.Logging.MessageLines},
		{"logging.debug", config.Logging.Debug},
		{"logging.element-format", config.Logging.ElementFormat},
		{"logging.message-format", config.Logging.MessageFormat},
		{"logging.throttle-ui-updates", config.Logging.ThrottleUIUpdates},
	}
}

func (c *configShowCmd) run(_ *cobra.Command, _ []string) {
	config := mustLoadConfig()

	if c.resolve {
		mustResolveConfigPaths(config)
	}

	rows := settingRows(config)

	if c.format.Val == flag.FormatJSON {
		err := json.Encode(stdout, rows, []string{"setting", "value"})
		exitOnErr(err)

		return
	}

	var formatter format.Formatter = table.New([]string{"Setting", "Value"}, stdout)

	for _, row := range rows {
		mustWriteRow(formatter, row.setting, row.value)
	}

	mustFlush(formatter)
}
