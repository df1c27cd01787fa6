package cmd

import (
	"fmt"
	"runtime"

	"github.com/msto63/snacks/pkg/core/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

type versionInfo struct {
	Version    string            `json:"version" yaml:"version"`
	Components map[string]string `json:"components" yaml:"components"`
	GitCommit  string            `json:"git_commit" yaml:"git_commit"`
	BuildDate  string            `json:"build_date" yaml:"build_date"`
	GoVersion  string            `json:"go_version" yaml:"go_version"`
	Platform   string            `json:"platform" yaml:"platform"`
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := versionInfo{
		Version:    version.Library,
		Components: make(map[string]string, len(version.Components)),
		GitCommit:  version.GitCommit,
		BuildDate:  version.BuildDate,
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
	}
	for _, c := range version.Components {
		info.Components[c] = version.ComponentVersion(c)
	}

	p := newPrinter(cmd)
	return fail("version", p.print(info, func() {
		p.title(fmt.Sprintf("snacks v%s", info.Version))
		p.field("Commit", info.GitCommit)
		p.field("Built", info.BuildDate)
		p.field("Go", info.GoVersion)
		p.field("OS/Arch", info.Platform)
		for _, c := range version.Components {
			p.field(c, info.Components[c])
		}
	}))
}
