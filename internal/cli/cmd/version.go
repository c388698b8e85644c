package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/fontstack/internal/domain/build"
)

var buildInfo = build.Info{Version: "dev", Commit: "unknown", BuildDate: "unknown"}

// SetBuildInfo sets the info printed by the version command.
func SetBuildInfo(info build.Info) {
	buildInfo = info
	rootCmd.Version = info.Version
}

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Print version information",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationNoApp: ""},
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), buildInfo.String())
		fmt.Fprintln(cmd.OutOrStdout(), build.RepoURL())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
