package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/stockenboard/shipcheck/internal/cli/output"
)

// Build information, set via ldflags at release time.
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// versionInfo is the serializable version payload.
type versionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			r := cmdCtx.Renderer
			if format != "" {
				r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(format))
			}

			info := versionInfo{
				Version:   Version,
				Commit:    Commit,
				BuildDate: BuildDate,
				GoVersion: runtime.Version(),
				Platform:  runtime.GOOS + "/" + runtime.GOARCH,
			}

			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(info)
			}

			r.Println(fmt.Sprintf("shipcheck %s", info.Version))
			r.Println(fmt.Sprintf("  commit:   %s", info.Commit))
			r.Println(fmt.Sprintf("  built:    %s", info.BuildDate))
			r.Println(fmt.Sprintf("  go:       %s", info.GoVersion))
			r.Println(fmt.Sprintf("  platform: %s", info.Platform))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text, json")
	return cmd
}
