package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/stockenboard/shipcheck/internal/cli/config"
	"gopkg.in/yaml.v3"
)

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage shipcheck configuration",
	}
	cmd.AddCommand(newConfigInitCommand())
	cmd.AddCommand(newConfigShowCommand())
	return cmd
}

// starterConfig mirrors the Config koanf keys for the generated file.
type starterConfig struct {
	Output      string   `yaml:"output"`
	ToolTimeout int      `yaml:"tool_timeout"`
	SkipBuild   bool     `yaml:"skip_build"`
	Disable     []string `yaml:"disable,omitempty"`
}

func newConfigInitCommand() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter shipcheck.yaml in the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)

			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			path := filepath.Join(cwd, "shipcheck.yaml")
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			data, err := yaml.Marshal(starterConfig{
				Output:      config.DefaultOutput,
				ToolTimeout: config.DefaultToolTimeoutSecs,
			})
			if err != nil {
				return err
			}
			header := []byte("# shipcheck configuration. Paths resolve against this file's directory.\n")
			if err := os.WriteFile(path, append(header, data...), 0o644); err != nil {
				return err
			}

			cmdCtx.Renderer.Success("wrote " + path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			r := cmdCtx.Renderer

			if used := config.GetConfigFileUsed(); used != "" {
				r.Println("# config file: " + used)
			} else {
				r.Println("# config file: (none, using defaults)")
			}

			data, err := yaml.Marshal(map[string]any{
				"root":         cmdCtx.Cfg.Root,
				"output":       cmdCtx.Cfg.OutputFormat,
				"verbose":      cmdCtx.Cfg.Verbose,
				"tool_timeout": cmdCtx.Cfg.ToolTimeoutSecs,
				"skip_build":   cmdCtx.Cfg.SkipBuild,
				"disable":      cmdCtx.Cfg.Disable,
			})
			if err != nil {
				return err
			}
			r.Printf("%s", data)
			return nil
		},
	}
}
