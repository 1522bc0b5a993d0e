// Package cli provides the command-line interface for shipcheck.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/stockenboard/shipcheck/internal/cli/commands"
	"github.com/stockenboard/shipcheck/internal/cli/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

// NewRootCmd creates and returns the root command. Invoking shipcheck with
// no subcommand runs the full check suite.
func NewRootCmd() *cobra.Command {
	checkCmd := commands.NewCheckCommand()

	rootCmd := &cobra.Command{
		Use:   "shipcheck",
		Short: "Pre-release consistency checks for StockenBoard",
		Long: `shipcheck runs the pre-release consistency suite for StockenBoard.

It verifies locale catalogs, frontend i18n wiring, backend schema versions,
provider metadata, theme color discipline, and the production build, then
reports every result and exits non-zero if anything errored.

Running shipcheck with no arguments runs the full suite.`,
		Version: commands.Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			var err error
			cfg, err = config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			// Logger goes to stderr so report output stays clean on stdout.
			level := slog.LevelWarn
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			ctx := context.WithValue(cmd.Context(), config.LoggerKey(), logger)
			cmd.SetContext(ctx)

			if cfg.Verbose {
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					fmt.Fprintf(cmd.ErrOrStderr(), "Using config file: %s\n", configFile)
				}
			}

			return nil
		},
		// Bare invocation delegates to the check command.
		RunE: func(cmd *cobra.Command, args []string) error {
			checkCmd.SetContext(cmd.Context())
			return checkCmd.RunE(checkCmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./shipcheck.yaml)")
	rootCmd.PersistentFlags().String("root", "", "Project root to check (default: directory of shipcheck.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (auto|text|markdown|json)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "text", "markdown", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Bare-invocation flags mirror the check command's flags.
	rootCmd.Flags().AddFlagSet(checkCmd.Flags())

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(commands.NewRulesCommand())
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for shipcheck.

To load completions:

Bash:
  $ source <(shipcheck completion bash)

Zsh:
  $ shipcheck completion zsh > "${fpath[1]}/_shipcheck"

Fish:
  $ shipcheck completion fish | source

PowerShell:
  PS> shipcheck completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
	return cmd
}
