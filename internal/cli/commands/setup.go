// Package commands implements the shipcheck CLI commands.
package commands

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/stockenboard/shipcheck/internal/cli/config"
	"github.com/stockenboard/shipcheck/internal/cli/output"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext builds the shared command dependencies from the loaded
// configuration and the command's writers.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to
// environment variables. The fallback covers commands that run before the
// persistent pre-run hook, like completion.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	root := os.Getenv("SHIPCHECK_ROOT")
	if root == "" {
		root, _ = os.Getwd()
	}
	timeout := config.DefaultToolTimeoutSecs
	if v := os.Getenv("SHIPCHECK_TOOL_TIMEOUT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = n
		}
	}

	return &config.Config{
		Root:            root,
		OutputFormat:    getEnvOrDefault("SHIPCHECK_OUTPUT", config.DefaultOutput),
		Verbose:         os.Getenv("SHIPCHECK_VERBOSE") == "true",
		ToolTimeoutSecs: timeout,
		SkipBuild:       os.Getenv("SHIPCHECK_SKIP_BUILD") == "true",
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
