package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/stockenboard/shipcheck/internal/cli/output"
	"github.com/stockenboard/shipcheck/pkg/check"
	"github.com/stockenboard/shipcheck/pkg/check/rules"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Format    string   // Output format override
	Disable   []string // Rule IDs to skip
	Only      []string // Restrict the run to these rule IDs
	SkipBuild bool     // Skip the external-tool rules
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run all release consistency checks",
		Long: `Run the full pre-release consistency suite against the project.

Checks run in a fixed order: locale catalogs, frontend components, backend
schema, provider metadata, theme colors, and finally the build tools. A
failing check never stops the run; every check reports its own result and
the command exits non-zero if any check errored.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Run the full suite
  shipcheck check

  # Skip the slow compiler and bundler checks
  shipcheck check --skip-build

  # Run only the locale checks
  shipcheck check --only LC01,LC02

  # Machine-readable output
  shipcheck check --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json, markdown")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to skip")
	cmd.Flags().StringSliceVar(&opts.Only, "only", nil, "Run only these rule IDs")
	cmd.Flags().BoolVar(&opts.SkipBuild, "skip-build", false, "Skip the type-check and bundler checks")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *CheckOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	ctx := check.NewContext(cmdCtx.Cfg.Root)
	if cmdCtx.Cfg.ToolTimeoutSecs > 0 {
		ctx.ToolTimeout = time.Duration(cmdCtx.Cfg.ToolTimeoutSecs) * time.Second
	}

	disabled := append([]string{}, cmdCtx.Cfg.Disable...)
	disabled = append(disabled, opts.Disable...)
	if opts.SkipBuild || cmdCtx.Cfg.SkipBuild {
		disabled = append(disabled, rules.BuildRuleIDs...)
	}

	cmdCtx.Logger.Debug("running checks",
		"root", cmdCtx.Cfg.Root,
		"rules", check.Count(),
		"disabled", disabled,
	)

	runner := check.NewRunner(ctx,
		check.WithDisabled(disabled),
		check.WithOnly(opts.Only),
	)
	result := runner.Run()

	switch r.EffectiveMode() {
	case output.ModeJSON:
		if err := r.JSON(result); err != nil {
			return err
		}
	case output.ModeMarkdown:
		renderResultMarkdown(r, cmdCtx.Cfg.Root, result)
	default:
		renderResultText(r, cmdCtx.Cfg.Root, result)
	}

	if result.Report.Err > 0 {
		return fmt.Errorf("%d check(s) failed", result.Report.Err)
	}
	return nil
}

// titleCaser capitalizes group names for section headings.
var titleCaser = cases.Title(language.English)

// renderResultText writes the report as numbered sections with glyph-prefixed
// finding lines.
func renderResultText(r *output.Renderer, root string, result *check.Result) {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render("StockenBoard Release Check"))
	r.Println(styles.Muted.Render("root: " + root))

	for _, section := range result.Sections {
		r.Println("")
		r.Println(styles.Header2.Render(fmt.Sprintf("[%d] %s", section.Index, titleCaser.String(section.Group))))
		for _, f := range section.Findings {
			r.Println("  " + renderFinding(styles, f))
		}
	}

	r.Println("")
	r.Println(renderSummary(styles, result.Report))
	r.Println("")
}

// renderResultMarkdown writes the same report structure as plain markdown.
func renderResultMarkdown(r *output.Renderer, root string, result *check.Result) {
	r.Println("# StockenBoard Release Check")
	r.Println("")
	r.Printf("Root: `%s`\n", root)

	for _, section := range result.Sections {
		r.Println("")
		r.Printf("## [%d] %s\n", section.Index, titleCaser.String(section.Group))
		r.Println("")
		for _, f := range section.Findings {
			r.Println("- " + f.String())
		}
	}

	r.Println("")
	r.Println("**" + result.Report.String() + "**")
}

// renderFinding formats one finding with a styled status glyph. Context lines
// are indented under the finding.
func renderFinding(styles *output.Styles, f check.Finding) string {
	var glyph string
	switch f.Status {
	case check.StatusOk:
		glyph = styles.StatusOk.String()
	case check.StatusWarn:
		glyph = styles.StatusWarn.String()
	default:
		glyph = styles.StatusFail.String()
	}

	line := glyph + " "
	if f.File != "" {
		loc := f.File
		if f.Line > 0 {
			loc = fmt.Sprintf("%s:%d", f.File, f.Line)
		}
		line += styles.Bold.Render(loc) + " "
	}
	line += f.Message
	for _, ctx := range f.Context {
		line += "\n      " + styles.Muted.Render(ctx)
	}
	return line
}

func renderSummary(styles *output.Styles, report check.Report) string {
	s := fmt.Sprintf("%s %d passed  %s %d warnings  %s %d errors",
		styles.StatusOk.String(), report.Ok,
		styles.StatusWarn.String(), report.Warn,
		styles.StatusFail.String(), report.Err,
	)
	if report.Err > 0 {
		return styles.Error.Render(s)
	}
	return styles.Success.Render(s)
}
