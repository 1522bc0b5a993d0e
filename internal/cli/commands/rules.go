package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/stockenboard/shipcheck/internal/cli/output"
	"github.com/stockenboard/shipcheck/pkg/check"
	_ "github.com/stockenboard/shipcheck/pkg/check/rules" // register release rules
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group  string // Filter by group
	Format string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-id]",
		Short: "List available release checks",
		Long: `List the registered release checks in their execution order.

Checks are grouped into report sections: i18n, frontend, backend, providers,
theme, and build. The listed order is the order they run and report in.`,
		Example: `  # List all checks
  shipcheck rules

  # Show details for one check
  shipcheck rules LC01

  # List the theme checks only
  shipcheck rules --group theme

  # Output as JSON
  shipcheck rules --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0], opts)
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json, markdown")

	return cmd
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	rules := check.All()
	if opts.Group != "" {
		var filtered []check.RuleDef
		for _, rule := range rules {
			if rule.Group == opts.Group {
				filtered = append(filtered, rule)
			}
		}
		rules = filtered
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return listRulesJSON(r, rules)
	case output.ModeMarkdown:
		listRulesMarkdown(r, rules)
		return nil
	default:
		listRulesText(r, rules)
		return nil
	}
}

// listRulesText renders the checks as a table, preserving execution order.
func listRulesText(r *output.Renderer, rules []check.RuleDef) {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("Release Checks (%d)", len(rules))))
	r.Println("")

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Name", "Group", "Description"})
	for _, rule := range rules {
		t.AppendRow(table.Row{rule.ID, rule.Name, rule.Group, rule.Description})
	}
	t.Render()

	r.Println("")
	r.Println(styles.Muted.Render("Use 'shipcheck rules <rule-id>' for details"))
	r.Println("")
}

func listRulesMarkdown(r *output.Renderer, rules []check.RuleDef) {
	r.Println("# Release Checks")
	r.Println("")

	currentGroup := ""
	for _, rule := range rules {
		if rule.Group != currentGroup {
			currentGroup = rule.Group
			r.Println("## " + titleCaser.String(currentGroup))
			r.Println("")
		}
		r.Printf("- **%s** %s: %s\n", rule.ID, rule.Name, rule.Description)
	}
	r.Println("")
}

// ruleInfo is the serializable view of a rule definition; the check function
// itself is not part of the listing.
type ruleInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Group       string `json:"group"`
	Description string `json:"description"`
}

func listRulesJSON(r *output.Renderer, rules []check.RuleDef) error {
	infos := make([]ruleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, ruleInfo{
			ID:          rule.ID,
			Name:        rule.Name,
			Group:       rule.Group,
			Description: rule.Description,
		})
	}
	return r.JSON(struct {
		Rules []ruleInfo `json:"rules"`
		Count int        `json:"count"`
	}{Rules: infos, Count: len(infos)})
}

func showRule(cmd *cobra.Command, ruleID string, opts *RulesOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	rule, ok := check.GetByID(ruleID)
	if !ok {
		return fmt.Errorf("rule %q not found", ruleID)
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(ruleInfo{ID: rule.ID, Name: rule.Name, Group: rule.Group, Description: rule.Description})
	case output.ModeMarkdown:
		r.Printf("# %s - %s\n\n", rule.ID, rule.Name)
		r.Printf("**Group:** %s\n\n", rule.Group)
		r.Println(rule.Description)
	default:
		styles := r.Styles()
		r.Println("")
		r.Println(styles.Header1.Render(fmt.Sprintf("%s - %s", rule.ID, rule.Name)))
		r.Println("")
		r.Printf("  %s: %s\n", styles.Bold.Render("Group"), rule.Group)
		r.Println("")
		r.Println("  " + rule.Description)
		r.Println("")
	}
	return nil
}
