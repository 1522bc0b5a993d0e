// Package testutil provides shared helpers for CLI and end-to-end tests.
package testutil

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stockenboard/shipcheck/internal/cli/output"
	"github.com/stockenboard/shipcheck/pkg/check/rules"
	"github.com/stretchr/testify/require"
)

// TestRenderer wraps a Renderer with captured output buffers.
type TestRenderer struct {
	Out *bytes.Buffer
	Err *bytes.Buffer
	R   *output.Renderer
}

// NewTestRenderer creates a renderer writing to buffers, pinned to non-TTY so
// output carries no escape codes.
func NewTestRenderer(mode output.OutputMode) *TestRenderer {
	tr := &TestRenderer{
		Out: &bytes.Buffer{},
		Err: &bytes.Buffer{},
	}
	tr.R = output.NewRendererWithTTY(tr.Out, tr.Err, false, mode)
	return tr
}

// WriteFixtureProject creates a project tree in a temp directory that passes
// every static check: full locale catalogs, wired frontend components,
// matching schema versions, clean provider metadata, and theme-variable-only
// styling. Returns the project root.
func WriteFixtureProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	for _, loc := range rules.Locales {
		WriteFile(t, root, "src/lib/i18n/"+loc+".ts", LocaleCatalog(loc, rules.ExtraFieldKeys, rules.ProviderKeys))
	}

	WriteFile(t, root, "src/components/Settings/ProviderSettings.tsx", `import { t } from "../../lib/i18n";
import { useLocale } from "../../lib/i18n";

export function ProviderSettings() {
  const { t } = useLocale();
  const getDesc = (id: string) => t.providerDesc[id] ?? "";
  return <div className="provider-settings">{getDesc("binance")}</div>;
}
`)

	WriteFile(t, root, "src/components/DexPage/DexPage.tsx", `import { useLocale } from "../../lib/i18n";

export function DexPage() {
  const { t } = useLocale();
  return <div className="dex-page">{t.dex.title}</div>;
}
`)

	WriteFile(t, root, "src/App.tsx", `import { useLocale } from "./lib/i18n";

export default function App() {
  const { t } = useLocale();
  const defaultView = t.providers.all;
  return <main>{defaultView}</main>;
}
`)

	WriteFile(t, root, "src/components/DashboardToolbar/DashboardToolbar.tsx", `import { useLocale } from "../../lib/i18n";

export function DashboardToolbar() {
  const { t } = useLocale();
  return <nav>{t.providers.all}</nav>;
}
`)

	WriteFile(t, root, "src/components/AssetCard/AssetCard.tsx", `import { useLocale } from "../../lib/i18n";

export function AssetCard() {
  const { t } = useLocale();
  return <dl>{Object.keys(t.extraFields).length}</dl>;
}
`)

	WriteFile(t, root, "src/components/Settings/SubscriptionManager.tsx", `import { useLocale } from "../../lib/i18n";

export function SubscriptionManager() {
  const { t } = useLocale();
  return <section>{t.providerDesc.binance}</section>;
}
`)

	// The theme source of truth carries the literal palette.
	WriteFile(t, root, "src/theme.css", `:root {
  --bg: #1a1b26;
  --fg: #c0caf5;
  --accent: #7aa2f7;
}
`)
	WriteFile(t, root, "src/App.css", `.app {
  background: var(--bg);
  color: var(--fg);
}
.app a:hover {
  color: var(--accent);
}
`)

	// ThemePicker is the one component allowed to hold a literal color table.
	WriteFile(t, root, "src/components/Settings/ThemePicker.tsx", `export const palettes = [
  { name: "tokyonight", bg: "#1a1b26" },
  { name: "latte", bg: "#eff1f5" },
];
`)

	WriteFile(t, root, "src-tauri/src/db.rs", `pub fn seed_default_view(conn: &Connection) -> Result<()> {
    conn.execute("INSERT INTO views (name) VALUES (?1)", ["All"])?;
    Ok(())
}
`)

	WriteFile(t, root, "src-tauri/src/lib.rs", `pub const SCHEMA_VER: &str = "7";

fn migrations() -> Vec<Migration> {
    vec![
        Migration { version: 7, sql: include_str!("../migrations/007.sql") },
    ]
}

fn ensure_clean_db(conn: &Connection) -> Result<()> {
    Ok(())
}
`)

	WriteFile(t, root, "src-tauri/src/providers/binance.rs", `pub fn metadata() -> ProviderMeta {
    ProviderMeta {
        id: "binance",
        free_tier_info: "1200 requests per minute",
    }
}

pub fn normalize(raw: &RawQuote) -> HashMap<String, String> {
    let mut extra = HashMap::new();
    extra.insert("volume_24h".to_string(), raw.volume.to_string());
    extra
}
`)

	return root
}

// WriteFile writes content to a project-relative path, creating parents.
func WriteFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// LocaleCatalog renders a locale file defining the given key sets. Keys use
// the quoted property form throughout since some start with a digit. Tests
// pass filtered lists to simulate missing translations.
func LocaleCatalog(loc string, extraKeys, providerKeys []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "export const %s = {\n", loc)
	b.WriteString("  extraFields: {\n")
	for _, key := range extraKeys {
		fmt.Fprintf(&b, "    '%s': \"%s\",\n", key, key)
	}
	b.WriteString("  },\n")
	b.WriteString("  providerDesc: {\n")
	for _, key := range providerKeys {
		fmt.Fprintf(&b, "    '%s': \"%s provider\",\n", key, key)
	}
	b.WriteString("  },\n")
	b.WriteString("};\n")
	return b.String()
}

// Without returns keys with the named entries removed.
func Without(keys []string, omit ...string) []string {
	skip := make(map[string]bool, len(omit))
	for _, k := range omit {
		skip[k] = true
	}
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if !skip[k] {
			out = append(out, k)
		}
	}
	return out
}
