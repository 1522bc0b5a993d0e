package rules

import (
	"regexp"

	"github.com/stockenboard/shipcheck/pkg/check"
)

// Locales is the expected set of locale catalog files.
var Locales = []string{"zh_TW", "zh_CN", "en", "ja", "ko"}

// ExtraFieldKeys is the expected key set of the extraFields catalog section:
// the per-asset detail labels every locale must translate.
var ExtraFieldKeys = []string{
	"open_price", "prev_close", "52w_high", "52w_low", "exchange",
	"weighted_avg_price", "trade_count", "quote_volume", "avg_price",
	"name", "pe_ratio", "eps", "circulating_supply", "cmc_rank",
	"change_7d_pct", "chain", "token", "est_gas", "question",
	"end_date", "outcomes", "pool_tvl", "volume_24h", "token_from",
	"token_to", "route_path", "gas_estimate", "amount_out",
}

// ProviderKeys is the expected key set of the providerDesc catalog section:
// one description label per market-data provider.
var ProviderKeys = []string{
	"binance", "coinbase", "coingecko", "coinmarketcap", "cryptocompare",
	"yahoo", "marketstack", "eodhd", "mboum", "alpaca", "finnhub",
	"alphavantage", "polygon", "tiingo", "fmp", "twelvedata",
	"polymarket", "bitquery", "kraken", "bybit", "kucoin", "okx",
	"gateio", "bitfinex", "htx", "mexc", "coinpaprika", "coinapi",
	"fcsapi", "jupiter", "okx_dex", "raydium", "subgraph",
}

// Registry order is execution and output order; groups become the numbered
// report sections. The scopes, key lists, and exemption sets below are
// static project layout, not user configuration.
func init() {
	check.Register(check.RuleDef{
		ID:          "LC01",
		Name:        "locale-extra-fields",
		Group:       "i18n",
		Description: "Every locale catalog defines the full extraFields key set",
		Check: KeySetCheck{
			RuleID:  "LC01",
			Dir:     "src/lib/i18n",
			Locales: Locales,
			Ext:     ".ts",
			Label:   "extraFields",
			Keys:    ExtraFieldKeys,
		}.Check,
	})
	check.Register(check.RuleDef{
		ID:          "LC02",
		Name:        "locale-provider-desc",
		Group:       "i18n",
		Description: "Every locale catalog defines the full providerDesc key set",
		Check: KeySetCheck{
			RuleID:  "LC02",
			Dir:     "src/lib/i18n",
			Locales: Locales,
			Ext:     ".ts",
			Label:   "providerDesc",
			Keys:    ProviderKeys,
		}.Check,
	})

	check.Register(check.RuleDef{
		ID:          "FE01",
		Name:        "provider-settings-i18n",
		Group:       "frontend",
		Description: "ProviderSettings is wired to the locale system and ships no native-language literals",
		Check: MarkerCheck{
			RuleID: "FE01",
			File:   "src/components/Settings/ProviderSettings.tsx",
			Conditions: []MarkerCondition{
				{Label: "import { t }", Marker: "import { t }"},
				{Label: "useLocale()", Marker: "useLocale()"},
				{Label: "getDesc", Marker: "getDesc"},
				{Label: "t.providerDesc", Marker: "t.providerDesc"},
				{Label: "no hardcoded 加密貨幣", Marker: "加密貨幣", Forbid: true, StripComments: true},
			},
		}.Check,
	})
	check.Register(check.RuleDef{
		ID:          "FE02",
		Name:        "dex-page-locale",
		Group:       "frontend",
		Description: "DexPage resolves labels through useLocale",
		Check: MarkerCheck{
			RuleID: "FE02",
			File:   "src/components/DexPage/DexPage.tsx",
			Conditions: []MarkerCondition{
				{Label: "useLocale()", Marker: "useLocale()"},
				{Label: "import useLocale", Marker: "import { useLocale }"},
			},
		}.Check,
	})
	check.Register(check.RuleDef{
		ID:          "FE03",
		Name:        "default-view-label",
		Group:       "frontend",
		Description: "The default view label comes from the catalog, in App or the shared toolbar",
		Check: func(ctx *check.Context) []check.Finding {
			findings := MarkerCheck{
				RuleID: "FE03",
				File:   "src/App.tsx",
				Conditions: []MarkerCondition{
					{Label: "useLocale()", Marker: "useLocale()"},
				},
			}.Check(ctx)
			// t.providers.all moved from App to the shared toolbar during a
			// refactor; accept it in either file.
			return append(findings, EitherFileCheck{
				RuleID:   "FE03",
				Primary:  "src/App.tsx",
				Fallback: "src/components/DashboardToolbar/DashboardToolbar.tsx",
				Marker:   "t.providers.all",
				Label:    "default view uses t.providers.all",
			}.Check(ctx)...)
		},
	})
	check.Register(check.RuleDef{
		ID:          "FE04",
		Name:        "asset-card-extra-fields",
		Group:       "frontend",
		Description: "AssetCard formats extra-field labels via the catalog",
		Check: MarkerCheck{
			RuleID: "FE04",
			File:   "src/components/AssetCard/AssetCard.tsx",
			Conditions: []MarkerCondition{
				{Label: "t.extraFields", Marker: "t.extraFields"},
			},
		}.Check,
	})
	check.Register(check.RuleDef{
		ID:          "FE05",
		Name:        "subscription-manager-i18n",
		Group:       "frontend",
		Description: "SubscriptionManager prefers catalog descriptions over raw provider metadata",
		Check: PreferredMarkerCheck{
			RuleID:      "FE05",
			File:        "src/components/Settings/SubscriptionManager.tsx",
			Preferred:   "providerDesc",
			Discouraged: ".free_tier_info",
			Label:       "provider descriptions use the catalog",
		}.Check,
	})

	check.Register(check.RuleDef{
		ID:          "BE01",
		Name:        "db-default-view",
		Group:       "backend",
		Description: "The database module seeds the default view as 'All', not a native-language literal",
		Check: MarkerCheck{
			RuleID: "BE01",
			File:   "src-tauri/src/db.rs",
			Conditions: []MarkerCondition{
				{Label: "default view = 'All'", Marker: "全部", Forbid: true},
			},
		}.Check,
	})
	check.Register(check.RuleDef{
		ID:          "BE02",
		Name:        "schema-version-match",
		Group:       "backend",
		Description: "SCHEMA_VER matches the latest migration version",
		Check: NumberMatchCheck{
			RuleID:      "BE02",
			File:        "src-tauri/src/lib.rs",
			First:       regexp.MustCompile(`SCHEMA_VER:\s*&str\s*=\s*"(\d+)"`),
			FirstLabel:  "SCHEMA_VER",
			Second:      regexp.MustCompile(`version:\s*(\d+)`),
			SecondLabel: "migration version",
		}.Check,
	})
	check.Register(check.RuleDef{
		ID:          "BE03",
		Name:        "clean-db-guard",
		Group:       "backend",
		Description: "The schema bump guard ensure_clean_db is present",
		Check: MarkerCheck{
			RuleID: "BE03",
			File:   "src-tauri/src/lib.rs",
			Conditions: []MarkerCondition{
				{Label: "ensure_clean_db", Marker: "ensure_clean_db"},
			},
		}.Check,
	})

	check.Register(check.RuleDef{
		ID:          "PR01",
		Name:        "provider-metadata-script",
		Group:       "providers",
		Description: "Provider modules ship no CJK text in free_tier_info or inserted data keys",
		Check: ForbiddenScriptCheck{
			RuleID:     "PR01",
			Glob:       "src-tauri/src/providers/*.rs",
			Marker:     "free_tier_info",
			KeyPattern: regexp.MustCompile(`\.insert\(\s*"([^"]+)"\.to_string`),
		}.Check,
	})

	check.Register(check.RuleDef{
		ID:          "TH01",
		Name:        "css-theme-colors",
		Group:       "theme",
		Description: "Stylesheets use theme variables, never hardcoded color values",
		Check: ColorScanCheck{
			RuleID:          "TH01",
			Dir:             "src",
			Ext:             ".css",
			Patterns:        CSSColorPatterns(),
			Exclude:         []string{"src/theme.css"},
			CommentPrefixes: []string{"/*", "*", "//"},
		}.Check,
	})
	check.Register(check.RuleDef{
		ID:          "TH02",
		Name:        "tsx-inline-colors",
		Group:       "theme",
		Description: "Component markup carries no inline hardcoded colors",
		Check: ColorScanCheck{
			RuleID:   "TH02",
			Dir:      "src",
			Ext:      ".tsx",
			Patterns: InlineColorPatterns(),
			// The ThemePicker palette is an intentional literal color table.
			ExemptNames:     map[string]bool{"ThemePicker.tsx": true},
			CommentPrefixes: []string{"//", "/*"},
		}.Check,
	})

	check.Register(check.RuleDef{
		ID:          "BD01",
		Name:        "typescript-compile",
		Group:       "build",
		Description: "The TypeScript compiler reports zero errors",
		Check: ToolCheck{
			RuleID:  "BD01",
			Label:   "tsc --noEmit",
			Command: "npx",
			Args:    []string{"tsc", "--noEmit"},
		}.Check,
	})
	check.Register(check.RuleDef{
		ID:          "BD02",
		Name:        "production-build",
		Group:       "build",
		Description: "The production bundler build succeeds",
		Check: ToolCheck{
			RuleID:  "BD02",
			Label:   "vite build",
			Command: "npx",
			Args:    []string{"vite", "build"},
		}.Check,
	})
}

// BuildRuleIDs are the external-tool rules skipped by --skip-build.
var BuildRuleIDs = []string{"BD01", "BD02"}
