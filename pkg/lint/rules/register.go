package rules

import "github.com/yaklabco/mdcheck/pkg/lint"

// RegisterAll registers all built-in rules with the given registry.
func RegisterAll(registry *lint.Registry) {
	// Heading rules
	registry.Register(NewHeadingLevelSkipRule())           // MD001
	registry.Register(NewFirstHeadingH1Rule())             // MD002
	registry.Register(NewHeadingStyleRule())               // MD003
	registry.Register(NewHeadingNoSpaceATXRule())          // MD018
	registry.Register(NewHeadingMultiSpaceATXRule())       // MD019
	registry.Register(NewHeadingSpaceClosedATXRule())      // MD020
	registry.Register(NewHeadingMultiSpaceClosedATXRule()) // MD021
	registry.Register(NewHeadingBlankLinesRule())          // MD022
	registry.Register(NewHeadingIndentedRule())            // MD023
	registry.Register(NewHeadingDuplicateContentRule())    // MD024
	registry.Register(NewHeadingSingleH1Rule())            // MD025
	registry.Register(NewHeadingTrailingPunctuationRule()) // MD026

	// List rules
	registry.Register(NewListStyleUnorderedRule())         // MD004
	registry.Register(NewListIndentConsistencyRule())      // MD005
	registry.Register(NewListStartIndentRule())            // MD006
	registry.Register(NewListNestingIndentRule())          // MD007
	registry.Register(NewOrderedListPrefixRule())          // MD029
	registry.Register(NewListMarkerSpacingRule())          // MD030
	registry.Register(NewListSurroundedByBlankLinesRule()) // MD032

	// Blockquote rules
	registry.Register(NewBlockquoteSpaceAfterSymbolRule()) // MD027
	registry.Register(NewBlockquoteBlankLineInsideRule())  // MD028

	// Whitespace rules
	registry.Register(NewTrailingWhitespaceRule()) // MD009
	registry.Register(NewHardTabsRule())           // MD010
	registry.Register(NewMultipleBlankLinesRule()) // MD012

	// Code rules
	registry.Register(NewCodeDollarWithoutOutputRule()) // MD014
	registry.Register(NewCodeFenceBlankLinesRule())     // MD031
	registry.Register(NewCodeFenceLanguageRule())       // MD040

	// Links and length
	registry.Register(NewReversedLinkSyntaxRule()) // MD011
	registry.Register(NewLineLengthRule())         // MD013
}

// markdownlintAliases maps the names markdownlint and mdl use for the
// catalog's rules to their codes, so existing configuration files resolve.
var markdownlintAliases = map[string]string{
	"heading-increment":            "MD001",
	"header-increment":             "MD001",
	"first-header-h1":              "MD002",
	"header-style":                 "MD003",
	"ul-style":                     "MD004",
	"list-indent":                  "MD005",
	"ul-start-left":                "MD006",
	"ul-indent":                    "MD007",
	"no-trailing-spaces":           "MD009",
	"no-hard-tabs":                 "MD010",
	"no-reversed-links":            "MD011",
	"no-multiple-blanks":           "MD012",
	"commands-show-output":         "MD014",
	"no-missing-space-atx":         "MD018",
	"no-multiple-space-atx":        "MD019",
	"no-missing-space-closed-atx":  "MD020",
	"no-multiple-space-closed-atx": "MD021",
	"blanks-around-headings":       "MD022",
	"blanks-around-headers":        "MD022",
	"heading-start-left":           "MD023",
	"header-start-left":            "MD023",
	"no-duplicate-heading":         "MD024",
	"no-duplicate-header":          "MD024",
	"single-h1":                    "MD025",
	"single-title":                 "MD025",
	"no-trailing-punctuation":      "MD026",
	"no-multiple-space-blockquote": "MD027",
	"no-blanks-blockquote":         "MD028",
	"ol-prefix":                    "MD029",
	"list-marker-space":            "MD030",
	"blanks-around-fences":         "MD031",
	"blanks-around-lists":          "MD032",
	"fenced-code-language":         "MD040",
}

// RegisterAliases registers the markdownlint names of the catalog.
func RegisterAliases(registry *lint.Registry) {
	for alias, id := range markdownlintAliases {
		registry.RegisterAlias(alias, id)
	}
}

// init registers all built-in rules with the default registry.
//
//nolint:gochecknoinits // Init is intentional for automatic rule registration
func init() {
	RegisterAll(lint.DefaultRegistry)
	RegisterAliases(lint.DefaultRegistry)
}
