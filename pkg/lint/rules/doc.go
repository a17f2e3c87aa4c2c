// Package rules provides the built-in lint rules for mdcheck.
//
// # Rule Families
//
// Headings:
//
//   - MD001 heading-level-skip: levels grow by at most one
//   - MD002 first-heading-h1: the first heading is level 1
//   - MD003 heading-style: atx, atx_closed or setext, consistently
//   - MD018 heading-no-space-atx: "#Heading" is missing its space
//   - MD019 heading-multi-space-atx: "#  Heading" has too many spaces
//   - MD020 heading-space-closed-atx: closed atx missing an inner space
//   - MD021 heading-multi-space-closed-atx: closed atx with extra inner spaces
//   - MD022 heading-blank-lines: blank lines around headings
//   - MD023 heading-indented: headings start at the margin
//   - MD024 heading-duplicate-content: repeated heading text
//   - MD025 heading-single-h1: one top-level heading
//   - MD026 heading-trailing-punctuation: no trailing punctuation
//
// Lists:
//
//   - MD004 list-style-unordered: consistent bullet markers
//   - MD005 list-indent-consistency: siblings share an indent
//   - MD006 list-start-indent: top-level bullets start at the margin
//   - MD007 list-nesting-indent: nested bullets step by a fixed indent
//   - MD029 ordered-list-prefix: "1." everywhere, or counting
//   - MD030 list-marker-spacing: spaces after the marker
//   - MD032 list-surrounded-by-blank-lines: blank lines around lists
//
// Blockquotes:
//
//   - MD027 blockquote-space-after-symbol: one space after '>'
//   - MD028 blockquote-blank-line-inside: no blank line splitting a quote
//
// Whitespace and layout:
//
//   - MD009 trailing-whitespace
//   - MD010 hard-tabs
//   - MD012 multiple-blank-lines
//   - MD013 line-length
//
// Code and links:
//
//   - MD011 reversed-link-syntax: (text)[url]
//   - MD014 code-dollar-without-output: "$ " prompts with no output
//   - MD031 code-fence-blank-lines: blank lines around fences
//   - MD040 code-fence-language: fences declare a language
//
// # Rule IDs
//
// Codes follow the markdownlint MDxxx numbering. Every rule is also
// addressable by its kebab-case name, and the markdownlint names are
// registered as aliases by RegisterAliases.
//
// # Registration
//
// Rules are registered with lint.DefaultRegistry on import. Each rule
// embeds lint.BaseRule, reads the shared views from lint.RuleContext and
// returns ascending 1-indexed line numbers from Check.
package rules
