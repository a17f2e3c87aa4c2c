// Package langdetect guesses the language of a code block body so that a
// missing fence info string can be suggested. Detection combines cheap
// textual probes with go-enry's shebang lookup and classifier.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Unknown is returned when no language can be inferred.
const Unknown = "text"

// classifierCandidates bounds the enry classifier to languages that show
// up in documentation.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
}

// probe is a textual signature that identifies a language with high
// confidence.
type probe struct {
	lang  string
	match func(src snippet) bool
}

// snippet holds the precomputed forms of a code body the probes inspect.
type snippet struct {
	raw     []byte
	trimmed []byte
	text    string
}

// probes run in order; the first match wins.
var probes = []probe{
	{"bash", isShellSession},
	{"go", isGo},
	{"python", isPython},
	{"html", isHTML},
	{"json", isJSON},
	{"dockerfile", isDockerfile},
	{"sql", isSQL},
	{"rust", isRust},
	{"javascript", isJavaScript},
	{"yaml", isYAML},
}

// Detect returns the fence tag for content, or Unknown.
func Detect(content []byte) string {
	if len(bytes.TrimSpace(content)) == 0 {
		return Unknown
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	src := snippet{raw: content, trimmed: bytes.TrimSpace(content), text: string(content)}
	for _, p := range probes {
		if p.match(src) {
			return p.lang
		}
	}

	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return normalize(lang)
	}

	return Unknown
}

// isShellSession matches bodies where every non-empty line is a "$ " prompt.
func isShellSession(src snippet) bool {
	var prompts int
	for line := range strings.SplitSeq(src.text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "$ ") {
			return false
		}
		prompts++
	}
	return prompts > 0
}

func isGo(src snippet) bool {
	return bytes.HasPrefix(src.trimmed, []byte("package "))
}

func isPython(src snippet) bool {
	text := src.text
	if strings.Contains(text, "def ") && strings.Contains(text, "):") {
		return true
	}
	// Go imports use "import (".
	if strings.Contains(text, "import ") && !strings.Contains(text, "import (") &&
		(strings.Contains(text, "from ") || strings.HasPrefix(strings.TrimSpace(text), "import ")) {
		return true
	}
	return strings.Contains(text, "__name__") || strings.Contains(text, "__main__")
}

func isHTML(src snippet) bool {
	lower := bytes.ToLower(src.trimmed)
	for _, marker := range []string{"<!doctype html", "<html", "<head>", "<body>"} {
		if bytes.Contains(lower, []byte(marker)) {
			return true
		}
	}
	return false
}

func isJSON(src snippet) bool {
	opens := bytes.HasPrefix(src.trimmed, []byte("{")) || bytes.HasPrefix(src.trimmed, []byte("["))
	return opens && bytes.Contains(src.trimmed, []byte(`"`))
}

func isDockerfile(src snippet) bool {
	raw := src.raw
	return bytes.HasPrefix(src.trimmed, []byte("FROM ")) ||
		(bytes.Contains(raw, []byte("\nFROM ")) && bytes.Contains(raw, []byte("\nRUN "))) ||
		(bytes.Contains(raw, []byte("WORKDIR ")) && bytes.Contains(raw, []byte("COPY ")))
}

func isSQL(src snippet) bool {
	upper := strings.ToUpper(strings.TrimSpace(src.text))
	for _, verb := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
		if strings.HasPrefix(upper, verb) {
			return true
		}
	}
	return false
}

func isRust(src snippet) bool {
	return strings.Contains(src.text, "fn main()") ||
		strings.Contains(src.text, "println!") ||
		strings.Contains(src.text, "let mut ")
}

func isJavaScript(src snippet) bool {
	for _, marker := range []string{"=>", "const ", "let ", "console.log"} {
		if strings.Contains(src.text, marker) {
			return true
		}
	}
	return false
}

// isYAML needs two "key: value" pairs or root list items.
func isYAML(src snippet) bool {
	var keys int
	for line := range bytes.SplitSeq(src.raw, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if bytes.Contains(line, []byte(": ")) &&
			!bytes.ContainsAny(line, "({") &&
			line[0] != '"' {
			keys++
		}
		if bytes.HasPrefix(line, []byte("- ")) {
			keys++
		}
	}
	return keys >= 2
}

// normalize converts go-enry language names to fence tags.
func normalize(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}
