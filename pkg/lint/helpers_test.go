package lint

import "testing"

func TestLineHelpers(t *testing.T) {
	tests := []struct {
		line     string
		blank    bool
		indent   int
		indented bool
		trailing bool
	}{
		{"", true, 0, false, false},
		{"   ", true, 3, true, true},
		{"text", false, 0, false, false},
		{"\t- item", false, 1, true, false},
		{"  text  ", false, 2, true, true},
		{"text\t", false, 0, false, true},
	}

	for _, tt := range tests {
		if got := IsBlank(tt.line); got != tt.blank {
			t.Errorf("IsBlank(%q) = %v, want %v", tt.line, got, tt.blank)
		}
		if got := IndentWidth(tt.line); got != tt.indent {
			t.Errorf("IndentWidth(%q) = %d, want %d", tt.line, got, tt.indent)
		}
		if got := IsIndented(tt.line); got != tt.indented {
			t.Errorf("IsIndented(%q) = %v, want %v", tt.line, got, tt.indented)
		}
		if got := HasTrailingWhitespace(tt.line); got != tt.trailing {
			t.Errorf("HasTrailingWhitespace(%q) = %v, want %v", tt.line, got, tt.trailing)
		}
	}
}

func TestLineNumbers(t *testing.T) {
	got := LineNumbers([]int{4, 0, 4, 2})
	want := []int{1, 3, 5}
	if len(got) != len(want) {
		t.Fatalf("LineNumbers() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("LineNumbers()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	if LineNumbers(nil) != nil {
		t.Error("LineNumbers(nil) should be nil")
	}
}
