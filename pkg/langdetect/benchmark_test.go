package langdetect

import "testing"

func BenchmarkDetect(b *testing.B) {
	bodies := map[string]string{
		"go":     "package main\n\nimport \"fmt\"\n\nfunc main() {\n\tfmt.Println(\"Hello, World!\")\n}",
		"python": "def hello():\n    print(\"Hello, World!\")\n\nif __name__ == \"__main__\":\n    hello()",
		"json":   "{\n  \"name\": \"test\",\n  \"version\": \"1.0.0\"\n}",
		"shell":  "$ go install ./cmd/mdcheck\n$ mdcheck lint docs/",
		"prose":  "hello",
	}

	for name, body := range bodies {
		content := []byte(body)
		b.Run(name, func(b *testing.B) {
			for b.Loop() {
				Detect(content)
			}
		})
	}
}
