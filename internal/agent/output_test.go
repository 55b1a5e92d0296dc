package agent

import (
	"strings"
	"testing"
)

func TestCleanOutput_PlainText(t *testing.T) {
	response := "  # Report\n\nAll good.  \n"
	if got := CleanOutput(response); got != "# Report\n\nAll good." {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestCleanOutput_FinalAnswer(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Thought: I have enough.\nFinal Answer: # Report\nBody", "# Report\nBody"},
		{"Final Answer:\n\n# Report", "# Report"},
		{"Thought: done\n**Final Answer:** # Report", "# Report"},
		{"Thought: ok\nfinal answer: lower case works", "lower case works"},
		{"Thought: check data\nAction: search\nObservation: none\nFinal Answer: # Report", "# Report"},
		{"The final answer: is inline and kept", "The final answer: is inline and kept"},
	}

	for _, tt := range tests {
		result := CleanOutput(tt.input)
		if result != tt.expected {
			t.Errorf("CleanOutput(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestCleanOutput_KeepsReportWithFinalAnswerLine(t *testing.T) {
	response := "# Model Evaluation Report\n\n## Metrics\nAccuracy 0.91\n\n## Conclusion\nFinal answer: the model is production ready."
	if got := CleanOutput(response); got != response {
		t.Errorf("report body was dropped, got: %q", got)
	}
}

func TestCleanOutput_UnwrapsMarkdownFence(t *testing.T) {
	tests := []string{
		"```markdown\n# Report\n\nBody\n```",
		"```md\n# Report\n\nBody\n```",
		"```\n# Report\n\nBody\n```",
		"Final Answer:\n```markdown\n# Report\n\nBody\n```",
	}

	for _, input := range tests {
		if got := CleanOutput(input); got != "# Report\n\nBody" {
			t.Errorf("CleanOutput(%q) = %q", input, got)
		}
	}
}

func TestCleanOutput_KeepsInnerFences(t *testing.T) {
	response := "# API\n\n```go\nfunc main() {}\n```\n\nDone."
	if got := CleanOutput(response); got != response {
		t.Errorf("inner code block was modified:\n%s", got)
	}

	wrapped := "```markdown\n# API\n\n```go\nfunc main() {}\n```\n```"
	if got := CleanOutput(wrapped); !strings.HasPrefix(got, "```markdown") {
		t.Errorf("nested fences should be left as is, got:\n%s", got)
	}
}

func TestCleanOutput_Empty(t *testing.T) {
	if got := CleanOutput("   \n "); got != "" {
		t.Errorf("expected empty string, got: %q", got)
	}
}
