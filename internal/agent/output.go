package agent

import (
	"regexp"
	"strings"
)

var (
	// "Final Answer:" at the start of a line, optionally bolded.
	finalAnswerPattern = regexp.MustCompile(`(?im)^[ \t]*(?:\*\*)?final answer(?:\*\*)?[ \t]*:(?:\*\*)?[ \t]*`)
	tracePattern       = regexp.MustCompile(`(?im)^[ \t]*(?:\*\*)?(?:thought|action|action input|observation)(?:\*\*)?[ \t]*:`)
	fencePattern       = regexp.MustCompile("(?s)^```(?:markdown|md)?[ \\t]*\\n(.*?)\\n?```$")
)

// CleanOutput turns a raw completion into report text.
//   - a leading "Final Answer:" marker is dropped, and so is a reasoning
//     trace (Thought:/Action:/Observation: lines) before one
//   - a single fence wrapping the whole answer (```markdown ... ```) is removed
//
// Answers containing further fences keep their outer fence.
func CleanOutput(response string) string {
	result := strings.TrimSpace(response)
	if loc := finalAnswerPattern.FindStringIndex(result); loc != nil &&
		(loc[0] == 0 || tracePattern.MatchString(result[:loc[0]])) {
		result = strings.TrimSpace(result[loc[1]:])
	}
	if m := fencePattern.FindStringSubmatch(result); m != nil && !strings.Contains(m[1], "```") {
		result = strings.TrimSpace(m[1])
	}
	return result
}
