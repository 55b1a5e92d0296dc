/*
Copyright © 2026 Crewflow Authors
*/
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

func mark(ok bool) string {
	if ok {
		return color.GreenString("✓")
	}
	return color.RedString("✗")
}

func heading(w io.Writer, title string, width int) {
	fmt.Fprintln(w, color.New(color.Bold).Sprint(title))
	fmt.Fprintln(w, strings.Repeat("=", width))
}

func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", color.YellowString("!"), fmt.Sprintf(format, args...))
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", color.RedString("✗"), err)
}

// truncate shortens s to n runes on a single line.
func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

// titleCase turns a member name like data_analyst into "Data Analyst".
func titleCase(name string) string {
	words := strings.Fields(strings.ReplaceAll(name, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
