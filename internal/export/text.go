package export

import (
	"fmt"
	"os"
	"strings"
)

// RenderText joins formatted entries with a newline, the text report body.
func RenderText(entries []Entry) string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = FormatEntry(e)
	}
	return strings.Join(lines, "\n")
}

// WriteText writes the report to path once, replacing any previous content.
func WriteText(path string, entries []Entry) error {
	if err := os.WriteFile(path, []byte(RenderText(entries)), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
