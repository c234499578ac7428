package fix

import (
	"fmt"
	"strings"
)

// GenerateDiff renders a minimal line diff between two versions of a
// file: the unchanged prefix and suffix are trimmed and the middle is
// shown as removed and added lines. Good enough for previewing fixes;
// not a patch format.
func GenerateDiff(oldText, newText string) string {
	if oldText == newText {
		return ""
	}
	oldLines := splitLines(oldText)
	newLines := splitLines(newText)

	prefix := 0
	for prefix < len(oldLines) && prefix < len(newLines) && oldLines[prefix] == newLines[prefix] {
		prefix++
	}
	suffix := 0
	for suffix < len(oldLines)-prefix && suffix < len(newLines)-prefix &&
		oldLines[len(oldLines)-1-suffix] == newLines[len(newLines)-1-suffix] {
		suffix++
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "@@ line %d @@\n", prefix+1)
	for _, line := range oldLines[prefix : len(oldLines)-suffix] {
		sb.WriteString("- ")
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	for _, line := range newLines[prefix : len(newLines)-suffix] {
		sb.WriteString("+ ")
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
