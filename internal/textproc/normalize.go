package textproc

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	// C0 controls except \t \n \r, plus DEL and C1 controls.
	controlChars = regexp.MustCompile(`[\x{00}-\x{08}\x{0B}\x{0C}\x{0E}-\x{1F}\x{7F}-\x{9F}]`)
	blankRuns    = regexp.MustCompile(`\n{3,}`)
)

// Normalize cleans raw extracted text. It never fails: invalid UTF-8 is
// replaced, line endings become \n, control characters are removed,
// horizontal whitespace collapses to a single space, and runs of blank
// lines shrink to one blank line. Newlines are kept so that line-oriented
// extraction still sees the document's structure.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	s := strings.ToValidUTF8(raw, "")
	s = norm.NFC.String(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = controlChars.ReplaceAllString(s, "")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = collapseSpace(line)
	}
	s = strings.Join(lines, "\n")

	s = blankRuns.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// collapseSpace squeezes every run of whitespace in a single line into one
// space and trims the ends.
func collapseSpace(line string) string {
	var b strings.Builder
	b.Grow(len(line))
	inSpace := false
	for _, r := range line {
		if unicode.IsSpace(r) {
			inSpace = true
			continue
		}
		if inSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
