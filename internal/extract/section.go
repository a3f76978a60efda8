package extract

import (
	"regexp"
	"strings"
)

// Section returns the text between heading and the earliest end marker, or
// the end of text when no marker follows. Matching ignores case and spans
// newlines. A missing heading yields "".
func Section(text, heading string, endMarkers ...string) string {
	if heading == "" {
		return ""
	}
	re, err := sectionPattern(heading, endMarkers)
	if err != nil {
		return ""
	}
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

func sectionPattern(heading string, endMarkers []string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString(`(?is)`)
	b.WriteString(regexp.QuoteMeta(heading))
	b.WriteString(`(.*?)(?:`)
	for _, marker := range endMarkers {
		if marker == "" {
			continue
		}
		b.WriteString(regexp.QuoteMeta(marker))
		b.WriteByte('|')
	}
	b.WriteString(`$)`)
	return regexp.Compile(b.String())
}
