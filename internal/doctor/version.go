package doctor

import (
	"regexp"
	"strings"
)

// Patterns tried in order when a descriptor carries no custom version regex.
var defaultVersionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+\.\d+\.\d+)`),
	regexp.MustCompile(`(?i)version (\d+\.\d+)`),
	regexp.MustCompile(`(?i)v(\d+\.\d+\.\d+)`),
}

// ExtractVersion pulls a version string out of raw probe output. A custom
// pattern takes precedence; its first capture group wins when present, else
// the full match. Returns "" when nothing matches.
func ExtractVersion(output, pattern string) string {
	if strings.TrimSpace(output) == "" {
		return ""
	}
	if pattern != "" {
		if re, err := regexp.Compile(pattern); err == nil {
			if m := re.FindStringSubmatch(output); m != nil {
				if len(m) > 1 {
					return m[1]
				}
				return m[0]
			}
		}
	}
	for _, re := range defaultVersionPatterns {
		if m := re.FindStringSubmatch(output); len(m) > 1 {
			return m[1]
		}
	}
	return ""
}
