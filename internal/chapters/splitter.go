// Package chapters partitions full text into chapter records by recognizing
// heading lines. It is a pure function over the input text, independent of
// the extraction pipeline.
package chapters

import (
	"regexp"
	"strings"

	"github.com/jackzampolin/dramatis/internal/types"
)

// headingPattern matches a chapter/section/volume heading at the start of a
// line: the 第 marker, a numeral (digits or numeral words), a unit word, and
// up to a short run of trailing title characters on the same line.
var headingPattern = regexp.MustCompile(`(?m)^[ \t　]*第[0-9０-９一二三四五六七八九十百千万零两]+[章回节卷部集篇][^\r\n]{0,24}`)

const (
	// anchorMinRunes is the minimum content-line length for an anchor line.
	anchorMinRunes = 8
	// anchorMaxRunes truncates anchor lines to a stable short excerpt.
	anchorMaxRunes = 40
	// summaryMaxRunes bounds the body excerpt used as a chapter summary.
	summaryMaxRunes = 80

	fallbackTitle   = "Full text"
	fallbackSummary = "No chapter headings detected; treating the whole document as one chapter."
)

// Split partitions text into ordered chapters. Consecutive heading matches
// delimit chapter spans: chapter k runs from its heading's start offset to
// the next heading's start offset (or end of text). When no headings are
// found, a single chapter spanning the whole text is returned with a
// fallback title.
func Split(text string) []types.ChapterMetadata {
	locs := headingPattern.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return []types.ChapterMetadata{{
			Title:      fallbackTitle,
			Summary:    fallbackSummary,
			AnchorLine: anchorLine(text, fallbackTitle),
		}}
	}

	out := make([]types.ChapterMetadata, 0, len(locs))
	for k, loc := range locs {
		start := loc[0]
		end := len(text)
		if k+1 < len(locs) {
			end = locs[k+1][0]
		}
		content := text[start:end]

		title := content
		if nl := strings.IndexByte(title, '\n'); nl >= 0 {
			title = title[:nl]
		}
		title = strings.TrimSpace(title)

		body := ""
		if nl := strings.IndexByte(content, '\n'); nl >= 0 {
			body = content[nl+1:]
		}

		out = append(out, types.ChapterMetadata{
			Title:      title,
			Summary:    excerpt(body, summaryMaxRunes),
			AnchorLine: anchorLine(body, title),
		})
	}
	return out
}

// anchorLine picks the first content line longer than the minimum length
// that is not the heading title itself, truncated to a fixed maximum.
// When none qualifies, the (truncated) title is used.
func anchorLine(body, title string) string {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line == title {
			continue
		}
		if len([]rune(line)) > anchorMinRunes {
			return truncate(line, anchorMaxRunes)
		}
	}
	return truncate(title, anchorMaxRunes)
}

// excerpt returns the first non-blank stretch of body, whitespace-collapsed
// and truncated.
func excerpt(body string, maxRunes int) string {
	var parts []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			if len(parts) > 0 {
				break
			}
			continue
		}
		parts = append(parts, line)
		if len([]rune(strings.Join(parts, " "))) >= maxRunes {
			break
		}
	}
	return truncate(strings.Join(parts, " "), maxRunes)
}

func truncate(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes])
}
