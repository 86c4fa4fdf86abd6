package extract

import (
	"fmt"
	"strings"
)

// maxSummaryEntities caps how many entities of each kind the context summary
// lists, so the summary cannot itself blow past chunk-size limits. When
// capped, entities are kept in insertion order into the accumulated maps.
const maxSummaryEntities = 30

// Summarize derives a compact description of already-known entities from the
// accumulator. It is fed back into subsequent extraction calls to bias the
// model toward reusing existing group names instead of inventing duplicates.
// Returns "" when nothing has been accumulated yet.
func Summarize(a *Accumulator) string {
	chars := a.Characters()
	scenes := a.Scenes()
	if len(chars) == 0 && len(scenes) == 0 {
		return ""
	}

	var sb strings.Builder

	if len(chars) > 0 {
		sb.WriteString("Characters:\n")
		shown := chars
		if len(shown) > maxSummaryEntities {
			shown = shown[:maxSummaryEntities]
		}
		for _, c := range shown {
			sb.WriteString("- ")
			sb.WriteString(c.GroupName)
			if c.Name != "" && c.Name != c.GroupName {
				fmt.Fprintf(&sb, " (%s)", c.Name)
			}
			if len(c.Aliases) > 0 {
				fmt.Fprintf(&sb, "; aliases: %s", strings.Join(c.Aliases, ", "))
			}
			sb.WriteString("\n")
		}
		if extra := len(chars) - len(shown); extra > 0 {
			fmt.Fprintf(&sb, "- ... and %d more\n", extra)
		}
	}

	if len(scenes) > 0 {
		sb.WriteString("Scenes:\n")
		shown := scenes
		if len(shown) > maxSummaryEntities {
			shown = shown[:maxSummaryEntities]
		}
		for _, s := range shown {
			sb.WriteString("- ")
			sb.WriteString(s.GroupName)
			if s.Name != "" && s.Name != s.GroupName {
				fmt.Fprintf(&sb, " (%s)", s.Name)
			}
			sb.WriteString("\n")
		}
		if extra := len(scenes) - len(shown); extra > 0 {
			fmt.Fprintf(&sb, "- ... and %d more\n", extra)
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}
